package adapters

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureYAML = `
name: fixture-repo
cost: 1000
packages:
  - name: foo
    version: "1.0"
    release: "1"
    arch: x86_64
    summary: a fixture package
`

func TestRepoMetadataFileAdapterLoadsPlainYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "repo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o644))

	snap, err := NewRepoMetadataFileAdapter(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "fixture-repo", snap.Name)
	require.Len(t, snap.Packages, 1)
	assert.Equal(t, "foo", snap.Packages[0].Name)
	assert.Equal(t, "a fixture package", snap.Packages[0].Summary)
}

func TestRepoMetadataFileAdapterLoadsGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "repo.yaml.gz")

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(fixtureYAML))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	snap, err := NewRepoMetadataFileAdapter(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "fixture-repo", snap.Name)
	require.Len(t, snap.Packages, 1)
}

func TestRepoMetadataFileAdapterCachesAfterFirstLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "repo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o644))

	a := NewRepoMetadataFileAdapter(path)
	_, err := a.Load()
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	// second Load must return the cached snapshot despite the file
	// having been removed.
	snap, err := a.Load()
	require.NoError(t, err)
	assert.Equal(t, "fixture-repo", snap.Name)
}

func TestRepoMetadataFileAdapterMissingFile(t *testing.T) {
	a := NewRepoMetadataFileAdapter("/nonexistent/path/repo.yaml")
	_, err := a.Load()
	require.Error(t, err)
}
