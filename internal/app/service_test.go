package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureYAML = `
name: fixture-repo
packages:
  - name: foo
    version: "1.0"
    release: "1"
    arch: x86_64
`

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "repo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o644))
	return path
}

func TestLoadSackAppliesDefaultInstallonlyPolicy(t *testing.T) {
	svc := NewService()
	sack, err := svc.LoadSack(context.Background(), SackConfig{
		Arch:      "x86_64",
		RepoPaths: []string{writeFixture(t)},
	})
	require.NoError(t, err)
	assert.True(t, sack.IsInstallonly("kernel"))
	assert.False(t, sack.IsInstallonly("foo"))
}

func TestLoadSackAppliesCustomInstallonlyPolicy(t *testing.T) {
	svc := NewService()
	sack, err := svc.LoadSack(context.Background(), SackConfig{
		Arch:             "x86_64",
		RepoPaths:        []string{writeFixture(t)},
		InstallonlyNames: []string{"foo*"},
		InstallonlyLimit: 5,
		ProtectedNames:   []string{"foo"},
	})
	require.NoError(t, err)
	assert.True(t, sack.IsInstallonly("foo"))
	assert.False(t, sack.IsInstallonly("kernel"))
}

func TestLoadSackPropagatesRepoLoadError(t *testing.T) {
	svc := NewService()
	_, err := svc.LoadSack(context.Background(), SackConfig{
		Arch:      "x86_64",
		RepoPaths: []string{"/nonexistent/repo.yaml"},
	})
	require.Error(t, err)
}

func TestNewGoalUsesServiceSolver(t *testing.T) {
	svc := NewService()
	sack, err := svc.LoadSack(context.Background(), SackConfig{Arch: "x86_64"})
	require.NoError(t, err)
	g := svc.NewGoal(sack)
	require.NotNil(t, g)
}
