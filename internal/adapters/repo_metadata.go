package adapters

import (
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
	"gopkg.in/yaml.v3"

	"rpmsack/internal/types"
)

// RepoMetadataFileAdapter loads a pre-parsed repo snapshot (SPEC_FULL §6
// "Repo metadata input") from a YAML file, transparently decompressing
// .gz/.xz the way real repodata (primary.xml.gz, updateinfo.xml.xz) is
// shipped - grounded on quay-claircore's rhel/rhsa mapper reading gzip-
// and xz-compressed OVAL feeds, and on the teacher's
// RepoIndexFileAdapter's read-then-unmarshal-then-cache shape.
type RepoMetadataFileAdapter struct {
	Path   string
	cached types.RepoSnapshot
	loaded bool
}

// NewRepoMetadataFileAdapter creates a loader for the snapshot at path.
func NewRepoMetadataFileAdapter(path string) *RepoMetadataFileAdapter {
	return &RepoMetadataFileAdapter{Path: path}
}

// Load reads, decompresses, and parses the snapshot, caching the result
// for subsequent calls.
func (a *RepoMetadataFileAdapter) Load() (types.RepoSnapshot, error) {
	if a.loaded {
		return a.cached, nil
	}
	f, err := os.Open(a.Path)
	if err != nil {
		return types.RepoSnapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("repo metadata file not found").
			WithCause(err)
	}
	defer f.Close()

	r, err := decompressingReader(a.Path, f)
	if err != nil {
		return types.RepoSnapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("could not open repo metadata stream").
			WithCause(err)
	}

	var snap types.RepoSnapshot
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return types.RepoSnapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid repo metadata format").
			WithCause(err)
	}
	a.cached = snap
	a.loaded = true
	return snap, nil
}

// decompressingReader picks a decompressor by filename suffix, falling
// back to the raw stream for an uncompressed snapshot.
func decompressingReader(path string, r io.Reader) (io.Reader, error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return gzip.NewReader(r)
	case strings.HasSuffix(path, ".xz"):
		return xz.NewReader(r)
	default:
		return r, nil
	}
}
