package cli

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpmsack/internal/types"
)

// newKindErr builds a "KIND: message" error the way core.newErr does,
// without importing the unexported constructor.
func newKindErr(kind types.ErrorKind) error {
	return errbuilder.New().WithMsg(string(kind) + ": test")
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	expected := []string{
		"query", "repoquery", "advisory", "install", "erase",
		"upgrade", "upgrade-all", "downgrade", "distro-sync",
		"distro-sync-all", "reinstall", "verify",
	}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestRootCommandPersistentFlags(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"config", "log-level", "repo", "arch", "installonly", "installonly-limit", "protected"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing persistent flag: %s", name)
	}
}

func TestFlagChanged(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	assert.False(t, flagChanged(cmd, "myflag"))
	require.NoError(t, cmd.Flags().Set("myflag", "val"))
	assert.True(t, flagChanged(cmd, "myflag"))
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		kind     types.ErrorKind
		expected int
	}{
		{"bad query", types.ErrBadQuery, 2},
		{"bad selector", types.ErrBadSelector, 2},
		{"invalid architecture", types.ErrInvalidArchitecture, 2},
		{"file invalid", types.ErrFileInvalid, 2},
		{"package not found", types.ErrPackageNotFound, 3},
		{"no solution", types.ErrNoSolution, 4},
		{"removal of protected pkg", types.ErrRemovalOfProtectedPkg, 5},
		{"internal error", types.ErrInternal, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCodeForError(newKindErr(tt.kind)))
		})
	}
	assert.Equal(t, 1, exitCodeForError(assert.AnError))
}
