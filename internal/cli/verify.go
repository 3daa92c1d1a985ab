package cli

import (
	"github.com/spf13/cobra"

	"rpmsack/internal/core"
)

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that the installed set is self-consistent without changing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWholeSackGoal(cmd.Context(), func(g *core.Goal) {
				g.Verify()
			})
		},
	}
}
