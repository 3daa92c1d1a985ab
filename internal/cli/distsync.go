package cli

import (
	"github.com/spf13/cobra"

	"rpmsack/internal/core"
)

func newDistSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "distro-sync <package>",
		Short: "Move a package to a newer candidate version (downgrades are not performed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelectorGoal(cmd.Context(), args[0], func(g *core.Goal, sel *core.Selector) error {
				return g.DistSync(sel)
			})
		},
	}
}
