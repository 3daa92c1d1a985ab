package cli

import (
	"github.com/spf13/cobra"

	"rpmsack/internal/core"
)

func newDistSyncAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "distro-sync-all",
		Short: "Synchronize every installed package to the candidate repos' version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWholeSackGoal(cmd.Context(), func(g *core.Goal) {
				g.DistSyncAll()
			})
		},
	}
}
