package cli

import (
	"github.com/spf13/cobra"

	"rpmsack/internal/core"
)

func newUpgradeAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade-all",
		Short: "Upgrade every upgradable package in the sack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWholeSackGoal(cmd.Context(), func(g *core.Goal) {
				g.UpgradeAll()
			})
		},
	}
}
