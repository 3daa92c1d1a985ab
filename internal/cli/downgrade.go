package cli

import (
	"github.com/spf13/cobra"

	"rpmsack/internal/core"
)

func newDowngradeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "downgrade <package>",
		Short: "Downgrade a package matching a name/NEVRA argument",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelectorGoal(cmd.Context(), args[0], func(g *core.Goal, sel *core.Selector) error {
				return g.Downgrade(sel)
			})
		},
	}
}
