package cli

import (
	"github.com/spf13/cobra"

	"rpmsack/internal/core"
)

func newReinstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reinstall <package>",
		Short: "Reinstall a package matching a name/NEVRA argument at its installed version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelectorGoal(cmd.Context(), args[0], func(g *core.Goal, sel *core.Selector) error {
				return g.Reinstall(sel)
			})
		},
	}
}
