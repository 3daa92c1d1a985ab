package cli

import (
	"github.com/spf13/cobra"

	"rpmsack/internal/core"
)

func newEraseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "erase <package>",
		Aliases: []string{"remove"},
		Short:   "Remove a package matching a name/NEVRA argument",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelectorGoal(cmd.Context(), args[0], func(g *core.Goal, sel *core.Selector) error {
				return g.Erase(sel)
			})
		},
	}
	return cmd
}
