package cli

import (
	"github.com/spf13/cobra"

	"rpmsack/internal/core"
	"rpmsack/internal/types"
)

func newQueryCommand() *cobra.Command {
	var (
		installed    bool
		available    bool
		whatProvides string
		latest       bool
		upgrades     bool
	)
	cmd := &cobra.Command{
		Use:   "query [name-glob]",
		Short: "List packages in the sack, installed and/or available",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sack, err := loadSack(cmd.Context())
			if err != nil {
				return err
			}
			q := core.NewQuery(sack)
			if len(args) == 1 && args[0] != "" {
				if _, err := q.FilterStr(types.KeyName, types.CmpGlob, args[0]); err != nil {
					return err
				}
			}
			if whatProvides != "" {
				if _, err := q.FilterStr(types.KeyProvides, types.CmpGlob, whatProvides); err != nil {
					return err
				}
			}
			q.Latest(latest)
			q.Upgrades(upgrades)
			pkgs := q.Run(cmd.Context())
			switch {
			case installed && !available:
				pkgs = filterInstalled(pkgs, true)
			case available && !installed:
				pkgs = filterInstalled(pkgs, false)
			}
			printPackages(pkgs)
			return nil
		},
	}
	cmd.Flags().BoolVar(&installed, "installed", false, "Limit to installed packages")
	cmd.Flags().BoolVar(&available, "available", false, "Limit to packages not installed")
	cmd.Flags().StringVar(&whatProvides, "whatprovides", "", "Limit to packages providing this reldep/name")
	cmd.Flags().BoolVar(&latest, "latest", false, "Keep only the latest EVR per name")
	cmd.Flags().BoolVar(&upgrades, "upgrades", false, "Limit to packages that upgrade an installed package")
	return cmd
}
