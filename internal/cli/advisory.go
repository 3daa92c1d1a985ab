package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAdvisoryCommand() *cobra.Command {
	var (
		kind     string
		severity string
	)
	cmd := &cobra.Command{
		Use:   "advisory",
		Short: "List the advisories known to the sack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, sack, err := loadSack(cmd.Context())
			if err != nil {
				return err
			}
			for _, a := range sack.Advisories() {
				if kind != "" && string(a.Kind()) != kind {
					continue
				}
				if severity != "" && string(a.Severity()) != severity {
					continue
				}
				fmt.Printf("%s  %-8s %-9s %s\n", a.ID(), a.Kind(), a.Severity(), a.Title())
				for _, pkg := range a.Packages() {
					fmt.Printf("  %s\n", pkg.NEVRA.String())
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "type", "", "Limit to advisories of this kind (bugfix, security, enhancement, newpackage)")
	cmd.Flags().StringVar(&severity, "severity", "", "Limit to advisories of this severity")
	return cmd
}
