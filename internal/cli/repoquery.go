package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"rpmsack/internal/core"
	"rpmsack/internal/types"
)

func newRepoqueryCommand() *cobra.Command {
	var (
		list         bool
		requires     bool
		provides     bool
	)
	cmd := &cobra.Command{
		Use:   "repoquery <name-glob>",
		Short: "Print detailed metadata for packages matching a name glob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sack, err := loadSack(cmd.Context())
			if err != nil {
				return err
			}
			q := core.NewQuery(sack)
			if _, err := q.FilterStr(types.KeyName, types.CmpGlob, args[0]); err != nil {
				return err
			}
			for _, p := range q.Run(cmd.Context()) {
				switch {
				case list:
					for _, f := range p.Files() {
						fmt.Println(f)
					}
				case requires:
					for _, r := range p.Requires() {
						fmt.Println(r.String())
					}
				case provides:
					for _, r := range p.Provides() {
						fmt.Println(r.String())
					}
				default:
					printPackageDetail(p)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "Print the package's file list instead of metadata")
	cmd.Flags().BoolVar(&requires, "requires", false, "Print the package's requires instead of metadata")
	cmd.Flags().BoolVar(&provides, "provides", false, "Print the package's provides instead of metadata")
	return cmd
}

func printPackageDetail(p core.Package) {
	fmt.Printf("Name        : %s\n", p.Name())
	fmt.Printf("Version     : %s\n", p.EVRString())
	fmt.Printf("Arch        : %s\n", p.Arch())
	fmt.Printf("Repo        : %s\n", p.Reponame())
	fmt.Printf("Summary     : %s\n", p.Summary())
	fmt.Printf("URL         : %s\n", p.URL())
	fmt.Printf("License     : %s\n", p.License())
	fmt.Printf("Description : %s\n\n", p.Description())
}
