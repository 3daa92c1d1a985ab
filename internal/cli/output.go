package cli

import (
	"fmt"

	"rpmsack/internal/core"
)

// filterInstalled keeps only packages whose Installed() matches want.
func filterInstalled(pkgs []core.Package, want bool) []core.Package {
	out := make([]core.Package, 0, len(pkgs))
	for _, p := range pkgs {
		if p.Installed() == want {
			out = append(out, p)
		}
	}
	return out
}

// printPackages renders one NEVRA per line, the same plain listing
// shape as repoquery/query output in the teacher's list commands.
func printPackages(pkgs []core.Package) {
	for _, p := range pkgs {
		fmt.Println(p.NEVRA().String())
	}
}

// printTransaction renders a resolved Goal's Transaction as a set of
// labeled sections, skipping any section with nothing in it.
func printTransaction(tx *core.Transaction) {
	printEntries("Installing", tx.Installs)
	printPairs("Upgrading", tx.Upgrades)
	printPairs("Downgrading", tx.Downgrades)
	printEntries("Reinstalling", tx.Reinstalls)
	printEntries("Removing", tx.Erasures)
	printEntries("Removing (obsoleted)", tx.Obsoleted)
	printEntries("Removing (unneeded dependency)", tx.Unneeded)
	if len(tx.Installs) == 0 && len(tx.Upgrades) == 0 && len(tx.Downgrades) == 0 &&
		len(tx.Reinstalls) == 0 && len(tx.Erasures) == 0 && len(tx.Obsoleted) == 0 && len(tx.Unneeded) == 0 {
		fmt.Println("Nothing to do.")
	}
}

func printEntries(label string, entries []core.TransactionEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Println(label + ":")
	for _, e := range entries {
		fmt.Printf("  %s\n", e.Package.NEVRA().String())
	}
}

func printPairs(label string, pairs []core.UpgradePair) {
	if len(pairs) == 0 {
		return
	}
	fmt.Println(label + ":")
	for _, pr := range pairs {
		fmt.Printf("  %s -> %s\n", pr.Old.NEVRA().String(), pr.New.NEVRA().String())
	}
}
