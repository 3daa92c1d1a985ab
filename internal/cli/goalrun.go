package cli

import (
	"context"

	"rpmsack/internal/core"
)

// runSelectorGoal loads the sack, builds a Selector from arg, stages
// one job via stage, runs the goal, and prints the resulting
// transaction. It is the shared shape behind install/erase/upgrade/
// downgrade/dist-sync/reinstall, which differ only in which Goal
// method they call.
func runSelectorGoal(ctx context.Context, arg string, stage func(g *core.Goal, sel *core.Selector) error) error {
	service, sack, err := loadSack(ctx)
	if err != nil {
		return err
	}
	sel, err := selectorFromArg(sack, arg)
	if err != nil {
		return err
	}
	g := service.NewGoal(sack)
	if err := stage(g, sel); err != nil {
		return err
	}
	if err := g.Run(ctx); err != nil {
		return err
	}
	tx, _ := g.Transaction()
	printTransaction(tx)
	return nil
}

// runWholeSackGoal is the no-argument counterpart used by
// upgrade-all/dist-sync-all/verify.
func runWholeSackGoal(ctx context.Context, stage func(g *core.Goal)) error {
	service, sack, err := loadSack(ctx)
	if err != nil {
		return err
	}
	g := service.NewGoal(sack)
	stage(g)
	if err := g.Run(ctx); err != nil {
		return err
	}
	tx, _ := g.Transaction()
	printTransaction(tx)
	return nil
}
