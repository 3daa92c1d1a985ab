package cli

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/viper"

	"rpmsack/internal/app"
	"rpmsack/internal/core"
	"rpmsack/internal/types"
)

// newBadSelectorErr reports an argument Subject parsing could not
// decompose at all, tagged the same "KIND: message" way core.newErr
// tags its errors so core.KindOf/exitCodeForError dispatch correctly.
func newBadSelectorErr(arg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(string(types.ErrBadSelector) + ": could not parse package argument: " + arg)
}

// loadSack builds the service + sack shared by every subcommand from
// the root command's persistent flags (bound to viper in root.go).
func loadSack(ctx context.Context) (app.Service, *core.Sack, error) {
	service := app.NewService()
	cfg := app.SackConfig{
		Arch:             viper.GetString("arch"),
		RepoPaths:        viper.GetStringSlice("repo"),
		InstallonlyNames: viper.GetStringSlice("installonly"),
		InstallonlyLimit: viper.GetInt("installonly_limit"),
		ProtectedNames:   viper.GetStringSlice("protected"),
	}
	sack, err := service.LoadSack(ctx, cfg)
	return service, sack, err
}

// selectorFromArg compiles a Selector from a user-typed NEVRA-ish
// string. It takes the first Subject decomposition that yields a
// non-empty name, the same "try progressively looser forms" strategy
// as SPEC_FULL §4.5's possibility iterator, then layers arch/evr
// constraints on when the decomposition carried them.
func selectorFromArg(sack *core.Sack, arg string) (*core.Selector, error) {
	it := core.NewNEVRAPossibilities(arg, nil)
	cand, ok := it.Next()
	if !ok {
		return nil, newBadSelectorErr(arg)
	}
	sel := core.NewSelector(sack)
	if err := sel.Name(types.CmpEQ, cand.NEVRA.Name); err != nil {
		return nil, err
	}
	if cand.NEVRA.Arch != "" {
		if err := sel.Arch(cand.NEVRA.Arch); err != nil {
			return nil, err
		}
	}
	if cand.NEVRA.EVR.Version != "" {
		if err := sel.EVR(cand.NEVRA.EVR.String()); err != nil {
			return nil, err
		}
	}
	return sel, nil
}
