package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpmsack/internal/adapters"
	"rpmsack/internal/policies"
	"rpmsack/internal/types"
)

func pkg(name, version, release string) types.PackageData {
	return types.PackageData{Name: name, Version: version, Release: release, Arch: "x86_64"}
}

func withProvides(pd types.PackageData, provides ...string) types.PackageData {
	for _, p := range provides {
		pd.Provides = append(pd.Provides, types.Reldep{Name: p})
	}
	return pd
}

func withRequires(pd types.PackageData, requires ...string) types.PackageData {
	for _, r := range requires {
		pd.Requires = append(pd.Requires, types.Reldep{Name: r})
	}
	return pd
}

func withOrigin(pd types.PackageData, origin string) types.PackageData {
	pd.Origin = origin
	return pd
}

// newFixtureSack builds a sack with one installed repo and one
// available repo over a small, hand-built package universe.
func newFixtureSack(t *testing.T) *Sack {
	t.Helper()
	s := NewSack("x86_64")
	ctx := context.Background()

	_, err := s.LoadRepo(ctx, types.RepoSnapshot{
		Name:      "@System",
		Installed: true,
		Packages: []types.PackageData{
			withProvides(pkg("foo", "1.0", "1"), "foo"),
			withProvides(pkg("bar", "1.0", "1"), "bar"),
		},
	})
	require.NoError(t, err)

	_, err = s.LoadRepo(ctx, types.RepoSnapshot{
		Name: "fixture-repo",
		Packages: []types.PackageData{
			withProvides(pkg("foo", "1.0", "1"), "foo"),
			withProvides(pkg("foo", "2.0", "1"), "foo"),
			withRequires(withProvides(pkg("bar", "1.0", "1"), "bar"), "foo"),
			withProvides(pkg("baz", "1.0", "1"), "baz"),
		},
	})
	require.NoError(t, err)
	return s
}

func TestLoadRepoRejectsSecondInstalledRepo(t *testing.T) {
	s := NewSack("x86_64")
	ctx := context.Background()
	_, err := s.LoadRepo(ctx, types.RepoSnapshot{Name: "a", Installed: true})
	require.NoError(t, err)
	_, err = s.LoadRepo(ctx, types.RepoSnapshot{Name: "b", Installed: true})
	require.Error(t, err)
	assert.Equal(t, types.ErrInternal, KindOf(err))
}

func TestQueryFilterByName(t *testing.T) {
	s := newFixtureSack(t)
	q := NewQuery(s)
	_, err := q.FilterStr(types.KeyName, types.CmpEQ, "foo")
	require.NoError(t, err)
	pkgs := q.Run(context.Background())
	for _, p := range pkgs {
		assert.Equal(t, "foo", p.Name())
	}
	assert.NotEmpty(t, pkgs)
}

func TestQueryApplyTwiceRefinesPriorResult(t *testing.T) {
	s := NewSack("x86_64")
	ctx := context.Background()
	_, err := s.LoadRepo(ctx, types.RepoSnapshot{Name: "@System", Installed: true})
	require.NoError(t, err)
	_, err = s.LoadRepo(ctx, types.RepoSnapshot{
		Name: "fixture-repo",
		Packages: []types.PackageData{
			{Name: "foo", Version: "1.0", Release: "1", Arch: "x86_64"},
			{Name: "foo", Version: "1.0", Release: "1", Arch: "i686"},
			{Name: "bar", Version: "1.0", Release: "1", Arch: "i686"},
		},
	})
	require.NoError(t, err)

	q := NewQuery(s).IgnoreExcludes(true)
	_, err = q.FilterStr(types.KeyName, types.CmpEQ, "foo")
	require.NoError(t, err)
	q.Apply(ctx)

	_, err = q.FilterStr(types.KeyArch, types.CmpEQ, "i686")
	require.NoError(t, err)
	pkgs := q.Run(ctx)

	require.Len(t, pkgs, 1)
	assert.Equal(t, "foo", pkgs[0].Name())
	assert.Equal(t, "i686", pkgs[0].Arch())
}

func TestQueryLatestKeepsOnlyNewestPerName(t *testing.T) {
	s := newFixtureSack(t)
	q := NewQuery(s).IgnoreExcludes(true)
	_, err := q.FilterStr(types.KeyName, types.CmpEQ, "foo")
	require.NoError(t, err)
	q.Latest(true)
	pkgs := q.Run(context.Background())
	require.Len(t, pkgs, 1)
	assert.Equal(t, "2.0", pkgs[0].Version())
}

func TestQueryUpgradableFindsInstalledWithNewerAvailable(t *testing.T) {
	s := newFixtureSack(t)
	q := NewQuery(s)
	q.Upgradable(true)
	pkgs := q.Run(context.Background())
	require.Len(t, pkgs, 1)
	assert.Equal(t, "foo", pkgs[0].Name())
	assert.True(t, pkgs[0].Installed())
}

func TestQueryProvidesFiltersByReldep(t *testing.T) {
	s := newFixtureSack(t)
	q := NewQuery(s).IgnoreExcludes(true)
	_, err := q.FilterStr(types.KeyProvides, types.CmpEQ, "baz")
	require.NoError(t, err)
	pkgs := q.Run(context.Background())
	require.Len(t, pkgs, 1)
	assert.Equal(t, "baz", pkgs[0].Name())
}

func TestSelectorRejectsDuplicateField(t *testing.T) {
	s := newFixtureSack(t)
	sel := NewSelector(s)
	require.NoError(t, sel.Name(types.CmpEQ, "foo"))
	err := sel.Name(types.CmpEQ, "bar")
	require.Error(t, err)
	assert.Equal(t, types.ErrBadSelector, KindOf(err))
}

func TestSelectorRejectsUnknownArch(t *testing.T) {
	s := newFixtureSack(t)
	sel := NewSelector(s)
	require.NoError(t, sel.Name(types.CmpEQ, "foo"))
	require.NoError(t, sel.Arch("made-up-arch"))
	_, err := sel.compile()
	require.Error(t, err)
	assert.Equal(t, types.ErrInvalidArchitecture, KindOf(err))
}

func TestGoalInstallPullsInRequiredDependency(t *testing.T) {
	s := NewSack("x86_64")
	ctx := context.Background()
	_, err := s.LoadRepo(ctx, types.RepoSnapshot{Name: "@System", Installed: true})
	require.NoError(t, err)
	_, err = s.LoadRepo(ctx, types.RepoSnapshot{
		Name: "fixture-repo",
		Packages: []types.PackageData{
			withRequires(pkg("app", "1.0", "1"), "libfoo"),
			withProvides(pkg("libfoo-pkg", "1.0", "1"), "libfoo"),
		},
	})
	require.NoError(t, err)

	g := NewGoal(s, adapters.NewGophersatSolver())
	sel := NewSelector(s)
	require.NoError(t, sel.Name(types.CmpEQ, "app"))
	require.NoError(t, g.Install(sel))

	require.NoError(t, g.Run(ctx))
	tx, ok := g.Transaction()
	require.True(t, ok)

	var installedNames []string
	for _, e := range tx.Installs {
		installedNames = append(installedNames, e.Package.Name())
	}
	assert.Contains(t, installedNames, "app")
	assert.Contains(t, installedNames, "libfoo-pkg")
}

func TestGoalEraseOfProtectedPackageFails(t *testing.T) {
	s := newFixtureSack(t)
	s.SetProtectedPolicy(policies.NewProtectedPolicy("foo"))
	g := NewGoal(s, adapters.NewGophersatSolver())
	sel := NewSelector(s)
	require.NoError(t, sel.Name(types.CmpEQ, "foo"))

	require.NoError(t, g.Erase(sel))
	err := g.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, types.ErrRemovalOfProtectedPkg, KindOf(err))
	assert.NotEmpty(t, g.Problems())
}

func TestGoalUpgradeAllUpgradesFoo(t *testing.T) {
	s := newFixtureSack(t)
	g := NewGoal(s, adapters.NewGophersatSolver())
	g.UpgradeAll()
	require.NoError(t, g.Run(context.Background()))
	tx, ok := g.Transaction()
	require.True(t, ok)
	var sawFooUpgrade bool
	for _, up := range tx.Upgrades {
		if up.New.Name() == "foo" {
			sawFooUpgrade = true
			assert.Equal(t, "2.0", up.New.Version())
		}
	}
	assert.True(t, sawFooUpgrade, "expected foo 1.0 -> 2.0 in the upgrade set")
}

func TestAdvisoriesRoundTrip(t *testing.T) {
	s := NewSack("x86_64")
	ctx := context.Background()
	_, err := s.LoadRepo(ctx, types.RepoSnapshot{
		Name: "fixture-repo",
		Advisories: []types.AdvisoryData{
			{ID: "RHSA-2026:1", Kind: types.AdvisorySecurity, Severity: types.SeverityImportant, Title: "fix foo"},
		},
	})
	require.NoError(t, err)
	advisories := s.Advisories()
	require.Len(t, advisories, 1)
	assert.Equal(t, "RHSA-2026:1", advisories[0].ID())
	assert.Equal(t, types.AdvisorySecurity, advisories[0].Kind())
}

func TestQueryFilterByAdvisorySeverityMatchesReferencedPackage(t *testing.T) {
	s := newFixtureSack(t)
	ctx := context.Background()
	_, err := s.LoadRepo(ctx, types.RepoSnapshot{
		Name: "errata",
		Advisories: []types.AdvisoryData{
			{
				ID:       "RHSA-2026:1",
				Kind:     types.AdvisorySecurity,
				Severity: types.SeverityImportant,
				Packages: []types.AdvisoryPackage{
					{NEVRA: types.NEVRA{Name: "foo", EVR: types.EVR{Version: "2.0", Release: "1"}, Arch: "x86_64"}},
				},
			},
		},
	})
	require.NoError(t, err)

	q := NewQuery(s)
	q, err = q.FilterStr(types.KeyAdvisorySeverity, types.CmpEQ, string(types.SeverityImportant))
	require.NoError(t, err)
	results := q.Run(ctx)

	require.Len(t, results, 1)
	assert.Equal(t, "foo", results[0].Name())
	assert.Equal(t, "2.0", results[0].Version())
}
