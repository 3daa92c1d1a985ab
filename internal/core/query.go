package core

import (
	"context"

	"rpmsack/internal/types"
)

// filter is one entry in a Query's ordered filter list (C7).
type filter struct {
	key     types.FilterKey
	cmp     types.ComparisonType
	match   types.MatchType
	strings []string
	numbers []int
	pkgs    *PackageSet
	reldeps types.ReldepList
}

// Query is a sack reference plus an ordered filter list and post-filter
// flags (SPEC_FULL §3 Query). Filters apply left-to-right against a
// working bitmap; Apply is idempotent and clears the filter list once
// run, matching the documented lifecycle.
type Query struct {
	sack *Sack

	filters []filter

	ignoreExcludes bool
	latest         bool
	latestPerArch  bool
	upgrades       bool
	upgradable     bool
	downgrades     bool
	downgradable   bool

	result  *PackageSet
	applied bool
}

// NewQuery creates a query over sack.
func NewQuery(sack *Sack) *Query {
	return &Query{sack: sack}
}

// IgnoreExcludes makes the query start from "all solvables" instead of
// the sack's considered set (SPEC_FULL §4.2).
func (q *Query) IgnoreExcludes(v bool) *Query {
	q.ignoreExcludes = v
	q.applied = false
	return q
}

func (q *Query) addFilter(f filter) *Query {
	q.filters = append(q.filters, f)
	q.applied = false
	return q
}

// The key-class maps below (stringKeys, evrOrderedKeys, identityKeys,
// reldepKeys, advisoryKeys) group keys per SPEC_FULL §4.4's table;
// FilterStrIn checks the comparator per class, and a key in no class is
// BAD_QUERY.
var stringKeys = map[types.FilterKey]bool{
	types.KeyName: true, types.KeyArch: true, types.KeyEVR: true,
	types.KeySummary: true, types.KeyDescription: true, types.KeyURL: true,
	types.KeyFile: true, types.KeyReponame: true, types.KeyNEVRA: true,
}
var evrOrderedKeys = map[types.FilterKey]bool{
	types.KeyVersion: true, types.KeyRelease: true,
}
var identityKeys = map[types.FilterKey]bool{
	types.KeyLocation: true, types.KeySourceRPM: true,
}
var reldepKeys = map[types.FilterKey]bool{
	types.KeyProvides: true, types.KeyRequires: true, types.KeyObsoletes: true,
	types.KeyConflicts: true, types.KeyEnhances: true, types.KeyRecommends: true,
	types.KeySuggests: true, types.KeySupplements: true,
}
var advisoryKeys = map[types.FilterKey]bool{
	types.KeyAdvisory: true, types.KeyAdvisoryBug: true, types.KeyAdvisoryCVE: true,
	types.KeyAdvisoryType: true, types.KeyAdvisorySeverity: true,
}

// FilterStr adds a string-typed filter. Returns BAD_QUERY if key is not
// string-compatible (SPEC_FULL §4.4).
func (q *Query) FilterStr(key types.FilterKey, cmp types.ComparisonType, value string) (*Query, error) {
	return q.FilterStrIn(key, cmp, []string{value})
}

func (q *Query) FilterStrIn(key types.FilterKey, cmp types.ComparisonType, values []string) (*Query, error) {
	if len(values) == 0 {
		return nil, newErr(types.ErrBadQuery, "filter_str_in requires at least one value")
	}
	switch {
	case stringKeys[key]:
		// all comparators allowed
	case evrOrderedKeys[key]:
		// EQ, GLOB, LT, GT allowed; SUBSTR not
		if cmp&types.CmpSubstr != 0 {
			return nil, newErr(types.ErrBadQuery, "SUBSTR not allowed on "+string(key))
		}
	case identityKeys[key]:
		if cmp&^(types.CmpEQ|types.CmpNot) != 0 {
			return nil, newErr(types.ErrBadQuery, "only EQ allowed on "+string(key))
		}
	case key == types.KeyEpoch:
		return nil, newErr(types.ErrBadQuery, "epoch is a numeric key, use FilterNum")
	case reldepKeys[key]:
		return q.filterReldepStr(key, cmp, values)
	case advisoryKeys[key]:
		if cmp&^(types.CmpEQ|types.CmpNot) != 0 {
			return nil, newErr(types.ErrBadQuery, "only EQ allowed on "+string(key))
		}
	default:
		return nil, newErr(types.ErrBadQuery, "unknown or unsupported key: "+string(key))
	}
	return q.addFilter(filter{key: key, cmp: cmp, match: types.MatchString, strings: values}), nil
}

// filterReldepStr parses each raw value as a reldep. Per §7, a value
// that fails to parse under EQ reduces the filter to empty rather than
// erroring; GLOB enumerates matching reldep ids from the pool.
func (q *Query) filterReldepStr(key types.FilterKey, cmp types.ComparisonType, values []string) (*Query, error) {
	if cmp&types.CmpGlob != 0 {
		return q.addFilter(filter{key: key, cmp: cmp, match: types.MatchString, strings: values}), nil
	}
	var deps types.ReldepList
	for _, v := range values {
		rd, ok := ParseReldep(v)
		if !ok {
			// unparseable: this filter contributes nothing, but is not
			// an error (§7); represented as a reldep filter with an
			// empty list, which matches nothing.
			continue
		}
		deps = append(deps, rd)
	}
	return q.addFilter(filter{key: key, cmp: cmp, match: types.MatchReldep, reldeps: deps}), nil
}

// FilterNum adds a numeric filter (currently only KeyEpoch).
func (q *Query) FilterNum(key types.FilterKey, cmp types.ComparisonType, n int) (*Query, error) {
	return q.FilterNumIn(key, cmp, []int{n})
}

func (q *Query) FilterNumIn(key types.FilterKey, cmp types.ComparisonType, ns []int) (*Query, error) {
	if key != types.KeyEpoch {
		return nil, newErr(types.ErrBadQuery, "only epoch is a numeric key")
	}
	if len(ns) == 0 {
		return nil, newErr(types.ErrBadQuery, "filter_num_in requires at least one value")
	}
	return q.addFilter(filter{key: key, cmp: cmp, match: types.MatchNumber, numbers: ns}), nil
}

// FilterPkg adds a package-set filter. cmp must be EQ or NEQ; key must
// be "pkg" or "obsoletes_pkg".
func (q *Query) FilterPkg(key types.FilterKey, cmp types.ComparisonType, pkgs *PackageSet) (*Query, error) {
	if key != types.KeyPkg && key != types.KeyObsoletesPkg {
		return nil, newErr(types.ErrBadQuery, "filter_pkg key must be pkg or obsoletes_pkg")
	}
	if base := cmp &^ types.CmpNot; base != types.CmpEQ {
		return nil, newErr(types.ErrBadQuery, "filter_pkg cmp must be EQ or NEQ")
	}
	return q.addFilter(filter{key: key, cmp: cmp, match: types.MatchPackageSet, pkgs: pkgs}), nil
}

// FilterReldep adds a single reldep-exact filter (cmp is implicitly EQ).
func (q *Query) FilterReldep(key types.FilterKey, r types.Reldep) (*Query, error) {
	return q.FilterReldepIn(key, types.ReldepList{r})
}

func (q *Query) FilterReldepIn(key types.FilterKey, rs types.ReldepList) (*Query, error) {
	if !reldepKeys[key] {
		return nil, newErr(types.ErrBadQuery, "key is not reldep-compatible: "+string(key))
	}
	return q.addFilter(filter{key: key, cmp: types.CmpEQ, match: types.MatchReldep, reldeps: rs}), nil
}

// FilterProvides is sugar building a single reldep and calling
// FilterReldep (SPEC_FULL §4.4).
func (q *Query) FilterProvides(cmp types.ComparisonType, name string, evr types.EVR) (*Query, error) {
	flags := cmpToReldepFlags(cmp)
	return q.FilterReldep(types.KeyProvides, types.Reldep{Name: name, Flags: flags, EVR: evr})
}

func cmpToReldepFlags(cmp types.ComparisonType) types.ReldepFlag {
	var f types.ReldepFlag
	if cmp&types.CmpLT != 0 {
		f |= types.FlagLT
	}
	if cmp&types.CmpGT != 0 {
		f |= types.FlagGT
	}
	if cmp&types.CmpEQ != 0 {
		f |= types.FlagEQ
	}
	return f
}

// FilterEmpty forces the query's result to the empty set.
func (q *Query) FilterEmpty() *Query {
	return q.addFilter(filter{key: "__empty__", cmp: types.CmpEQ, match: types.MatchVoid})
}

// Latest / LatestPerArch / Upgrades / Upgradable / Downgrades /
// Downgradable toggle the post-filters (SPEC_FULL §4.4).
func (q *Query) Latest(v bool) *Query        { q.latest = v; q.applied = false; return q }
func (q *Query) LatestPerArch(v bool) *Query { q.latestPerArch = v; q.applied = false; return q }
func (q *Query) Upgrades(v bool) *Query      { q.upgrades = v; q.applied = false; return q }
func (q *Query) Upgradable(v bool) *Query    { q.upgradable = v; q.applied = false; return q }
func (q *Query) Downgrades(v bool) *Query    { q.downgrades = v; q.applied = false; return q }
func (q *Query) Downgradable(v bool) *Query  { q.downgradable = v; q.applied = false; return q }

// Apply runs the filter list against the working bitmap and returns the
// resulting PackageSet. Idempotent: calling Apply again without adding
// filters returns the cached result. Calling Apply, adding more filters,
// then calling Apply again refines the prior result rather than
// restarting from the full considered set (SPEC_FULL §3/§4.4 lifecycle).
func (q *Query) Apply(ctx context.Context) *PackageSet {
	if q.applied {
		return q.result
	}
	var base *PackageSet
	switch {
	case q.result != nil:
		// A prior Apply already narrowed the working set; further
		// filters refine that result rather than starting over.
		base = q.result.Clone()
	case q.ignoreExcludes:
		base = NewPackageSet(q.sack.pool.count())
		for id := 1; id < q.sack.pool.count(); id++ {
			base.Add(types.SolvableID(id))
		}
	default:
		base = q.sack.consideredSet().Clone()
	}

	for _, f := range q.filters {
		m := q.matchFilter(f)
		if f.cmp&types.CmpNot != 0 {
			base.AndNot(m)
		} else {
			base.And(m)
		}
	}

	if q.downgradable || q.upgradable {
		base = q.filterUpgradableDowngradable(base, q.upgradable, q.downgradable)
	}
	if q.downgrades || q.upgrades {
		base = q.filterUpgradesDowngrades(base, q.upgrades, q.downgrades)
	}
	if q.latest || q.latestPerArch {
		base = q.filterLatest(base, q.latestPerArch)
	}

	q.result = base
	q.applied = true
	q.filters = nil
	return base
}

// Run is sugar for Apply followed by materializing Package handles.
func (q *Query) Run(ctx context.Context) []Package {
	set := q.Apply(ctx)
	ids := set.Slice()
	out := make([]Package, 0, len(ids))
	for _, id := range ids {
		out = append(out, q.sack.Package(id))
	}
	return out
}

// Clone returns a deep copy of q in its current (possibly unapplied)
// state.
func (q *Query) Clone() *Query {
	cp := *q
	cp.filters = append([]filter(nil), q.filters...)
	if q.result != nil {
		cp.result = q.result.Clone()
	}
	return &cp
}

// Union returns a new sack-scoped query-free PackageSet: both queries
// are applied first (idempotently), then their results are unioned.
func (q *Query) Union(ctx context.Context, o *Query) *PackageSet {
	return q.Apply(ctx).Clone().Or(o.Apply(ctx))
}

func (q *Query) Intersect(ctx context.Context, o *Query) *PackageSet {
	return q.Apply(ctx).Clone().And(o.Apply(ctx))
}

func (q *Query) Difference(ctx context.Context, o *Query) *PackageSet {
	return q.Apply(ctx).Clone().AndNot(o.Apply(ctx))
}
