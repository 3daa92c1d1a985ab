package core

import (
	"path/filepath"
	"sort"
	"strings"

	"rpmsack/internal/types"
)

// matchFilter computes a fresh bitmap containing exactly the ids that
// satisfy f's OR-within-filter semantics (SPEC_FULL §4.4 application
// algorithm, step "compute a fresh bitmap M").
func (q *Query) matchFilter(f filter) *PackageSet {
	out := NewPackageSet(q.sack.pool.count())
	switch f.match {
	case types.MatchVoid:
		return out // filter_empty: always empty
	case types.MatchString:
		q.matchString(f, out)
	case types.MatchNumber:
		q.matchNumber(f, out)
	case types.MatchPackageSet:
		q.matchPackageSet(f, out)
	case types.MatchReldep:
		q.matchReldep(f, out)
	}
	return out
}

func (q *Query) matchString(f filter, out *PackageSet) {
	if f.key == types.KeyReponame && f.cmp&^types.CmpNot == types.CmpEQ {
		out.Or(q.repoMatches(f.strings))
		return
	}
	switch f.key {
	case types.KeyName, types.KeyArch, types.KeyEVR, types.KeySummary,
		types.KeyDescription, types.KeyURL, types.KeyReponame, types.KeyNEVRA:
		q.forEachCandidate(func(id types.SolvableID, p Package) {
			var field string
			switch f.key {
			case types.KeyName:
				field = p.Name()
			case types.KeyArch:
				field = p.Arch()
			case types.KeyEVR:
				field = p.EVRString()
			case types.KeySummary:
				field = p.Summary()
			case types.KeyDescription:
				field = p.Description()
			case types.KeyURL:
				field = p.URL()
			case types.KeyReponame:
				field = p.Reponame()
			case types.KeyNEVRA:
				field = p.NEVRA().String()
			}
			if stringMatchesAny(field, f) {
				out.Add(id)
			}
		})
	case types.KeyFile:
		q.forEachCandidate(func(id types.SolvableID, p Package) {
			for _, file := range p.Files() {
				if stringMatchesAny(file, f) {
					out.Add(id)
					return
				}
			}
		})
	case types.KeyLocation:
		q.forEachCandidate(func(id types.SolvableID, p Package) {
			if stringExactMatchesAny(p.Location(), f) {
				out.Add(id)
			}
		})
	case types.KeySourceRPM:
		q.forEachCandidate(func(id types.SolvableID, p Package) {
			if stringExactMatchesAny(p.SourceRPM(), f) {
				out.Add(id)
			}
		})
	case types.KeyVersion:
		q.matchEVRPart(f, out, func(p Package) string { return p.Version() }, q.sack.pool.compareVersionOnly)
	case types.KeyRelease:
		q.matchEVRPart(f, out, func(p Package) string { return p.Release() }, q.sack.pool.compareReleaseOnly)
	case types.KeyProvides, types.KeyRequires, types.KeyObsoletes, types.KeyConflicts,
		types.KeyEnhances, types.KeyRecommends, types.KeySuggests, types.KeySupplements:
		q.matchReldepGlob(f, out)
	case types.KeyAdvisory, types.KeyAdvisoryBug, types.KeyAdvisoryCVE,
		types.KeyAdvisoryType, types.KeyAdvisorySeverity:
		q.matchAdvisory(f, out)
	}
}

// matchEVRPart handles the version/release filters: GLOB matches the
// raw segment text via fnmatch, LT/GT/EQ compare through a synthetic
// EVR. Per the documented Open Question (SPEC_FULL Part A §9 / DESIGN.md),
// a GLOB match sets the bit and the relational compare may additionally
// set it; the bit is idempotent so both paths simply OR into out.
func (q *Query) matchEVRPart(f filter, out *PackageSet, get func(Package) string, cmp func(a, b string) int) {
	q.forEachCandidate(func(id types.SolvableID, p Package) {
		val := get(p)
		if f.cmp&types.CmpGlob != 0 {
			for _, pat := range f.strings {
				if ok, _ := filepath.Match(pat, val); ok {
					out.Add(id)
				}
			}
		}
		if f.cmp&(types.CmpEQ|types.CmpLT|types.CmpGT) != 0 {
			for _, want := range f.strings {
				c := cmp(val, want)
				if matchesRelation(f.cmp, c) {
					out.Add(id)
				}
			}
		}
	})
}

func matchesRelation(cmp types.ComparisonType, c int) bool {
	if cmp&types.CmpEQ != 0 && c == 0 {
		return true
	}
	if cmp&types.CmpLT != 0 && c < 0 {
		return true
	}
	if cmp&types.CmpGT != 0 && c > 0 {
		return true
	}
	return false
}

func stringMatchesAny(field string, f filter) bool {
	for _, want := range f.strings {
		a, b := field, want
		if f.cmp&types.CmpICase != 0 {
			a, b = strings.ToLower(a), strings.ToLower(b)
		}
		switch {
		case f.cmp&types.CmpSubstr != 0:
			if strings.Contains(a, b) {
				return true
			}
		case f.cmp&types.CmpGlob != 0:
			if ok, _ := filepath.Match(b, a); ok {
				return true
			}
		default:
			if a == b {
				return true
			}
		}
	}
	return false
}

func stringExactMatchesAny(field string, f filter) bool {
	for _, want := range f.strings {
		if field == want {
			return true
		}
	}
	return false
}

func (q *Query) matchNumber(f filter, out *PackageSet) {
	if f.key != types.KeyEpoch {
		return
	}
	q.forEachCandidate(func(id types.SolvableID, p Package) {
		epoch := p.Epoch()
		for _, want := range f.numbers {
			c := epoch - want
			if matchesRelation(f.cmp, c) {
				out.Add(id)
				return
			}
		}
	})
}

func (q *Query) matchPackageSet(f filter, out *PackageSet) {
	if f.pkgs == nil {
		return
	}
	switch f.key {
	case types.KeyPkg:
		out.Or(f.pkgs)
	case types.KeyObsoletesPkg:
		// include p iff some provider of p's obsoletes is in the target
		// set and that provider's name equals the obsoletes reldep's name
		// (SPEC_FULL §4.4 "Obsoletes-pkg").
		q.forEachCandidate(func(id types.SolvableID, p Package) {
			for _, r := range p.Obsoletes() {
				for _, provID := range q.sack.pool.providers(r) {
					if f.pkgs.Has(provID) {
						provName := q.sack.Package(provID).Name()
						if provName == r.Name {
							out.Add(id)
							return
						}
					}
				}
			}
		})
	}
}

func (q *Query) matchReldep(f filter, out *PackageSet) {
	switch f.key {
	case types.KeyProvides:
		for _, r := range f.reldeps {
			for _, id := range q.sack.pool.providers(r) {
				out.Add(id)
			}
		}
	case types.KeyRequires, types.KeyConflicts, types.KeyEnhances,
		types.KeyRecommends, types.KeySuggests, types.KeySupplements, types.KeyObsoletes:
		q.forEachCandidate(func(id types.SolvableID, p Package) {
			var candList types.ReldepList
			switch f.key {
			case types.KeyRequires:
				candList = p.Requires()
			case types.KeyConflicts:
				candList = p.Conflicts()
			case types.KeyEnhances:
				candList = p.Enhances()
			case types.KeyRecommends:
				candList = p.Recommends()
			case types.KeySuggests:
				candList = p.Suggests()
			case types.KeySupplements:
				candList = p.Supplements()
			case types.KeyObsoletes:
				candList = p.Obsoletes()
			}
			for _, want := range f.reldeps {
				for _, cand := range candList {
					if cand.Name == want.Name && q.sack.pool.depMatch(want, cand) {
						out.Add(id)
						return
					}
				}
			}
		})
	}
}

// matchReldepGlob handles GLOB mode on a reldep-typed key: enumerate
// every interned reldep whose name matches the glob, then union their
// providers/holders the same way FilterReldepIn would.
func (q *Query) matchReldepGlob(f filter, out *PackageSet) {
	if f.cmp&types.CmpGlob == 0 {
		return
	}
	for _, pat := range f.strings {
		for _, r := range q.sack.pool.reldeps {
			if ok, _ := filepath.Match(pat, r.Name); ok {
				matched := q.matchFilter(filter{key: f.key, cmp: types.CmpEQ, match: types.MatchReldep, reldeps: types.ReldepList{r}})
				out.Or(matched)
			}
		}
	}
}

// matchAdvisory implements SPEC_FULL §4.8: enumerate advisories, test
// the field, collect matching advisory packages, then walk the
// candidates comparing full NEVRA equality (Apply intersects the result
// with the query's working set). Matched advisory-package
// entries are removed from further consideration, keeping subsequent
// scans within the same filter sub-linear (grounded on
// original_source/libdnf/hy-query.c's filter_advisory dedup comment).
func (q *Query) matchAdvisory(f filter, out *PackageSet) {
	var collected []types.AdvisoryPackage
	for _, ad := range q.sack.advisories {
		if !advisoryFieldMatches(f, ad.data) {
			continue
		}
		collected = append(collected, ad.data.Packages...)
	}
	q.forEachCandidate(func(id types.SolvableID, p Package) {
		nevra := p.NEVRA()
		for i, ap := range collected {
			if ap.NEVRA.Equal(nevra) {
				out.Add(id)
				collected = append(collected[:i], collected[i+1:]...)
				return
			}
		}
	})
}

func advisoryFieldMatches(f filter, ad types.AdvisoryData) bool {
	test := func(field string) bool {
		for _, want := range f.strings {
			if field == want {
				return true
			}
		}
		return false
	}
	switch f.key {
	case types.KeyAdvisory:
		return test(ad.ID)
	case types.KeyAdvisoryType:
		return test(string(ad.Kind))
	case types.KeyAdvisorySeverity:
		return test(string(ad.Severity))
	case types.KeyAdvisoryBug:
		for _, b := range ad.Bugs {
			if test(b) {
				return true
			}
		}
	case types.KeyAdvisoryCVE:
		for _, c := range ad.CVEs {
			if test(c) {
				return true
			}
		}
	}
	return false
}

func (q *Query) forEachCandidate(fn func(types.SolvableID, Package)) {
	for id := 1; id < q.sack.pool.count(); id++ {
		fn(types.SolvableID(id), q.sack.Package(types.SolvableID(id)))
	}
}

// filterUpgradableDowngradable restricts to installed packages for
// which an older/newer available package exists (SPEC_FULL §4.4 step 1).
func (q *Query) filterUpgradableDowngradable(in *PackageSet, upgradable, downgradable bool) *PackageSet {
	out := NewPackageSet(q.sack.pool.count())
	byName := q.availableByName()
	in.ForEach(func(id types.SolvableID) {
		p := q.sack.Package(id)
		if !p.Installed() {
			return
		}
		for _, avail := range byName[p.Name()] {
			c := q.sack.pool.compareEVR(avail.EVR(), p.EVR())
			if upgradable && c > 0 {
				out.Add(id)
				return
			}
			if downgradable && c < 0 {
				out.Add(id)
				return
			}
		}
	})
	return out
}

// filterUpgradesDowngrades restricts to available packages that
// upgrade/downgrade some installed package (SPEC_FULL §4.4 step 2, S6).
func (q *Query) filterUpgradesDowngrades(in *PackageSet, upgrades, downgrades bool) *PackageSet {
	out := NewPackageSet(q.sack.pool.count())
	installedByName := q.installedByName()
	in.ForEach(func(id types.SolvableID) {
		p := q.sack.Package(id)
		if p.Installed() {
			return
		}
		for _, inst := range installedByName[p.Name()] {
			c := q.sack.pool.compareEVR(p.EVR(), inst.EVR())
			if upgrades && c > 0 {
				out.Add(id)
				return
			}
			if downgrades && c < 0 {
				out.Add(id)
				return
			}
		}
	})
	return out
}

func (q *Query) availableByName() map[string][]Package {
	out := make(map[string][]Package)
	for id := 1; id < q.sack.pool.count(); id++ {
		p := q.sack.Package(types.SolvableID(id))
		if p.Installed() {
			continue
		}
		out[p.Name()] = append(out[p.Name()], p)
	}
	return out
}

func (q *Query) installedByName() map[string][]Package {
	out := make(map[string][]Package)
	for id := 1; id < q.sack.pool.count(); id++ {
		p := q.sack.Package(types.SolvableID(id))
		if !p.Installed() {
			continue
		}
		out[p.Name()] = append(out[p.Name()], p)
	}
	return out
}

// filterLatest implements SPEC_FULL §4.4 step 3 and resolves the
// documented Open Question about filter_latest_sortcmp (DESIGN.md):
// group by name (or name+arch), sort each group by EVR descending with
// id ascending as the tiebreak, keep only the head of each group.
func (q *Query) filterLatest(in *PackageSet, perArch bool) *PackageSet {
	type bucketKey struct {
		name string
		arch string
	}
	buckets := make(map[bucketKey][]types.SolvableID)
	in.ForEach(func(id types.SolvableID) {
		p := q.sack.Package(id)
		k := bucketKey{name: p.Name()}
		if perArch {
			k.arch = p.Arch()
		}
		buckets[k] = append(buckets[k], id)
	})
	out := NewPackageSet(q.sack.pool.count())
	for _, ids := range buckets {
		sort.Slice(ids, func(i, j int) bool {
			pi, pj := q.sack.Package(ids[i]), q.sack.Package(ids[j])
			if c := q.sack.pool.compareEVR(pi.EVR(), pj.EVR()); c != 0 {
				return c > 0
			}
			return ids[i] < ids[j]
		})
		out.Add(ids[0])
	}
	return out
}

// repoMatches precomputes the set of solvables belonging to any of the
// named repos, avoiding an O(considered × repos) scan per SPEC_FULL
// Part D's "Reponame fast-path bitmap precompute" (grounded on
// original_source/libdnf/hy-query.c's filter_reponame).
func (q *Query) repoMatches(names []string) *PackageSet {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	out := NewPackageSet(q.sack.pool.count())
	for id := 1; id < q.sack.pool.count(); id++ {
		p := q.sack.Package(types.SolvableID(id))
		if want[p.Reponame()] {
			out.Add(types.SolvableID(id))
		}
	}
	return out
}
