package core

import (
	"context"

	"rpmsack/internal/types"
)

// jobFlag mirrors the solver job-atom flags referenced by SPEC_FULL
// §4.6 (SOLVABLE_NAME, SOLVABLE_PROVIDES, SETARCH, SETEVR, ...). Neither
// these flags nor JobAtom are consumed anywhere: compile resolves a
// selector straight to a PackageSet, and the gophersat-backed solver
// adapter receives a ports.SATProblem built by Goal (Design Note "solver
// is an external library... trait/interface").
type jobFlag int

const (
	jobName jobFlag = iota
	jobProvides
	jobFile
)

// JobAtom is one compiled solver job: "select packages matching Match,
// intersected with Arch/EVR/Reponame constraints if set".
type JobAtom struct {
	kind jobFlag

	names    []string // exact or glob-expanded name candidates
	provides []types.Reldep
	files    []string

	arch     string
	evr      *types.EVR
	evrIsEVR bool // true: constrain full evr; false: constrain version only
	reponames []string
}

// Selector is a restricted Query subset: at most one filter per field
// from {name, provides, file, arch, evr, reponame} (SPEC_FULL §4.6).
type Selector struct {
	sack *Sack

	name      *filter
	provides  *filter
	file      *filter
	arch      *filter
	evr       *filter
	reponame  *filter
}

// NewSelector creates an empty selector over sack.
func NewSelector(sack *Sack) *Selector {
	return &Selector{sack: sack}
}

func (s *Selector) setOnce(slot **filter, f filter) error {
	if *slot != nil {
		return newErr(types.ErrBadSelector, "field already set on this selector")
	}
	*slot = &f
	return nil
}

// Name sets the name field (EQ or GLOB only).
func (s *Selector) Name(cmp types.ComparisonType, value string) error {
	if cmp&^(types.CmpEQ|types.CmpGlob) != 0 {
		return newErr(types.ErrBadSelector, "name selector accepts only EQ or GLOB")
	}
	return s.setOnce(&s.name, filter{key: types.KeyName, cmp: cmp, match: types.MatchString, strings: []string{value}})
}

// Provides sets the provides field (EQ exact reldep, or GLOB name).
func (s *Selector) Provides(cmp types.ComparisonType, value string) error {
	if cmp&^(types.CmpEQ|types.CmpGlob) != 0 {
		return newErr(types.ErrBadSelector, "provides selector accepts only EQ or GLOB")
	}
	if cmp&types.CmpGlob != 0 {
		return s.setOnce(&s.provides, filter{key: types.KeyProvides, cmp: cmp, match: types.MatchString, strings: []string{value}})
	}
	rd, ok := ParseReldep(value)
	if !ok {
		return newErr(types.ErrBadSelector, "could not parse provides value: "+value)
	}
	return s.setOnce(&s.provides, filter{key: types.KeyProvides, cmp: types.CmpEQ, match: types.MatchReldep, reldeps: types.ReldepList{rd}})
}

// File sets the file field (EQ or GLOB only).
func (s *Selector) File(cmp types.ComparisonType, value string) error {
	if cmp&^(types.CmpEQ|types.CmpGlob) != 0 {
		return newErr(types.ErrBadSelector, "file selector accepts only EQ or GLOB")
	}
	return s.setOnce(&s.file, filter{key: types.KeyFile, cmp: cmp, match: types.MatchString, strings: []string{value}})
}

// Arch sets the arch field (EQ only); an arch unknown to the sack's
// pool is accepted here, and compile then fails with
// INVALID_ARCHITECTURE, mirroring SPEC_FULL §4.6 step 3.
func (s *Selector) Arch(value string) error {
	return s.setOnce(&s.arch, filter{key: types.KeyArch, cmp: types.CmpEQ, match: types.MatchString, strings: []string{value}})
}

// EVR sets the evr field (EQ only).
func (s *Selector) EVR(value string) error {
	return s.setOnce(&s.evr, filter{key: types.KeyEVR, cmp: types.CmpEQ, match: types.MatchString, strings: []string{value}})
}

// Reponame sets the reponame field (EQ only).
func (s *Selector) Reponame(value string) error {
	return s.setOnce(&s.reponame, filter{key: types.KeyReponame, cmp: types.CmpEQ, match: types.MatchString, strings: []string{value}})
}

// compile resolves the selector to a concrete PackageSet of matching
// solvables, implementing SPEC_FULL §4.6's validation and atom rules.
func (s *Selector) compile() (*PackageSet, error) {
	if s.name == nil && s.provides == nil && s.file == nil {
		return nil, newErr(types.ErrBadSelector, "selector requires at least one of name, provides, file")
	}

	q := NewQuery(s.sack).IgnoreExcludes(true)
	for _, f := range []*filter{s.name, s.provides, s.file} {
		if f == nil {
			continue
		}
		q.addFilter(*f)
	}
	if s.arch != nil {
		if !s.sack.archKnown(s.arch.strings[0]) {
			return nil, newErr(types.ErrInvalidArchitecture, s.arch.strings[0])
		}
		q.addFilter(*s.arch)
	}
	if s.evr != nil {
		q.addFilter(*s.evr)
	}
	if s.reponame != nil {
		q.addFilter(*s.reponame)
	}
	return q.Apply(context.Background()), nil
}

func (sk *Sack) archKnown(a string) bool {
	_, ok := sk.pool.archIdx[a]
	return ok
}
