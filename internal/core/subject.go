package core

import (
	"strconv"
	"strings"

	"rpmsack/internal/types"
)

// NEVRAForm identifies which decomposition a Subject candidate came
// from (SPEC_FULL §4.5).
type NEVRAForm int

const (
	FormNEVRA NEVRAForm = iota
	FormNEVR
	FormNEV
	FormNA
	FormNAME
)

// NEVRACandidate is one possible decomposition of a user-typed string.
type NEVRACandidate struct {
	Form  NEVRAForm
	NEVRA types.NEVRA
}

// NEVRAPossibilities lazily enumerates candidate decompositions of s in
// the order NEVRA, NEVR, NEV, NA, NAME (SPEC_FULL §4.5). Each call to
// Next advances the iterator; it never restarts (Design Note "iterator /
// lazy sequence"). Splitting walks "-" and "." from the right, per the
// source algorithm, rather than a single backtracking regex.
type NEVRAPossibilities struct {
	subject string
	forms   []NEVRAForm
	idx     int
}

// NewNEVRAPossibilities starts an enumerator over s. If form is
// non-nil, only that form is yielded; otherwise all five are tried in
// order.
func NewNEVRAPossibilities(s string, form *NEVRAForm) *NEVRAPossibilities {
	forms := []NEVRAForm{FormNEVRA, FormNEVR, FormNEV, FormNA, FormNAME}
	if form != nil {
		forms = []NEVRAForm{*form}
	}
	return &NEVRAPossibilities{subject: s, forms: forms}
}

// Next returns the next candidate, or ok=false once exhausted.
func (it *NEVRAPossibilities) Next() (NEVRACandidate, bool) {
	for it.idx < len(it.forms) {
		form := it.forms[it.idx]
		it.idx++
		if cand, ok := decompose(it.subject, form); ok {
			return cand, true
		}
	}
	return NEVRACandidate{}, false
}

func rsplit(s string, sep byte) (left, right string, ok bool) {
	idx := strings.LastIndexByte(s, sep)
	if idx < 0 {
		return "", "", false
	}
	return s[:idx], s[idx+1:], true
}

func decompose(s string, form NEVRAForm) (NEVRACandidate, bool) {
	switch form {
	case FormNEVRA:
		rest, arch, ok := rsplit(s, '.')
		if !ok || arch == "" {
			return NEVRACandidate{}, false
		}
		rest2, release, ok := rsplit(rest, '-')
		if !ok || release == "" {
			return NEVRACandidate{}, false
		}
		name, verPart, ok := rsplit(rest2, '-')
		if !ok || name == "" || verPart == "" {
			return NEVRACandidate{}, false
		}
		return NEVRACandidate{Form: form, NEVRA: types.NEVRA{
			Name: name, Arch: arch, EVR: splitEpoch(verPart, release),
		}}, true
	case FormNEVR:
		rest, release, ok := rsplit(s, '-')
		if !ok || release == "" {
			return NEVRACandidate{}, false
		}
		name, verPart, ok := rsplit(rest, '-')
		if !ok || name == "" || verPart == "" {
			return NEVRACandidate{}, false
		}
		return NEVRACandidate{Form: form, NEVRA: types.NEVRA{
			Name: name, EVR: splitEpoch(verPart, release),
		}}, true
	case FormNEV:
		name, verPart, ok := rsplit(s, '-')
		if !ok || name == "" || verPart == "" {
			return NEVRACandidate{}, false
		}
		return NEVRACandidate{Form: form, NEVRA: types.NEVRA{
			Name: name, EVR: splitEpoch(verPart, ""),
		}}, true
	case FormNA:
		name, arch, ok := rsplit(s, '.')
		if !ok || name == "" || arch == "" {
			return NEVRACandidate{}, false
		}
		return NEVRACandidate{Form: form, NEVRA: types.NEVRA{Name: name, Arch: arch}}, true
	case FormNAME:
		if s == "" {
			return NEVRACandidate{}, false
		}
		return NEVRACandidate{Form: form, NEVRA: types.NEVRA{Name: s}}, true
	}
	return NEVRACandidate{}, false
}

// splitEpoch splits an "epoch:version" segment. An absent epoch is
// represented with EpochSet=false, not epoch 0 (SPEC_FULL S2).
func splitEpoch(verPart, release string) types.EVR {
	e := types.EVR{Release: release}
	if idx := strings.IndexByte(verPart, ':'); idx >= 0 {
		if n, err := strconv.Atoi(verPart[:idx]); err == nil {
			e.Epoch = n
			e.EpochSet = true
		}
		e.Version = verPart[idx+1:]
	} else {
		e.Version = verPart
	}
	return e
}

// ReldepPossibility is one candidate interpretation of a user string as
// a reldep.
type ReldepPossibility struct {
	Reldep types.Reldep
}

// ReldepPossibilities splits s into "name" or "name op evr" candidates
// (SPEC_FULL §4.5); hy_nevra_possibility's reldep dual entry point.
// Each candidate is validated by the caller against the sack's provides
// index (a candidate must resolve to a non-empty provides set to be
// useful, but this function only performs syntactic parsing).
func ReldepPossibilities(s string) []ReldepPossibility {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	rd, ok := ParseReldep(s)
	if !ok {
		return nil
	}
	return []ReldepPossibility{{Reldep: rd}}
}
