package core

import (
	"strings"

	"rpmsack/internal/types"
)

// Package is a handle (sack, solvable id); two Packages are equal iff
// their ids are equal (SPEC_FULL §3).
type Package struct {
	sack *Sack
	id   types.SolvableID
}

// ID returns the underlying solvable id.
func (p Package) ID() types.SolvableID { return p.id }

func (p Package) sv() *solvable {
	if p.sack == nil {
		return nil
	}
	return p.sack.pool.get(p.id)
}

func (p Package) Name() string {
	sv := p.sv()
	if sv == nil {
		return ""
	}
	return p.sack.pool.name(sv.name)
}

func (p Package) Arch() string {
	sv := p.sv()
	if sv == nil {
		return ""
	}
	return p.sack.pool.arch(sv.arch)
}

func (p Package) EVR() types.EVR {
	sv := p.sv()
	if sv == nil {
		return types.EVR{}
	}
	return sv.evr.EVR
}

func (p Package) Epoch() int      { return p.EVR().Epoch }
func (p Package) Version() string { return p.EVR().Version }
func (p Package) Release() string { return p.EVR().Release }

func (p Package) EVRString() string {
	sv := p.sv()
	if sv == nil {
		return ""
	}
	return sv.evr.rendered
}

func (p Package) NEVRA() types.NEVRA {
	return types.NEVRA{Name: p.Name(), EVR: p.EVR(), Arch: p.Arch()}
}

func (p Package) Reponame() string {
	sv := p.sv()
	if sv == nil {
		return ""
	}
	return sv.reponame
}

// Origin is the repo an installed package was originally pulled from,
// if the loader recorded one; empty otherwise.
func (p Package) Origin() string {
	sv := p.sv()
	if sv == nil {
		return ""
	}
	return sv.origin
}

// PackageID renders the host-tool interop form from SPEC_FULL §6:
// "name;evr;arch;reponame", with reponame rewritten to "installed"
// (or "installed:<origin>" when an origin is recorded), "local" for
// the command-line pseudo-repo, or left as the repo name otherwise.
func (p Package) PackageID() string {
	reponame := p.Reponame()
	switch {
	case reponame == reservedCommandLineRepo:
		reponame = "local"
	case p.Installed():
		if origin := p.Origin(); origin != "" {
			reponame = "installed:" + origin
		} else {
			reponame = "installed"
		}
	}
	return strings.Join([]string{p.Name(), p.EVRString(), p.Arch(), reponame}, ";")
}

func (p Package) Location() string    { return p.strField(func(s *solvable) string { return s.location }) }
func (p Package) SourceRPM() string   { return p.strField(func(s *solvable) string { return s.sourceRPM }) }
func (p Package) Summary() string     { return p.strField(func(s *solvable) string { return s.summary }) }
func (p Package) Description() string { return p.strField(func(s *solvable) string { return s.description }) }
func (p Package) URL() string         { return p.strField(func(s *solvable) string { return s.url }) }
func (p Package) Vendor() string      { return p.strField(func(s *solvable) string { return s.vendor }) }
func (p Package) License() string     { return p.strField(func(s *solvable) string { return s.license }) }
func (p Package) Group() string       { return p.strField(func(s *solvable) string { return s.group }) }

func (p Package) strField(get func(*solvable) string) string {
	sv := p.sv()
	if sv == nil {
		return ""
	}
	return get(sv)
}

func (p Package) Files() []string {
	sv := p.sv()
	if sv == nil {
		return nil
	}
	return sv.files
}

func (p Package) reldeps(get func(*solvable) []types.RelDepID) types.ReldepList {
	sv := p.sv()
	if sv == nil {
		return nil
	}
	ids := get(sv)
	out := make(types.ReldepList, 0, len(ids))
	for _, id := range ids {
		out = append(out, p.sack.pool.reldep(id))
	}
	return out
}

func (p Package) Provides() types.ReldepList    { return p.reldeps(func(s *solvable) []types.RelDepID { return s.provides }) }
func (p Package) Requires() types.ReldepList    { return p.reldeps(func(s *solvable) []types.RelDepID { return s.requires }) }
func (p Package) Obsoletes() types.ReldepList   { return p.reldeps(func(s *solvable) []types.RelDepID { return s.obsoletes }) }
func (p Package) Conflicts() types.ReldepList   { return p.reldeps(func(s *solvable) []types.RelDepID { return s.conflicts }) }
func (p Package) Enhances() types.ReldepList    { return p.reldeps(func(s *solvable) []types.RelDepID { return s.enhances }) }
func (p Package) Recommends() types.ReldepList  { return p.reldeps(func(s *solvable) []types.RelDepID { return s.recommends }) }
func (p Package) Suggests() types.ReldepList    { return p.reldeps(func(s *solvable) []types.RelDepID { return s.suggests }) }
func (p Package) Supplements() types.ReldepList { return p.reldeps(func(s *solvable) []types.RelDepID { return s.supplements }) }

// Installed reports whether this package belongs to the sack's
// installed repo.
func (p Package) Installed() bool {
	sv := p.sv()
	return sv != nil && sv.repo != nil && sv.repo.Installed
}
