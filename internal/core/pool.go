package core

import (
	"rpmsack/internal/types"
)

// solvable is the pool's internal record for one package (C1/C3). All
// cross references (provides, requires, ...) are stored as RelDepIDs,
// the interned-id-graph shape Design Note "Interned-id graph instead of
// pointer graph" calls for.
type solvable struct {
	name    types.NameID
	arch    types.ArchID
	evr     evrValue
	reponame string
	origin  string
	repo    *Repo

	summary     string
	description string
	url         string
	location    string
	sourceRPM   string
	vendor      string
	license     string
	group       string
	checksum    string
	checksumType string
	hdrChecksum string
	hdrChecksumType string
	installSize int64
	downloadSize int64
	buildTime   int64
	installTime int64
	files       []string

	provides    []types.RelDepID
	requires    []types.RelDepID
	obsoletes   []types.RelDepID
	conflicts   []types.RelDepID
	enhances    []types.RelDepID
	recommends  []types.RelDepID
	suggests    []types.RelDepID
	supplements []types.RelDepID
}

// pool is the append-only interner owned by a Sack (C1). It is never
// shared across goroutines (SPEC_FULL §5), so no synchronization
// primitive is needed for the maps below.
type pool struct {
	names    []string
	nameIdx  map[string]types.NameID
	arches   []string
	archIdx  map[string]types.ArchID
	reldeps  []types.Reldep
	reldepIdx map[types.Reldep]types.RelDepID

	solvables []solvable // index 0 unused (InvalidID)

	// providesIdx maps a RelDepID to the solvable ids that satisfy it.
	// Built lazily by makeProvidesReady; dirty whenever a solvable's
	// provides/name changes.
	providesIdx      map[types.RelDepID][]types.SolvableID
	providesReady    bool
	providesDirty    bool

	// evrCache memoizes parsed go-rpm-version.Version values for this
	// pool alone, so concurrently solving sacks never share it.
	evrCache *evrCache
}

func newPool() *pool {
	return &pool{
		nameIdx:   make(map[string]types.NameID),
		archIdx:   make(map[string]types.ArchID),
		reldepIdx: make(map[types.Reldep]types.RelDepID),
		solvables: make([]solvable, 1), // reserve id 0
		evrCache:  newEVRCache(),
	}
}

func (p *pool) internName(s string) types.NameID {
	if id, ok := p.nameIdx[s]; ok {
		return id
	}
	p.names = append(p.names, s)
	id := types.NameID(len(p.names))
	p.nameIdx[s] = id
	return id
}

func (p *pool) name(id types.NameID) string {
	if id <= 0 || int(id) > len(p.names) {
		return ""
	}
	return p.names[id-1]
}

func (p *pool) internArch(s string) types.ArchID {
	if s == "" {
		return 0
	}
	if id, ok := p.archIdx[s]; ok {
		return id
	}
	p.arches = append(p.arches, s)
	id := types.ArchID(len(p.arches))
	p.archIdx[s] = id
	return id
}

func (p *pool) arch(id types.ArchID) string {
	if id <= 0 || int(id) > len(p.arches) {
		return ""
	}
	return p.arches[id-1]
}

func (p *pool) internReldep(r types.Reldep) types.RelDepID {
	if id, ok := p.reldepIdx[r]; ok {
		return id
	}
	p.reldeps = append(p.reldeps, r)
	id := types.RelDepID(len(p.reldeps))
	p.reldepIdx[r] = id
	p.providesDirty = true
	return id
}

func (p *pool) reldep(id types.RelDepID) types.Reldep {
	if id <= 0 || int(id) > len(p.reldeps) {
		return types.Reldep{}
	}
	return p.reldeps[id-1]
}

func (p *pool) addSolvable(s solvable) types.SolvableID {
	p.solvables = append(p.solvables, s)
	p.providesDirty = true
	return types.SolvableID(len(p.solvables) - 1)
}

func (p *pool) get(id types.SolvableID) *solvable {
	if id <= 0 || int(id) >= len(p.solvables) {
		return nil
	}
	return &p.solvables[id]
}

func (p *pool) count() int {
	return len(p.solvables)
}

// makeProvidesReady rebuilds the provides index if dirty. Idempotent,
// per Design Note "lazy, idempotent recomputation".
func (p *pool) makeProvidesReady() {
	if p.providesReady && !p.providesDirty {
		return
	}
	idx := make(map[types.RelDepID][]types.SolvableID)
	for sid := 1; sid < len(p.solvables); sid++ {
		s := &p.solvables[sid]
		for _, rid := range s.provides {
			idx[rid] = append(idx[rid], types.SolvableID(sid))
		}
		// A package always provides its own name = evr, even with no
		// explicit Provides entry (RPM convention).
		self := p.internReldep(types.Reldep{
			Name:  p.name(s.name),
			Flags: types.FlagEQ,
			EVR:   s.evr.EVR,
		})
		idx[self] = append(idx[self], types.SolvableID(sid))
	}
	p.providesIdx = idx
	p.providesReady = true
	p.providesDirty = false
}

// providers returns every solvable id that satisfies reldep r, matching
// flags against the provider's own declared version per dep-match rules
// (SPEC_FULL §4.4 "respects flags: = 1.0 matches >= 1.0").
func (p *pool) providers(r types.Reldep) []types.SolvableID {
	p.makeProvidesReady()
	var out []types.SolvableID
	for rid, sids := range p.providesIdx {
		cand := p.reldep(rid)
		if cand.Name != r.Name {
			continue
		}
		if p.depMatch(r, cand) {
			out = append(out, sids...)
		}
	}
	return out
}

// depMatch tests whether a requirement req is satisfied by a provided
// capability prov. Only req's relational flags are honoured: a
// versioned prov is compared as its single EVR, and an unversioned prov
// satisfies only an unversioned req.
func (p *pool) depMatch(req, prov types.Reldep) bool {
	if req.Flags&(types.FlagLT|types.FlagEQ|types.FlagGT) == 0 {
		return true // unversioned requirement: name match is enough
	}
	if prov.Flags&(types.FlagLT|types.FlagEQ|types.FlagGT) == 0 {
		return false // provider has no version but requirement wants one
	}
	cmp := p.compareEVR(prov.EVR, req.EVR)
	switch {
	case cmp < 0:
		return req.Flags&types.FlagLT != 0
	case cmp > 0:
		return req.Flags&types.FlagGT != 0
	default:
		return req.Flags&types.FlagEQ != 0
	}
}
