package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"rpmsack/internal/ports"
	"rpmsack/internal/types"
)

// jobKind is one staged action in a Goal's job queue (SPEC_FULL §4.7
// step 2). Each corresponds to one bit of the goal's action mask.
type jobKind int

const (
	jobInstall jobKind = iota
	jobErase
	jobUpgrade
	jobUpgradeAll
	jobDowngrade
	jobDistupgrade
	jobDistupgradeAll
	jobReinstall
	jobVerify
)

type goalJob struct {
	kind jobKind
	ids  *PackageSet // nil for the *All / verify jobs
}

// Goal accumulates staged actions, compiles them into a SAT problem,
// invokes the solver, and enforces protected/installonly policy on the
// result (C9, SPEC_FULL §3/§4.7). It owns at most one solved
// Transaction; re-running the goal discards any prior one.
type Goal struct {
	sack   *Sack
	solver ports.SolverPort

	jobs    []goalJob
	actions types.ActionKind

	ignoreWeakDeps bool

	solved             bool
	transaction        *Transaction
	problems           []string
	protectedRemovalList []types.SolvableID
}

// NewGoal creates a goal over sack, solving with the given SolverPort
// (Design Note: the solver is an external collaborator, never
// reimplemented in core).
func NewGoal(sack *Sack, solver ports.SolverPort) *Goal {
	return &Goal{sack: sack, solver: solver}
}

// IgnoreWeakDeps mirrors the IGNORE_WEAK_DEPS flag (§4.7 step 3):
// recommends/supplements are not pulled in when set.
func (g *Goal) IgnoreWeakDeps(v bool) *Goal {
	g.ignoreWeakDeps = v
	return g
}

func (g *Goal) addJob(kind jobKind, ids *PackageSet, action types.ActionKind) {
	g.jobs = append(g.jobs, goalJob{kind: kind, ids: ids})
	g.actions |= action
}

// Install stages an install job for every package the selector matches.
func (g *Goal) Install(sel *Selector) error {
	ids, err := sel.compile()
	if err != nil {
		return err
	}
	if ids.Len() == 0 {
		return newErr(types.ErrPackageNotFound, "install selector matched no packages")
	}
	g.addJob(jobInstall, ids, types.ActionInstall)
	return nil
}

// InstallPkg stages an install job for a single already-resolved package.
func (g *Goal) InstallPkg(pkg Package) {
	ids := NewPackageSet(g.sack.pool.count())
	ids.Add(pkg.ID())
	g.addJob(jobInstall, ids, types.ActionInstall)
}

// Erase stages an erase job for every package the selector matches.
func (g *Goal) Erase(sel *Selector) error {
	ids, err := sel.compile()
	if err != nil {
		return err
	}
	g.addJob(jobErase, ids, types.ActionErase)
	return nil
}

// ErasePkg stages an erase job for a single already-resolved package.
func (g *Goal) ErasePkg(pkg Package) {
	ids := NewPackageSet(g.sack.pool.count())
	ids.Add(pkg.ID())
	g.addJob(jobErase, ids, types.ActionErase)
}

// Upgrade stages an upgrade job restricted to the selector's matches.
func (g *Goal) Upgrade(sel *Selector) error {
	ids, err := sel.compile()
	if err != nil {
		return err
	}
	g.addJob(jobUpgrade, ids, types.ActionUpgrade)
	return nil
}

// UpgradeAll stages an upgrade-all job: every installed package may move
// to its newest available version.
func (g *Goal) UpgradeAll() {
	g.addJob(jobUpgradeAll, nil, types.ActionUpgradeAll)
}

// Downgrade stages a downgrade job restricted to the selector's matches.
func (g *Goal) Downgrade(sel *Selector) error {
	ids, err := sel.compile()
	if err != nil {
		return err
	}
	g.addJob(jobDowngrade, ids, types.ActionDowngrade)
	return nil
}

// DistSync stages a distro-sync job restricted to the selector's
// matches. Run treats it like Upgrade: it demands a version newer than
// the installed one and never downgrades; with no newer candidate, Run
// fails with NO_SOLUTION.
func (g *Goal) DistSync(sel *Selector) error {
	ids, err := sel.compile()
	if err != nil {
		return err
	}
	g.addJob(jobDistupgrade, ids, types.ActionDistupgrade)
	return nil
}

// DistSyncAll stages a distro-sync-all job over every installed package.
func (g *Goal) DistSyncAll() {
	g.addJob(jobDistupgradeAll, nil, types.ActionDistupgradeAll)
}

// Reinstall stages a reinstall job: keep the same NEVRA, rebuild the
// transaction entry with reason USER.
func (g *Goal) Reinstall(sel *Selector) error {
	ids, err := sel.compile()
	if err != nil {
		return err
	}
	g.addJob(jobReinstall, ids, types.ActionReinstall)
	return nil
}

// Verify stages a verify job: solve for consistency without requesting
// any change.
func (g *Goal) Verify() {
	g.addJob(jobVerify, nil, types.ActionVerify)
}

// HasAction reports whether any staged job ORed bit a into the action
// mask (hy_goal_has_actions, SPEC_FULL Part D).
func (g *Goal) HasAction(a types.ActionKind) bool {
	return g.actions&a != 0
}

// Describe renders the staged job queue as a human-readable summary
// (SPEC_FULL Part D; describes the *request*, not a solve failure -
// §4.9's problem formatter covers failures).
func (g *Goal) Describe() string {
	var b strings.Builder
	for _, j := range g.jobs {
		switch j.kind {
		case jobInstall:
			fmt.Fprintf(&b, "install: %s\n", describeIDs(g.sack, j.ids))
		case jobErase:
			fmt.Fprintf(&b, "erase: %s\n", describeIDs(g.sack, j.ids))
		case jobUpgrade:
			fmt.Fprintf(&b, "upgrade: %s\n", describeIDs(g.sack, j.ids))
		case jobUpgradeAll:
			b.WriteString("upgrade-all\n")
		case jobDowngrade:
			fmt.Fprintf(&b, "downgrade: %s\n", describeIDs(g.sack, j.ids))
		case jobDistupgrade:
			fmt.Fprintf(&b, "distro-sync: %s\n", describeIDs(g.sack, j.ids))
		case jobDistupgradeAll:
			b.WriteString("distro-sync-all\n")
		case jobReinstall:
			fmt.Fprintf(&b, "reinstall: %s\n", describeIDs(g.sack, j.ids))
		case jobVerify:
			b.WriteString("verify\n")
		}
	}
	return b.String()
}

func describeIDs(sack *Sack, ids *PackageSet) string {
	if ids == nil {
		return ""
	}
	names := make([]string, 0, ids.Len())
	for _, id := range ids.Slice() {
		names = append(names, sack.Package(id).NEVRA().String())
	}
	return strings.Join(names, ", ")
}

// Transaction returns the goal's result once Run has succeeded.
func (g *Goal) Transaction() (*Transaction, bool) {
	return g.transaction, g.solved
}

// Problems returns the diagnostic list from the last failed Run
// (§4.9).
func (g *Goal) Problems() []string {
	return g.problems
}

// Run executes the goal's state machine (§4.7 steps 1-7): recompute
// considered, build clauses, solve, trim installonly overflow, guard
// protected packages, and build the final transaction.
func (g *Goal) Run(ctx context.Context) error {
	g.solved = false
	g.transaction = nil
	g.problems = nil
	g.protectedRemovalList = nil

	g.sack.consideredSet() // step 1: recompute considered
	g.sack.pool.makeProvidesReady()

	universe := g.universe()
	numVars := g.sack.pool.count() - 1

	clauses := g.buildClauses(universe)
	root, err := g.buildRootDemands(universe)
	if err != nil {
		g.problems = []string{err.Error()}
		return err
	}
	clauses = append(clauses, root...)
	costLits, costWeights := g.buildCostFunc(universe)

	result, err := g.solver.Solve(ctx, ports.SATProblem{
		NumVars:     numVars,
		Clauses:     clauses,
		CostVars:    costLits,
		CostWeights: costWeights,
	})
	if err != nil {
		return err
	}
	if !result.Satisfiable {
		g.problems = diagnoseProblems(g.sack, universe, g.jobs)
		return newErr(types.ErrNoSolution, "no solution satisfies the staged job queue")
	}

	selected := modelToSet(result.Model, universe)
	selected = g.trimInstallonly(selected) // step 5

	if !g.ignoreWeakDeps {
		g.pullWeakDeps(selected, universe)
	}

	tx := g.buildTransaction(selected) // step 6

	// step 7: protected packages check
	removed := protectedFromTransaction(g.sack, tx)
	if len(removed) > 0 {
		g.protectedRemovalList = removed
		g.problems = []string{describeProtectedRemoval(g.sack, removed)}
		return newErr(types.ErrRemovalOfProtectedPkg, g.problems[0])
	}

	g.transaction = tx
	g.solved = true
	log.Ctx(ctx).Debug().
		Int("installs", len(tx.Installs)).
		Int("erasures", len(tx.Erasures)).
		Int("upgrades", len(tx.Upgrades)).
		Msg("goal solved")
	return nil
}

// universe is every solvable id the solve must reason about: the
// considered set, every installed package (even if excluded - removal
// must still be representable), and every id any staged job names
// directly (a selector compiled with IgnoreExcludes(true)).
func (g *Goal) universe() *PackageSet {
	u := g.sack.consideredSet().Clone()
	if g.sack.installedRepo != nil {
		for id := 1; id < g.sack.pool.count(); id++ {
			sid := types.SolvableID(id)
			if g.sack.Package(sid).Installed() {
				u.Add(sid)
			}
		}
	}
	for _, j := range g.jobs {
		if j.ids != nil {
			u.Or(j.ids)
		}
	}
	return u
}

// buildClauses emits the at-most-one-per-name constraint (skipped for
// installonly names, which may coexist per §3) plus the per-package
// Requires/Conflicts/Obsoletes implication clauses.
func (g *Goal) buildClauses(universe *PackageSet) [][]int {
	var clauses [][]int

	byName := map[types.NameID][]types.SolvableID{}
	for _, id := range universe.Slice() {
		sv := g.sack.pool.get(id)
		byName[sv.name] = append(byName[sv.name], id)
	}
	for nameID, ids := range byName {
		if g.sack.IsInstallonly(g.sack.pool.name(nameID)) {
			continue
		}
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				clauses = append(clauses, []int{-int(ids[i]), -int(ids[j])})
			}
		}
	}

	for _, id := range universe.Slice() {
		pkg := g.sack.Package(id)
		clauses = append(clauses, g.requireClauses(pkg, universe)...)
		clauses = append(clauses, g.conflictClauses(pkg, universe)...)
		clauses = append(clauses, g.obsoleteClauses(pkg, universe)...)
	}
	return clauses
}

// requireClauses: if id is selected, at least one provider of each
// Requires reldep must also be selected. An unsatisfiable requirement
// forces id false, mirroring buildTransitiveClauses's "no candidates"
// case.
func (g *Goal) requireClauses(pkg Package, universe *PackageSet) [][]int {
	var clauses [][]int
	id := int(pkg.ID())
	for _, r := range pkg.Requires() {
		providers := g.providersIn(r, universe)
		if len(providers) == 0 {
			clauses = append(clauses, []int{-id})
			continue
		}
		clauses = append(clauses, append([]int{-id}, providers...))
	}
	return clauses
}

// conflictClauses: id and any other provider of a Conflicts reldep
// cannot both be selected.
func (g *Goal) conflictClauses(pkg Package, universe *PackageSet) [][]int {
	var clauses [][]int
	id := int(pkg.ID())
	for _, r := range pkg.Conflicts() {
		for _, p := range g.providersIn(r, universe) {
			if p == id {
				continue
			}
			clauses = append(clauses, []int{-id, -p})
		}
	}
	return clauses
}

// obsoleteClauses: id and any package it obsoletes cannot both be
// selected (YUM_OBSOLETES semantics, §4.7 step 3).
func (g *Goal) obsoleteClauses(pkg Package, universe *PackageSet) [][]int {
	var clauses [][]int
	id := int(pkg.ID())
	for _, r := range pkg.Obsoletes() {
		for _, p := range g.providersIn(r, universe) {
			if p == id {
				continue
			}
			clauses = append(clauses, []int{-id, -p})
		}
	}
	return clauses
}

func (g *Goal) providersIn(r types.Reldep, universe *PackageSet) []int {
	var out []int
	for _, sid := range g.sack.pool.providers(r) {
		if universe.Has(sid) {
			out = append(out, int(sid))
		}
	}
	return out
}

// buildRootDemands translates the staged job queue into hard clauses:
// install/upgrade/downgrade/reinstall/distupgrade require at least one
// matching candidate (reinstall: a non-installed copy at the installed
// EVR); erase forces its targets false. upgrade-all and distro-sync-all
// require only that every installed name keeps some version selected;
// which version is left to the cost function. verify adds no hard
// demand (§4.7 step 2-3).
func (g *Goal) buildRootDemands(universe *PackageSet) ([][]int, error) {
	var clauses [][]int
	installed := g.installedByName()
	for _, j := range g.jobs {
		switch j.kind {
		case jobInstall:
			ids := intersectInts(j.ids, universe)
			if len(ids) == 0 {
				return nil, newErr(types.ErrNoSolution, "job matched no candidates in the sack")
			}
			clauses = append(clauses, ids)
		case jobReinstall:
			var ids []int
			for _, id := range intersectInts(j.ids, universe) {
				sid := types.SolvableID(id)
				instID, ok := installed[g.sack.pool.get(sid).name]
				if ok && instID != sid && g.sack.pool.compareEVR(g.sack.pool.get(sid).evr.EVR, g.sack.pool.get(instID).evr.EVR) == 0 {
					ids = append(ids, id)
				}
			}
			if len(ids) == 0 {
				return nil, newErr(types.ErrNoSolution, "no candidate at the installed version for the requested package(s)")
			}
			clauses = append(clauses, ids)
		case jobErase:
			for _, id := range j.ids.Slice() {
				clauses = append(clauses, []int{-int(id)})
			}
		case jobUpgrade, jobDistupgrade:
			ids := g.relativeCandidates(j.ids, universe, installed, true)
			if len(ids) == 0 {
				return nil, newErr(types.ErrNoSolution, "no newer candidate available for the requested package(s)")
			}
			clauses = append(clauses, ids)
		case jobDowngrade:
			ids := g.relativeCandidates(j.ids, universe, installed, false)
			if len(ids) == 0 {
				return nil, newErr(types.ErrNoSolution, "no older candidate available for the requested package(s)")
			}
			clauses = append(clauses, ids)
		case jobUpgradeAll, jobDistupgradeAll:
			for name := range installed {
				var ids []int
				for _, id := range universe.Slice() {
					if g.sack.pool.get(id).name == name {
						ids = append(ids, int(id))
					}
				}
				clauses = append(clauses, ids)
			}
		case jobVerify:
			// base-state only
		}
	}
	return clauses, nil
}

func intersectInts(ids *PackageSet, universe *PackageSet) []int {
	var out []int
	for _, id := range ids.Slice() {
		if universe.Has(id) {
			out = append(out, int(id))
		}
	}
	return out
}

func (g *Goal) installedByName() map[types.NameID]types.SolvableID {
	out := map[types.NameID]types.SolvableID{}
	if g.sack.installedRepo == nil {
		return out
	}
	for id := 1; id < g.sack.pool.count(); id++ {
		sid := types.SolvableID(id)
		if g.sack.Package(sid).Installed() {
			out[g.sack.pool.get(sid).name] = sid
		}
	}
	return out
}

// relativeCandidates restricts ids to those that are strictly newer
// (newer=true) or strictly older (newer=false) than the currently
// installed version sharing that name; a name with no installed
// version is eligible for "newer" (a plain install-or-upgrade) but not
// for "downgrade".
func (g *Goal) relativeCandidates(ids *PackageSet, universe *PackageSet, installed map[types.NameID]types.SolvableID, newer bool) []int {
	var out []int
	for _, id := range ids.Slice() {
		if !universe.Has(id) {
			continue
		}
		sv := g.sack.pool.get(id)
		instID, ok := installed[sv.name]
		if !ok {
			if newer {
				out = append(out, int(id))
			}
			continue
		}
		if instID == id {
			continue
		}
		cmp := g.sack.pool.compareEVR(sv.evr.EVR, g.sack.pool.get(instID).evr.EVR)
		if newer && cmp > 0 {
			out = append(out, int(id))
		} else if !newer && cmp < 0 {
			out = append(out, int(id))
		}
	}
	return out
}

// buildCostFunc assigns a per-literal weight so the optimizing solver
// prefers, in order of importance: keeping installed packages installed
// (unless upgrade-all/distro-sync-all is staged, which relaxes that
// loyalty), newer versions within a name over older ones, and a minimal
// install footprint over pulling in extra packages nobody asked for.
// This mirrors buildSolverState's per-version weight assignment,
// generalized from "prefer latest Debian version" to three stacked
// preferences.
func (g *Goal) buildCostFunc(universe *PackageSet) ([]int, []int) {
	var lits []int
	var weights []int

	byName := map[types.NameID][]types.SolvableID{}
	for _, id := range universe.Slice() {
		sv := g.sack.pool.get(id)
		byName[sv.name] = append(byName[sv.name], id)
	}
	for _, ids := range byName {
		ordered := append([]types.SolvableID(nil), ids...)
		sort.Slice(ordered, func(i, j int) bool {
			return g.sack.pool.compareEVR(g.sack.pool.get(ordered[i]).evr.EVR, g.sack.pool.get(ordered[j]).evr.EVR) < 0
		})
		for i, id := range ordered {
			lits = append(lits, int(id))
			weights = append(weights, len(ordered)-1-i)
		}
	}

	installed := g.installedByName()
	upgradeAll := g.HasAction(types.ActionUpgradeAll) || g.HasAction(types.ActionDistupgradeAll)
	for _, instID := range installed {
		if !universe.Has(instID) {
			continue
		}
		weight := 4
		if upgradeAll {
			weight = 0
		}
		lits = append(lits, -int(instID))
		weights = append(weights, weight)
	}

	for _, id := range universe.Slice() {
		if _, ok := installed[g.sack.pool.get(id).name]; ok {
			continue
		}
		lits = append(lits, int(id))
		weights = append(weights, 1)
	}

	if len(lits) == 0 {
		lits, weights = []int{1}, []int{0}
	}
	return lits, weights
}

func modelToSet(model []bool, universe *PackageSet) *PackageSet {
	out := NewPackageSet(len(model) + 1)
	for _, id := range universe.Slice() {
		idx := int(id) - 1
		if idx >= 0 && idx < len(model) && model[idx] {
			out.Add(id)
		}
	}
	return out
}

// trimInstallonly enforces §4.7 step 5: if more than the installonly
// limit of a given name ended up selected, sort that name's ids
// EVR-descending and drop the oldest until the limit holds. The running
// kernel, if selected, is always kept (never sorted into the trimmed tail).
func (g *Goal) trimInstallonly(selected *PackageSet) *PackageSet {
	if g.sack.installonlyLimit <= 0 {
		return selected
	}
	byName := map[types.NameID][]types.SolvableID{}
	for _, id := range selected.Slice() {
		sv := g.sack.pool.get(id)
		name := g.sack.pool.name(sv.name)
		if !g.sack.IsInstallonly(name) {
			continue
		}
		byName[sv.name] = append(byName[sv.name], id)
	}
	kernel, hasKernel := g.sack.RunningKernel()
	limit := g.sack.installonlyLimit
	out := selected.Clone()
	for _, ids := range byName {
		if len(ids) <= limit {
			continue
		}
		sort.Slice(ids, func(i, j int) bool {
			iIsKernel := hasKernel && ids[i] == kernel
			jIsKernel := hasKernel && ids[j] == kernel
			if iIsKernel != jIsKernel {
				return iIsKernel // kernel sorts first, i.e. never in the trimmed tail
			}
			return g.sack.pool.compareEVR(g.sack.pool.get(ids[i]).evr.EVR, g.sack.pool.get(ids[j]).evr.EVR) > 0
		})
		for _, drop := range ids[limit:] {
			out.Remove(drop)
		}
	}
	return out
}

// pullWeakDeps greedily adds one provider of each selected package's
// unsatisfied Recommends reldeps (IGNORE_WEAK_DEPS off). This is a
// best-effort single pass, not a weighted re-solve: a full soft-clause
// MaxSAT model of weak deps is out of scope for this demonstration
// engine (Design Note "solver is an external library").
func (g *Goal) pullWeakDeps(selected *PackageSet, universe *PackageSet) {
	for _, id := range selected.Slice() {
		pkg := g.sack.Package(id)
		for _, r := range pkg.Recommends() {
			satisfied := false
			for _, p := range g.sack.pool.providers(r) {
				if selected.Has(p) {
					satisfied = true
					break
				}
			}
			if satisfied {
				continue
			}
			for _, p := range g.sack.pool.providers(r) {
				if universe.Has(p) {
					selected.Add(p)
					break
				}
			}
		}
	}
}

// buildTransaction diffs selected against the currently installed set
// to produce installs/erasures/upgrades/downgrades/reinstalls/obsoleted
// (§4.7 step 6).
func (g *Goal) buildTransaction(selected *PackageSet) *Transaction {
	tx := &Transaction{}
	installed := g.installedByName()
	requested := g.requestedIDs()

	for _, id := range selected.Slice() {
		pkg := g.sack.Package(id)
		if pkg.Installed() {
			continue
		}
		sv := g.sack.pool.get(id)
		reason := types.ReasonDep
		if requested.Has(id) {
			reason = types.ReasonUser
		}
		oldID, hadOld := installed[sv.name]
		if !hadOld {
			tx.Installs = append(tx.Installs, TransactionEntry{Package: pkg, Reason: reason})
			continue
		}
		oldPkg := g.sack.Package(oldID)
		switch cmp := g.sack.pool.compareEVR(sv.evr.EVR, oldPkg.EVR()); {
		case cmp > 0:
			tx.Upgrades = append(tx.Upgrades, UpgradePair{New: pkg, Old: oldPkg})
		case cmp < 0:
			tx.Downgrades = append(tx.Downgrades, UpgradePair{New: pkg, Old: oldPkg})
		default:
			tx.Reinstalls = append(tx.Reinstalls, TransactionEntry{Package: pkg, Reason: reason})
		}
	}

	for name, oldID := range installed {
		if selected.Has(oldID) {
			continue
		}
		if g.nameStillSelected(name, selected) {
			continue // accounted for above as an upgrade/downgrade
		}
		oldPkg := g.sack.Package(oldID)
		reason := types.ReasonDep
		if g.erasureRequested(oldID) {
			reason = types.ReasonUser
		}
		entry := TransactionEntry{Package: oldPkg, Reason: reason}
		if obsoleter, ok := g.obsoletedBy(oldPkg, selected); ok {
			_ = obsoleter
			tx.Obsoleted = append(tx.Obsoleted, entry)
		} else {
			tx.Erasures = append(tx.Erasures, entry)
		}
	}
	return tx
}

func (g *Goal) nameStillSelected(name types.NameID, selected *PackageSet) bool {
	for _, id := range selected.Slice() {
		if g.sack.pool.get(id).name == name {
			return true
		}
	}
	return false
}

func (g *Goal) requestedIDs() *PackageSet {
	out := NewPackageSet(g.sack.pool.count())
	for _, j := range g.jobs {
		if j.ids == nil {
			continue
		}
		switch j.kind {
		case jobInstall, jobUpgrade, jobDowngrade, jobReinstall, jobDistupgrade:
			out.Or(j.ids)
		}
	}
	return out
}

func (g *Goal) erasureRequested(id types.SolvableID) bool {
	for _, j := range g.jobs {
		if j.kind == jobErase && j.ids != nil && j.ids.Has(id) {
			return true
		}
	}
	return false
}

func (g *Goal) obsoletedBy(oldPkg Package, selected *PackageSet) (Package, bool) {
	for _, id := range selected.Slice() {
		pkg := g.sack.Package(id)
		for _, r := range pkg.Obsoletes() {
			if r.Name == oldPkg.Name() {
				return pkg, true
			}
		}
	}
	return Package{}, false
}

// protectedFromTransaction intersects every erasure/obsoletion in tx
// with the sack's protected bitmap (§4.7 step 7).
func protectedFromTransaction(sack *Sack, tx *Transaction) []types.SolvableID {
	var out []types.SolvableID
	for _, e := range tx.Erasures {
		if sack.isProtected(e.Package.ID()) {
			out = append(out, e.Package.ID())
		}
	}
	for _, e := range tx.Obsoleted {
		if sack.isProtected(e.Package.ID()) {
			out = append(out, e.Package.ID())
		}
	}
	return out
}

func describeProtectedRemoval(sack *Sack, ids []types.SolvableID) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, sack.Package(id).NEVRA().String())
	}
	return "The operation would result in removing the following protected packages: " + strings.Join(names, ", ")
}

// diagnoseProblems implements the count/format contract of §4.9 for the
// portion of problems this core can attribute without a native solver
// problem-rule API (gophersat exposes satisfiability, not DIMACS-style
// unsat cores): it reports, per unsatisfied job, which requested name
// had no candidate in the universe, falling back to a generic
// conflicting-requirements message.
func diagnoseProblems(sack *Sack, universe *PackageSet, jobs []goalJob) []string {
	var problems []string
	for _, j := range jobs {
		switch j.kind {
		case jobInstall, jobUpgrade, jobDowngrade, jobReinstall, jobDistupgrade:
			if j.ids == nil || j.ids.Len() == 0 {
				problems = append(problems, "nothing matches the requested package")
				continue
			}
			found := false
			for _, id := range j.ids.Slice() {
				if universe.Has(id) {
					found = true
					break
				}
			}
			if !found {
				ids := j.ids.Slice()
				problems = append(problems, fmt.Sprintf("nothing provides a candidate for %s", sack.Package(ids[0]).Name()))
			}
		}
	}
	if len(problems) == 0 {
		problems = append(problems, "conflicting requirements among requested packages")
	}
	return problems
}
