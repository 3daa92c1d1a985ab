package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"rpmsack/internal/policies"
	"rpmsack/internal/types"
)

// KernelDetector decides which installed solvable, if any, is the
// running kernel. The default sack carries no detector (§1 non-goal:
// reading /proc/sys/kernel/osrelease is a host concern); embedding
// hosts inject their own via Sack.SetKernelDetector (SPEC_FULL Part D).
type KernelDetector func(*Sack) (types.SolvableID, bool)

// advisory is the pool-level record for one errata, addressed by its
// own id space (advisories are a distinct pseudo-type per §4.8).
type advisory struct {
	data types.AdvisoryData
}

// Sack owns the pool and every repo loaded into it, plus the policy
// bitmaps that gate query/solve visibility (C3).
type Sack struct {
	pool *pool

	repos        []*Repo
	installedRepo *Repo

	arch      string
	cachedir  string
	rootdir   string

	installonlyNames   map[string]struct{}
	installonlyLimit   int
	installonlyPolicy  *policies.InstallonlyPolicy

	excludes *PackageSet
	includes *PackageSet
	hasIncludes bool

	considered      *PackageSet
	consideredDirty bool

	protected       *PackageSet
	protectedPolicy *policies.ProtectedPolicy

	kernelDetector KernelDetector

	advisories []advisory
}

// NewSack creates an empty sack for the given base architecture.
func NewSack(arch string) *Sack {
	s := &Sack{
		pool:             newPool(),
		arch:             arch,
		installonlyNames: make(map[string]struct{}),
		consideredDirty:  true,
	}
	s.excludes = NewPackageSet(64)
	s.protected = NewPackageSet(64)
	return s
}

// SetInstallonly configures the installonly package names and the
// maximum number of simultaneously installed versions for each
// (SPEC_FULL §3 Sack, §4.7 step 5).
func (s *Sack) SetInstallonly(names []string, limit int) {
	s.installonlyNames = make(map[string]struct{}, len(names))
	for _, n := range names {
		s.installonlyNames[n] = struct{}{}
	}
	s.installonlyLimit = limit
}

// IsInstallonly reports whether name is in the installonly set.
func (s *Sack) IsInstallonly(name string) bool {
	if _, ok := s.installonlyNames[name]; ok {
		return true
	}
	return s.installonlyPolicy != nil && s.installonlyPolicy.Matches(name)
}

// SetInstallonlyPolicy installs a pattern-based installonly policy
// (SPEC_FULL §3, §4.7 step 5), e.g. policies.DefaultInstallonlyPolicy.
// Its Limit() overrides any limit set via SetInstallonly.
func (s *Sack) SetInstallonlyPolicy(p policies.InstallonlyPolicy) {
	s.installonlyPolicy = &p
	s.installonlyLimit = p.Limit()
}

// SetKernelDetector installs the host-provided running-kernel lookup.
func (s *Sack) SetKernelDetector(fn KernelDetector) {
	s.kernelDetector = fn
}

// RunningKernel returns the running kernel's solvable id, if known.
func (s *Sack) RunningKernel() (types.SolvableID, bool) {
	if s.kernelDetector == nil {
		return types.InvalidID, false
	}
	return s.kernelDetector(s)
}

// AddProtected adds solvables to the protected-packages bitmap
// (SPEC_FULL §3 Goal, §4.7 step 7). The running kernel, if known, is
// always protected regardless of explicit configuration.
func (s *Sack) AddProtected(ids ...types.SolvableID) {
	for _, id := range ids {
		s.protected.Add(id)
	}
}

func (s *Sack) isProtected(id types.SolvableID) bool {
	if s.protected.Has(id) {
		return true
	}
	if s.protectedPolicy != nil {
		if sv := s.pool.get(id); sv != nil && s.protectedPolicy.Matches(s.pool.name(sv.name)) {
			return true
		}
	}
	if k, ok := s.RunningKernel(); ok && k == id {
		return true
	}
	return false
}

// SetProtectedPolicy installs a pattern-based protected-packages policy
// (SPEC_FULL §4.7 step 7), e.g. a distro's list of packages that must
// never be removed regardless of explicit AddProtected calls.
func (s *Sack) SetProtectedPolicy(p policies.ProtectedPolicy) {
	s.protectedPolicy = &p
}

// LoadRepo interns every package in snap into the pool as a new Repo.
// At most one repo in a sack may be marked installed (§3 invariant);
// loading a second installed repo returns ErrInternal.
func (s *Sack) LoadRepo(ctx context.Context, snap types.RepoSnapshot) (*Repo, error) {
	assert.NotEmpty(ctx, s.arch, "sack arch must be set before loading a repo")
	if snap.Installed && s.installedRepo != nil {
		return nil, newErr(types.ErrInternal, "sack already has an installed repo")
	}
	repo := &Repo{Name: snap.Name, Cost: snap.Cost, GPGCheck: snap.GPGCheck, Installed: snap.Installed, sack: s}
	s.repos = append(s.repos, repo)
	if snap.Installed {
		s.installedRepo = repo
	}

	for _, pd := range snap.Packages {
		sv := solvable{
			name:    s.pool.internName(pd.Name),
			arch:    s.pool.internArch(pd.Arch),
			evr:     newEVRValue(types.EVR{Epoch: pd.Epoch, EpochSet: pd.EpochSet, Version: pd.Version, Release: pd.Release}),
			reponame: repo.Name,
			origin:  pd.Origin,
			repo:    repo,

			summary: pd.Summary, description: pd.Description, url: pd.URL,
			location: pd.Location, sourceRPM: pd.SourceRPM, vendor: pd.Vendor,
			license: pd.License, group: pd.Group,
			checksum: pd.Checksum, checksumType: pd.ChecksumType,
			hdrChecksum: pd.HdrChecksum, hdrChecksumType: pd.HdrChecksumType,
			installSize: pd.InstallSize, downloadSize: pd.DownloadSize,
			buildTime: pd.BuildTime, installTime: pd.InstallTime,
			files: pd.Files,

			provides:    s.internReldepList(pd.Provides),
			requires:    s.internReldepList(pd.Requires),
			obsoletes:   s.internReldepList(pd.Obsoletes),
			conflicts:   s.internReldepList(pd.Conflicts),
			enhances:    s.internReldepList(pd.Enhances),
			recommends:  s.internReldepList(pd.Recommends),
			suggests:    s.internReldepList(pd.Suggests),
			supplements: s.internReldepList(pd.Supplements),
		}
		s.pool.addSolvable(sv)
	}
	for _, ad := range snap.Advisories {
		s.advisories = append(s.advisories, advisory{data: ad})
	}
	s.consideredDirty = true
	log.Ctx(ctx).Debug().Str("repo", repo.Name).Int("packages", len(snap.Packages)).Msg("repo loaded")
	return repo, nil
}

// AddCommandLinePackage interns a single synthetic package under the
// reserved @commandline repo (SPEC_FULL §4.2).
func (s *Sack) AddCommandLinePackage(pd types.PackageData) types.SolvableID {
	var repo *Repo
	for _, r := range s.repos {
		if r.Name == reservedCommandLineRepo {
			repo = r
			break
		}
	}
	if repo == nil {
		repo = &Repo{Name: reservedCommandLineRepo, sack: s}
		s.repos = append(s.repos, repo)
	}
	sv := solvable{
		name: s.pool.internName(pd.Name),
		arch: s.pool.internArch(pd.Arch),
		evr:  newEVRValue(types.EVR{Epoch: pd.Epoch, EpochSet: pd.EpochSet, Version: pd.Version, Release: pd.Release}),
		reponame: repo.Name,
		repo: repo,
		provides: s.internReldepList(pd.Provides),
		requires: s.internReldepList(pd.Requires),
		obsoletes: s.internReldepList(pd.Obsoletes),
		conflicts: s.internReldepList(pd.Conflicts),
	}
	id := s.pool.addSolvable(sv)
	s.consideredDirty = true
	return id
}

func (s *Sack) internReldepList(l types.ReldepList) []types.RelDepID {
	out := make([]types.RelDepID, 0, len(l))
	for _, r := range l {
		out = append(out, s.pool.internReldep(r))
	}
	return out
}

// AddExcludes unions pkgs into the sack's excludes mask.
func (s *Sack) AddExcludes(pkgs *PackageSet) {
	s.excludes.Or(pkgs)
	s.consideredDirty = true
}

// AddIncludes unions pkgs into the sack's includes mask.
func (s *Sack) AddIncludes(pkgs *PackageSet) {
	if s.includes == nil {
		s.includes = NewPackageSet(s.pool.count())
	}
	s.includes.Or(pkgs)
	s.hasIncludes = true
	s.consideredDirty = true
}

// considered recomputes (lazily, idempotently) and returns the sack's
// considered bitmap: includes ∧ ¬excludes, or all ∧ ¬excludes when no
// includes are set (SPEC_FULL §3 invariant).
func (s *Sack) consideredSet() *PackageSet {
	if s.considered != nil && !s.consideredDirty {
		return s.considered
	}
	out := NewPackageSet(s.pool.count())
	if s.hasIncludes {
		out = s.includes.Clone()
	} else {
		for id := 1; id < s.pool.count(); id++ {
			out.Add(types.SolvableID(id))
		}
	}
	out.AndNot(s.excludes)
	s.considered = out
	s.consideredDirty = false
	return out
}

// AllIDs returns every solvable id currently interned, ignoring
// excludes/includes.
func (s *Sack) AllIDs() []types.SolvableID {
	out := make([]types.SolvableID, 0, s.pool.count()-1)
	for id := 1; id < s.pool.count(); id++ {
		out = append(out, types.SolvableID(id))
	}
	return out
}

// Package returns the handle for id, or the zero Package if id is not
// interned.
func (s *Sack) Package(id types.SolvableID) Package {
	return Package{sack: s, id: id}
}

// Repos returns the sack's loaded repos.
func (s *Sack) Repos() []*Repo { return s.repos }

// InstalledRepo returns the sack's installed repo, if any.
func (s *Sack) InstalledRepo() *Repo { return s.installedRepo }
