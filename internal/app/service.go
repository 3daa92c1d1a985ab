// Package app is the thin orchestration layer between internal/cli and
// internal/core: it wires concrete adapters (solver, repo-metadata
// loader) to the core library, the same constructor-wires-adapters
// shape as the teacher's app.Service.
package app

import (
	"context"

	"rpmsack/internal/adapters"
	"rpmsack/internal/core"
	"rpmsack/internal/policies"
	"rpmsack/internal/ports"
)

// Service holds the concrete collaborators every command needs.
type Service struct {
	Solver ports.SolverPort
}

// NewService wires the default gophersat-backed solver.
func NewService() Service {
	return Service{Solver: adapters.NewGophersatSolver()}
}

// SackConfig names the inputs needed to build a sack for one CLI
// invocation.
type SackConfig struct {
	Arch             string
	RepoPaths        []string
	InstallonlyNames []string
	InstallonlyLimit int
	ProtectedNames   []string
}

// LoadSack builds a sack from the configured repo metadata snapshots. A
// snapshot whose RepoSnapshot.Installed is true becomes the sack's
// installed repo (SPEC_FULL §3 invariant: at most one).
func (s Service) LoadSack(ctx context.Context, cfg SackConfig) (*core.Sack, error) {
	sack := core.NewSack(cfg.Arch)

	installonly := policies.DefaultInstallonlyPolicy()
	if len(cfg.InstallonlyNames) > 0 {
		limit := cfg.InstallonlyLimit
		if limit <= 0 {
			limit = installonly.Limit()
		}
		installonly = policies.NewInstallonlyPolicy(limit, cfg.InstallonlyNames...)
	}
	sack.SetInstallonlyPolicy(installonly)

	if len(cfg.ProtectedNames) > 0 {
		sack.SetProtectedPolicy(policies.NewProtectedPolicy(cfg.ProtectedNames...))
	}

	for _, path := range cfg.RepoPaths {
		snap, err := adapters.NewRepoMetadataFileAdapter(path).Load()
		if err != nil {
			return nil, err
		}
		if _, err := sack.LoadRepo(ctx, snap); err != nil {
			return nil, err
		}
	}
	return sack, nil
}

// NewGoal creates a goal over sack using the service's solver.
func (s Service) NewGoal(sack *core.Sack) *core.Goal {
	return core.NewGoal(sack, s.Solver)
}
