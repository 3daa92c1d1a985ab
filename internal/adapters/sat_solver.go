package adapters

import (
	"context"

	"github.com/crillab/gophersat/solver"

	"rpmsack/internal/ports"
)

// GophersatSolver implements ports.SolverPort using
// github.com/crillab/gophersat/solver, the same SAT engine the teacher
// wires into internal/core/apt_solver.go#solveSAT. Clause construction
// (at-most-one, dependency, conflict) lives in internal/core/goal.go;
// this adapter only owns the solver-library call.
type GophersatSolver struct{}

// NewGophersatSolver returns the default SolverPort implementation.
func NewGophersatSolver() GophersatSolver {
	return GophersatSolver{}
}

func (GophersatSolver) Solve(ctx context.Context, problem ports.SATProblem) (ports.SATResult, error) {
	if ctx.Err() != nil {
		return ports.SATResult{}, ctx.Err()
	}
	if problem.NumVars == 0 {
		return ports.SATResult{Satisfiable: true}, nil
	}
	parsed := solver.ParseSliceNb(problem.Clauses, problem.NumVars)

	costVars, costWeights := problem.CostVars, problem.CostWeights
	if len(costVars) == 0 {
		// gophersat's optimizing entry point (Minimize/Model) is the only
		// path the teacher's apt_solver.go exercises; a zero-weight
		// single-literal cost function keeps every call on that path
		// even when the caller has no real preference to optimize.
		costVars = []int{1}
		costWeights = []int{0}
	}
	lits := make([]solver.Lit, len(costVars))
	for i, v := range costVars {
		lits[i] = solver.IntToLit(int32(v))
	}
	parsed.SetCostFunc(lits, costWeights)
	sat := solver.New(parsed)
	if cost := sat.Minimize(); cost < 0 {
		return ports.SATResult{Satisfiable: false}, nil
	}
	return ports.SATResult{Satisfiable: true, Model: sat.Model()}, nil
}
