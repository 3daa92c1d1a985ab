package ports

import "context"

// SATProblem is a CNF problem over NumVars boolean variables, 1-indexed
// (variable id v is encoded as the literal v for "true", -v for
// "false"), plus an optional linear cost function for weighted
// optimization. This is the boundary shape between internal/core's
// Goal and whatever concrete SAT engine is wired in, per the Design
// Note "solver is an external library... treat it as a trait/interface".
type SATProblem struct {
	NumVars     int
	Clauses     [][]int
	CostVars    []int
	CostWeights []int
}

// SATResult is the outcome of a solve attempt. Model is 0-indexed:
// Model[v-1] is the truth value assigned to variable v.
type SATResult struct {
	Satisfiable bool
	Model       []bool
}

// SolverPort is the external SAT collaborator the core's Goal delegates
// to (C9). The core never re-implements SAT; it only builds problems
// and reads back models.
type SolverPort interface {
	Solve(ctx context.Context, problem SATProblem) (SATResult, error)
}
