// SPDX-License-Identifier: MIT

// Package qpsolve: convenience entry points over the default registry.
// Embedders that want to control the backend set use solve.Solve with
// their own Registry; these wrappers exist for the common case.

package qpsolve

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qpsolve/core"
	"github.com/katalvlaran/qpsolve/solve"
)

// Solve dispatches p to a compiled-in backend and returns the optimal
// primal vector, or nil when the problem has no optimum. opts may be nil
// (default solver, cold start, quiet). See solve.Solve for the full
// contract.
func Solve(p *core.Problem, opts *solve.Options) (core.Vector, error) {
	return solve.Solve(defaultRegistry, p, opts)
}

// SolveProblem is the solution-rich variant of Solve, reporting dual
// variables and backend extras.
func SolveProblem(p *core.Problem, opts *solve.Options) (*core.Solution, error) {
	return solve.SolveProblem(defaultRegistry, p, opts)
}

// SolveSafer solves the slack-augmented "safer" QP over the default
// registry, returning a solution strictly inside the inequality region.
// See solve.SolveSafer for parameters and restrictions.
func SolveSafer(P *mat.Dense, q core.Vector, G *mat.Dense, h core.Vector, sw, regWeight float64, opts *solve.Options) (core.Vector, error) {
	return solve.SolveSafer(defaultRegistry, P, q, G, h, sw, regWeight, opts)
}
