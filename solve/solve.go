// SPDX-License-Identifier: MIT

// Package solve: the dispatcher.
//
// Failure contract (fixed precedence, checked before any backend runs):
//  1. malformed arguments        → core.ErrParam / core.ErrProblem
//  2. unknown solver name        → core.ErrSolverNotFound
//  3. normalization failure      → core.ErrProblem
//
// "No optimum" is never an error: Solve returns a nil vector and
// SolveProblem returns Found=false. Errors raised inside an adapter
// propagate unchanged — this layer neither wraps nor suppresses them, so
// backend diagnostics keep their value.

package solve

import (
	"fmt"

	"github.com/katalvlaran/qpsolve/core"
	"github.com/katalvlaran/qpsolve/norm"
)

// Solve dispatches p to the backend selected by opts.Solver and returns
// the optimal primal vector, or nil when the backend reports
// infeasibility or non-convergence. opts may be nil for all-defaults.
//
// The problem handed to the adapter is fully normalized: P symmetrized
// when requested, single-row constraints promoted, dimensions
// re-validated, and box bounds folded into G/h unless the backend
// declares itself box-aware.
func Solve(reg *Registry, p *core.Problem, opts *Options) (core.Vector, error) {
	be, np, o, err := prepare(reg, p, opts)
	if err != nil {
		return nil, err
	}
	if be.Solve != nil {
		return be.Solve(np, o.Initvals, o.Verbose, o.Extra)
	}

	// Solution-rich-only backend: unwrap the primal vector.
	sol, err := be.SolveProblem(np, o.Initvals, o.Verbose, o.Extra)
	if err != nil || sol == nil || !sol.Found {
		return nil, err
	}

	return sol.X, nil
}

// SolveProblem is the solution-rich dispatch path: same normalization and
// lookup as Solve, returning the full Solution with dual variables and
// backend extras. Vector-only backends are wrapped into a Solution whose
// duals are empty.
func SolveProblem(reg *Registry, p *core.Problem, opts *Options) (*core.Solution, error) {
	be, np, o, err := prepare(reg, p, opts)
	if err != nil {
		return nil, err
	}
	if be.SolveProblem != nil {
		return be.SolveProblem(np, o.Initvals, o.Verbose, o.Extra)
	}

	x, err := be.Solve(np, o.Initvals, o.Verbose, o.Extra)
	if err != nil {
		return nil, err
	}

	return &core.Solution{Problem: np, Found: x != nil, X: x}, nil
}

// prepare validates arguments, resolves the backend and runs the
// normalization pipeline. Shared by every dispatch entry point so the
// failure precedence stays uniform.
func prepare(reg *Registry, p *core.Problem, opts *Options) (core.Backend, *core.Problem, Options, error) {
	var be core.Backend
	if reg == nil {
		return be, nil, Options{}, fmt.Errorf("solve: nil registry: %w", core.ErrParam)
	}
	if p == nil {
		return be, nil, Options{}, fmt.Errorf("solve: nil problem: %w", core.ErrProblem)
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
		if o.Solver == "" {
			o.Solver = DefaultSolver
		}
	}

	be, ok := reg.Lookup(o.Solver)
	if !ok {
		return be, nil, o, fmt.Errorf("solve: solver %q: %w", o.Solver, core.ErrSolverNotFound)
	}

	np, err := norm.Apply(p, norm.Config{SymProj: o.SymProj, FoldBounds: !be.BoxAware})
	if err != nil {
		return be, nil, o, err
	}

	return be, np, o, nil
}
