// SPDX-License-Identifier: MIT

// Package core: the adapter contract between the dispatch layer and the
// external solver backends. Adapters live outside this module's core (two
// samples ship under solve/cvx and solve/highs); everything they need to
// know about the calling convention is expressed here.

package core

// SolveFunc is the vector-only adapter variant. It receives a fully
// normalized problem (shapes validated; bounds folded into G/h unless the
// backend is box-aware), an optional warm-start vector forwarded verbatim
// (length unvalidated — the adapter owns that check), the verbose flag and
// backend-specific options.
//
// Contract:
//   - optimal/converged   → (x, nil), len(x) == p.NumVars()
//   - infeasible / no optimum → (nil, nil), NOT an error
//   - malformed option    → error wrapping ErrParam
//   - backend-internal failures propagate unchanged.
type SolveFunc func(p *Problem, initvals Vector, verbose bool, opts Options) (Vector, error)

// ProblemFunc is the solution-rich adapter variant for backends that
// report dual variables. Infeasibility is a Solution with Found=false,
// never an error. Duals must follow the Solution sign convention.
type ProblemFunc func(p *Problem, initvals Vector, verbose bool, opts Options) (*Solution, error)

// Backend describes one registered solver adapter together with its
// capabilities. At least one of Solve / SolveProblem must be set; when
// both are, they must agree on semantics (SolveProblem is preferred by
// the solution-rich dispatch path, Solve by the vector path).
type Backend struct {
	// Name is the registry key, unique per registry, e.g. "cvx", "highs".
	Name string

	// Dense marks backends that operate on dense matrices. SolveSafer is
	// restricted to dense backends (the reformulation stacks dense
	// blocks); sparse inputs reaching a dense backend are converted by
	// the adapter via conv.EnsureDense.
	Dense bool

	// BoxAware marks backends that consume lb/ub natively. For the rest,
	// the dispatcher folds bounds into the inequality system before the
	// adapter ever sees the problem.
	BoxAware bool

	// Solve is the vector-only entry point (may be nil if SolveProblem is set).
	Solve SolveFunc

	// SolveProblem is the solution-rich entry point (may be nil if Solve is set).
	SolveProblem ProblemFunc
}

// Callable reports whether the backend has at least one entry point.
// Complexity: O(1).
func (b Backend) Callable() bool { return b.Solve != nil || b.SolveProblem != nil }
