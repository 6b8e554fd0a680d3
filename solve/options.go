// SPDX-License-Identifier: MIT

package solve

import "github.com/katalvlaran/qpsolve/core"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultSolver is used when Options.Solver is empty: the dense
	// interior-point backend, compiled in on every platform.
	DefaultSolver = "cvx"

	// DefaultDenseSolver is the fallback target for SolveSafer, which is
	// restricted to dense-capable backends.
	DefaultDenseSolver = "cvx"

	// DefaultSaferReg is the slack regularization weight used by
	// SolveSafer when the caller passes reg = 0. Keep it as small as
	// numerical stability allows.
	DefaultSaferReg = 1e-8
)

// Options carries the universal per-call options recognized by every
// dispatch entry point. Everything backend-specific rides in Extra,
// forwarded verbatim without validation at this layer.
type Options struct {
	// Solver selects the backend by registry name. Empty means
	// DefaultSolver. An unregistered name fails with
	// core.ErrSolverNotFound.
	Solver string

	// Initvals is an optional warm-start guess for the primal vector,
	// forwarded to the adapter as-is. Its length is not validated here;
	// adapters that cannot warm-start ignore it (and say so).
	Initvals core.Vector

	// SymProj projects P onto its symmetric part before dispatch. Enable
	// it when the supplied P is not symmetric; many backends silently
	// return wrong results on asymmetric cost matrices.
	SymProj bool

	// Verbose asks the adapter to emit backend diagnostic output.
	Verbose bool

	// Extra holds backend-specific options ("max_iter", "abstol",
	// "time_limit", ...), passed through untouched.
	Extra core.Options
}

// DefaultOptions returns the canonical defaults: DefaultSolver, cold
// start, no symmetrization, quiet.
func DefaultOptions() Options {
	return Options{Solver: DefaultSolver}
}
