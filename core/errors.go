// SPDX-License-Identifier: MIT
// Package core: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors shared across the
// qpsolve packages. All public functions MUST return these sentinels and
// tests MUST check them via errors.Is. No function panics on
// user-triggered error conditions.

package core

import "errors"

// NOTE ON NAMING & WRAPPING
// -------------------------
// Every message is prefixed with "core: ..." for grep-ability. Call sites
// add context with fmt.Errorf("...: %w", ErrX) so errors.Is keeps matching.
//
// "The problem has no optimum" is NOT an error anywhere in this module:
// it is a nil primal vector (Solve) or Found=false (Solution). The
// sentinels below cover malformed calls only.

var (
	// ErrProblem signals malformed problem data: inconsistent dimensions or
	// a mismatched optional pair (G without h, A without b, and vice versa).
	// Raised at construction or normalization time, before any backend call.
	ErrProblem = errors.New("core: malformed problem")

	// ErrParam signals an invalid configuration option value, e.g. an
	// unknown backend variant name or an option of the wrong type.
	// Raised before or during adapter setup.
	ErrParam = errors.New("core: invalid option value")

	// ErrSolverNotFound signals that the requested solver name is absent
	// from the registry. Kept distinct from a generic lookup failure so
	// callers can branch on "backend unavailable" specifically.
	ErrSolverNotFound = errors.New("core: solver not available")
)
