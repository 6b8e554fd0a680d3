// SPDX-License-Identifier: MIT

// Package core: the canonical QP problem container.
//
// Purpose:
//   - Bundle (P,q,G,h,A,b,lb,ub) behind a constructor that validates every
//     cross-dimension invariant once, so downstream code never re-checks.
//   - Guarantee immutability by construction: no mutator methods exist;
//     rebuilding via NewProblem is the only way to change a problem.
//   - Promote a flat constraint vector (mat.Vector) passed as G or A into a
//     single-row matrix, mirroring what callers of array-based APIs expect.

package core

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Problem is an immutable quadratic program
//
//	minimize    ½ xᵀPx + qᵀx
//	subject to  Gx ≤ h,  Ax = b,  lb ≤ x ≤ ub.
//
// G/h and A/b are optional together; lb and ub are optional independently
// (nil means −∞ / +∞ for every coordinate). All fields are unexported:
// read access goes through the accessors or Unpack.
type Problem struct {
	p      Matrix // n×n symmetric cost matrix
	q      Vector // length-n cost vector
	g      Matrix // m×n inequality matrix, nil when unconstrained
	h      Vector // length-m inequality vector, nil with g
	a      Matrix // k×n equality matrix, nil when unconstrained
	b      Vector // length-k equality vector, nil with a
	lb, ub Vector // length-n box bounds, nil when absent
}

// coerceRow promotes a flat vector into a single-row matrix (1×n). Any
// other representation passes through untouched. This is the Go analogue
// of reshaping a 1-D constraint array, and it is idempotent: the returned
// *mat.Dense is not a mat.Vector, so a second pass is a no-op.
// Complexity: O(n) on promotion, O(1) otherwise.
func coerceRow(m Matrix) Matrix {
	v, ok := m.(mat.Vector)
	if !ok {
		return m
	}
	n := v.Len()
	row := mat.NewDense(1, n, nil)
	for j := 0; j < n; j++ {
		row.Set(0, j, v.AtVec(j))
	}

	return row
}

// NewProblem validates and assembles a Problem.
//
// Validation order (fail-fast, message names the offending matrix):
//  1. P present, square, matching len(q).
//  2. G/h co-presence, then A/b co-presence.
//  3. Flat-vector G or A promoted to a single row.
//  4. Column counts of G and A equal n; len(h), len(b) equal their row
//     counts; len(lb), len(ub) equal n when present.
//
// Every violation returns an error wrapping ErrProblem; nothing is ever
// silently truncated. Inputs are kept by reference and treated as
// read-only from this point on.
// Complexity: O(n) (single-row promotion), otherwise O(1).
func NewProblem(P Matrix, q Vector, G Matrix, h Vector, A Matrix, b Vector, lb, ub Vector) (*Problem, error) {
	if P == nil {
		return nil, fmt.Errorf("P is required: %w", ErrProblem)
	}
	if len(q) == 0 {
		return nil, fmt.Errorf("q is required and must be non-empty: %w", ErrProblem)
	}
	n := len(q)
	pr, pc := P.Dims()
	if pr != pc {
		return nil, fmt.Errorf("P must be square, got %d×%d: %w", pr, pc, ErrProblem)
	}
	if pr != n {
		return nil, fmt.Errorf("P is %d×%d but len(q)=%d: %w", pr, pc, n, ErrProblem)
	}
	if (G == nil) != (h == nil) {
		return nil, fmt.Errorf("G and h must be given together: %w", ErrProblem)
	}
	if (A == nil) != (b == nil) {
		return nil, fmt.Errorf("A and b must be given together: %w", ErrProblem)
	}

	G = coerceRow(G)
	A = coerceRow(A)

	if G != nil {
		gr, gc := G.Dims()
		if gc != n {
			return nil, fmt.Errorf("G has %d columns, expected %d: %w", gc, n, ErrProblem)
		}
		if len(h) != gr {
			return nil, fmt.Errorf("G has %d rows but len(h)=%d: %w", gr, len(h), ErrProblem)
		}
	}
	if A != nil {
		ar, ac := A.Dims()
		if ac != n {
			return nil, fmt.Errorf("A has %d columns, expected %d: %w", ac, n, ErrProblem)
		}
		if len(b) != ar {
			return nil, fmt.Errorf("A has %d rows but len(b)=%d: %w", ar, len(b), ErrProblem)
		}
	}
	if lb != nil && len(lb) != n {
		return nil, fmt.Errorf("len(lb)=%d, expected %d: %w", len(lb), n, ErrProblem)
	}
	if ub != nil && len(ub) != n {
		return nil, fmt.Errorf("len(ub)=%d, expected %d: %w", len(ub), n, ErrProblem)
	}

	return &Problem{p: P, q: q, g: G, h: h, a: A, b: b, lb: lb, ub: ub}, nil
}

// Unpack returns the eight components in canonical order, for adapters
// that want raw access. The returned values alias the stored ones and
// must not be mutated.
func (p *Problem) Unpack() (P Matrix, q Vector, G Matrix, h Vector, A Matrix, b Vector, lb, ub Vector) {
	return p.p, p.q, p.g, p.h, p.a, p.b, p.lb, p.ub
}

// P returns the n×n cost matrix.
func (p *Problem) P() Matrix { return p.p }

// Q returns the length-n cost vector.
func (p *Problem) Q() Vector { return p.q }

// G returns the inequality matrix, nil when the problem has none.
func (p *Problem) G() Matrix { return p.g }

// H returns the inequality vector, nil when the problem has none.
func (p *Problem) H() Vector { return p.h }

// A returns the equality matrix, nil when the problem has none.
func (p *Problem) A() Matrix { return p.a }

// B returns the equality vector, nil when the problem has none.
func (p *Problem) B() Vector { return p.b }

// LB returns the lower box bound, nil meaning −∞ everywhere.
func (p *Problem) LB() Vector { return p.lb }

// UB returns the upper box bound, nil meaning +∞ everywhere.
func (p *Problem) UB() Vector { return p.ub }

// NumVars returns n, the dimension of the decision vector.
func (p *Problem) NumVars() int { return len(p.q) }

// NumIneqs returns m, the number of linear inequality rows (0 when G is nil).
func (p *Problem) NumIneqs() int { return len(p.h) }

// NumEqs returns the number of linear equality rows (0 when A is nil).
func (p *Problem) NumEqs() int { return len(p.b) }

// HasBounds reports whether at least one box bound is present.
func (p *Problem) HasBounds() bool { return p.lb != nil || p.ub != nil }
