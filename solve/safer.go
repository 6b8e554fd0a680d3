// SPDX-License-Identifier: MIT

// Package solve: "safer" QP reformulation.
//
// Given an inequality-only QP (P,q,G,h), introduce one slack variable per
// inequality row and solve over the augmented state [x; s]:
//
//	minimize    ½ xᵀPx + qᵀx + ½·reg·‖s‖² − sw·1ᵀs
//	subject to  [0 I][x;s] ≤ 0        (s ≤ 0)
//	            [G −I][x;s] = h       (s = Gx − h)
//
// The slack equals the signed constraint residual Gx − h; the −sw·1ᵀs
// term puts a linear price on it, trading the original objective against
// proximity to the constraint surface. The construction appears in
// optimally-safe tension distribution (Borgstrom et al., IEEE T-RO 2009)
// and inverse-kinematics QP formulations (Nozawa et al., Humanoids 2016).

package solve

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qpsolve/core"
)

// SolveSafer solves the slack-augmented QP and returns the x-portion of
// its optimum, or nil when the augmented program is infeasible.
//
// sw is the interior-pull weight (must be positive): larger values move
// the solution further from the constraint boundary at the expense of the
// original objective. reg regularizes the slack block of the cost; pass 0
// for DefaultSaferReg, increase on numerical instability.
//
// The reformulation stacks dense blocks, so the target backend must be
// registered as dense-capable; selecting a sparse-only backend fails with
// core.ErrParam. opts.Solver empty means DefaultDenseSolver.
func SolveSafer(reg *Registry, P *mat.Dense, q core.Vector, G *mat.Dense, h core.Vector, sw, regWeight float64, opts *Options) (core.Vector, error) {
	if reg == nil {
		return nil, fmt.Errorf("solve: nil registry: %w", core.ErrParam)
	}
	if sw <= 0 {
		return nil, fmt.Errorf("solve: safer QP needs sw > 0, got %g: %w", sw, core.ErrParam)
	}
	if regWeight < 0 {
		return nil, fmt.Errorf("solve: safer QP needs reg ≥ 0, got %g: %w", regWeight, core.ErrParam)
	}
	if regWeight == 0 {
		regWeight = DefaultSaferReg
	}
	if P == nil || G == nil {
		return nil, fmt.Errorf("solve: safer QP needs P, q, G and h: %w", core.ErrProblem)
	}

	o := Options{Solver: DefaultDenseSolver}
	if opts != nil {
		o = *opts
		if o.Solver == "" {
			o.Solver = DefaultDenseSolver
		}
	}
	be, ok := reg.Lookup(o.Solver)
	if !ok {
		return nil, fmt.Errorf("solve: solver %q: %w", o.Solver, core.ErrSolverNotFound)
	}
	if !be.Dense {
		return nil, fmt.Errorf("solve: safer QP is restricted to dense backends, %q is not: %w", o.Solver, core.ErrParam)
	}

	n := len(q)
	m := len(h)
	if pr, pc := P.Dims(); pr != n || pc != n {
		return nil, fmt.Errorf("solve: safer QP: P is %d×%d but len(q)=%d: %w", pr, pc, n, core.ErrProblem)
	}
	if gr, gc := G.Dims(); gr != m || gc != n {
		return nil, fmt.Errorf("solve: safer QP: G is %d×%d, expected %d×%d: %w", gr, gc, m, n, core.ErrProblem)
	}

	// Cost over [x; s]: P2 = [[P, 0], [0, reg·I]], q2 = [q, −sw·1].
	P2 := mat.NewDense(n+m, n+m, nil)
	P2.Slice(0, n, 0, n).(*mat.Dense).Copy(P)
	for i := 0; i < m; i++ {
		P2.Set(n+i, n+i, regWeight)
	}
	q2 := make(core.Vector, n+m)
	copy(q2, q)
	for i := 0; i < m; i++ {
		q2[n+i] = -sw
	}

	// Inequality [0 I][x;s] ≤ 0 keeps slacks non-positive.
	G2 := mat.NewDense(m, n+m, nil)
	for i := 0; i < m; i++ {
		G2.Set(i, n+i, 1)
	}
	h2 := make(core.Vector, m)

	// Equality [G −I][x;s] = h replaces the original inequality.
	A2 := mat.NewDense(m, n+m, nil)
	A2.Slice(0, m, 0, n).(*mat.Dense).Copy(G)
	for i := 0; i < m; i++ {
		A2.Set(i, n+i, -1)
	}

	p2, err := core.NewProblem(P2, q2, G2, h2, A2, h, nil, nil)
	if err != nil {
		return nil, err
	}

	x, err := Solve(reg, p2, &o)
	if err != nil || x == nil {
		return nil, err
	}

	// Only the x-portion of the augmented optimum is the caller's answer.
	out := make(core.Vector, n)
	copy(out, x[:n])

	return out, nil
}
