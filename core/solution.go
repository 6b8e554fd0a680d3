// SPDX-License-Identifier: MIT

package core

// Solution is the canonical result of one solve attempt. It is created
// fresh per call, never mutated after being returned, and owned solely by
// the caller.
//
// DUAL-SIGN CONVENTION (canonical, every adapter must conform):
//
//	L(x,y,z,zᵇ) = ½xᵀPx + qᵀx + yᵀ(Ax−b) + zᵀ(Gx−h) + zᵇᵀ·r(x)
//
// where z ≥ 0 componentwise and r(x) is the active-bound residual:
// ZBox[i] > 0 when ub[i] is active (multiplier of x−ub), ZBox[i] < 0 when
// lb[i] is active (negated multiplier of lb−x), exactly 0 when neither
// bound binds. Equality duals y are unrestricted in sign. Adapters whose
// native convention differs negate on the way out.
type Solution struct {
	// Problem is the originating problem, kept for dimension queries and
	// residual computations. Never nil on a Solution returned by this
	// module.
	Problem *Problem

	// Found is true iff the backend reported an optimal/converged status.
	// X, Y, Z, ZBox are meaningful only when Found is true.
	Found bool

	// X is the primal solution, length n.
	X Vector

	// Y holds the equality-constraint duals, length NumEqs.
	Y Vector

	// Z holds the inequality-constraint duals, length NumIneqs, z ≥ 0.
	Z Vector

	// ZBox holds box-constraint duals, length n, populated only by
	// box-aware backends that keep lb/ub distinct from G/h. When bounds
	// were folded into the inequality system, box duals appear inside Z
	// instead and ZBox stays nil.
	ZBox Vector

	// Extras carries backend-specific auxiliary data (iteration counts,
	// timings, raw status strings). Opaque to this layer.
	Extras map[string]any
}
