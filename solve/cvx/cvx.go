// SPDX-License-Identifier: MIT

// Package cvx adapts the CVXOPT Go port (github.com/hrautila/cvx) to the
// qpsolve calling convention.
//
// CVX is a dense cone solver: the adapter densifies sparse inputs via
// conv.EnsureDense and is registered with Dense=true, BoxAware=false —
// the dispatcher folds box bounds into Gx ≤ h before the adapter runs.
//
// Warm starting is not supported by the underlying port's Qp entry point;
// initvals is accepted and ignored.
//
// Recognized options (all others fail with core.ErrParam):
//
//	"maxiters"    int      iteration cap
//	"abstol"      float64  absolute tolerance
//	"reltol"      float64  relative tolerance
//	"feastol"     float64  feasibility tolerance
//	"refinement"  int      iterative refinement steps
package cvx

import (
	"fmt"

	gocvx "github.com/hrautila/cvx"
	cvxmat "github.com/hrautila/matrix"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qpsolve/conv"
	"github.com/katalvlaran/qpsolve/core"
)

// Name is the registry key of this backend.
const Name = "cvx"

// Backend returns the registration record for the CVX adapter.
func Backend() core.Backend {
	return core.Backend{
		Name:         Name,
		Dense:        true,
		BoxAware:     false,
		Solve:        SolveQP,
		SolveProblem: SolveProblem,
	}
}

// SolveQP solves the normalized problem and returns the primal optimum,
// nil when CVX reports a non-optimal status.
func SolveQP(p *core.Problem, initvals core.Vector, verbose bool, opts core.Options) (core.Vector, error) {
	sol, err := solve(p, initvals, verbose, opts)
	if err != nil || sol == nil || !sol.Found {
		return nil, err
	}

	return sol.X, nil
}

// SolveProblem is the solution-rich variant, reporting equality duals y
// and inequality duals z. Box duals never appear separately here: by the
// time this adapter runs, bounds live inside Gx ≤ h.
func SolveProblem(p *core.Problem, initvals core.Vector, verbose bool, opts core.Options) (*core.Solution, error) {
	return solve(p, initvals, verbose, opts)
}

func solve(p *core.Problem, _ core.Vector, verbose bool, opts core.Options) (*core.Solution, error) {
	solopts, err := solverOptions(verbose, opts)
	if err != nil {
		return nil, err
	}

	n := p.NumVars()
	P := toCvx(conv.EnsureDense(p.P(), "P"))
	q := cvxmat.FloatVector(cloneVec(p.Q()))

	// The cone solver wants at least one inequality row; synthesize the
	// vacuous 0ᵀx ≤ 1 when the normalized problem has none.
	var G *cvxmat.FloatMatrix
	var h *cvxmat.FloatMatrix
	if p.G() != nil {
		G = toCvx(conv.EnsureDense(p.G(), "G"))
		h = cvxmat.FloatVector(cloneVec(p.H()))
	} else {
		G = cvxmat.FloatZeros(1, n)
		h = cvxmat.FloatNew(1, 1, []float64{1.0})
	}

	var A *cvxmat.FloatMatrix
	var b *cvxmat.FloatMatrix
	if p.A() != nil {
		A = toCvx(conv.EnsureDense(p.A(), "A"))
		b = cvxmat.FloatVector(cloneVec(p.B()))
	}

	sol, err := gocvx.Qp(P, q, G, h, A, b, solopts, nil)
	if err != nil {
		return nil, err // backend-internal failure, propagated unchanged
	}

	out := &core.Solution{Problem: p, Extras: map[string]any{"status": sol.Status}}
	if sol.Status != gocvx.Optimal {
		return out, nil
	}
	out.Found = true
	out.X = floats(sol.Result.At("x")[0])
	if p.G() != nil {
		// The dual of a synthesized vacuous row would be meaningless,
		// so z is only reported for genuine inequalities.
		out.Z = floats(sol.Result.At("z")[0])
	}
	if p.NumEqs() > 0 {
		out.Y = floats(sol.Result.At("y")[0])
	}

	return out, nil
}

// solverOptions translates the pass-through option map onto CVX's
// SolverOptions, rejecting unknown keys and wrong types with ErrParam.
func solverOptions(verbose bool, opts core.Options) (*gocvx.SolverOptions, error) {
	so := &gocvx.SolverOptions{MaxIter: 100, ShowProgress: verbose}
	for key, val := range opts {
		switch key {
		case "maxiters":
			iv, ok := asInt(val)
			if !ok {
				return nil, fmt.Errorf("cvx: option %q wants an int, got %T: %w", key, val, core.ErrParam)
			}
			so.MaxIter = iv
		case "refinement":
			iv, ok := asInt(val)
			if !ok {
				return nil, fmt.Errorf("cvx: option %q wants an int, got %T: %w", key, val, core.ErrParam)
			}
			so.Refinement = iv
		case "abstol", "reltol", "feastol":
			fv, ok := asFloat(val)
			if !ok {
				return nil, fmt.Errorf("cvx: option %q wants a float, got %T: %w", key, val, core.ErrParam)
			}
			switch key {
			case "abstol":
				so.AbsTol = fv
			case "reltol":
				so.RelTol = fv
			default:
				so.FeasTol = fv
			}
		default:
			return nil, fmt.Errorf("cvx: unknown option %q: %w", key, core.ErrParam)
		}
	}

	return so, nil
}

// toCvx rebuilds a gonum dense matrix as a CVX FloatMatrix, row table by
// row table so storage-order differences cannot bite.
func toCvx(d *mat.Dense) *cvxmat.FloatMatrix {
	r, _ := d.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = d.RawRowView(i)
	}

	return cvxmat.FloatMatrixFromTable(rows)
}

// cloneVec copies a caller-owned vector before handing it to CVX, which
// may adopt the backing slice.
func cloneVec(v core.Vector) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// floats copies a CVX column vector into a plain slice.
func floats(v *cvxmat.FloatMatrix) core.Vector {
	if v == nil {
		return nil
	}
	src := v.FloatArray()
	out := make(core.Vector, len(src))
	copy(out, src)

	return out
}

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	default:
		return 0, false
	}
}
