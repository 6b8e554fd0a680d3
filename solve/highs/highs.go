// SPDX-License-Identifier: MIT

//go:build (linux || darwin) && (amd64 || arm64)

// Package highs adapts the embedded HiGHS bindings
// (github.com/bartolsthoorn/gohighs) to the qpsolve calling convention.
//
// HiGHS is a sparse solver: the adapter compresses inputs to CSC via
// conv.EnsureCSC and is registered with Dense=false, BoxAware=true — box
// bounds map onto HiGHS column bounds directly, no folding, and box duals
// come back separately in Solution.ZBox.
//
// Warm starting is not wired through the bindings' model API; initvals is
// accepted and ignored. verbose maps onto the solver's output flag.
//
// Recognized options (all others fail with core.ErrParam):
//
//	"time_limit"  float64  solve time limit in seconds
//	"threads"     int      number of solver threads
//	"presolve"    string   presolve mode: "off", "choose" or "on"
//
// P is consumed as a symmetric matrix (its upper triangle is handed to
// HiGHS); pass SymProj upstream when it is not.
package highs

import (
	"fmt"

	gohighs "github.com/bartolsthoorn/gohighs/highs"

	"github.com/katalvlaran/qpsolve/conv"
	"github.com/katalvlaran/qpsolve/core"
)

// Name is the registry key of this backend.
const Name = "highs"

// Backend returns the registration record for the HiGHS adapter.
func Backend() core.Backend {
	return core.Backend{
		Name:         Name,
		Dense:        false,
		BoxAware:     true,
		Solve:        SolveQP,
		SolveProblem: SolveProblem,
	}
}

// SolveQP solves the normalized problem and returns the primal optimum,
// nil for any non-optimal model status.
func SolveQP(p *core.Problem, initvals core.Vector, verbose bool, opts core.Options) (core.Vector, error) {
	sol, err := solve(p, initvals, verbose, opts)
	if err != nil || sol == nil || !sol.Found {
		return nil, err
	}

	return sol.X, nil
}

// SolveProblem is the solution-rich variant, mapping HiGHS row duals to
// y/z and column duals (reduced costs) to zbox under the canonical sign
// convention.
func SolveProblem(p *core.Problem, initvals core.Vector, verbose bool, opts core.Options) (*core.Solution, error) {
	return solve(p, initvals, verbose, opts)
}

func solve(p *core.Problem, _ core.Vector, verbose bool, opts core.Options) (*core.Solution, error) {
	solveOpts, err := solveOptions(verbose, opts)
	if err != nil {
		return nil, err
	}

	n := p.NumVars()
	m := p.NumIneqs()

	model := gohighs.Model{ColCosts: p.Q()}

	// Box bounds map onto column bounds; absent sides default to ±∞.
	if lb := p.LB(); lb != nil {
		model.ColLower = lb
	}
	if ub := p.UB(); ub != nil {
		model.ColUpper = ub
	}

	// Hessian: upper triangle of symmetric P, as (row, col, val) triplets.
	conv.EnsureCSC(p.P(), "P").DoNonZero(func(i, j int, v float64) {
		if i <= j {
			model.Hessian = append(model.Hessian, gohighs.Nonzero{Row: i, Col: j, Val: v})
		}
	})

	// Row block [G; A] with ranges [−∞, h] and [b, b].
	if G := p.G(); G != nil {
		conv.EnsureCSC(G, "G").DoNonZero(func(i, j int, v float64) {
			model.ConstMatrix = append(model.ConstMatrix, gohighs.Nonzero{Row: i, Col: j, Val: v})
		})
		for i := 0; i < m; i++ {
			model.RowLower = append(model.RowLower, gohighs.NegInf())
			model.RowUpper = append(model.RowUpper, p.H()[i])
		}
	}
	if A := p.A(); A != nil {
		conv.EnsureCSC(A, "A").DoNonZero(func(i, j int, v float64) {
			model.ConstMatrix = append(model.ConstMatrix, gohighs.Nonzero{Row: m + i, Col: j, Val: v})
		})
		for i := 0; i < p.NumEqs(); i++ {
			model.RowLower = append(model.RowLower, p.B()[i])
			model.RowUpper = append(model.RowUpper, p.B()[i])
		}
	}

	sol, err := model.Solve(solveOpts...)
	if err != nil {
		return nil, err // backend-internal failure, propagated unchanged
	}

	out := &core.Solution{Problem: p, Extras: map[string]any{"status": sol.Status, "objective": sol.Objective}}
	if !sol.IsOptimal() {
		return out, nil
	}
	out.Found = true
	out.X = cloneVec(sol.ColValues[:n])

	// HiGHS stationarity is Px + q = Aᵀλ + ν; the canonical convention is
	// Px + q + Gᵀz + Aᵀy = 0, so every reported dual flips sign.
	if len(sol.RowDuals) >= m+p.NumEqs() {
		out.Z = negate(sol.RowDuals[:m])
		out.Y = negate(sol.RowDuals[m : m+p.NumEqs()])
	}
	if len(sol.ColDuals) >= n && p.HasBounds() {
		out.ZBox = negate(sol.ColDuals[:n])
	}

	return out, nil
}

// solveOptions translates the pass-through option map onto the bindings'
// SolveOption list, rejecting unknown keys and wrong types with ErrParam.
// verbose maps onto the solver output flag.
func solveOptions(verbose bool, opts core.Options) ([]gohighs.SolveOption, error) {
	out := []gohighs.SolveOption{gohighs.WithOutput(verbose)}
	for key, val := range opts {
		switch key {
		case "time_limit":
			fv, ok := asFloat(val)
			if !ok {
				return nil, fmt.Errorf("highs: option %q wants a float, got %T: %w", key, val, core.ErrParam)
			}
			out = append(out, gohighs.WithTimeLimit(fv))
		case "threads":
			iv, ok := asInt(val)
			if !ok {
				return nil, fmt.Errorf("highs: option %q wants an int, got %T: %w", key, val, core.ErrParam)
			}
			out = append(out, gohighs.WithThreads(iv))
		case "presolve":
			sv, ok := val.(string)
			if !ok {
				return nil, fmt.Errorf("highs: option %q wants a string, got %T: %w", key, val, core.ErrParam)
			}
			out = append(out, gohighs.WithPresolve(sv))
		default:
			return nil, fmt.Errorf("highs: unknown option %q: %w", key, core.ErrParam)
		}
	}

	return out, nil
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

func cloneVec(v []float64) core.Vector {
	out := make(core.Vector, len(v))
	copy(out, v)

	return out
}

func negate(v []float64) core.Vector {
	if len(v) == 0 {
		return nil
	}
	out := make(core.Vector, len(v))
	for i, x := range v {
		out[i] = -x
	}

	return out
}
