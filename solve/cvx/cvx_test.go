package cvx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qpsolve/core"
	"github.com/katalvlaran/qpsolve/solve"
	"github.com/katalvlaran/qpsolve/solve/cvx"
)

const tol = 1e-5

func registry(t *testing.T) *solve.Registry {
	t.Helper()
	reg, err := solve.NewRegistry(cvx.Backend())
	require.NoError(t, err)

	return reg
}

// TestBackend_Capabilities pins the registration record: dense, not
// box-aware, both entry points wired.
func TestBackend_Capabilities(t *testing.T) {
	be := cvx.Backend()
	assert.Equal(t, cvx.Name, be.Name)
	assert.True(t, be.Dense)
	assert.False(t, be.BoxAware)
	assert.NotNil(t, be.Solve)
	assert.NotNil(t, be.SolveProblem)
	assert.True(t, be.Callable())
}

// TestSolveQP_Unconstrained verifies the closed-form optimum x = -P⁻¹q of
// an unconstrained strictly convex instance.
func TestSolveQP_Unconstrained(t *testing.T) {
	P := mat.NewDense(2, 2, []float64{2, 0, 0, 2})
	p, err := core.NewProblem(P, core.Vector{-2, 4}, nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)

	x, err := solve.Solve(registry(t), p, nil)
	require.NoError(t, err)
	require.Len(t, x, 2)
	assert.InDelta(t, 1.0, x[0], tol)
	assert.InDelta(t, -2.0, x[1], tol)
}

// TestSolveQP_FullyConstrained solves the classic 3-variable instance
//
//	P = MᵀM, q = (3,2,3)·M, G = M, h = (3,2,-2), 1ᵀx = 1
//
// with known optimum (0.30769231, -0.69230769, 1.38461538).
func TestSolveQP_FullyConstrained(t *testing.T) {
	P := mat.NewDense(3, 3, []float64{65, -22, -16, -22, 14, 7, -16, 7, 5})
	q := core.Vector{-13, 15, 7}
	G := mat.NewDense(3, 3, []float64{1, 2, 0, -8, 3, 2, 0, 1, 1})
	h := core.Vector{3, 2, -2}
	A := mat.NewVecDense(3, []float64{1, 1, 1})
	b := core.Vector{1}

	p, err := core.NewProblem(P, q, G, h, A, b, nil, nil)
	require.NoError(t, err)

	x, err := solve.Solve(registry(t), p, nil)
	require.NoError(t, err)
	require.Len(t, x, 3)
	assert.InDelta(t, 0.30769231, x[0], tol)
	assert.InDelta(t, -0.69230769, x[1], tol)
	assert.InDelta(t, 1.38461538, x[2], tol)
}

// TestSolveQP_FoldedBounds verifies a box-bounded instance reaches the
// adapter through the dispatcher's folding path and clips correctly.
func TestSolveQP_FoldedBounds(t *testing.T) {
	P := mat.NewDense(2, 2, []float64{2, 0, 0, 2})
	// Unconstrained optimum (3, -3); box clips to (1, -1).
	p, err := core.NewProblem(P, core.Vector{-6, 6}, nil, nil, nil, nil,
		core.Vector{-1, -1}, core.Vector{1, 1})
	require.NoError(t, err)

	x, err := solve.Solve(registry(t), p, nil)
	require.NoError(t, err)
	require.Len(t, x, 2)
	assert.InDelta(t, 1.0, x[0], 1e-4)
	assert.InDelta(t, -1.0, x[1], 1e-4)
}

// TestSolveQP_PartiallyInfiniteBounds verifies folding of half-open
// boxes: only the finite entries become inequality rows, so nothing
// infinite ever reaches the interior-point backend.
func TestSolveQP_PartiallyInfiniteBounds(t *testing.T) {
	P := mat.NewDense(2, 2, []float64{2, 0, 0, 2})
	// Unconstrained optimum (3, -3); x₀ ≤ 1 and x₁ ≥ -1 clip to (1, -1).
	lb := core.Vector{core.NegInf, -1}
	ub := core.Vector{1, core.PosInf}
	p, err := core.NewProblem(P, core.Vector{-6, 6}, nil, nil, nil, nil, lb, ub)
	require.NoError(t, err)

	x, err := solve.Solve(registry(t), p, nil)
	require.NoError(t, err)
	require.Len(t, x, 2)
	assert.InDelta(t, 1.0, x[0], 1e-4)
	assert.InDelta(t, -1.0, x[1], 1e-4)
}

// TestSolveProblem_Duals verifies the solution-rich path reports the
// equality dual of an active constraint. For
//
//	minimize ½‖x‖², 1ᵀx = 2  (n = 2)
//
// the optimum is x = (1, 1) with stationarity x + y·1 = 0, so y = -1.
func TestSolveProblem_Duals(t *testing.T) {
	P := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	A := mat.NewVecDense(2, []float64{1, 1})
	p, err := core.NewProblem(P, core.Vector{0, 0}, nil, nil, A, core.Vector{2}, nil, nil)
	require.NoError(t, err)

	sol, err := solve.SolveProblem(registry(t), p, nil)
	require.NoError(t, err)
	require.NotNil(t, sol)
	require.True(t, sol.Found)

	assert.InDelta(t, 1.0, sol.X[0], tol)
	assert.InDelta(t, 1.0, sol.X[1], tol)
	require.Len(t, sol.Y, 1)
	assert.InDelta(t, -1.0, sol.Y[0], 1e-4)
	assert.Nil(t, sol.Z, "no genuine inequality rows, no z")
	assert.Contains(t, sol.Extras, "status")
}

// TestSolveQP_Infeasible verifies an infeasible instance comes back as
// (nil, nil), never as an error.
func TestSolveQP_Infeasible(t *testing.T) {
	P := mat.NewDense(1, 1, []float64{1})
	// x ≤ -1 and -x ≤ -1 cannot hold together.
	G := mat.NewDense(2, 1, []float64{1, -1})
	p, err := core.NewProblem(P, core.Vector{0}, G, core.Vector{-1, -1}, nil, nil, nil, nil)
	require.NoError(t, err)

	x, err := solve.Solve(registry(t), p, nil)
	assert.NoError(t, err)
	assert.Nil(t, x)
}

// TestSolveQP_OptionValidation verifies unknown keys and wrong value
// types fail with ErrParam, while recognized options pass through.
func TestSolveQP_OptionValidation(t *testing.T) {
	P := mat.NewDense(1, 1, []float64{2})
	p, err := core.NewProblem(P, core.Vector{-2}, nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	reg := registry(t)

	_, err = solve.Solve(reg, p, &solve.Options{Extra: core.Options{"bogus": 1}})
	assert.ErrorIs(t, err, core.ErrParam)
	assert.Contains(t, err.Error(), `"bogus"`)

	_, err = solve.Solve(reg, p, &solve.Options{Extra: core.Options{"maxiters": "ten"}})
	assert.ErrorIs(t, err, core.ErrParam, "maxiters wants an int")

	_, err = solve.Solve(reg, p, &solve.Options{Extra: core.Options{"abstol": "tight"}})
	assert.ErrorIs(t, err, core.ErrParam, "abstol wants a float")

	x, err := solve.Solve(reg, p, &solve.Options{Extra: core.Options{
		"maxiters":   50,
		"abstol":     1e-8,
		"reltol":     1e-7,
		"feastol":    1e-8,
		"refinement": 1,
	}})
	require.NoError(t, err)
	require.Len(t, x, 1)
	assert.InDelta(t, 1.0, x[0], tol)
}

// TestSolveSafer_InteriorOptimum runs the slack reformulation end to end
// on the dense backend: for P = I (n = 2), q = 0, G = I, h = 1,
// sw = 0.1, reg = 1e-8 the reformulated optimum is x ≈ (0.1, 0.1),
// strictly inside {x : Gx < h}.
func TestSolveSafer_InteriorOptimum(t *testing.T) {
	P := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	G := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	x, err := solve.SolveSafer(registry(t), P, core.Vector{0, 0}, G, core.Vector{1, 1}, 0.1, 1e-8, nil)
	require.NoError(t, err)
	require.Len(t, x, 2)
	for i := range x {
		assert.InDelta(t, 0.1, x[i], 1e-4)
		assert.Less(t, x[i], 1.0, "strictly inside the constraint")
	}
}
