package norm_test

import (
	"testing"

	"github.com/james-bowman/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qpsolve/core"
	"github.com/katalvlaran/qpsolve/norm"
)

// TestSymmetrize_Dense verifies ½(M+Mᵀ) on a dense asymmetric matrix and
// that the input is left untouched.
func TestSymmetrize_Dense(t *testing.T) {
	M := mat.NewDense(2, 2, []float64{1, 4, 0, 3})

	S, err := norm.Symmetrize(M)
	require.NoError(t, err)

	assert.Equal(t, 1.0, S.At(0, 0))
	assert.Equal(t, 2.0, S.At(0, 1), "off-diagonal averages to (4+0)/2")
	assert.Equal(t, 2.0, S.At(1, 0))
	assert.Equal(t, 3.0, S.At(1, 1))

	// Input untouched.
	assert.Equal(t, 4.0, M.At(0, 1))
	assert.Equal(t, 0.0, M.At(1, 0))
}

// TestSymmetrize_Idempotent checks that a symmetric matrix round-trips
// bit-for-bit through the projection.
func TestSymmetrize_Idempotent(t *testing.T) {
	S := mat.NewDense(3, 3, []float64{2, 1, 0, 1, 2, 1, 0, 1, 2})

	out, err := norm.Symmetrize(S)
	require.NoError(t, err)
	assert.True(t, mat.Equal(S, out), "projection of a symmetric matrix is the identity")
}

// TestSymmetrize_SparsePreservesFormat verifies sparse inputs stay in
// their compressed format and carry the averaged values.
func TestSymmetrize_SparsePreservesFormat(t *testing.T) {
	// M = [[1, 4], [0, 3]] in CSC.
	csc := sparse.NewCSC(2, 2, []int{0, 1, 3}, []int{0, 0, 1}, []float64{1, 4, 3})

	out, err := norm.Symmetrize(csc)
	require.NoError(t, err)
	outCSC, ok := out.(*sparse.CSC)
	require.True(t, ok, "CSC in, CSC out")
	assert.Equal(t, 2.0, outCSC.At(0, 1))
	assert.Equal(t, 2.0, outCSC.At(1, 0))
	assert.Equal(t, 1.0, outCSC.At(0, 0))

	// Same through CSR.
	csr := csc.ToCSR()
	out2, err := norm.Symmetrize(csr)
	require.NoError(t, err)
	outCSR, ok := out2.(*sparse.CSR)
	require.True(t, ok, "CSR in, CSR out")
	assert.Equal(t, 2.0, outCSR.At(1, 0))
}

// TestSymmetrize_Rejects covers nil and non-square inputs.
func TestSymmetrize_Rejects(t *testing.T) {
	_, err := norm.Symmetrize(nil)
	assert.ErrorIs(t, err, core.ErrProblem)

	_, err = norm.Symmetrize(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, core.ErrProblem)
}
