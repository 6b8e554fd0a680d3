// SPDX-License-Identifier: MIT

package norm

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qpsolve/core"
)

// Symmetrize returns ½(M+Mᵀ) as a fresh matrix, leaving M untouched.
// The projection is idempotent: for symmetric S, ½(S+Sᵀ) reproduces S
// exactly (x+x and 0.5·y are both exact in IEEE-754, barring overflow).
//
// Representation is preserved: dense in, dense out; CSC/CSR in, same
// compressed format out. Returns an error wrapping core.ErrProblem when M
// is not square.
// Complexity: O(n²) dense, O(nnz) sparse.
func Symmetrize(M core.Matrix) (core.Matrix, error) {
	if M == nil {
		return nil, fmt.Errorf("norm: Symmetrize: P is nil: %w", core.ErrProblem)
	}
	r, c := M.Dims()
	if r != c {
		return nil, fmt.Errorf("norm: Symmetrize: P must be square, got %d×%d: %w", r, c, core.ErrProblem)
	}

	switch t := M.(type) {
	case *sparse.CSC:
		return symmetrizeDOK(t, r).ToCSC(), nil
	case *sparse.CSR:
		return symmetrizeDOK(t, r).ToCSR(), nil
	default:
		// Dense and dense-like (views): out = 0.5·(M + Mᵀ).
		out := mat.NewDense(r, r, nil)
		out.Add(M, M.T())
		out.Scale(0.5, out)

		return out, nil
	}
}

// nonZeroDoer is satisfied by both compressed formats.
type nonZeroDoer interface {
	core.Matrix
	DoNonZero(fn func(i, j int, v float64))
}

// symmetrizeDOK accumulates ½·v at (i,j) and (j,i) for every stored
// entry, in a DOK scratch that the caller re-compresses. Stored zeros
// survive: the DOK keeps explicitly-set keys.
func symmetrizeDOK(m nonZeroDoer, n int) *sparse.DOK {
	dok := sparse.NewDOK(n, n)
	m.DoNonZero(func(i, j int, v float64) {
		half := 0.5 * v
		dok.Set(i, j, dok.At(i, j)+half)
		dok.Set(j, i, dok.At(j, i)+half)
	})

	return dok
}
