// SPDX-License-Identifier: MIT

// Package norm: box-bound folding.
//
// Folding rewrites lb ≤ x ≤ ub as identity rows appended below G:
//
//	[ G ]        [ h  ]
//	[-I ] x  ≤   [-lb ]     (rows for the finite lb entries)
//	[ I ]        [ ub ]     (rows for the finite ub entries)
//
// Infinite bound entries constrain nothing and are skipped entirely, so
// no backend ever receives an infinite right-hand side. Dual indexing
// over the folded rows therefore covers finite entries only: G rows
// first, then the finite-lb block, then the finite-ub block, each in
// ascending variable order.

package norm

import (
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qpsolve/core"
)

// CombinedInequalities returns the problem's inequality system with box
// bounds folded in. Four cases:
//
//   - no G, no finite bound entries → (nil, nil) or (G, h) unchanged
//   - G only                        → (G, h) unchanged, no copy
//   - finite bounds, dense or absent G → fresh *mat.Dense stack
//   - finite bounds, sparse G → fresh *sparse.CSC stack (representation preserved)
//
// The originating problem is never mutated.
// Complexity: O((m+2n)·n) dense, O(nnz+n) sparse.
func CombinedInequalities(p *core.Problem) (core.Matrix, core.Vector) {
	G, h, lb, ub := p.G(), p.H(), p.LB(), p.UB()
	if lb == nil && ub == nil {
		return G, h
	}
	n := p.NumVars()
	m := p.NumIneqs()

	lbCols := finiteCols(lb, -1)
	ubCols := finiteCols(ub, +1)
	if len(lbCols) == 0 && len(ubCols) == 0 {
		return G, h
	}
	rows := m + len(lbCols) + len(ubCols)

	hh := make(core.Vector, 0, rows)
	hh = append(hh, h...)
	for _, j := range lbCols {
		hh = append(hh, -lb[j])
	}
	for _, j := range ubCols {
		hh = append(hh, ub[j])
	}

	if core.IsSparse(G) {
		return stackSparse(G, lbCols, ubCols, rows, m, n), hh
	}

	return stackDense(G, lbCols, ubCols, rows, m, n), hh
}

// finiteCols returns the indices whose bound entry is finite in the
// constraining direction (sign -1 for lb, +1 for ub). NaN never appears:
// NewProblem accepts the vectors as-is and a NaN bound is the caller's
// bug either way.
func finiteCols(v core.Vector, sign int) []int {
	if v == nil {
		return nil
	}
	cols := make([]int, 0, len(v))
	for j, x := range v {
		if !math.IsInf(x, sign) {
			cols = append(cols, j)
		}
	}

	return cols
}

// stackDense materializes [G; -I; I] rows as a dense matrix, identity
// rows restricted to the finite bound entries.
func stackDense(G core.Matrix, lbCols, ubCols []int, rows, m, n int) *mat.Dense {
	out := mat.NewDense(rows, n, nil)
	if G != nil {
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				out.Set(i, j, G.At(i, j))
			}
		}
	}
	for idx, j := range lbCols {
		out.Set(m+idx, j, -1)
	}
	off := m + len(lbCols)
	for idx, j := range ubCols {
		out.Set(off+idx, j, 1)
	}

	return out
}

// stackSparse materializes the folded system in compressed-column form
// without densifying G. Per column j the row indices are G's (already
// < m), then its finite-lb row, then its finite-ub row — ascending by
// construction, so the CSC arrays stay canonical.
func stackSparse(G core.Matrix, lbCols, ubCols []int, rows, m, n int) *sparse.CSC {
	type entry struct {
		row int
		val float64
	}
	cols := make([][]entry, n)
	if nz, ok := G.(interface {
		DoNonZero(fn func(i, j int, v float64))
	}); ok {
		nz.DoNonZero(func(i, j int, v float64) {
			cols[j] = append(cols[j], entry{row: i, val: v})
		})
	}
	for idx, j := range lbCols {
		cols[j] = append(cols[j], entry{row: m + idx, val: -1})
	}
	off := m + len(lbCols)
	for idx, j := range ubCols {
		cols[j] = append(cols[j], entry{row: off + idx, val: 1})
	}

	indptr := make([]int, n+1)
	ind := make([]int, 0, rows)
	data := make([]float64, 0, rows)
	for j := 0; j < n; j++ {
		for _, e := range cols[j] {
			ind = append(ind, e.row)
			data = append(data, e.val)
		}
		indptr[j+1] = len(ind)
	}

	return sparse.NewCSC(rows, n, indptr, ind, data)
}
