// SPDX-License-Identifier: MIT

// Package conv: on-demand representation conversions.
//
// Implementation notes:
//   - Dense→sparse scans in the target's storage order (column-major for
//     CSC, row-major for CSR), so index arrays come out sorted and no
//     post-sort is needed. Exact zeros are skipped, as in every compressed
//     builder (cf. HiGHS-style triplet ingestion).
//   - Sparse→sparse re-compression delegates to the sparse library's own
//     converters, which keep structural zeros.
//   - All converters accept nil and return nil: optional G/A flow through
//     adapters without guards.

package conv

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qpsolve/core"
)

// EnsureCSC returns m in compressed-sparse-column form. Inputs already in
// CSC pass through untouched; CSR re-compresses silently; anything else
// (dense, views) is scanned column-major, emitting the one-time advisory
// for this call site. label names the operand in the advisory ("P", "G", ...).
// Complexity: O(1) for CSC, O(nnz) for CSR, O(r·c) otherwise.
func EnsureCSC(m core.Matrix, label string) *sparse.CSC {
	switch t := m.(type) {
	case nil:
		return nil
	case *sparse.CSC:
		return t
	case *sparse.CSR:
		return t.ToCSC()
	default:
		warnSparseConversion(label, 2)

		return cscFrom(m)
	}
}

// EnsureCSR returns m in compressed-sparse-row form, mirroring EnsureCSC.
// Complexity: O(1) for CSR, O(nnz) for CSC, O(r·c) otherwise.
func EnsureCSR(m core.Matrix, label string) *sparse.CSR {
	switch t := m.(type) {
	case nil:
		return nil
	case *sparse.CSR:
		return t
	case *sparse.CSC:
		return t.ToCSR()
	default:
		warnSparseConversion(label, 2)

		return csrFrom(m)
	}
}

// EnsureDense returns m as a dense matrix for dense-only backends. Dense
// inputs pass through; everything else is copied element-for-element in
// logical index order (bit-for-bit values, no reordering). The copy is
// traced at debug level only: densification is the expected path for
// dense backends, not a smell worth a warning.
// Complexity: O(1) for dense, O(r·c) otherwise.
func EnsureDense(m core.Matrix, label string) *mat.Dense {
	switch t := m.(type) {
	case nil:
		return nil
	case *mat.Dense:
		return t
	default:
		logger.Debug("materializing dense copy", zapOperand(label))

		return mat.DenseCopyOf(m)
	}
}

// cscFrom compresses any mat.Matrix column-major. Row indices within each
// column are emitted in increasing order by construction.
func cscFrom(m core.Matrix) *sparse.CSC {
	r, c := m.Dims()
	indptr := make([]int, c+1)
	ind := make([]int, 0, r)
	data := make([]float64, 0, r)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if v := m.At(i, j); v != 0 {
				ind = append(ind, i)
				data = append(data, v)
			}
		}
		indptr[j+1] = len(ind)
	}

	return sparse.NewCSC(r, c, indptr, ind, data)
}

// csrFrom compresses any mat.Matrix row-major, the CSR mirror of cscFrom.
func csrFrom(m core.Matrix) *sparse.CSR {
	r, c := m.Dims()
	indptr := make([]int, r+1)
	ind := make([]int, 0, c)
	data := make([]float64, 0, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); v != 0 {
				ind = append(ind, j)
				data = append(data, v)
			}
		}
		indptr[i+1] = len(ind)
	}

	return sparse.NewCSR(r, c, indptr, ind, data)
}
