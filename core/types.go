// SPDX-License-Identifier: MIT

// Package core: domain type aliases shared by every qpsolve package.
// This file intentionally contains ONLY type aliases and small helpers;
// errors live in errors.go, the problem/solution models in their own files.
package core

import (
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// Matrix is the common surface for every matrix representation accepted by
// this layer. Dense inputs are *mat.Dense (gonum, row-major), sparse inputs
// are *sparse.CSC or *sparse.CSR (compressed column / compressed row).
// All three satisfy gonum's mat.Matrix, so shape queries and element reads
// are uniform; representation-specific handling lives in conv.
type Matrix = mat.Matrix

// Vector is a flat float64 slice of logical length n (or m, p for
// constraint vectors). Vectors are treated as read-only by every function
// in this module; results are always freshly allocated.
type Vector = []float64

// Options carries backend-specific keyword options, forwarded verbatim to
// the adapter that understands them. The dispatch layer never validates
// option values; an adapter rejects unknown keys with ErrParam.
type Options map[string]any

// Compile-time guarantees that both sparse representations stay usable
// wherever a Matrix is expected.
var (
	_ Matrix = (*mat.Dense)(nil)
	_ Matrix = (*sparse.CSC)(nil)
	_ Matrix = (*sparse.CSR)(nil)
)

// IsDense reports whether m uses the dense representation.
// Complexity: O(1).
func IsDense(m Matrix) bool {
	_, ok := m.(*mat.Dense)

	return ok
}

// IsSparse reports whether m uses one of the compressed representations.
// Complexity: O(1).
func IsSparse(m Matrix) bool {
	switch m.(type) {
	case *sparse.CSC, *sparse.CSR:
		return true
	default:
		return false
	}
}

// NegInf and PosInf are the sentinel bound values standing in for absent
// lower / upper box constraints.
var (
	NegInf = math.Inf(-1)
	PosInf = math.Inf(+1)
)
