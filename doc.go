// Package qpsolve is a single calling convention for convex quadratic
// programs — one validated problem form, many interchangeable solver
// backends.
//
// 🚀 What is qpsolve?
//
//	A library that prepares QPs of the form
//
//	  minimize    ½ xᵀPx + qᵀx
//	  subject to  Gx ≤ h,  Ax = b,  lb ≤ x ≤ ub
//
//	for whichever backend you pick, and interprets the result uniformly:
//	  • One Problem/Solution model shared by every backend
//	  • Constraint normalization: shape coercion, symmetrization,
//	    box-bound folding — per backend capability
//	  • Dense (gonum) and sparse (CSC/CSR) inputs, converted on demand
//	  • An explicit, immutable solver registry — no hidden globals
//	  • Precise failure split: malformed input errors vs. a plain nil
//	    result for "no optimum exists"
//
// ✨ Why choose qpsolve?
//
//   - Backend-agnostic – swap solvers with a string, keep your model code
//   - Predictable – every input validated before a backend is touched
//   - Concurrent-safe – frozen registry, per-call problem objects
//   - Extensible – register your own Backend in two capability flavors
//
// Under the hood, everything is organized under four subpackages:
//
//	core/  — Problem, Solution, Matrix/Vector aliases, Backend contract, errors
//	norm/  — constraint normalization pipeline
//	conv/  — dense⇄sparse representation bridge
//	solve/ — registry, dispatcher, safer-QP reformulation (+ sample adapters)
//
// Quick example:
//
//	p, _ := core.NewProblem(P, q, G, h, nil, nil, nil, nil)
//	x, err := qpsolve.Solve(p, nil) // default backend, default options
//
// This root package only wires the compiled-in backends into a default
// registry; all mechanics live in the subpackages above.
//
//	go get github.com/katalvlaran/qpsolve
package qpsolve
