// Package core defines the shared data model for quadratic programs:
// the Problem and Solution containers, the Matrix/Vector abstraction,
// the Backend adapter contract, and the error taxonomy used across
// the qpsolve packages.
//
// 🚀 What is a QP?
//
//	A quadratic program minimizes a quadratic cost under linear constraints:
//
//	  minimize    ½ xᵀPx + qᵀx
//	  subject to  Gx ≤ h        (linear inequalities)
//	              Ax = b        (linear equalities)
//	              lb ≤ x ≤ ub   (box constraints)
//
// ✨ What core provides:
//   - Matrix / Vector type aliases covering dense (gonum) and two sparse
//     compressed representations (CSC, CSR).
//   - Problem: an immutable-by-convention bundle of (P,q,G,h,A,b,lb,ub),
//     validated at construction; Unpack() for raw adapter access.
//   - Solution: primal x, duals y/z/zbox, Found flag, backend extras,
//     with a single documented dual-sign convention.
//   - Backend: the adapter contract each solver wrapper implements, in
//     two capability variants (vector-only and solution-rich).
//   - Sentinel errors (ErrProblem, ErrParam, ErrSolverNotFound) matched
//     via errors.Is; "no optimum found" is never an error.
//
// core contains no numerical algorithm: it only models problems and
// results. Normalization lives in norm, representation bridging in conv,
// dispatch in solve.
//
// See the runnable examples in the root qpsolve package for usage.
package core
