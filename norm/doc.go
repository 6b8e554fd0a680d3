// Package norm canonicalizes heterogeneous QP inputs into the uniform
// form solver backends expect.
//
// Backends disagree on more than matrix storage: some want box bounds as
// separate lb/ub fields, others only understand a flat inequality system;
// some tolerate asymmetric cost matrices, most silently misbehave on
// them. norm is the single place where those differences are erased,
// in a fixed order applied before every dispatch:
//
//  1. Symmetrization (opt-in): P ← ½(P+Pᵀ). Idempotent.
//  2. Shape coercion: a flat constraint vector passed as G or A becomes a
//     single-row matrix (done inside core.NewProblem).
//  3. Consistency check: G/h and A/b co-presence and dimension agreement,
//     failing fast with an error that names the offending matrix.
//  4. Bound folding: lb ≤ x ≤ ub rewritten as −x ≤ −lb and x ≤ ub,
//     appended below G — for backends (and the safer-QP reformulation)
//     that only understand Gx ≤ h. Box-aware backends skip this step and
//     receive lb/ub untouched.
//
// Every step produces new objects; caller-supplied matrices and vectors
// are never mutated (callers may solve the same Problem concurrently).
//
// See solve for how the dispatcher drives this pipeline per backend
// capability.
package norm
