// Package solve dispatches quadratic programs to interchangeable solver
// backends through one calling convention.
//
// 🚀 How a solve flows:
//
//	caller → norm (canonicalize) → Registry lookup → adapter → Solution
//
// ✨ What solve provides:
//   - Registry: an explicit, immutable name→adapter mapping, built once
//     with NewRegistry and passed by reference into every call — no
//     hidden module-level singleton, so tests and embedders control
//     exactly which backends exist.
//   - Solve: the uniform entry point. Normalizes the problem for the
//     target backend (folding box bounds unless the backend is
//     box-aware), then invokes the adapter. Returns the primal vector,
//     or nil when the backend reports no optimum — infeasibility is a
//     normal outcome, never an error.
//   - SolveProblem: the solution-rich variant, reporting duals and
//     backend extras through core.Solution.
//   - SolveSafer: the slack-variable reformulation that pulls solutions
//     strictly inside the inequality region. Dense backends only.
//
// ⚙️ Usage:
//
//	reg, _ := solve.NewRegistry(cvxBackend, highsBackend)
//	opts := solve.DefaultOptions()
//	opts.Solver = "cvx"
//	x, err := solve.Solve(reg, p, &opts)
//
// Concurrency: a Registry is frozen after NewRegistry returns, so any
// number of goroutines may Solve through it without locking, provided
// each call builds its own Problem. There is no cancellation at this
// layer; time-limit style options ride in Options.Extra and are owned by
// the adapter.
//
// The root qpsolve package wires the compiled-in backends into a default
// registry for callers that do not need injection.
package solve
