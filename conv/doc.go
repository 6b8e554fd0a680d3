// Package conv bridges the dense and sparse matrix representations used
// across qpsolve.
//
// Backends disagree on what a matrix is: HiGHS wants compressed columns,
// the dense interior-point solvers want flat arrays. conv converts on
// demand so adapters stay short:
//
//   - EnsureCSC / EnsureCSR — compressed-column / compressed-row form,
//     converting from dense (or any other mat.Matrix) when needed.
//   - EnsureDense — dense form for dense-only backends.
//
// ⚙️ Advisory policy:
//
//	An implicit dense→sparse conversion costs O(n²) and usually means the
//	caller picked a sparse backend for a dense problem. The first time it
//	happens at a given call site, conv logs one advisory through the
//	installed zap logger — once per call site, not per element and not per
//	solve, so iterative callers do not flood logs. Sparse→dense copies log
//	at debug level only.
//
// Conversions never drop structural zeros of sparse inputs and never
// reorder variables: logical (row, column) indexing is preserved
// bit-for-bit.
//
// conv is silent by default (zap.NewNop). Install a logger with SetLogger
// before concurrent use.
package conv
