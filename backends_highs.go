// SPDX-License-Identifier: MIT

//go:build (linux || darwin) && (amd64 || arm64)

package qpsolve

import (
	"github.com/katalvlaran/qpsolve/core"
	"github.com/katalvlaran/qpsolve/solve/highs"
)

// platformBackends lists adapters that only exist on platforms their
// embedded native libraries support. HiGHS ships static libraries for
// linux/darwin on amd64/arm64; elsewhere the registry simply lacks the
// "highs" entry and selecting it yields ErrSolverNotFound.
func platformBackends() []core.Backend {
	return []core.Backend{highs.Backend()}
}
