// SPDX-License-Identifier: MIT

// Package qpsolve: default backend wiring.
//
// The set of compiled-in backends is the Go rendition of "backends
// detected as installed": platform-restricted adapters contribute their
// registration through build-tag-gated files (see backends_*.go), so the
// registry contents follow what the build actually linked in.

package qpsolve

import (
	"github.com/katalvlaran/qpsolve/solve"
	"github.com/katalvlaran/qpsolve/solve/cvx"
)

// defaultRegistry is built once at process start and frozen. Errors are
// impossible here by construction (names are distinct constants), so the
// panic is a programmer-error guard, not a runtime condition.
var defaultRegistry = func() *solve.Registry {
	reg, err := solve.NewRegistry(append(platformBackends(), cvx.Backend())...)
	if err != nil {
		panic("qpsolve: default registry misconfigured: " + err.Error())
	}

	return reg
}()

// DefaultRegistry returns the process-wide registry of compiled-in
// backends. It is frozen at init and safe to share across goroutines.
func DefaultRegistry() *solve.Registry { return defaultRegistry }

// Available returns the names of every compiled-in backend, sorted. Use
// it as the capability query before selecting Options.Solver.
func Available() []string { return defaultRegistry.Names() }
