// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qpsolve/core"
)

// Registry maps solver names to backend adapters. It is append-only
// during construction and frozen afterwards: entries are never replaced
// or removed for the lifetime of the value, which is what makes lock-free
// concurrent dispatch safe.
type Registry struct {
	byName map[string]core.Backend
	names  []string // sorted once at construction
}

// NewRegistry builds a frozen registry from the given backends.
//
// Rejected with an error wrapping core.ErrParam:
//   - a backend with an empty name,
//   - a backend with neither Solve nor SolveProblem set,
//   - two backends sharing a name (each name maps to at most one adapter).
//
// Complexity: O(k log k) for k backends (name sort).
func NewRegistry(backends ...core.Backend) (*Registry, error) {
	byName := make(map[string]core.Backend, len(backends))
	names := make([]string, 0, len(backends))
	for _, be := range backends {
		if be.Name == "" {
			return nil, fmt.Errorf("solve: backend with empty name: %w", core.ErrParam)
		}
		if !be.Callable() {
			return nil, fmt.Errorf("solve: backend %q has no solve function: %w", be.Name, core.ErrParam)
		}
		if _, dup := byName[be.Name]; dup {
			return nil, fmt.Errorf("solve: duplicate backend %q: %w", be.Name, core.ErrParam)
		}
		byName[be.Name] = be
		names = append(names, be.Name)
	}
	sort.Strings(names)

	return &Registry{byName: byName, names: names}, nil
}

// Lookup returns the backend registered under name. O(1).
func (r *Registry) Lookup(name string) (core.Backend, bool) {
	be, ok := r.byName[name]

	return be, ok
}

// Has reports whether name is registered. O(1).
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]

	return ok
}

// Names returns the registered solver names in sorted order. The slice is
// a copy; mutating it does not touch the registry.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

// Len returns the number of registered backends.
func (r *Registry) Len() int { return len(r.names) }
