// SPDX-License-Identifier: MIT

package norm

import (
	"fmt"

	"github.com/katalvlaran/qpsolve/core"
)

// Config selects which normalization steps Apply runs. The zero value is
// a valid pass-through configuration (re-validate only).
type Config struct {
	// SymProj replaces P with its symmetric part ½(P+Pᵀ). Off by default:
	// it costs a full pass over P and well-formed callers already supply
	// symmetric matrices.
	SymProj bool

	// FoldBounds folds lb/ub into the inequality system, for target
	// backends that have no native box-constraint support.
	FoldBounds bool
}

// Apply runs the normalization pipeline and returns a new, re-validated
// Problem. Steps run in the documented fixed order: symmetrization, then
// shape coercion and consistency checks (inside core.NewProblem), then
// bound folding. The input problem and every matrix it references are
// left untouched.
//
// Errors wrap core.ErrProblem and surface before any backend is invoked.
func Apply(p *core.Problem, cfg Config) (*core.Problem, error) {
	if p == nil {
		return nil, fmt.Errorf("norm: Apply: nil problem: %w", core.ErrProblem)
	}

	P := p.P()
	if cfg.SymProj {
		var err error
		if P, err = Symmetrize(P); err != nil {
			return nil, err
		}
	}

	G, h := p.G(), p.H()
	lb, ub := p.LB(), p.UB()
	if cfg.FoldBounds && p.HasBounds() {
		G, h = CombinedInequalities(p)
		lb, ub = nil, nil
	}

	return core.NewProblem(P, p.Q(), G, h, p.A(), p.B(), lb, ub)
}
