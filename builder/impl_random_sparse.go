// SPDX-License-Identifier: MIT
// Package: motive/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Model: every admissible link is included independently with probability p.
//   - Undirected: unordered pairs {i,j}, i < j.
//   - Directed: ordered pairs (i,j); self-loops only if g.Looped().
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices), 0 <= p <= 1 (else
//     ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism: trial order is i asc, j asc.
// Complexity: O(n^2) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/motive/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a G(n, p) random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := cfg.addNodes(g, n)
		directed, loops := g.Directed(), g.Looped()
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}

			return cfg.rng.Float64() < p
		}

		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !keep() {
					continue
				}
				if err := link(g, methodRandomSparse, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
