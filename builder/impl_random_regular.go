// SPDX-License-Identifier: MIT
// Package: motive/builder
//
// impl_random_regular.go - RandomRegular(n, d).
//
// Model: undirected d-regular simple graph via stub matching with bounded
// retries. Each attempt shuffles the n*d stubs, validates the pairing
// against the graph mode (no loops unless Looped, no parallel links unless
// Multigraph) without mutating the graph, and applies the first valid one.
//
// Contract:
//   - Undirected graphs only (else ErrUnsupportedGraphMode).
//   - n >= 1; 0 <= d < n; n*d even (else ErrTooFewVertices).
//   - cfg.rng is required (else ErrNeedRandSource).
//   - ErrConstructFailed after maxStubMatchingAttempts invalid pairings.
//
// Complexity: O(n*d) per attempt.

package builder

import (
	"fmt"

	"github.com/katalvlaran/motive/core"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 64
)

// RandomRegular returns a Constructor that appends an undirected d-regular
// graph on n nodes.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g.Directed() {
			return fmt.Errorf("%s: only undirected graphs are supported: %w",
				methodRandomRegular, ErrUnsupportedGraphMode)
		}
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		allowLoops, allowMulti := g.Looped(), g.Multigraph()

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !validPairing(stubs, allowLoops, allowMulti) {
				continue
			}

			base := cfg.addNodes(g, n)
			for i := 0; i < len(stubs); i += 2 {
				if err := link(g, methodRandomRegular, base+stubs[i], base+stubs[i+1]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// validPairing checks consecutive stub pairs against the mode constraints.
func validPairing(stubs []int, allowLoops, allowMulti bool) bool {
	seen := make(map[core.Link]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v && !allowLoops {
			return false
		}
		if allowMulti {
			continue
		}
		if u > v {
			u, v = v, u
		}
		key := core.Link{From: u, To: v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
