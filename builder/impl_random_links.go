// SPDX-License-Identifier: MIT
// Package: motive/builder
//
// impl_random_links.go - RandomLinks(n, m).
//
// Model: a simple graph drawn uniformly among all graphs with n nodes and
// exactly m links (no self-loops, no parallel links).
//
// Strategy:
//   - Sparse (2m <= slots): rejection sampling of node pairs against a seen
//     set, links emitted in draw order.
//   - Dense: all admissible pairs enumerated i asc, j asc, then a partial
//     Fisher-Yates shuffle picks the first m.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices); 0 <= m <= slots (else
//     ErrTooManyLinks), where slots = n(n-1)/2 undirected, n(n-1) directed.
//   - cfg.rng is required when 0 < m < slots.
//
// Complexity: O(n + m) expected (sparse), O(n^2) (dense).

package builder

import (
	"fmt"

	"github.com/katalvlaran/motive/core"
)

const (
	methodRandomLinks      = "RandomLinks"
	minRandomLinksVertices = 1
)

// RandomLinks returns a Constructor that appends a uniform random simple
// graph with n nodes and m links.
func RandomLinks(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomLinksVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomLinks, n, minRandomLinksVertices, ErrTooFewVertices)
		}
		directed := g.Directed()
		slots := Slots(n, directed)
		if m < 0 || m > slots {
			return fmt.Errorf("%s: m=%d not in [0,%d]: %w", methodRandomLinks, m, slots, ErrTooManyLinks)
		}
		if cfg.rng == nil && m > 0 && m < slots {
			return fmt.Errorf("%s: rng is required: %w", methodRandomLinks, ErrNeedRandSource)
		}

		base := cfg.addNodes(g, n)
		var pairs []core.Link
		if 2*m <= slots {
			pairs = sparsePairs(cfg, n, m, directed)
		} else {
			pairs = densePairs(cfg, n, m, directed)
		}
		for _, p := range pairs {
			if err := link(g, methodRandomLinks, base+p.From, base+p.To); err != nil {
				return err
			}
		}

		return nil
	}
}

// Slots returns the number of admissible links of a simple loop-free graph
// with n nodes.
func Slots(n int, directed bool) int {
	if n < 2 {
		return 0
	}
	if directed {
		return n * (n - 1)
	}

	return n * (n - 1) / 2
}

func sparsePairs(cfg builderConfig, n, m int, directed bool) []core.Link {
	pairs := make([]core.Link, 0, m)
	seen := make(map[core.Link]struct{}, m)
	for len(pairs) < m {
		i, j := cfg.rng.IntN(n), cfg.rng.IntN(n)
		if i == j {
			continue
		}
		if !directed && i > j {
			i, j = j, i
		}
		l := core.Link{From: i, To: j}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		pairs = append(pairs, l)
	}

	return pairs
}

func densePairs(cfg builderConfig, n, m int, directed bool) []core.Link {
	all := make([]core.Link, 0, Slots(n, directed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || (!directed && j < i) {
				continue
			}
			all = append(all, core.Link{From: i, To: j})
		}
	}
	if m == len(all) {
		return all
	}
	for k := 0; k < m; k++ {
		r := k + cfg.rng.IntN(len(all)-k)
		all[k], all[r] = all[r], all[k]
	}

	return all[:m]
}
