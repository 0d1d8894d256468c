// SPDX-License-Identifier: MIT
// Package: motive/builder
//
// impl_complete.go - Complete(n).
//
// Contract:
//   - n >= 1.
//   - Undirected: one link per pair i < j, emitted i asc, j asc.
//   - Directed: both directions i -> j and j -> i for every pair.
//
// Complexity: O(n^2) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/motive/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that appends the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := cfg.addNodes(g, n)
		directed := g.Directed()
		for i := base; i < base+n; i++ {
			for j := i + 1; j < base+n; j++ {
				if err := link(g, methodComplete, i, j); err != nil {
					return err
				}
				if !directed {
					continue
				}
				if err := link(g, methodComplete, j, i); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
