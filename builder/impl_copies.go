// SPDX-License-Identifier: MIT
// Package: motive/builder
//
// impl_copies.go - DisjointCopies(motif, count).
//
// Contract:
//   - motif non-nil (else ErrNilMotif); count >= 1 (else ErrTooFewVertices).
//   - motif.Directed() must match g.Directed() (else ErrUnsupportedGraphMode).
//   - Copy c occupies nodes base+c*k .. base+c*k+k-1 in motif order and keeps
//     the motif's labels; links follow motif.Links() order.
//
// Complexity: O(count * (k + |motif links|)).

package builder

import (
	"fmt"

	"github.com/katalvlaran/motive/core"
)

const methodDisjointCopies = "DisjointCopies"

// DisjointCopies returns a Constructor that appends count node-disjoint
// copies of motif.
func DisjointCopies(motif *core.Graph, count int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if motif == nil {
			return fmt.Errorf("%s: %w", methodDisjointCopies, ErrNilMotif)
		}
		if count < 1 {
			return fmt.Errorf("%s: count=%d < 1: %w", methodDisjointCopies, count, ErrTooFewVertices)
		}
		if motif.Directed() != g.Directed() {
			return fmt.Errorf("%s: motif directed=%t, graph directed=%t: %w",
				methodDisjointCopies, motif.Directed(), g.Directed(), ErrUnsupportedGraphMode)
		}

		labels, links := motif.Labels(), motif.Links()
		for c := 0; c < count; c++ {
			base := g.Size()
			for _, l := range labels {
				g.AddNode(l)
			}
			for _, l := range links {
				if err := link(g, methodDisjointCopies, base+l.From, base+l.To); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
