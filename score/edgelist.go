// SPDX-License-Identifier: MIT
//
// File: edgelist.go
// Role: degree-sequence (edge list) scorer and baseline.

package score

import (
	"fmt"

	"github.com/katalvlaran/motive/core"
	"github.com/katalvlaran/motive/nullmodel"
)

const (
	methodEdgeList         = "EdgeList"
	methodBaselineEdgeList = "BaselineEdgeList"
)

// EdgeList scores g compressed with motif under the edge-list model with
// prior p on both degree sequences.
//
// Errors:
//   - collapse.ErrBadOccurrence, ErrMotifMismatch, ErrBaseMismatch,
//     ErrTooManyRewrites.
func EdgeList(g, motif *core.Graph, occurrences [][]int, resetWiring bool, p nullmodel.Prior, opts ...Option) (Breakdown, error) {
	k, err := check(g, motif, occurrences)
	if err != nil {
		return Breakdown{}, fmt.Errorf("%s: %w", methodEdgeList, err)
	}
	if len(occurrences) == 0 {
		base, err := BaselineEdgeList(g, p)
		if err != nil {
			return Breakdown{}, fmt.Errorf("%s: %w", methodEdgeList, err)
		}
		return Breakdown{Template: base}, nil
	}

	s, err := build(g, occurrences, newConfig(opts...))
	if err != nil {
		return Breakdown{}, fmt.Errorf("%s: %w", methodEdgeList, err)
	}
	var b Breakdown
	if b.Motif, err = nullmodel.EdgeListGraph(motif, p); err != nil {
		return Breakdown{}, fmt.Errorf("%s: motif: %w", methodEdgeList, err)
	}
	if g.Directed() {
		b.Template, err = nullmodel.DirectedEdgeList(s.directed, p)
	} else {
		b.Template, err = nullmodel.EdgeList(s.degrees, p)
	}
	if err != nil {
		return Breakdown{}, fmt.Errorf("%s: template: %w", methodEdgeList, err)
	}
	s.rest(&b, g.Size(), k, len(occurrences), resetWiring)

	return b, nil
}

// BaselineEdgeList is the edge-list code length of g under prior p.
func BaselineEdgeList(g *core.Graph, p nullmodel.Prior) (float64, error) {
	bits, err := nullmodel.EdgeListGraph(g, p)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodBaselineEdgeList, err)
	}

	return bits, nil
}
