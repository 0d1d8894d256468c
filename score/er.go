// SPDX-License-Identifier: MIT
//
// File: er.go
// Role: simple random graph (ER) scorer and baseline.

package score

import (
	"fmt"

	"github.com/katalvlaran/motive/core"
	"github.com/katalvlaran/motive/nullmodel"
)

const methodER = "ER"

// ER scores g compressed with motif under the simple random graph model.
// Motif and template are coded with their size and link count included.
//
// Errors:
//   - collapse.ErrBadOccurrence, ErrMotifMismatch, ErrBaseMismatch,
//     ErrTooManyRewrites.
func ER(g, motif *core.Graph, occurrences [][]int, resetWiring bool, opts ...Option) (Breakdown, error) {
	k, err := check(g, motif, occurrences)
	if err != nil {
		return Breakdown{}, fmt.Errorf("%s: %w", methodER, err)
	}
	if len(occurrences) == 0 {
		return Breakdown{Template: BaselineER(g)}, nil
	}

	s, err := build(g, occurrences, newConfig(opts...))
	if err != nil {
		return Breakdown{}, fmt.Errorf("%s: %w", methodER, err)
	}
	b := Breakdown{
		Motif:    nullmodel.ERGraph(motif, true),
		Template: nullmodel.ER(s.size, s.links, g.Directed(), true),
	}
	s.rest(&b, g.Size(), k, len(occurrences), resetWiring)

	return b, nil
}

// BaselineER is the ER code length of g, size and link count included.
func BaselineER(g *core.Graph) float64 {
	return nullmodel.ERGraph(g, true)
}
