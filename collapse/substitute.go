// SPDX-License-Identifier: MIT
//
// File: substitute.go
// Role: full substitution of occurrences by symbol nodes.
// Determinism:
//   - Template node order is the original order with removed nodes skipped.
//   - Template links follow core.Graph.Links() order of the input.
//   - Wiring follows occurrence order, then slot order, then Neighbors order.

package collapse

import (
	"fmt"

	"github.com/katalvlaran/motive/core"
)

const (
	methodSubstitute = "Substitute"
	symbolLabel      = ""
)

// Template is the result of collapsing a motif's occurrences.
type Template struct {
	// Graph is the template. It permits parallel links.
	Graph *core.Graph
	// Wiring holds, per occurrence, the slot of every boundary link end.
	Wiring [][]int
	// Symbols holds the template index of each occurrence's symbol node.
	Symbols []int
}

// Substitute collapses every occurrence of g into its head node.
//
// The head's label is erased; the other occurrence nodes are removed.
// A link with exactly one endpoint in an occurrence is redirected to the
// head with its direction kept, and the slot of that endpoint is appended
// to the occurrence's wiring. Links between two occurrences are redirected
// at both ends and recorded in both wirings. Links inside one occurrence
// are dropped. With no occurrences the template is a copy of g.
//
// g is not modified.
//
// Errors:
//   - ErrBadOccurrence (see Validate).
//
// Complexity: O(V+E) time and space.
func Substitute(g *core.Graph, occurrences [][]int) (*Template, error) {
	n := g.Size()
	occOf, _, err := index(n, occurrences)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSubstitute, err)
	}

	// Stage 1: assign template indices, skipping non-head occurrence nodes.
	newIndex := make([]int, n)
	labels := g.Labels()
	opts := []core.GraphOption{core.WithDirected(g.Directed()), core.WithMultiEdges()}
	if g.Looped() {
		opts = append(opts, core.WithLoops())
	}
	tg := core.NewGraph(opts...)
	for i := 0; i < n; i++ {
		o := occOf[i]
		switch {
		case o == outside:
			newIndex[i] = tg.AddNode(labels[i])
		case occurrences[o][0] == i:
			newIndex[i] = tg.AddNode(symbolLabel)
		default:
			newIndex[i] = outside
		}
	}
	mapped := func(i int) int {
		if o := occOf[i]; o != outside {
			return newIndex[occurrences[o][0]]
		}

		return newIndex[i]
	}

	// Stage 2: re-route links.
	for _, l := range g.Links() {
		if occOf[l.From] != outside && occOf[l.From] == occOf[l.To] {
			continue
		}
		if err := tg.AddEdge(mapped(l.From), mapped(l.To)); err != nil {
			return nil, fmt.Errorf("%s: AddEdge: %w", methodSubstitute, err)
		}
	}

	// Stage 3: wiring and symbol nodes.
	t := &Template{Graph: tg}
	if len(occurrences) == 0 {
		return t, nil
	}
	t.Wiring = make([][]int, len(occurrences))
	t.Symbols = make([]int, len(occurrences))
	for o, occ := range occurrences {
		t.Symbols[o] = newIndex[occ[0]]
		slots := make([]int, 0)
		for slot, node := range occ {
			nbs, err := g.Neighbors(node)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodSubstitute, err)
			}
			for _, nb := range nbs {
				if occOf[nb] != o {
					slots = append(slots, slot)
				}
			}
		}
		t.Wiring[o] = slots
	}

	return t, nil
}

// Simplify splits the template into a simple graph and the multi-edge side
// channel: one entry per simplified link that touches a symbol node, holding
// the number of parallel copies beyond the first (often 0), in Links() order.
// Complexity: O(V+E).
func (t *Template) Simplify() (*core.Graph, []int) {
	simple, dropped := t.Graph.Simplify()
	symbol := make(map[int]bool, len(t.Symbols))
	for _, s := range t.Symbols {
		symbol[s] = true
	}

	extras := make([]int, 0)
	for _, l := range simple.Links() {
		if symbol[l.From] || symbol[l.To] {
			extras = append(extras, dropped[l])
		}
	}

	return simple, extras
}
