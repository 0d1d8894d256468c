// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Link insertion and link queries.
// Determinism:
//   - Links() lists links by ascending source, then insertion order.

package core

import "fmt"

const (
	methodAddEdge = "AddEdge"
)

// AddEdge adds a link from -> to (or from -- to for undirected graphs).
//
// Errors:
//   - ErrNodeNotFound if either endpoint is not a node index.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if the link exists and multi-edges are disabled.
//
// Complexity: O(deg(from)) for the duplicate check, O(1) otherwise.
func (g *Graph) AddEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.validLocked(from) || !g.validLocked(to) {
		return fmt.Errorf("%s(%d,%d): %w", methodAddEdge, from, to, ErrNodeNotFound)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%s(%d,%d): %w", methodAddEdge, from, to, ErrLoopNotAllowed)
	}
	if !g.allowMulti && g.multiplicityLocked(from, to) > 0 {
		return fmt.Errorf("%s(%d,%d): %w", methodAddEdge, from, to, ErrMultiEdgeNotAllowed)
	}

	g.out[from] = append(g.out[from], to)
	switch {
	case g.directed:
		g.in[to] = append(g.in[to], from)
	case from != to:
		g.out[to] = append(g.out[to], from)
	}
	g.numLinks++

	return nil
}

// HasEdge reports whether at least one link from -> to exists
// (either orientation for undirected graphs). Invalid indices yield false.
func (g *Graph) HasEdge(from, to int) bool {
	return g.Multiplicity(from, to) > 0
}

// Multiplicity returns the number of parallel links from -> to.
// Complexity: O(min(deg)) for directed graphs, O(deg(from)) otherwise.
func (g *Graph) Multiplicity(from, to int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validLocked(from) || !g.validLocked(to) {
		return 0
	}

	return g.multiplicityLocked(from, to)
}

func (g *Graph) multiplicityLocked(from, to int) int {
	scan, target := g.out[from], to
	if g.directed && len(g.in[to]) < len(scan) {
		scan, target = g.in[to], from
	}
	count := 0
	for _, x := range scan {
		if x == target {
			count++
		}
	}

	return count
}

// Links returns every link once, ordered by ascending From and then by
// insertion order. Undirected links are reported with From <= To.
// Complexity: O(V+E).
func (g *Graph) Links() []Link {
	g.mu.RLock()
	defer g.mu.RUnlock()

	links := make([]Link, 0, g.numLinks)
	for from, targets := range g.out {
		for _, to := range targets {
			if !g.directed && to < from {
				continue
			}
			links = append(links, Link{From: from, To: to})
		}
	}

	return links
}
