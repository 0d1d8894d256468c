// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Derived graphs: deep copy, induced subgraph and simplification.
// Concurrency:
//   - Read lock on the source only; results are fresh, unshared graphs.

package core

import (
	"errors"
	"fmt"
)

// ErrDuplicateNode indicates a node index was listed twice where a set is required.
var ErrDuplicateNode = errors.New("core: duplicate node index")

const (
	methodInduced = "Induced"
)

// Clone returns a deep copy of g: configuration, labels and links.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(g.options()...)
	c.labels = append([]string(nil), g.labels...)
	c.out = copyAdjacency(g.out)
	if g.directed {
		c.in = copyAdjacency(g.in)
	}
	c.numLinks = g.numLinks

	return c
}

func copyAdjacency(adj [][]int) [][]int {
	c := make([][]int, len(adj))
	for i, row := range adj {
		if len(row) > 0 {
			c[i] = append([]int(nil), row...)
		}
	}

	return c
}

// Induced returns the subgraph induced by indices. Node k of the result is
// node indices[k] of g and keeps its label; every link of g between two
// listed nodes is kept, parallel copies included.
//
// Errors:
//   - ErrNodeNotFound if an index is out of range.
//   - ErrDuplicateNode if an index repeats.
//
// Complexity: O(Σ deg(indices[k])) time, O(k) extra space.
func (g *Graph) Induced(indices []int) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pos := make(map[int]int, len(indices))
	for k, idx := range indices {
		if !g.validLocked(idx) {
			return nil, fmt.Errorf("%s: index %d: %w", methodInduced, idx, ErrNodeNotFound)
		}
		if _, dup := pos[idx]; dup {
			return nil, fmt.Errorf("%s: index %d: %w", methodInduced, idx, ErrDuplicateNode)
		}
		pos[idx] = k
	}

	sub := NewGraph(g.options()...)
	sub.labels = make([]string, len(indices))
	sub.out = make([][]int, len(indices))
	if g.directed {
		sub.in = make([][]int, len(indices))
	}
	for k, idx := range indices {
		sub.labels[k] = g.labels[idx]
	}

	for k, idx := range indices {
		for _, t := range g.out[idx] {
			j, ok := pos[t]
			if !ok {
				continue
			}
			if g.directed {
				sub.out[k] = append(sub.out[k], j)
				sub.in[j] = append(sub.in[j], k)
				sub.numLinks++
				continue
			}
			// Undirected links sit in both endpoint rows; keep the copy seen
			// from the lower new index.
			switch {
			case j == k:
				sub.out[k] = append(sub.out[k], k)
				sub.numLinks++
			case j > k:
				sub.out[k] = append(sub.out[k], j)
				sub.out[j] = append(sub.out[j], k)
				sub.numLinks++
			}
		}
	}

	return sub, nil
}

// Simplify returns a copy of g without parallel links, together with the
// number of dropped copies per link (only links that had copies appear).
// The first copy of each link keeps its position in Links() order.
// Undirected keys are reported with From <= To. The result does not permit
// multi-edges.
// Complexity: O(V+E) time and space.
func (g *Graph) Simplify() (*Graph, map[Link]int) {
	links := g.Links()

	g.mu.RLock()
	opts := g.options()
	labels := append([]string(nil), g.labels...)
	g.mu.RUnlock()

	simple := NewGraph(opts...)
	simple.allowMulti = false
	simple.labels = labels
	simple.out = make([][]int, len(labels))
	if simple.directed {
		simple.in = make([][]int, len(labels))
	}

	seen := make(map[Link]struct{}, len(links))
	extras := make(map[Link]int)
	for _, l := range links {
		if _, ok := seen[l]; ok {
			extras[l]++
			continue
		}
		seen[l] = struct{}{}
		simple.out[l.From] = append(simple.out[l.From], l.To)
		switch {
		case simple.directed:
			simple.in[l.To] = append(simple.in[l.To], l.From)
		case l.From != l.To:
			simple.out[l.To] = append(simple.out[l.To], l.From)
		}
		simple.numLinks++
	}

	return simple, extras
}
