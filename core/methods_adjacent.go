// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood and degree queries.
// Determinism:
//   - Neighbors/Out/In follow link insertion order; Neighbors lists
//     out-neighbors before in-neighbors for directed graphs.
// Concurrency:
//   - Read lock only; results are fresh slices owned by the caller.

package core

import "fmt"

const (
	methodNeighbors = "Neighbors"
	methodOut       = "Out"
	methodIn        = "In"
)

// Neighbors returns every node incident to i, one entry per link.
//
// Neighborhood policy:
//   - Undirected: all incident neighbors; a self-loop appears once.
//   - Directed: out-neighbors (targets) followed by in-neighbors (sources).
//
// Errors:
//   - ErrNodeNotFound if i is not a node index.
//
// Complexity: O(deg(i)) time and space.
func (g *Graph) Neighbors(i int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validLocked(i) {
		return nil, fmt.Errorf("%s(%d): %w", methodNeighbors, i, ErrNodeNotFound)
	}
	n := len(g.out[i])
	if g.directed {
		n += len(g.in[i])
	}
	nbs := make([]int, 0, n)
	nbs = append(nbs, g.out[i]...)
	if g.directed {
		nbs = append(nbs, g.in[i]...)
	}

	return nbs, nil
}

// Out returns the targets of links leaving i. For undirected graphs it is
// the same as Neighbors.
func (g *Graph) Out(i int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validLocked(i) {
		return nil, fmt.Errorf("%s(%d): %w", methodOut, i, ErrNodeNotFound)
	}

	return append([]int(nil), g.out[i]...), nil
}

// In returns the sources of links entering i. For undirected graphs it is
// the same as Neighbors.
func (g *Graph) In(i int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validLocked(i) {
		return nil, fmt.Errorf("%s(%d): %w", methodIn, i, ErrNodeNotFound)
	}
	if !g.directed {
		return append([]int(nil), g.out[i]...), nil
	}

	return append([]int(nil), g.in[i]...), nil
}

// Degree returns the total number of link endpoints at i (in + out for
// directed graphs). Invalid indices yield 0.
func (g *Graph) Degree(i int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validLocked(i) {
		return 0
	}
	d := len(g.out[i])
	if g.directed {
		d += len(g.in[i])
	}

	return d
}

// Degrees returns the undirected degree sequence in index order. For a
// directed graph the entry is in + out.
// Complexity: O(V).
func (g *Graph) Degrees() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	degrees := make([]int, len(g.labels))
	for i := range degrees {
		degrees[i] = len(g.out[i])
		if g.directed {
			degrees[i] += len(g.in[i])
		}
	}

	return degrees
}

// DirectedDegrees returns (in, out) pairs in index order. For an undirected
// graph both fields hold the degree.
// Complexity: O(V).
func (g *Graph) DirectedDegrees() []Degree {
	g.mu.RLock()
	defer g.mu.RUnlock()

	degrees := make([]Degree, len(g.labels))
	for i := range degrees {
		if g.directed {
			degrees[i] = Degree{In: len(g.in[i]), Out: len(g.out[i])}
		} else {
			degrees[i] = Degree{In: len(g.out[i]), Out: len(g.out[i])}
		}
	}

	return degrees
}
