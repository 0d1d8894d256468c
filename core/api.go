// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over configuration and size.
// Policy:
//   - No algorithms here; every getter takes the read lock and is O(1)
//     unless stated otherwise.

package core

// Directed reports whether links are directed.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Multigraph reports whether parallel links are permitted.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Size returns the number of nodes.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.labels)
}

// NumLinks returns the number of links, counting parallel copies.
func (g *Graph) NumLinks() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numLinks
}

// Label returns the label of node i, or ErrNodeNotFound.
func (g *Graph) Label(i int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.labels) {
		return "", ErrNodeNotFound
	}

	return g.labels[i], nil
}

// Labels returns a copy of all node labels in index order.
// Complexity: O(V).
func (g *Graph) Labels() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// options reproduces the configuration of g as GraphOption values.
// Caller must hold at least the read lock.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}
