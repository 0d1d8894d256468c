// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node insertion. Nodes are never removed; derived graphs are built
// instead (see methods_clone.go).

package core

import "fmt"

const (
	methodAddNodes = "AddNodes"
)

// AddNode appends a node with the given label and returns its index.
// Complexity: amortized O(1).
func (g *Graph) AddNode(label string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked(label)
}

// AddNodes appends n nodes sharing label and returns the index of the first.
// Complexity: amortized O(n).
func (g *Graph) AddNodes(n int, label string) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%s: n=%d: %w", methodAddNodes, n, ErrNegativeCount)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.labels)
	for k := 0; k < n; k++ {
		g.addNodeLocked(label)
	}

	return first, nil
}

func (g *Graph) addNodeLocked(label string) int {
	g.labels = append(g.labels, label)
	g.out = append(g.out, nil)
	if g.directed {
		g.in = append(g.in, nil)
	}

	return len(g.labels) - 1
}

// validLocked reports whether i is a node index. Caller holds a lock.
func (g *Graph) validLocked(i int) bool {
	return i >= 0 && i < len(g.labels)
}
