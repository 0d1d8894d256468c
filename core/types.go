// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Degree and Link types, graph options, sentinel errors and the
// NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound        - a node index is outside [0, Size()).
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel link when multi-edges are disabled.
//	ErrNegativeCount       - AddNodes with a negative count.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node index outside the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel link was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNegativeCount indicates a negative node count was requested.
	ErrNegativeCount = errors.New("core: negative count")
)

// Degree is the (in, out) degree pair of a node in a directed graph.
type Degree struct {
	In  int
	Out int
}

// Link is a single link between two node indices.
// For undirected graphs Links() reports From <= To.
type Link struct {
	From int
	To   int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether links are directed (true) or undirected (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel links between the same nodes.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory graph over dense node indices 0..Size()-1.
//
// Nodes carry a string label. Links are stored in per-node adjacency slices
// in insertion order, which makes every iteration deterministic:
//   - directed graphs keep out[i] (targets) and in[i] (sources);
//   - undirected graphs keep every incident neighbor of i in out[i]; a
//     non-loop link appears in both endpoint slices, a self-loop once.
//
// mu guards all fields. Readers receive copies, never internal slices.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool
	allowMulti bool
	allowLoops bool

	// Storage
	labels   []string
	out      [][]int
	in       [][]int
	numLinks int
}

// NewGraph creates an empty Graph configured by opts.
// By default the graph is undirected, with no loops and no multi-edges.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
