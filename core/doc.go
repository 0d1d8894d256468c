// Package core provides the thread-safe in-memory Graph used by motive.
//
// Nodes are addressed by dense integer index 0..Size()-1 and carry a string
// label. The graph is directed or undirected, and may permit parallel links
// (WithMultiEdges) and self-loops (WithLoops):
//
//   - Directed graphs store out- and in-adjacency slices per node.
//   - Undirected graphs store each non-loop link in both endpoint slices.
//   - All iteration follows insertion order, so every result is deterministic.
//   - A single sync.RWMutex guards the graph; getters return copies.
//
// Nodes are never removed. Derived graphs are built instead:
//
//	Clone()            // deep copy, O(V+E)
//	Induced(indices)   // induced subgraph in the given node order
//	Simplify()         // drop parallel copies, report how many per link
//
// Configuration Options (GraphOption):
//
//	WithDirected(bool)  // default false
//	WithMultiEdges()    // otherwise a second AddEdge(u,v) -> ErrMultiEdgeNotAllowed
//	WithLoops()         // otherwise AddEdge(v,v) -> ErrLoopNotAllowed
//
// Core Methods:
//
//	AddNode(label) int                 // O(1) amortized
//	AddNodes(n, label) (int, error)    // O(n)
//	AddEdge(from, to) error            // O(deg(from))
//	HasEdge / Multiplicity             // O(deg)
//	Neighbors / Out / In               // O(deg), copies
//	Degrees / DirectedDegrees          // O(V)
//	Links()                            // O(V+E), stable order
package core
