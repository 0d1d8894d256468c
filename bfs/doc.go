// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus weak-component helpers.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: hop distance per node, -1 when unreached
//   - Parent: predecessor in the BFS tree, -1 for the start and unreached nodes
//   - Hooks: OnVisit (may abort with an error) and FilterNeighbor.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Directed graphs are walked weakly (out then in neighbors) unless
//     WithFollowDirection is given.
//
// Components and Connected use the weak walk: the motif machinery treats a
// node set as connected when its induced subgraph is weakly connected.
//
// Determinism
//
//	core.Graph.Neighbors returns neighbors in link insertion order, and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = nodes, E = links)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
//	if err != nil {
//	    // ErrGraphNil, ErrStartNotFound, ErrOptionViolation or a hook error
//	}
//	path, _ := res.PathTo(5)
//
//	comps, _ := bfs.Components(g)
package bfs
