// Package canon computes canonical forms of small graphs, so that
// isomorphic subgraphs map to the same motif.
//
// A Form carries the canonical key, the node order that produced it and the
// graph relabeled in that order. Canonical node i is node Order[i] of the
// input.
//
// Exhaustive partitions nodes by the isomorphism invariant
// (label, in-degree, out-degree), orders the classes, and searches the
// class-respecting permutations for the lexicographically largest
// adjacency code with branch and bound. It is exact and meant for motif
// sizes up to about ten nodes.
//
// Keys are graph6 (undirected) or digraph6 (directed) strings of the
// canonical graph, followed by the node labels when any label is set.
// Only link presence matters: parallel links count once.
package canon
