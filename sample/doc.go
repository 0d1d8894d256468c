// Package sample draws random connected node sets from a core.Graph.
//
// A Sampler returns the node indices of one sampled subgraph; the motif
// extractor induces and canonicalizes them. Expansion grows a set from a
// uniformly chosen start node by repeatedly absorbing a uniformly chosen
// frontier node. Links count in both directions, so directed samples are
// weakly connected.
//
// Samplers draw every random choice from the rng they are given and keep
// no state between calls.
package sample
