// Package motive finds network motifs by compression: a subgraph pattern
// matters when collapsing its occurrences into symbol nodes makes the graph
// cheaper to describe than under a null model alone.
//
// What is motive?
//
//	An in-memory toolkit that brings together:
//		• Core primitives: labeled (multi)graphs over dense int indices, thread-safe
//		• Sampling: random connected node sets by frontier expansion
//		• Canonical forms: exact small-graph canonization with an LRU cache
//		• Extraction: motif table, overlap resolution, frequency ranking
//		• Collapse: occurrence substitution and a fast degree accountant
//		• Null models: Erdős–Rényi, edge list and the beta (degree) model
//		• Scoring: MDL breakdowns per motif, batched and parallel
//		• Generators: paths, cycles, random graphs and planted motifs
//
// Packages:
//
//	core/      - Graph, Link, Degree and thread-safe mutation
//	coding/    - prefix codes, KT estimators, log-factorials
//	sample/    - connected subgraph samplers
//	canon/     - canonizers and graph6/digraph6 keys
//	motif/     - Extract: sampling, canonization, disjoint occurrences
//	collapse/  - Substitute and the degree accountant
//	nullmodel/ - ER, edge-list and SIS estimators, degree priors
//	score/     - ER, EdgeList and Beta scorers, baselines, Batch
//	builder/   - deterministic generators including Planted
//	bfs/       - breadth-first search and weak components
//	dataset/   - edge-list reader and writer
//	config/    - YAML experiment configuration
//	cmd/motive - command line front end
//
// Quick example:
//
//	g, _ := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true)}, nil,
//		builder.DisjointCopies(triangle, 10))
//	results, _ := motif.Extract(g, motif.WithSizeRange(3, 3))
//	b, _ := score.ER(g, results[0].Motif, results[0].Occurrences, true)
//	saved := score.BaselineER(g) - b.Total()
//
//	go install github.com/katalvlaran/motive/cmd/motive@latest
package motive
