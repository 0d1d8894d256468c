// Package builder provides deterministic graph generators for tests,
// examples and synthetic experiments.
//
// A single orchestrator, BuildGraph(gopts, bopts, cons...), creates a
// core.Graph, resolves the builder configuration from functional options and
// applies constructors in order. Every constructor appends its own nodes, so
// composing constructors yields a disjoint union:
//
//	g, err := builder.BuildGraph(nil, nil, builder.Cycle(3), builder.Cycle(3))
//	// two disjoint triangles over nodes 0..5
//
// Components:
//
//   - Topologies: Path, Cycle, Star, Wheel, Complete.
//   - Random graphs: RandomSparse (independent links with probability p),
//     RandomLinks (exactly m links, uniformly), RandomRegular (stub matching).
//   - Motif fixtures: DisjointCopies(motif, count) and Planted, which hides
//     motif instances in a random graph and reports where they are.
//   - Labels: LabelFn implementations (NoLabel, DecimalLabel, ColumnLabel,
//     PrefixLabel) selected with WithLabel and friends. Unlabeled nodes are
//     the default because labels take part in canonical motif keys.
//
// Guarantees:
//
//   - Determinism: equal inputs, options, seed and constructor order produce
//     identical graphs.
//   - Constructors never panic; they return the sentinels in errors.go,
//     wrapped with the constructor name. Option constructors panic on
//     meaningless input (nil functions).
//
// Stochastic constructors draw from math/rand/v2; WithSeed(seed) freezes them.
package builder
