// Package motif extracts candidate motifs from a graph by sampling.
//
// Extract draws random connected subgraphs, canonicalizes each one, and
// groups the samples by canonical key. Every sample becomes an occurrence:
// the sampled node indices in canonical order, so that occurrence slot i
// plays the role of motif node i. Slot 0 is the head that survives when
// the occurrence is collapsed.
//
// Occurrences of one motif may overlap. Overlaps are resolved greedily:
// occurrences are sorted by ascending external degree (links leaving the
// occurrence, both directions for directed graphs), ties keep sampling
// order, and a single scan accepts every occurrence that shares no node
// with an accepted one. The result is a maximal, not maximum, disjoint set.
//
// Results are sorted by descending frequency; ties keep the order in which
// motifs were first sampled. With a fixed seed the output is reproducible.
//
// Basic usage:
//
//	results, err := motif.Extract(g,
//		motif.WithSamples(100000),
//		motif.WithSizeRange(3, 5),
//		motif.WithMinFrequency(2),
//		motif.WithSeed(42),
//	)
package motif
