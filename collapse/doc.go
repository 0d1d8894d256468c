// Package collapse replaces the occurrences of a motif by symbol nodes.
//
// Two views of the same operation are provided:
//
//   - Substitute builds the template graph: every occurrence keeps its head
//     (slot 0) as a symbol node, loses its other nodes, and every link that
//     crossed the occurrence boundary is re-routed to the head with its
//     direction preserved. Links inside an occurrence are dropped. The
//     template may contain parallel links; Template.Simplify separates them
//     into a simple graph plus a multi-edge side channel.
//
//   - UndirectedDegrees and DirectedDegrees walk only the boundary links of
//     the occurrences and return the degree sequence of the simplified
//     template, the multi-edge counts and the wiring record without
//     building any graph. They require the base degree sequence of the
//     graph, so a caller scoring many motifs computes it once.
//
// Both views agree exactly on degrees, multi-edge extras and wiring for a
// simple input graph. Occurrences must have equal length, valid indices and
// be pairwise disjoint; violations are reported as ErrBadOccurrence.
package collapse
