// Package score computes the MDL code length of a graph compressed with a
// motif, under three null models.
//
// Every scorer reports a Breakdown with the same six terms:
//
//	Motif       the motif graph under the null model
//	Template    the graph with every occurrence collapsed to a symbol node
//	MultiEdges  parallel links created by collapsing (coding.MultiEdges)
//	Wiring      which occurrence slot owned each boundary link (KT code)
//	Labels      which template nodes are symbol nodes
//	Insertions  the node order lost by describing the template only
//
// ER and EdgeList are deterministic. EdgeList runs the full substitution
// (collapse.Substitute) unless a base degree sequence is supplied with
// WithBaseDegrees or WithBaseDirectedDegrees, in which case the faster
// boundary-walk accountant is used; both paths give the same bits.
//
// Beta is randomized: it estimates the number of simple graphs with the
// motif's and the template's degree sequences by importance sampling and
// reports the upper bound of a log-normal confidence interval. Repeated
// calls with different seeds differ within the interval width.
//
// With no occurrences every scorer returns its model's code length of the
// unmodified graph in Template and zero for all other terms.
//
// Lower totals mean better compression; compare a score against the
// matching baseline (BaselineER, BaselineEdgeList, BaselineBeta).
package score
