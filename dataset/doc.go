// Package dataset reads and writes graphs as plain edge lists.
//
// An edge list has one link per line: two whitespace-separated node names,
// optionally followed by extra columns (weights, timestamps) that are
// ignored. Lines starting with '#' or '%' are comments; blank lines are
// skipped. Node names are mapped to dense indices in order of first
// appearance and kept as node labels.
//
// The scoring engine works on simple graphs, so self-loops and repeated
// links are dropped while reading. Stats reports how many were dropped.
package dataset
