// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the collapse package.
// Callers branch with errors.Is; context is attached with %w.

package collapse

import "errors"

// ErrBadOccurrence indicates an occurrence list that is not a set of
// equal-length, in-range, pairwise disjoint node-index lists.
var ErrBadOccurrence = errors.New("collapse: invalid occurrence")

// ErrDegreeLength indicates a base degree sequence whose length differs
// from the graph size.
var ErrDegreeLength = errors.New("collapse: base degree sequence does not match graph")

// ErrLimitExceeded indicates the number of rewritten links passed the
// caller's limit.
var ErrLimitExceeded = errors.New("collapse: rewritten-link limit exceeded")
