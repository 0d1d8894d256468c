// SPDX-License-Identifier: MIT
// Package: motive/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Constructors attach context as "<Method>: <detail>: %w".
//   - Validation order: sizes, probabilities, rng presence, graph mode, and
//     ErrConstructFailed only after retries are exhausted.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, degree, count) is
// below the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the constructor is incompatible with the
// target graph's mode, e.g. RandomRegular on a directed graph or a motif
// whose direction differs from the graph.
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrTooManyLinks indicates more links were requested than a simple graph of
// the given size can hold.
var ErrTooManyLinks = errors.New("builder: too many links")

// ErrNilMotif indicates a motif-based constructor received a nil motif.
var ErrNilMotif = errors.New("builder: nil motif")

// ErrConstructFailed indicates the builder exhausted its attempts, or a
// planted experiment found too few instance candidates.
var ErrConstructFailed = errors.New("builder: construction failed")
