// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the motif package.

package motif

import "errors"

var (
	// ErrBadSamples indicates a non-positive sample count.
	ErrBadSamples = errors.New("motif: sample count must be positive")

	// ErrBadSizeRange indicates an empty or inverted size range, or one
	// that does not fit the graph.
	ErrBadSizeRange = errors.New("motif: invalid size range")

	// ErrBadMinFrequency indicates a negative minimum frequency.
	ErrBadMinFrequency = errors.New("motif: minimum frequency must be non-negative")
)
