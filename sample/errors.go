// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the sample package.

package sample

import "errors"

var (
	// ErrTooSmall indicates a sample size below one or above the graph size.
	ErrTooSmall = errors.New("sample: size outside [1, graph size]")

	// ErrNoSubgraph indicates every attempt ended in a component smaller
	// than the requested size.
	ErrNoSubgraph = errors.New("sample: no connected subgraph of the requested size found")
)
