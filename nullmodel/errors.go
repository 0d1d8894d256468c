// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the nullmodel package.

package nullmodel

import "errors"

var (
	// ErrNegativeDegree indicates a degree below zero.
	ErrNegativeDegree = errors.New("nullmodel: negative degree")

	// ErrOddDegreeSum indicates an undirected degree sequence with an odd sum.
	ErrOddDegreeSum = errors.New("nullmodel: odd degree sum")

	// ErrDegreeMismatch indicates a directed sequence whose in- and out-sums differ.
	ErrDegreeMismatch = errors.New("nullmodel: in-degree and out-degree sums differ")

	// ErrNotGraphical indicates no simple graph realizes the degree sequence.
	ErrNotGraphical = errors.New("nullmodel: degree sequence is not graphical")

	// ErrUnknownPrior indicates an unrecognized prior name.
	ErrUnknownPrior = errors.New("nullmodel: unknown prior")

	// ErrNoSamples indicates a confidence interval over an empty sample.
	ErrNoSamples = errors.New("nullmodel: no samples")

	// ErrBadAlpha indicates a significance level outside (0, 1).
	ErrBadAlpha = errors.New("nullmodel: alpha must lie in (0,1)")

	// ErrBadSampleCount indicates a non-positive sample count or worker count.
	ErrBadSampleCount = errors.New("nullmodel: sample count must be positive")
)
