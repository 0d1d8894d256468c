// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the score package.

package score

import "errors"

var (
	// ErrTooManyRewrites indicates the rewritten-link cap set with
	// WithMaxRewrites was exceeded; the caller may skip the motif.
	ErrTooManyRewrites = errors.New("score: too many rewritten links")

	// ErrMotifMismatch indicates a motif whose size or direction does not
	// match the graph and its occurrences.
	ErrMotifMismatch = errors.New("score: motif does not match occurrences")

	// ErrBaseMismatch indicates a base degree sequence of the wrong kind or
	// length for the graph.
	ErrBaseMismatch = errors.New("score: base degrees do not match graph")

	// ErrBadBetaConfig indicates non-positive iterations or workers, or an
	// alpha outside (0, 1).
	ErrBadBetaConfig = errors.New("score: invalid beta configuration")

	// ErrUnknownModel indicates an unrecognized null model name.
	ErrUnknownModel = errors.New("score: unknown model")
)
