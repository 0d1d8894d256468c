// SPDX-License-Identifier: MIT
//
// options.go - functional options shared by the scorers.
// Option constructors panic on meaningless input; scorers never do.

package score

import "github.com/katalvlaran/motive/core"

// Option customizes a scorer call.
type Option func(*config)

type config struct {
	base         []int
	baseDirected []core.Degree
	maxRewrites  int
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithBaseDegrees supplies g.Degrees() of an undirected graph and selects
// the accountant path. Reuse one slice across motifs of the same graph;
// it is not modified. Panics on nil.
func WithBaseDegrees(base []int) Option {
	if base == nil {
		panic("score: WithBaseDegrees(nil)")
	}
	return func(c *config) { c.base = base }
}

// WithBaseDirectedDegrees is WithBaseDegrees for directed graphs.
// Panics on nil.
func WithBaseDirectedDegrees(base []core.Degree) Option {
	if base == nil {
		panic("score: WithBaseDirectedDegrees(nil)")
	}
	return func(c *config) { c.baseDirected = base }
}

// WithMaxRewrites caps the number of original links rewritten onto symbol
// nodes; past it the scorer returns ErrTooManyRewrites. Zero means no cap.
// Panics on negative n.
func WithMaxRewrites(n int) Option {
	if n < 0 {
		panic("score: WithMaxRewrites(negative)")
	}
	return func(c *config) { c.maxRewrites = n }
}
