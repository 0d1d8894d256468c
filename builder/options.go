// SPDX-License-Identifier: MIT
// Package: motive/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors panic on meaningless inputs (nil functions or
//     generators). Constructors themselves never panic.
//   - Seeding is explicit: WithSeed or WithRand.

package builder

import "math/rand/v2"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithLabel sets the node label scheme: index -> label.
// Panics on nil.
func WithLabel(fn LabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLabel(nil)")
	}

	return func(c *builderConfig) {
		c.label = fn
	}
}

// WithDecimalLabels labels nodes "0", "1", ...
func WithDecimalLabels() BuilderOption {
	return WithLabel(DecimalLabel)
}

// WithColumnLabels labels nodes "A", ..., "Z", "AA", ...
func WithColumnLabels() BuilderOption {
	return WithLabel(ColumnLabel)
}

// WithPrefixLabels labels nodes prefix+"0", prefix+"1", ...
func WithPrefixLabels(prefix string) BuilderOption {
	return WithLabel(PrefixLabel(prefix))
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a PCG generator seeded with seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seedStream))
	}
}
