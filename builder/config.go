// SPDX-License-Identifier: MIT
// Package: motive/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - label = NoLabel (every node gets "")
//   - rng   = nil     (stochastic constructors fail with ErrNeedRandSource)
//
// newBuilderConfig applies options in order; later options win.

package builder

import (
	"math/rand/v2"

	"github.com/katalvlaran/motive/core"
)

// seedStream is the PCG stream used by WithSeed.
const seedStream = 0x6275696c64

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// label maps a node index to its label.
	label LabelFn
	// rng drives stochastic constructors; nil means no randomness.
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{label: NoLabel}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// addNodes appends n nodes labeled by cfg.label and returns the first index.
func (cfg builderConfig) addNodes(g *core.Graph, n int) int {
	base := g.Size()
	for i := 0; i < n; i++ {
		g.AddNode(cfg.label(base + i))
	}

	return base
}
