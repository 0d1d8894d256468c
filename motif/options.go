// SPDX-License-Identifier: MIT
//
// options.go - functional options for Extract.
//
// Contract:
//   - Numeric knobs are validated by Extract and reported as errors before
//     any sampling starts.
//   - Options taking an implementation (rng, sampler, canonizer, logger)
//     panic on nil.
//   - Later options override earlier ones.

package motif

import (
	"log/slog"
	"math/rand/v2"

	"github.com/katalvlaran/motive/canon"
	"github.com/katalvlaran/motive/sample"
)

// Deterministic defaults.
const (
	DefaultSamples      = 10000
	DefaultMinSize      = 3
	DefaultMaxSize      = 3
	DefaultMinFrequency = 1
	DefaultCacheSize    = 4096
	defaultSeed         = 0
	seedStream          = 0x6d6f74
)

// Option customizes Extract.
type Option func(*config)

type config struct {
	samples      int
	minSize      int
	maxSize      int
	minFreq      int
	rng          *rand.Rand
	sampler      sample.Sampler
	canonizer    canon.Canonizer
	cacheSize    int
	scoreRanking bool
	logger       *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		samples:   DefaultSamples,
		minSize:   DefaultMinSize,
		maxSize:   DefaultMaxSize,
		minFreq:   DefaultMinFrequency,
		sampler:   sample.Expansion{},
		canonizer: canon.Exhaustive{},
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(defaultSeed, seedStream))
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return cfg
}

// WithSamples sets the number of sampled subgraphs.
func WithSamples(n int) Option {
	return func(c *config) { c.samples = n }
}

// WithSizeRange sets the inclusive range of sampled subgraph sizes.
// Each sample draws its size uniformly from [min, max].
func WithSizeRange(minSize, maxSize int) Option {
	return func(c *config) {
		c.minSize = minSize
		c.maxSize = maxSize
	}
}

// WithMinFrequency drops motifs sampled fewer than n times before overlap
// resolution.
func WithMinFrequency(n int) Option {
	return func(c *config) { c.minFreq = n }
}

// WithSeed seeds a private PCG generator for reproducible extraction.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewPCG(seed, seedStream)) }
}

// WithRand supplies the generator directly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("motif: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSampler replaces the default sample.Expansion. Panics on nil.
func WithSampler(s sample.Sampler) Option {
	if s == nil {
		panic("motif: WithSampler(nil)")
	}
	return func(c *config) { c.sampler = s }
}

// WithCanonizer replaces the default canon.Exhaustive. Panics on nil.
func WithCanonizer(cz canon.Canonizer) Option {
	if cz == nil {
		panic("motif: WithCanonizer(nil)")
	}
	return func(c *config) { c.canonizer = cz }
}

// WithCacheSize sets the capacity of the canonical-form cache placed in
// front of the canonizer; zero disables the cache. Panics on negative n.
func WithCacheSize(n int) Option {
	if n < 0 {
		panic("motif: WithCacheSize(negative)")
	}
	return func(c *config) { c.cacheSize = n }
}

// WithScoreRanking reports Frequency as Σ links(motif)/max(exDegree, 1)
// over the accepted occurrences instead of their count.
func WithScoreRanking() Option {
	return func(c *config) { c.scoreRanking = true }
}

// WithLogger sets the progress logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("motif: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
