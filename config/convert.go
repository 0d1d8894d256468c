// SPDX-License-Identifier: MIT

package config

import (
	"log/slog"

	"github.com/katalvlaran/motive/motif"
	"github.com/katalvlaran/motive/nullmodel"
	"github.com/katalvlaran/motive/score"
)

// Models parses Scoring.Models; an empty list selects all models.
func (c *Config) Models() ([]score.Model, error) {
	models := make([]score.Model, 0, len(c.Scoring.Models))
	for _, name := range c.Scoring.Models {
		m, err := score.ParseModel(name)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}

	return models, nil
}

// BetaConfig converts the beta section.
func (c *Config) BetaConfig() score.BetaConfig {
	return score.BetaConfig{
		Iterations: c.Beta.Iterations,
		Alpha:      c.Beta.Alpha,
		Workers:    c.Beta.Workers,
		Seed:       c.Beta.Seed,
	}
}

// BatchConfig converts the scoring and beta sections. c must be valid.
func (c *Config) BatchConfig() (score.BatchConfig, error) {
	models, err := c.Models()
	if err != nil {
		return score.BatchConfig{}, invalid("scoring.models: %v", err)
	}
	prior, err := nullmodel.ParsePrior(c.Scoring.Prior)
	if err != nil {
		return score.BatchConfig{}, invalid("scoring.prior: %v", err)
	}

	return score.BatchConfig{
		Models:       models,
		Prior:        prior,
		ResetWiring:  c.Scoring.ResetWiring,
		MaxRewrites:  c.Scoring.MaxRewrites,
		MotifWorkers: c.Scoring.MotifWorkers,
		FastDegrees:  c.Scoring.FastDegrees,
		Beta:         c.BetaConfig(),
	}, nil
}

// ExtractOptions converts the extraction section. logger may be nil.
func (c *Config) ExtractOptions(logger *slog.Logger) []motif.Option {
	e := c.Extraction
	opts := []motif.Option{
		motif.WithSamples(e.Samples),
		motif.WithSizeRange(e.MinSize, e.MaxSize),
		motif.WithMinFrequency(e.MinFrequency),
		motif.WithSeed(e.Seed),
		motif.WithCacheSize(e.CacheSize),
	}
	if e.ScoreRanking {
		opts = append(opts, motif.WithScoreRanking())
	}
	if logger != nil {
		opts = append(opts, motif.WithLogger(logger))
	}

	return opts
}
