// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/katalvlaran/motive/nullmodel"
)

// Validate checks every section and reports the first problem wrapped in
// ErrInvalid.
func (c *Config) Validate() error {
	e := c.Extraction
	switch {
	case e.Samples < 1:
		return invalid("extraction.samples must be positive, got %d", e.Samples)
	case e.MinSize < 2 || e.MaxSize < e.MinSize:
		return invalid("extraction sizes [%d,%d]: need 2 <= min_size <= max_size", e.MinSize, e.MaxSize)
	case e.MinFrequency < 0:
		return invalid("extraction.min_frequency must be >= 0, got %d", e.MinFrequency)
	case e.CacheSize < 0:
		return invalid("extraction.cache_size must be >= 0, got %d", e.CacheSize)
	case e.MaxMotifs < 0:
		return invalid("extraction.max_motifs must be >= 0, got %d", e.MaxMotifs)
	}

	s := c.Scoring
	if _, err := c.Models(); err != nil {
		return invalid("scoring.models: %v", err)
	}
	if _, err := nullmodel.ParsePrior(s.Prior); err != nil {
		return invalid("scoring.prior: %v", err)
	}
	switch {
	case s.MaxRewrites < 0:
		return invalid("scoring.max_rewrites must be >= 0, got %d", s.MaxRewrites)
	case s.MotifWorkers < 1:
		return invalid("scoring.motif_workers must be positive, got %d", s.MotifWorkers)
	}

	if err := c.BetaConfig().Validate(); err != nil {
		return invalid("beta: %v", err)
	}

	y := c.Synthetic
	switch {
	case y.MotifSize < 2:
		return invalid("synthetic.motif_size must be >= 2, got %d", y.MotifSize)
	case y.MotifLinks < y.MotifSize-1:
		return invalid("synthetic.motif_links=%d cannot connect %d nodes", y.MotifLinks, y.MotifSize)
	case y.Nodes < 1 || y.Links < 0:
		return invalid("synthetic graph %d nodes, %d links", y.Nodes, y.Links)
	case y.MaxDegree < 0:
		return invalid("synthetic.max_degree must be >= 0, got %d", y.MaxDegree)
	case y.Runs < 1:
		return invalid("synthetic.runs must be positive, got %d", y.Runs)
	}
	for _, n := range y.Instances {
		if n < 0 {
			return invalid("synthetic.instances must be >= 0, got %d", n)
		}
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
