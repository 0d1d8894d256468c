// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/motive/config"
	"github.com/katalvlaran/motive/core"
	"github.com/katalvlaran/motive/motif"
	"github.com/katalvlaran/motive/nullmodel"
	"github.com/katalvlaran/motive/score"
)

// allModels is the model order of report columns.
var allModels = []score.Model{score.ModelER, score.ModelEdgeList, score.ModelBeta}

// selected returns models, or every model when the list is empty.
func selected(models []score.Model) []score.Model {
	if len(models) == 0 {
		return allModels
	}

	return models
}

// baselines computes the code length of g alone under each model. The
// edge-list baseline uses the ML prior, as does the beta baseline.
func baselines(ctx context.Context, g *core.Graph, models []score.Model, beta score.BetaConfig) (map[score.Model]float64, error) {
	out := make(map[score.Model]float64, len(models))
	for _, m := range models {
		switch m {
		case score.ModelER:
			out[m] = score.BaselineER(g)
		case score.ModelEdgeList:
			bits, err := score.BaselineEdgeList(g, nullmodel.PriorML)
			if err != nil {
				return nil, err
			}
			out[m] = bits
		case score.ModelBeta:
			bits, err := score.BaselineBeta(ctx, g, beta)
			if err != nil {
				return nil, err
			}
			out[m] = bits
		}
	}

	return out, nil
}

// scored is the outcome of extracting and scoring one graph.
type scored struct {
	models    []score.Model
	baselines map[score.Model]float64
	results   []motif.Result
	batch     *score.BatchResult
}

// analyze extracts up to MaxMotifs motifs from g and scores them.
func analyze(ctx context.Context, g *core.Graph, cfg *config.Config, log *slog.Logger) (*scored, error) {
	results, err := motif.ExtractContext(ctx, g, cfg.ExtractOptions(log)...)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	if k := cfg.Extraction.MaxMotifs; k > 0 && len(results) > k {
		results = results[:k]
	}
	log.Info("motifs extracted", "motifs", len(results))

	return scoreResults(ctx, g, results, cfg, log)
}

// scoreResults runs the configured models over results.
func scoreResults(ctx context.Context, g *core.Graph, results []motif.Result, cfg *config.Config, log *slog.Logger) (*scored, error) {
	bc, err := cfg.BatchConfig()
	if err != nil {
		return nil, err
	}
	bc.Logger = log
	models := selected(bc.Models)

	base, err := baselines(ctx, g, models, bc.Beta)
	if err != nil {
		return nil, fmt.Errorf("baselines: %w", err)
	}
	batch, err := score.Batch(ctx, g, results, bc)
	if err != nil {
		return nil, fmt.Errorf("score: %w", err)
	}
	if len(batch.Skipped) > 0 {
		log.Warn("motifs over the rewrite cap", "skipped", len(batch.Skipped))
	}

	return &scored{models: models, baselines: base, results: results, batch: batch}, nil
}

// factor is the compression factor of one motif under m: baseline minus
// score. ok is false for skipped motifs.
func (s *scored) factor(key string, m score.Model) (float64, bool) {
	sc, ok := s.batch.Scores[key]
	if !ok {
		return 0, false
	}
	b, ok := sc[m]
	if !ok {
		return 0, false
	}

	return s.baselines[m] - b.Total(), true
}
