// SPDX-License-Identifier: MIT
//
// File: batch.go
// Role: scoring many motifs of one graph with motif-level parallelism.
//
// Concurrency:
//   - MotifWorkers motif tasks run at once under an errgroup limit; each Beta
//     call inside a task uses Beta.Workers goroutines per chain.
//   - Task i writes only slot i; the result map is assembled after Wait.
//   - Motif i uses Beta seed Beta.Seed+i, so the split of the thread budget
//     never changes the output.

package score

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/motive/core"
	"github.com/katalvlaran/motive/motif"
	"github.com/katalvlaran/motive/nullmodel"
)

const methodBatch = "Batch"

// Model names a null model.
type Model int

const (
	ModelER Model = iota
	ModelEdgeList
	ModelBeta
)

// String returns the configuration name of m.
func (m Model) String() string {
	switch m {
	case ModelER:
		return "er"
	case ModelEdgeList:
		return "el"
	case ModelBeta:
		return "beta"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// ParseModel maps "er", "el" (or "edgelist") and "beta" to a Model.
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "er":
		return ModelER, nil
	case "el", "edgelist":
		return ModelEdgeList, nil
	case "beta":
		return ModelBeta, nil
	default:
		return 0, fmt.Errorf("ParseModel(%q): %w", s, ErrUnknownModel)
	}
}

// BatchConfig configures Batch.
type BatchConfig struct {
	// Models to score; empty means all three.
	Models []Model
	// Prior is the degree prior of the edge-list scorer.
	Prior nullmodel.Prior
	// ResetWiring resets the wiring coder per occurrence.
	ResetWiring bool
	// MaxRewrites skips motifs that rewrite more links; zero means no cap.
	MaxRewrites int
	// MotifWorkers is the number of motifs scored at once; zero means 1.
	MotifWorkers int
	// FastDegrees selects the accountant path for ER and EdgeList.
	FastDegrees bool
	// Beta configures the Beta scorer.
	Beta BetaConfig
	// Logger receives one record per motif; nil uses slog.Default().
	Logger *slog.Logger
}

// Scores holds the breakdowns of one motif per model.
type Scores map[Model]Breakdown

// BatchResult is the output of Batch.
type BatchResult struct {
	// Scores maps motif key to its scores.
	Scores map[string]Scores
	// Skipped lists, in input order, the keys of motifs over MaxRewrites.
	Skipped []string
}

// Batch scores every result against g under the configured models.
//
// Errors:
//   - ErrBadBetaConfig (when Beta is selected) before any work.
//   - the first scorer error other than ErrTooManyRewrites, or ctx.Err().
func Batch(ctx context.Context, g *core.Graph, results []motif.Result, cfg BatchConfig) (*BatchResult, error) {
	models := cfg.Models
	if len(models) == 0 {
		models = []Model{ModelER, ModelEdgeList, ModelBeta}
	}
	for _, m := range models {
		if m < ModelER || m > ModelBeta {
			return nil, fmt.Errorf("%s: %s: %w", methodBatch, m, ErrUnknownModel)
		}
		if m == ModelBeta {
			if err := cfg.Beta.Validate(); err != nil {
				return nil, fmt.Errorf("%s: %w", methodBatch, err)
			}
		}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := max(cfg.MotifWorkers, 1)

	var opts []Option
	if cfg.MaxRewrites > 0 {
		opts = append(opts, WithMaxRewrites(cfg.MaxRewrites))
	}
	if cfg.FastDegrees {
		if g.Directed() {
			opts = append(opts, WithBaseDirectedDegrees(g.DirectedDegrees()))
		} else {
			opts = append(opts, WithBaseDegrees(g.Degrees()))
		}
	}

	slots := make([]Scores, len(results))
	skipped := make([]bool, len(results))
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, r := range results {
		eg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return err
			}
			scores, err := scoreOne(ectx, g, r, i, models, cfg, opts)
			if errors.Is(err, ErrTooManyRewrites) {
				skipped[i] = true
				logger.Debug("motif skipped", "key", r.Key, "reason", err)
				return nil
			}
			if err != nil {
				return fmt.Errorf("motif %q: %w", r.Key, err)
			}
			slots[i] = scores
			logger.Debug("motif scored", "key", r.Key, "occurrences", len(r.Occurrences))

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBatch, err)
	}

	out := &BatchResult{Scores: make(map[string]Scores, len(results))}
	for i, r := range results {
		if skipped[i] {
			out.Skipped = append(out.Skipped, r.Key)
			continue
		}
		out.Scores[r.Key] = slots[i]
	}

	return out, nil
}

func scoreOne(ctx context.Context, g *core.Graph, r motif.Result, i int, models []Model, cfg BatchConfig, opts []Option) (Scores, error) {
	scores := make(Scores, len(models))
	for _, m := range models {
		var (
			b   Breakdown
			err error
		)
		switch m {
		case ModelER:
			b, err = ER(g, r.Motif, r.Occurrences, cfg.ResetWiring, opts...)
		case ModelEdgeList:
			b, err = EdgeList(g, r.Motif, r.Occurrences, cfg.ResetWiring, cfg.Prior, opts...)
		case ModelBeta:
			beta := cfg.Beta
			beta.Seed += uint64(i)
			b, err = Beta(ctx, g, r.Motif, r.Occurrences, cfg.ResetWiring, beta, opts...)
		}
		if err != nil {
			return nil, err
		}
		scores[m] = b
	}

	return scores, nil
}
