// SPDX-License-Identifier: MIT
//
// File: extract.go
// Role: sampling loop, motif table and result assembly.
// Complexity:
//   - Sampling: O(samples · (sample + canonical form)).
//   - Resolution: O(Σ occurrences · (k·deg + log occurrences)).

package motif

import (
	"context"
	"fmt"
	"sort"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/katalvlaran/motive/canon"
	"github.com/katalvlaran/motive/core"
)

const (
	methodExtract = "Extract"

	// progressSteps is the number of progress records for large runs.
	progressSteps = 20
	// progressThreshold is the sample count above which progress is logged.
	progressThreshold = 10000
)

// Result is one extracted motif.
type Result struct {
	// Motif is the canonical graph of the pattern; the caller owns it.
	Motif *core.Graph
	// Key is the canonical key of Motif (see canon.Key).
	Key string
	// Occurrences are the accepted, pairwise disjoint occurrences in
	// acceptance order. Slot i of each occurrence maps to Motif node i.
	Occurrences [][]int
	// Frequency is len(Occurrences), or the score under WithScoreRanking.
	Frequency float64
	// RawFrequency is the number of samples that produced this motif.
	RawFrequency int
}

// entry is the motif table value.
type entry struct {
	motif       *core.Graph
	key         string
	occurrences [][]int
}

// Extract runs ExtractContext with a background context.
func Extract(g *core.Graph, opts ...Option) ([]Result, error) {
	return ExtractContext(context.Background(), g, opts...)
}

// ExtractContext samples subgraphs of g, groups them by canonical form,
// drops motifs sampled fewer than the minimum frequency, resolves overlaps
// and returns the surviving motifs sorted by descending frequency.
//
// Samples for which the sampler finds no connected subgraph of the drawn
// size are skipped and counted in the summary log record.
//
// Errors:
//   - ErrBadSamples, ErrBadSizeRange, ErrBadMinFrequency before sampling.
//   - ctx.Err() when cancelled between samples.
//   - Sampler and canonizer errors, wrapped.
func ExtractContext(ctx context.Context, g *core.Graph, opts ...Option) ([]Result, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(g); err != nil {
		return nil, fmt.Errorf("%s: %w", methodExtract, err)
	}

	cz := cfg.canonizer
	if cfg.cacheSize > 0 {
		cached, err := canon.NewCached(cz, cfg.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodExtract, err)
		}
		cz = cached
	}

	table, skipped, err := collect(ctx, g, cfg, cz)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodExtract, err)
	}

	results := make([]Result, 0, table.Size())
	it := table.Iterator()
	for it.Next() {
		e := it.Value().(*entry)
		if len(e.occurrences) < cfg.minFreq {
			continue
		}
		accepted, exDegrees, err := resolve(g, e.occurrences)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodExtract, err)
		}
		if len(accepted) == 0 {
			continue
		}
		results = append(results, Result{
			Motif:        e.motif.Clone(),
			Key:          e.key,
			Occurrences:  accepted,
			Frequency:    cfg.frequency(e.motif, exDegrees),
			RawFrequency: len(e.occurrences),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Frequency > results[j].Frequency
	})

	cfg.logger.Debug("motif extraction finished",
		"samples", cfg.samples,
		"skipped", skipped,
		"distinct", table.Size(),
		"motifs", len(results))

	return results, nil
}

func (c config) validate(g *core.Graph) error {
	if c.samples < 1 {
		return fmt.Errorf("samples=%d: %w", c.samples, ErrBadSamples)
	}
	if c.minSize < 1 || c.maxSize < c.minSize || c.maxSize > g.Size() {
		return fmt.Errorf("sizes [%d,%d], graph %d: %w", c.minSize, c.maxSize, g.Size(), ErrBadSizeRange)
	}
	if c.minFreq < 0 {
		return fmt.Errorf("minFreq=%d: %w", c.minFreq, ErrBadMinFrequency)
	}

	return nil
}

// collect runs the sampling loop and returns the insertion-ordered table
// of canonical key to *entry.
func collect(ctx context.Context, g *core.Graph, cfg config, cz canon.Canonizer) (*linkedhashmap.Map, int, error) {
	var (
		table   = linkedhashmap.New()
		span    = cfg.maxSize - cfg.minSize + 1
		step    = cfg.samples / progressSteps
		skipped int
	)
	for i := 0; i < cfg.samples; i++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		if cfg.samples > progressThreshold && i > 0 && i%step == 0 {
			cfg.logger.Debug("motif sampling",
				"done", i,
				"of", cfg.samples,
				"distinct", table.Size())
		}

		size := cfg.minSize + cfg.rng.IntN(span)
		nodes, err := cfg.sampler.Sample(g, size, cfg.rng)
		if err != nil {
			if isNoSubgraph(err) {
				skipped++
				continue
			}
			return nil, 0, err
		}

		sort.Ints(nodes)
		sub, err := g.Induced(nodes)
		if err != nil {
			return nil, 0, err
		}
		form, err := cz.Canonical(sub)
		if err != nil {
			return nil, 0, err
		}
		occ := make([]int, len(nodes))
		for k, p := range form.Order {
			occ[k] = nodes[p]
		}

		if v, ok := table.Get(form.Key); ok {
			e := v.(*entry)
			e.occurrences = append(e.occurrences, occ)
			continue
		}
		table.Put(form.Key, &entry{motif: form.Graph, key: form.Key, occurrences: [][]int{occ}})
	}

	return table, skipped, nil
}

func (c config) frequency(m *core.Graph, exDegrees []int) float64 {
	if !c.scoreRanking {
		return float64(len(exDegrees))
	}
	links := float64(m.NumLinks())
	var score float64
	for _, d := range exDegrees {
		score += links / float64(max(d, 1))
	}

	return score
}
