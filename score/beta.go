// SPDX-License-Identifier: MIT
//
// File: beta.go
// Role: uniform degree-sequence (Beta) scorer and baseline.
//
// The structure of motif and template is coded by the log-count of simple
// graphs with their degree sequences; both counts are estimated by
// importance sampling. Sample i of the motif chain and sample i of the
// template chain are added, and the combined sample is summarized by a
// log-normal confidence interval. Degree sequences use PriorComplete.
//
// Concurrency:
//   - the two chains run concurrently, each on cfg.Workers goroutines.

package score

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/motive/core"
	"github.com/katalvlaran/motive/nullmodel"
)

const (
	methodBeta         = "Beta"
	methodBaselineBeta = "BaselineBeta"

	// templateStream decorrelates the template chain from the motif chain.
	templateStream = 0x9e3779b97f4a7c15
)

// BetaConfig is the explicit per-call configuration of the Beta scorer.
type BetaConfig struct {
	// Iterations is the number of importance samples per chain.
	Iterations int
	// Alpha is the one-sided significance level of the bound.
	Alpha float64
	// Workers is the number of goroutines per chain.
	Workers int
	// Seed fixes the samples; equal seeds give equal results regardless
	// of Workers.
	Seed uint64
}

// DefaultBetaConfig returns 50 iterations at alpha 0.05 on GOMAXPROCS
// workers with seed 0.
func DefaultBetaConfig() BetaConfig {
	return BetaConfig{Iterations: 50, Alpha: 0.05, Workers: runtime.GOMAXPROCS(0), Seed: 0}
}

// Validate reports ErrBadBetaConfig for unusable values.
func (c BetaConfig) Validate() error {
	switch {
	case c.Iterations < 1:
		return fmt.Errorf("iterations=%d: %w", c.Iterations, ErrBadBetaConfig)
	case c.Workers < 1:
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrBadBetaConfig)
	case !(c.Alpha > 0 && c.Alpha < 1):
		return fmt.Errorf("alpha=%g: %w", c.Alpha, ErrBadBetaConfig)
	}

	return nil
}

// Beta scores g compressed with motif under the uniform degree-sequence
// model. The result is randomized: Template holds the upper confidence
// bound of the combined motif and template structure plus the template's
// degree prior, and Motif holds the motif's degree prior. The accountant
// path is always used; WithBaseDegrees avoids recomputing g's degrees.
//
// With no occurrences the Template term is the upper bound for g alone plus
// its complete degree prior.
//
// Errors:
//   - ErrBadBetaConfig before any work.
//   - collapse.ErrBadOccurrence, ErrMotifMismatch, ErrBaseMismatch,
//     ErrTooManyRewrites, nullmodel errors, ctx.Err().
func Beta(ctx context.Context, g, motif *core.Graph, occurrences [][]int, resetWiring bool, cfg BetaConfig, opts ...Option) (Breakdown, error) {
	if err := cfg.Validate(); err != nil {
		return Breakdown{}, fmt.Errorf("%s: %w", methodBeta, err)
	}
	k, err := check(g, motif, occurrences)
	if err != nil {
		return Breakdown{}, fmt.Errorf("%s: %w", methodBeta, err)
	}
	if len(occurrences) == 0 {
		bits, err := betaGraph(ctx, g, cfg, true, nullmodel.PriorComplete)
		if err != nil {
			return Breakdown{}, fmt.Errorf("%s: %w", methodBeta, err)
		}
		return Breakdown{Template: bits}, nil
	}

	options := newConfig(opts...)
	if _, err := options.fast(g); err != nil {
		return Breakdown{}, fmt.Errorf("%s: %w", methodBeta, err)
	}
	s, err := account(g, occurrences, options)
	if err != nil {
		return Breakdown{}, fmt.Errorf("%s: %w", methodBeta, err)
	}

	var motifEst, templateEst nullmodel.Estimator
	var b Breakdown
	if g.Directed() {
		motifDegrees := motif.DirectedDegrees()
		if motifEst, err = nullmodel.NewDirectedEstimator(motifDegrees); err != nil {
			return Breakdown{}, fmt.Errorf("%s: motif: %w", methodBeta, err)
		}
		if templateEst, err = nullmodel.NewDirectedEstimator(s.directed); err != nil {
			return Breakdown{}, fmt.Errorf("%s: template: %w", methodBeta, err)
		}
		b.Motif = nullmodel.DirectedDegreePrior(motifDegrees, nullmodel.PriorComplete)
		b.Template = nullmodel.DirectedDegreePrior(s.directed, nullmodel.PriorComplete)
	} else {
		motifDegrees := motif.Degrees()
		if motifEst, err = nullmodel.NewUndirectedEstimator(motifDegrees); err != nil {
			return Breakdown{}, fmt.Errorf("%s: motif: %w", methodBeta, err)
		}
		if templateEst, err = nullmodel.NewUndirectedEstimator(s.degrees); err != nil {
			return Breakdown{}, fmt.Errorf("%s: template: %w", methodBeta, err)
		}
		b.Motif = nullmodel.DegreePrior(motifDegrees, nullmodel.PriorComplete)
		b.Template = nullmodel.DegreePrior(s.degrees, nullmodel.PriorComplete)
	}

	var motifSamples, templateSamples []float64
	eg, ectx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		motifSamples, err = nullmodel.Samples(ectx, motifEst, cfg.Iterations, cfg.Workers, cfg.Seed)
		return err
	})
	eg.Go(func() error {
		var err error
		templateSamples, err = nullmodel.Samples(ectx, templateEst, cfg.Iterations, cfg.Workers, cfg.Seed^templateStream)
		return err
	})
	if err := eg.Wait(); err != nil {
		return Breakdown{}, fmt.Errorf("%s: %w", methodBeta, err)
	}

	combined := make([]float64, cfg.Iterations)
	for i := range combined {
		combined[i] = motifSamples[i] + templateSamples[i]
	}
	upper, err := bound(combined, cfg.Alpha, true)
	if err != nil {
		return Breakdown{}, fmt.Errorf("%s: %w", methodBeta, err)
	}
	b.Template += upper
	s.rest(&b, g.Size(), k, len(occurrences), resetWiring)

	return b, nil
}

// BaselineBeta is the Beta code length of g alone: the lower confidence
// bound of its structure plus the ML degree prior.
//
// Errors:
//   - ErrBadBetaConfig, nullmodel errors, ctx.Err().
func BaselineBeta(ctx context.Context, g *core.Graph, cfg BetaConfig) (float64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, fmt.Errorf("%s: %w", methodBaselineBeta, err)
	}
	bits, err := betaGraph(ctx, g, cfg, false, nullmodel.PriorML)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodBaselineBeta, err)
	}

	return bits, nil
}

// betaGraph bounds the structure of g (upper or lower) and adds prior p.
func betaGraph(ctx context.Context, g *core.Graph, cfg BetaConfig, upper bool, p nullmodel.Prior) (float64, error) {
	var (
		est   nullmodel.Estimator
		prior float64
		err   error
	)
	if g.Directed() {
		degrees := g.DirectedDegrees()
		est, err = nullmodel.NewDirectedEstimator(degrees)
		prior = nullmodel.DirectedDegreePrior(degrees, p)
	} else {
		degrees := g.Degrees()
		est, err = nullmodel.NewUndirectedEstimator(degrees)
		prior = nullmodel.DegreePrior(degrees, p)
	}
	if err != nil {
		return 0, err
	}

	samples, err := nullmodel.Samples(ctx, est, cfg.Iterations, cfg.Workers, cfg.Seed)
	if err != nil {
		return 0, err
	}
	structure, err := bound(samples, cfg.Alpha, upper)
	if err != nil {
		return 0, err
	}

	return structure + prior, nil
}

func bound(samples []float64, alpha float64, upper bool) (float64, error) {
	ci, err := nullmodel.NewLogNormalCI(samples)
	if err != nil {
		return 0, err
	}
	if upper {
		return ci.Upper(alpha)
	}

	return ci.Lower(alpha)
}
