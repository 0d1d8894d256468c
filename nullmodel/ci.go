// SPDX-License-Identifier: MIT
//
// File: ci.go
// Role: confidence bounds on the log of a mean from log-normal samples
// (Cox method).
//
// Given log-weights x_i = ln w_i with mean μ and unbiased variance s², the
// log of E[w] is estimated by μ + s²/2 with standard error
// sqrt(s²/n + s⁴/(2(n-1))). Bounds are one-sided at level alpha and are
// reported in bits.

package nullmodel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// LogNormalCI holds the sufficient statistics of a batch of log-weights.
type LogNormalCI struct {
	mean     float64 // natural-log scale
	variance float64 // natural-log scale, unbiased
	n        int
}

// NewLogNormalCI builds the interval from samples given in bits (log2).
//
// Errors:
//   - ErrNoSamples if samples is empty.
func NewLogNormalCI(log2Samples []float64) (LogNormalCI, error) {
	if len(log2Samples) == 0 {
		return LogNormalCI{}, fmt.Errorf("NewLogNormalCI: %w", ErrNoSamples)
	}
	ln := make([]float64, len(log2Samples))
	for i, s := range log2Samples {
		ln[i] = s * math.Ln2
	}
	if len(ln) == 1 {
		return LogNormalCI{mean: ln[0], n: 1}, nil
	}
	mean, variance := stat.MeanVariance(ln, nil)

	return LogNormalCI{mean: mean, variance: variance, n: len(ln)}, nil
}

// N returns the number of samples.
func (ci LogNormalCI) N() int { return ci.n }

// Estimate returns the point estimate of log2 E[w].
func (ci LogNormalCI) Estimate() float64 {
	return (ci.mean + ci.variance/2) / math.Ln2
}

// Upper returns the one-sided upper bound at level alpha, in bits.
func (ci LogNormalCI) Upper(alpha float64) (float64, error) {
	z, err := quantile(alpha)
	if err != nil {
		return 0, err
	}

	return ci.Estimate() + z*ci.stdErr()/math.Ln2, nil
}

// Lower returns the one-sided lower bound at level alpha, in bits.
func (ci LogNormalCI) Lower(alpha float64) (float64, error) {
	z, err := quantile(alpha)
	if err != nil {
		return 0, err
	}

	return ci.Estimate() - z*ci.stdErr()/math.Ln2, nil
}

func (ci LogNormalCI) stdErr() float64 {
	if ci.n < 2 {
		return 0
	}
	v := ci.variance
	n := float64(ci.n)

	return math.Sqrt(v/n + v*v/(2*(n-1)))
}

func quantile(alpha float64) (float64, error) {
	if !(alpha > 0 && alpha < 1) {
		return 0, fmt.Errorf("alpha=%g: %w", alpha, ErrBadAlpha)
	}

	return distuv.UnitNormal.Quantile(1 - alpha), nil
}
