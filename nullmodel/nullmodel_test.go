// SPDX-License-Identifier: MIT
package nullmodel_test

import (
	"context"
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motive/coding"
	"github.com/katalvlaran/motive/core"
	"github.com/katalvlaran/motive/nullmodel"
)

const eps = 1e-9

func cycle3() []core.Degree {
	return []core.Degree{{In: 1, Out: 1}, {In: 1, Out: 1}, {In: 1, Out: 1}}
}

func TestER(t *testing.T) {
	assert.InDelta(t, math.Log2(20), nullmodel.ER(3, 3, true, false), eps)
	assert.InDelta(t, math.Log2(15)+coding.Prefix(4)+coding.Prefix(2), nullmodel.ER(4, 2, false, true), eps)
	// Empty and complete graphs cost nothing beyond the prior.
	assert.Equal(t, 0.0, nullmodel.ER(5, 0, false, false))
	assert.Equal(t, 0.0, nullmodel.ER(5, 10, false, false))
	assert.Equal(t, 0.0, nullmodel.ER(0, 0, true, false))
	assert.Equal(t, 0.0, nullmodel.ER(1, 0, false, false))
}

func TestEdgeList(t *testing.T) {
	// Stage 1: triangle; ML prior of a regular sequence is zero.
	bits, err := nullmodel.EdgeList([]int{2, 2, 2}, nullmodel.PriorML)
	require.NoError(t, err)
	assert.InDelta(t, math.Log2(1.875), bits, eps)

	// Stage 2: the complete prior adds its own cost.
	complete, err := nullmodel.EdgeList([]int{2, 2, 2}, nullmodel.PriorComplete)
	require.NoError(t, err)
	assert.InDelta(t, bits+nullmodel.DegreePrior([]int{2, 2, 2}, nullmodel.PriorComplete), complete, eps)

	// Stage 3: no links.
	bits, err = nullmodel.EdgeList([]int{0, 0, 0}, nullmodel.PriorML)
	require.NoError(t, err)
	assert.Equal(t, 0.0, bits)

	// Stage 4: invalid sequences.
	_, err = nullmodel.EdgeList([]int{1}, nullmodel.PriorML)
	assert.ErrorIs(t, err, nullmodel.ErrOddDegreeSum)
	_, err = nullmodel.EdgeList([]int{-1, 1}, nullmodel.PriorML)
	assert.ErrorIs(t, err, nullmodel.ErrNegativeDegree)
}

func TestDirectedEdgeList(t *testing.T) {
	bits, err := nullmodel.DirectedEdgeList(cycle3(), nullmodel.PriorML)
	require.NoError(t, err)
	assert.InDelta(t, math.Log2(6), bits, eps)

	complete, err := nullmodel.DirectedEdgeList(cycle3(), nullmodel.PriorComplete)
	require.NoError(t, err)
	perSide := coding.Prefix(1) + coding.StoreIntegers([]int{1, 1, 1})
	assert.InDelta(t, math.Log2(6)+coding.Prefix(3)+2*perSide, complete, eps)

	_, err = nullmodel.DirectedEdgeList([]core.Degree{{In: 1}}, nullmodel.PriorML)
	assert.ErrorIs(t, err, nullmodel.ErrDegreeMismatch)
}

func TestDegreePrior_ML(t *testing.T) {
	// Two distinct degrees, each half of the nodes: one bit per node.
	assert.InDelta(t, 4.0, nullmodel.DegreePrior([]int{1, 2, 1, 2}, nullmodel.PriorML), eps)
	assert.Equal(t, 0.0, nullmodel.DegreePrior(nil, nullmodel.PriorML))
	assert.Equal(t, 2*coding.Prefix(0), nullmodel.DegreePrior(nil, nullmodel.PriorComplete))
}

func TestParsePrior(t *testing.T) {
	p, err := nullmodel.ParsePrior("ML")
	require.NoError(t, err)
	assert.Equal(t, nullmodel.PriorML, p)
	p, err = nullmodel.ParsePrior(" complete ")
	require.NoError(t, err)
	assert.Equal(t, nullmodel.PriorComplete, p)
	assert.Equal(t, "complete", p.String())
	_, err = nullmodel.ParsePrior("uniform")
	assert.ErrorIs(t, err, nullmodel.ErrUnknownPrior)
}

func TestGraphical(t *testing.T) {
	assert.True(t, nullmodel.Graphical(nil))
	assert.True(t, nullmodel.Graphical([]int{0, 0}))
	assert.True(t, nullmodel.Graphical([]int{3, 3, 3, 3}))
	assert.True(t, nullmodel.Graphical([]int{3, 1, 1, 1}))
	assert.False(t, nullmodel.Graphical([]int{3, 3, 1, 1}))
	assert.False(t, nullmodel.Graphical([]int{1}))
	assert.False(t, nullmodel.Graphical([]int{2, 2, 1}))

	assert.True(t, nullmodel.Digraphical(cycle3()))
	assert.True(t, nullmodel.Digraphical([]core.Degree{{In: 0, Out: 2}, {In: 1}, {In: 1}}))
	assert.False(t, nullmodel.Digraphical([]core.Degree{{In: 1, Out: 1}}))
	assert.True(t, nullmodel.Digraphical([]core.Degree{{In: 2}, {Out: 1}, {Out: 1}}))
	assert.False(t, nullmodel.Digraphical([]core.Degree{{In: 2}, {Out: 2}}))
}

// TestEstimator_ExactCounts covers sequences where every placement path has
// the same weight, so each sample equals the true count.
func TestEstimator_ExactCounts(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for _, deg := range [][]int{{1, 1, 1, 1}, {2, 2, 2, 2}} {
		e, err := nullmodel.NewUndirectedEstimator(deg)
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			s, err := e.Sample(rng)
			require.NoError(t, err)
			assert.InDelta(t, math.Log2(3), s, eps, "%v", deg)
		}
	}

	tri, err := nullmodel.NewUndirectedEstimator([]int{2, 2, 2})
	require.NoError(t, err)
	s, err := tri.Sample(rng)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, s, eps)

	d, err := nullmodel.NewDirectedEstimator(cycle3())
	require.NoError(t, err)
	s, err = d.Sample(rng)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, eps)

	_, err = nullmodel.NewUndirectedEstimator([]int{3, 1})
	assert.ErrorIs(t, err, nullmodel.ErrNotGraphical)
	_, err = nullmodel.NewDirectedEstimator([]core.Degree{{In: 1, Out: 1}})
	assert.ErrorIs(t, err, nullmodel.ErrNotGraphical)
}

// TestEstimator_Unbiased compares the sample mean of the weights with
// brute-force counts.
func TestEstimator_Unbiased(t *testing.T) {
	const n = 4000

	u, err := nullmodel.NewUndirectedEstimator([]int{3, 3, 2, 2, 2, 2})
	require.NoError(t, err)
	samples, err := nullmodel.Samples(context.Background(), u, n, 4, 99)
	require.NoError(t, err)
	assert.InEpsilon(t, 54.0, meanWeight(samples), 0.05)

	four := []core.Degree{{In: 1, Out: 1}, {In: 1, Out: 1}, {In: 1, Out: 1}, {In: 1, Out: 1}}
	d, err := nullmodel.NewDirectedEstimator(four)
	require.NoError(t, err)
	samples, err = nullmodel.Samples(context.Background(), d, n, 4, 99)
	require.NoError(t, err)
	assert.InEpsilon(t, 9.0, meanWeight(samples), 0.05)
}

func meanWeight(log2s []float64) float64 {
	sum := 0.0
	for _, s := range log2s {
		sum += math.Exp2(s)
	}

	return sum / float64(len(log2s))
}

func TestSamples_IndependentOfWorkers(t *testing.T) {
	e, err := nullmodel.NewUndirectedEstimator([]int{3, 3, 2, 2, 2, 2})
	require.NoError(t, err)

	one, err := nullmodel.Samples(context.Background(), e, 64, 1, 5)
	require.NoError(t, err)
	many, err := nullmodel.Samples(context.Background(), e, 64, 8, 5)
	require.NoError(t, err)
	assert.Equal(t, one, many)

	_, err = nullmodel.Samples(context.Background(), e, 0, 1, 5)
	assert.ErrorIs(t, err, nullmodel.ErrBadSampleCount)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = nullmodel.Samples(ctx, e, 16, 2, 5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogNormalCI(t *testing.T) {
	// Stage 1: constant samples collapse the interval.
	ci, err := nullmodel.NewLogNormalCI([]float64{10, 10, 10})
	require.NoError(t, err)
	up, err := ci.Upper(0.05)
	require.NoError(t, err)
	lo, err := ci.Lower(0.05)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, up, eps)
	assert.InDelta(t, 10.0, lo, eps)

	// Stage 2: spread samples order the bounds around the estimate.
	ci, err = nullmodel.NewLogNormalCI([]float64{8, 10, 12, 9, 11})
	require.NoError(t, err)
	up, err = ci.Upper(0.05)
	require.NoError(t, err)
	lo, err = ci.Lower(0.05)
	require.NoError(t, err)
	assert.Less(t, lo, ci.Estimate())
	assert.Less(t, ci.Estimate(), up)
	assert.Greater(t, ci.Estimate(), 10.0)
	assert.Equal(t, 5, ci.N())

	// Stage 3: a single sample is its own bound.
	ci, err = nullmodel.NewLogNormalCI([]float64{7})
	require.NoError(t, err)
	up, err = ci.Upper(0.01)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, up, eps)

	// Stage 4: invalid input.
	_, err = nullmodel.NewLogNormalCI(nil)
	assert.ErrorIs(t, err, nullmodel.ErrNoSamples)
	_, err = ci.Upper(1.5)
	assert.ErrorIs(t, err, nullmodel.ErrBadAlpha)
}

// TestGraphical_MatchesDefinition checks the run-end and prefix-sum forms
// of the realizability tests against the inequalities checked at every k.
func TestGraphical_MatchesDefinition(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	for round := 0; round < 2000; round++ {
		n := 1 + rng.IntN(9)
		deg := make([]int, n)
		dir := make([]core.Degree, n)
		for i := range deg {
			deg[i] = rng.IntN(n)
			dir[i] = core.Degree{In: rng.IntN(n), Out: rng.IntN(n)}
		}
		require.Equal(t, erdosGallai(deg), nullmodel.Graphical(deg), "%v", deg)
		require.Equal(t, fulkersonChenAnstee(dir), nullmodel.Digraphical(dir), "%v", dir)
	}
}

func erdosGallai(deg []int) bool {
	d := append([]int(nil), deg...)
	sort.Sort(sort.Reverse(sort.IntSlice(d)))
	sum := 0
	for _, x := range d {
		sum += x
	}
	if sum%2 != 0 {
		return false
	}
	for k := 1; k <= len(d); k++ {
		lhs, rhs := 0, k*(k-1)
		for i, x := range d {
			if i < k {
				lhs += x
			} else {
				rhs += min(x, k)
			}
		}
		if lhs > rhs {
			return false
		}
	}

	return true
}

func fulkersonChenAnstee(deg []core.Degree) bool {
	n := len(deg)
	d := append([]core.Degree(nil), deg...)
	sort.Slice(d, func(a, b int) bool {
		if d[a].Out != d[b].Out {
			return d[a].Out > d[b].Out
		}

		return d[a].In > d[b].In
	})
	sumIn, sumOut := 0, 0
	for _, x := range d {
		if x.In > n-1 || x.Out > n-1 {
			return false
		}
		sumIn += x.In
		sumOut += x.Out
	}
	if sumIn != sumOut {
		return false
	}
	for k := 1; k <= n; k++ {
		lhs, rhs := 0, 0
		for i, x := range d {
			if i < k {
				lhs += x.Out
				rhs += min(x.In, k-1)
			} else {
				rhs += min(x.In, k)
			}
		}
		if lhs > rhs {
			return false
		}
	}

	return true
}

// TestEstimator_LargeRegular runs thousand-node sequences and compares with
// the Bender–Canfield count of d-regular graphs,
// e^{-(d²-1)/4} (dn)! / ((dn/2)! 2^{dn/2} (d!)^n).
func TestEstimator_LargeRegular(t *testing.T) {
	const n, d = 1000, 3
	deg := make([]int, n)
	for i := range deg {
		deg[i] = d
	}
	e, err := nullmodel.NewUndirectedEstimator(deg)
	require.NoError(t, err)
	samples, err := nullmodel.Samples(context.Background(), e, 4, 4, 21)
	require.NoError(t, err)

	want := coding.Log2Factorial(d*n) - coding.Log2Factorial(d*n/2) - d*n/2 -
		n*coding.Log2Factorial(d) - (d*d-1)/4.0*math.Log2E
	for _, s := range samples {
		assert.InEpsilon(t, want, s, 0.01)
	}

	dir := make([]core.Degree, 300)
	for i := range dir {
		dir[i] = core.Degree{In: 2, Out: 2}
	}
	de, err := nullmodel.NewDirectedEstimator(dir)
	require.NoError(t, err)
	samples, err = nullmodel.Samples(context.Background(), de, 2, 2, 21)
	require.NoError(t, err)
	for _, s := range samples {
		assert.False(t, math.IsNaN(s) || math.IsInf(s, 0))
		assert.Greater(t, s, 0.0)
	}
}
