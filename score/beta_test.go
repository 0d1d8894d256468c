package score_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motive/builder"
	"github.com/katalvlaran/motive/core"
	"github.com/katalvlaran/motive/nullmodel"
	"github.com/katalvlaran/motive/score"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return ctx
}

// TestBeta_ExactTriangles uses sequences whose importance weights are
// exact, so the confidence interval collapses to the true count.
func TestBeta_ExactTriangles(t *testing.T) {
	cfg := score.BetaConfig{Iterations: 20, Alpha: 0.05, Workers: 1, Seed: 3}

	// Stage 1: undirected triangles have one realization each.
	g, tri, occs := triangles(t, false, 5)
	b, err := score.Beta(testContext(t), g, tri, occs, true, cfg)
	require.NoError(t, err)
	assert.InDelta(t, nullmodel.DegreePrior(make([]int, 5), nullmodel.PriorComplete), b.Template, eps)
	assert.InDelta(t, nullmodel.DegreePrior([]int{2, 2, 2}, nullmodel.PriorComplete), b.Motif, eps)

	er, err := score.ER(g, tri, occs, true)
	require.NoError(t, err)
	assert.InDelta(t, er.Labels, b.Labels, eps)
	assert.InDelta(t, er.Insertions, b.Insertions, eps)

	// Stage 2: the directed 3-cycle has two realizations.
	dg, dtri, docs := triangles(t, true, 5)
	db, err := score.Beta(testContext(t), dg, dtri, docs, true, cfg)
	require.NoError(t, err)
	assert.InDelta(t, nullmodel.DirectedDegreePrior(make([]core.Degree, 5), nullmodel.PriorComplete)+1, db.Template, eps)
}

func TestBeta_IndependentOfWorkers(t *testing.T) {
	g := randomGraph(t, false, 40, 80, 8)
	path := build(t, false, nil, builder.Path(3))
	occs := disjointSets(g, 3, 8, 8)

	one := score.BetaConfig{Iterations: 32, Alpha: 0.05, Workers: 1, Seed: 17}
	four := one
	four.Workers = 4

	a, err := score.Beta(testContext(t), g, path, occs, false, one)
	require.NoError(t, err)
	b, err := score.Beta(testContext(t), g, path, occs, false, four)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// A supplied base selects the same accountant run.
	c, err := score.Beta(testContext(t), g, path, occs, false, one, score.WithBaseDegrees(g.Degrees()))
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestBaselineBeta(t *testing.T) {
	g := randomGraph(t, true, 30, 70, 2)
	cfg := score.BetaConfig{Iterations: 24, Alpha: 0.05, Workers: 3, Seed: 5}

	lower, err := score.BaselineBeta(testContext(t), g, cfg)
	require.NoError(t, err)
	assert.Positive(t, lower)

	again, err := score.BaselineBeta(testContext(t), g, cfg)
	require.NoError(t, err)
	assert.Equal(t, lower, again)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = score.BaselineBeta(ctx, g, cfg)
	assert.ErrorIs(t, err, context.Canceled)
}
