package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motive/builder"
	"github.com/katalvlaran/motive/core"
)

func TestPlanted_Structure(t *testing.T) {
	t.Parallel()

	for _, dir := range []bool{false, true} {
		motif, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(dir)}, nil, builder.Cycle(3))
		require.NoError(t, err)

		p, err := builder.Planted(200, 400, motif, 10, 5, builder.WithSeed(5))
		require.NoError(t, err)
		g := p.Graph

		// Stage 1: requested size is honored exactly.
		assert.Equal(t, dir, g.Directed())
		assert.Equal(t, 200, g.Size())
		assert.Equal(t, 400, g.NumLinks())
		require.Len(t, p.Occurrences, 10)

		// Stage 2: every instance induces exactly the motif, disjointly.
		seen := make(map[int]bool)
		for _, occ := range p.Occurrences {
			sub, err := g.Induced(occ)
			require.NoError(t, err)
			assert.ElementsMatch(t, motif.Links(), sub.Links())
			for _, v := range occ {
				assert.False(t, seen[v], "node %d reused", v)
				seen[v] = true
			}
		}

		// Stage 3: the result is simple.
		_, extras := g.Simplify()
		assert.Empty(t, extras)
	}
}

func TestPlanted_Deterministic(t *testing.T) {
	motif, err := builder.BuildGraph(nil, nil, builder.Star(4))
	require.NoError(t, err)

	a, err := builder.Planted(120, 200, motif, 6, 6, builder.WithSeed(9))
	require.NoError(t, err)
	b, err := builder.Planted(120, 200, motif, 6, 6, builder.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, a.Occurrences, b.Occurrences)
	assert.Equal(t, a.Graph.Links(), b.Graph.Links())
}

func TestPlanted_NoInstances(t *testing.T) {
	motif, err := builder.BuildGraph(nil, nil, builder.Cycle(3))
	require.NoError(t, err)

	p, err := builder.Planted(30, 40, motif, 0, 0, builder.WithSeed(1))
	require.NoError(t, err)
	assert.Empty(t, p.Occurrences)
	assert.Equal(t, 30, p.Graph.Size())
	assert.Equal(t, 40, p.Graph.NumLinks())
}

func TestPlanted_Errors(t *testing.T) {
	tri, err := builder.BuildGraph(nil, nil, builder.Cycle(3))
	require.NoError(t, err)
	single := core.NewGraph()
	single.AddNode("")
	seed := builder.WithSeed(1)

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"nil motif", func() error { _, err := builder.Planted(10, 10, nil, 1, 5, seed); return err }, builder.ErrNilMotif},
		{"tiny motif", func() error { _, err := builder.Planted(10, 10, single, 1, 5, seed); return err }, builder.ErrTooFewVertices},
		{"negative instances", func() error { _, err := builder.Planted(10, 10, tri, -1, 5, seed); return err }, builder.ErrTooFewVertices},
		{"n too small", func() error { _, err := builder.Planted(8, 10, tri, 4, 5, seed); return err }, builder.ErrTooFewVertices},
		{"m too small", func() error { _, err := builder.Planted(50, 5, tri, 2, 5, seed); return err }, builder.ErrTooManyLinks},
		{"no rng", func() error { _, err := builder.Planted(50, 60, tri, 2, 5); return err }, builder.ErrNeedRandSource},
		{"no candidates", func() error { _, err := builder.Planted(12, 51, tri, 2, 0, seed); return err }, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.run(), tc.want)
		})
	}
}
