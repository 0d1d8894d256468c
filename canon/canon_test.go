// SPDX-License-Identifier: MIT
package canon_test

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motive/canon"
	"github.com/katalvlaran/motive/core"
)

func build(t *testing.T, directed bool, labels []string, links [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, l := range labels {
		g.AddNode(l)
	}
	for _, l := range links {
		require.NoError(t, g.AddEdge(l[0], l[1]))
	}

	return g
}

// permuted returns g with node i moved to position perm[i].
func permuted(t *testing.T, g *core.Graph, perm []int) *core.Graph {
	t.Helper()
	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}
	h, err := g.Induced(inv)
	require.NoError(t, err)

	return h
}

func TestExhaustive_IsomorphicInputsShareKey(t *testing.T) {
	var c canon.Exhaustive
	unl := []string{"", "", ""}

	path := build(t, false, unl, [][2]int{{0, 1}, {1, 2}})
	path2 := build(t, false, unl, [][2]int{{1, 0}, {0, 2}})
	tri := build(t, false, unl, [][2]int{{0, 1}, {1, 2}, {2, 0}})

	fp, err := c.Canonical(path)
	require.NoError(t, err)
	fp2, err := c.Canonical(path2)
	require.NoError(t, err)
	ft, err := c.Canonical(tri)
	require.NoError(t, err)

	assert.Equal(t, fp.Key, fp2.Key)
	assert.NotEqual(t, fp.Key, ft.Key)

	// The centre of the path has the largest degree and comes first.
	assert.Equal(t, 1, fp.Order[0])
	assert.Equal(t, 0, fp2.Order[0])
}

func TestExhaustive_DirectedAndLabels(t *testing.T) {
	var c canon.Exhaustive

	cyc := build(t, true, []string{"", "", ""}, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	rev := build(t, true, []string{"", "", ""}, [][2]int{{1, 0}, {2, 1}, {0, 2}})
	ff := build(t, true, []string{"", "", ""}, [][2]int{{0, 1}, {1, 2}, {0, 2}})

	a, err := c.Canonical(cyc)
	require.NoError(t, err)
	b, err := c.Canonical(rev)
	require.NoError(t, err)
	f, err := c.Canonical(ff)
	require.NoError(t, err)
	assert.Equal(t, a.Key, b.Key)
	assert.NotEqual(t, a.Key, f.Key)

	x := build(t, false, []string{"x", "y"}, [][2]int{{0, 1}})
	y := build(t, false, []string{"y", "x"}, [][2]int{{0, 1}})
	z := build(t, false, []string{"x", "x"}, [][2]int{{0, 1}})
	fx, err := c.Canonical(x)
	require.NoError(t, err)
	fy, err := c.Canonical(y)
	require.NoError(t, err)
	fz, err := c.Canonical(z)
	require.NoError(t, err)
	assert.Equal(t, fx.Key, fy.Key)
	assert.NotEqual(t, fx.Key, fz.Key)
	assert.Equal(t, []string{"x", "y"}, fy.Graph.Labels())
}

func TestExhaustive_RandomRelabelings(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	var c canon.Exhaustive
	for round := 0; round < 40; round++ {
		directed := round%2 == 1
		n := 3 + rng.IntN(4)
		g := core.NewGraph(core.WithDirected(directed))
		_, err := g.AddNodes(n, "")
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j && rng.Float64() < 0.4 && !g.HasEdge(i, j) {
					require.NoError(t, g.AddEdge(i, j))
				}
			}
		}
		h := permuted(t, g, rng.Perm(n))

		fg, err := c.Canonical(g)
		require.NoError(t, err)
		fh, err := c.Canonical(h)
		require.NoError(t, err)
		require.Equal(t, fg.Key, fh.Key, "round %d", round)
		require.Equal(t, canon.Key(fg.Graph), canon.Key(fh.Graph))

		// Order is a permutation and Graph is the input in that order.
		sorted := append([]int(nil), fg.Order...)
		sort.Ints(sorted)
		for i := range sorted {
			require.Equal(t, i, sorted[i])
		}
		induced, err := g.Induced(fg.Order)
		require.NoError(t, err)
		require.Equal(t, canon.Key(induced), fg.Key)
	}
}

func TestExhaustive_TooLarge(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNodes(5, "")
	require.NoError(t, err)
	_, err = canon.Exhaustive{MaxSize: 4}.Canonical(g)
	assert.ErrorIs(t, err, canon.ErrTooLarge)
}

func TestCached(t *testing.T) {
	c, err := canon.NewCached(canon.Exhaustive{}, 8)
	require.NoError(t, err)

	g := build(t, false, []string{"", "", ""}, [][2]int{{0, 1}, {1, 2}})
	a, err := c.Canonical(g)
	require.NoError(t, err)
	b, err := c.Canonical(g.Clone())
	require.NoError(t, err)
	assert.Equal(t, a.Key, b.Key)
	assert.Equal(t, a.Order, b.Order)
	assert.Equal(t, 1, c.Len())

	_, err = canon.NewCached(canon.Exhaustive{}, 0)
	assert.ErrorIs(t, err, canon.ErrBadCacheSize)
}

func buildWith(t *testing.T, opts []core.GraphOption, n int, links [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	_, err := g.AddNodes(n, "")
	require.NoError(t, err)
	for _, l := range links {
		require.NoError(t, g.AddEdge(l[0], l[1]))
	}

	return g
}

func keyOf(t *testing.T, c canon.Canonizer, g *core.Graph) string {
	t.Helper()
	f, err := c.Canonical(g)
	require.NoError(t, err)

	return f.Key
}

func TestExhaustive_LoopsChangeKey(t *testing.T) {
	var c canon.Exhaustive
	loops := []core.GraphOption{core.WithLoops()}

	plain := buildWith(t, loops, 2, [][2]int{{0, 1}})
	looped := buildWith(t, loops, 2, [][2]int{{0, 1}, {0, 0}})
	other := buildWith(t, loops, 2, [][2]int{{0, 1}, {1, 1}})
	simpleEdge := buildWith(t, nil, 2, [][2]int{{0, 1}})

	assert.NotEqual(t, keyOf(t, c, plain), keyOf(t, c, looped))
	assert.Equal(t, keyOf(t, c, looped), keyOf(t, c, other))
	// Permitting loops without having any leaves the key alone.
	assert.Equal(t, keyOf(t, c, simpleEdge), keyOf(t, c, plain))

	dloops := []core.GraphOption{core.WithDirected(true), core.WithLoops()}
	atSource := buildWith(t, dloops, 2, [][2]int{{0, 1}, {0, 0}})
	atSink := buildWith(t, dloops, 2, [][2]int{{0, 1}, {1, 1}})
	assert.NotEqual(t, keyOf(t, c, atSource), keyOf(t, c, atSink))

	cached, err := canon.NewCached(canon.Exhaustive{}, 8)
	require.NoError(t, err)
	assert.NotEqual(t, keyOf(t, cached, plain), keyOf(t, cached, looped))
	assert.Equal(t, 2, cached.Len())
}

func TestExhaustive_MultiplicityChangesKey(t *testing.T) {
	var c canon.Exhaustive
	multi := []core.GraphOption{core.WithMultiEdges()}

	single := buildWith(t, multi, 3, [][2]int{{0, 1}, {1, 2}})
	doubleLeft := buildWith(t, multi, 3, [][2]int{{0, 1}, {0, 1}, {1, 2}})
	doubleRight := buildWith(t, multi, 3, [][2]int{{0, 1}, {1, 2}, {2, 1}})
	triple := buildWith(t, multi, 3, [][2]int{{0, 1}, {0, 1}, {0, 1}, {1, 2}})

	assert.NotEqual(t, keyOf(t, c, single), keyOf(t, c, doubleLeft))
	assert.Equal(t, keyOf(t, c, doubleLeft), keyOf(t, c, doubleRight))
	assert.NotEqual(t, keyOf(t, c, doubleLeft), keyOf(t, c, triple))

	cached, err := canon.NewCached(canon.Exhaustive{}, 8)
	require.NoError(t, err)
	assert.NotEqual(t, keyOf(t, cached, single), keyOf(t, cached, doubleLeft))
	assert.NotEqual(t, keyOf(t, cached, doubleLeft), keyOf(t, cached, triple))
}

func TestExhaustive_RandomLoopedMultigraphs(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	var c canon.Exhaustive
	for round := 0; round < 40; round++ {
		opts := []core.GraphOption{core.WithDirected(round%2 == 1), core.WithLoops(), core.WithMultiEdges()}
		n := 3 + rng.IntN(4)
		var links [][2]int
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if round%2 == 0 && j < i {
					continue
				}
				for k := rng.IntN(4) - 1; k > 0; k-- {
					links = append(links, [2]int{i, j})
				}
			}
		}
		g := buildWith(t, opts, n, links)
		h := permuted(t, g, rng.Perm(n))

		fg, err := c.Canonical(g)
		require.NoError(t, err)
		fh, err := c.Canonical(h)
		require.NoError(t, err)
		require.Equal(t, fg.Key, fh.Key, "round %d", round)
		require.Equal(t, g.NumLinks(), fg.Graph.NumLinks())
	}
}

func TestExhaustive_TwinsTriedOnce(t *testing.T) {
	const n = 10
	var star, clique [][2]int
	for i := 0; i < n; i++ {
		if i > 0 {
			star = append(star, [2]int{0, i})
		}
		for j := i + 1; j < n; j++ {
			clique = append(clique, [2]int{i, j})
		}
	}

	cases := map[string]*core.Graph{
		"star":          buildWith(t, nil, n, star),
		"directed star": buildWith(t, []core.GraphOption{core.WithDirected(true)}, n, star),
		"clique":        buildWith(t, nil, n, clique),
	}
	rng := rand.New(rand.NewPCG(7, 8))
	var c canon.Exhaustive
	for name, g := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 1, canon.SearchLeaves(g))
			assert.Equal(t, keyOf(t, c, g), keyOf(t, c, permuted(t, g, rng.Perm(n))))
		})
	}
}
