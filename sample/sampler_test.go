// SPDX-License-Identifier: MIT
package sample_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motive/core"
	"github.com/katalvlaran/motive/sample"
)

// connected reports whether nodes induce a weakly connected subgraph.
func connected(t *testing.T, g *core.Graph, nodes []int) bool {
	t.Helper()
	in := make(map[int]bool, len(nodes))
	for _, v := range nodes {
		in[v] = true
	}
	seen := map[int]bool{nodes[0]: true}
	stack := []int{nodes[0]}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nbs, err := g.Neighbors(v)
		require.NoError(t, err)
		for _, w := range nbs {
			if in[w] && !seen[w] {
				seen[w] = true
				stack = append(stack, w)
			}
		}
	}

	return len(seen) == len(nodes)
}

func TestExpansion_ConnectedAndDistinct(t *testing.T) {
	// Stage 1: a directed in-star plus a path, so expansion must follow in-links.
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddNodes(8, "")
	require.NoError(t, err)
	for i := 1; i < 5; i++ {
		require.NoError(t, g.AddEdge(i, 0))
	}
	require.NoError(t, g.AddEdge(5, 6))
	require.NoError(t, g.AddEdge(6, 7))

	// Stage 2: sizes 1..4 always yield distinct, connected sets.
	rng := rand.New(rand.NewPCG(1, 2))
	var s sample.Expansion
	for round := 0; round < 200; round++ {
		size := 1 + round%4
		nodes, err := s.Sample(g, size, rng)
		require.NoError(t, err)
		require.Len(t, nodes, size)

		distinct := make(map[int]struct{}, size)
		for _, v := range nodes {
			distinct[v] = struct{}{}
		}
		require.Len(t, distinct, size)
		require.True(t, connected(t, g, nodes), "nodes %v", nodes)
	}
}

func TestExpansion_Errors(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNodes(4, "")
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(1, 2))

	_, err = sample.Expansion{}.Sample(g, 0, rng)
	assert.ErrorIs(t, err, sample.ErrTooSmall)
	_, err = sample.Expansion{}.Sample(g, 5, rng)
	assert.ErrorIs(t, err, sample.ErrTooSmall)

	// No links: only singletons exist.
	_, err = sample.Expansion{MaxAttempts: 3}.Sample(g, 2, rng)
	assert.ErrorIs(t, err, sample.ErrNoSubgraph)

	one, err := sample.Expansion{}.Sample(g, 1, rng)
	require.NoError(t, err)
	assert.Len(t, one, 1)
}

func TestExpansion_Deterministic(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNodes(30, "")
	require.NoError(t, err)
	for i := 0; i < 30; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%30))
	}

	draw := func() [][]int {
		rng := rand.New(rand.NewPCG(7, 7))
		var out [][]int
		for i := 0; i < 20; i++ {
			nodes, err := sample.Expansion{}.Sample(g, 4, rng)
			require.NoError(t, err)
			out = append(out, nodes)
		}
		return out
	}
	assert.Equal(t, draw(), draw())
}

func TestFunc(t *testing.T) {
	boom := errors.New("boom")
	var s sample.Sampler = sample.Func(func(*core.Graph, int, *rand.Rand) ([]int, error) {
		return nil, boom
	})
	_, err := s.Sample(core.NewGraph(), 1, nil)
	assert.ErrorIs(t, err, boom)
}
