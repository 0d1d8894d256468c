// SPDX-License-Identifier: MIT
package motif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motive/core"
)

func TestResolve_PrefersLowExternalDegree(t *testing.T) {
	// Stage 1: path 0-1-2-3-4-5.
	g := core.NewGraph()
	_, err := g.AddNodes(6, "")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}

	// Stage 2: the middle window has two external links, the ends one each.
	occs := [][]int{{1, 2, 3}, {0, 1, 2}, {3, 4, 5}}
	accepted, exDegrees, err := resolve(g, occs)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}}, accepted)
	assert.Equal(t, []int{1, 1}, exDegrees)
}

func TestResolve_TiesKeepSamplingOrder(t *testing.T) {
	// A 4-cycle: every pair window has two external links.
	g := core.NewGraph()
	_, err := g.AddNodes(4, "")
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%4))
	}

	accepted, _, err := resolve(g, [][]int{{1, 2}, {0, 1}, {2, 3}, {3, 0}})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 0}}, accepted)
}

func TestExDegree_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddNodes(4, "")
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 0))
	require.NoError(t, g.AddEdge(1, 3))

	d, err := exDegree(g, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}
