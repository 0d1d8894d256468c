// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motive/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls on a
// multigraph are safe and every link lands.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	const num = 200
	_, err := g.AddNodes(num+1, "")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, num)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs[id] = g.AddEdge(0, id+1)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentReadsAndInduce validates concurrent reads, clones and
// induced subgraphs do not race with writers.
func TestConcurrentReadsAndInduce(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddNodes(50, "n")
	require.NoError(t, err)

	const rounds = 50
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge(id, (id+1)%50)
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Links()
			_ = g.Clone()
			_, _ = g.Induced([]int{0, 1, 2})
		}()
	}
	wg.Wait()
	require.Equal(t, rounds, g.NumLinks())
}
