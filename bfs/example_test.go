package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/motive/bfs"
	"github.com/katalvlaran/motive/core"
)

// ExampleBFS finds the fewest-hop route in a small network with two routes.
func ExampleBFS() {
	g := core.NewGraph()
	_, _ = g.AddNodes(6, "")
	// long route 0-1-2-5, short route 0-3-5
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 5)
	_ = g.AddEdge(0, 3)
	_ = g.AddEdge(3, 5)

	res, _ := bfs.BFS(g, 0)
	path, _ := res.PathTo(5)
	fmt.Println(path, res.Depth[4])

	// Output:
	// [0 3 5] -1
}
