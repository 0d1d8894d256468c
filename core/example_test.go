package core_test

import (
	"fmt"

	"github.com/katalvlaran/motive/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a directed graph with three labeled nodes:
	g := core.NewGraph(core.WithDirected(true))
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")

	// 2) Close a directed triangle:
	_ = g.AddEdge(a, b)
	_ = g.AddEdge(b, c)
	_ = g.AddEdge(c, a)

	// 3) Inspect:
	fmt.Println("Links:", g.Links())
	fmt.Println("Edge B→A exists?", g.HasEdge(b, a))
	fmt.Println("Degrees:", g.DirectedDegrees())

	// Output:
	// Links: [{0 1} {1 2} {2 0}]
	// Edge B→A exists? false
	// Degrees: [{1 1} {1 1} {1 1}]
}

// ExampleGraph_Induced extracts a subgraph in a chosen node order.
func ExampleGraph_Induced() {
	g := core.NewGraph()
	_, _ = g.AddNodes(4, "")
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)

	sub, _ := g.Induced([]int{3, 2, 1})
	fmt.Println(sub.Size(), sub.Links())

	// Output:
	// 3 [{0 1} {1 2}]
}
