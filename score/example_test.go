package score_test

import (
	"fmt"

	"github.com/katalvlaran/motive/builder"
	"github.com/katalvlaran/motive/core"
	"github.com/katalvlaran/motive/score"
)

// ExampleER scores ten disjoint directed triangles against the ER baseline.
func ExampleER() {
	directed := []core.GraphOption{core.WithDirected(true)}
	tri, _ := builder.BuildGraph(directed, nil, builder.Cycle(3))
	g, _ := builder.BuildGraph(directed, nil, builder.DisjointCopies(tri, 10))

	occurrences := make([][]int, 10)
	for c := range occurrences {
		occurrences[c] = []int{3 * c, 3*c + 1, 3*c + 2}
	}
	b, err := score.ER(g, tri, occurrences, true)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(b.Total() < score.BaselineER(g))

	// Output:
	// true
}
