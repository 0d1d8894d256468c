// SPDX-License-Identifier: MIT

package bfs

import "github.com/katalvlaran/motive/core"

// Components returns the weak components of g. Components are ordered by
// their smallest node, and each lists its nodes in BFS order from it.
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Size()
	seen := make([]bool, n)
	comps := make([][]int, 0)
	for s := range n {
		if seen[s] {
			continue
		}
		res, err := BFS(g, s)
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}

// Connected reports whether g is weakly connected. The empty graph is not.
func Connected(g *core.Graph) bool {
	if g == nil || g.Size() == 0 {
		return false
	}
	res, err := BFS(g, 0)
	if err != nil {
		return false
	}

	return len(res.Order) == g.Size()
}
