// SPDX-License-Identifier: MIT
//
// File: er.go
// Role: simple random graph (ER) code length.

package nullmodel

import (
	"github.com/katalvlaran/motive/coding"
	"github.com/katalvlaran/motive/core"
)

// ER returns the code length of a graph with n nodes and m links under the
// uniform distribution over simple graphs of that size. withPrior adds the
// cost of sending n and m.
// A graph with more links than slots (a multigraph) is +Inf.
func ER(n, m int, directed, withPrior bool) float64 {
	slots := n * (n - 1)
	if !directed {
		slots /= 2
	}
	bits := coding.Log2Choose(slots, m)
	if withPrior {
		bits += coding.Prefix(n) + coding.Prefix(m)
	}

	return bits
}

// ERGraph returns ER for the size, link count and direction of g.
func ERGraph(g *core.Graph, withPrior bool) float64 {
	return ER(g.Size(), g.NumLinks(), g.Directed(), withPrior)
}
