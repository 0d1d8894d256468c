// SPDX-License-Identifier: MIT
//
// File: edgelist.go
// Role: degree-sequence (edge list) code length.

package nullmodel

import (
	"fmt"

	"github.com/katalvlaran/motive/coding"
	"github.com/katalvlaran/motive/core"
)

const (
	methodEdgeList         = "EdgeList"
	methodDirectedEdgeList = "DirectedEdgeList"
)

// EdgeList returns the code length of an undirected simple graph with the
// given degree sequence, prior included:
// log2((2m)!) - Σ log2(d!) - log2(m!) - m + prior.
//
// Errors:
//   - ErrNegativeDegree, ErrOddDegreeSum.
func EdgeList(degrees []int, p Prior) (float64, error) {
	sum := 0
	for _, d := range degrees {
		if d < 0 {
			return 0, fmt.Errorf("%s: %w", methodEdgeList, ErrNegativeDegree)
		}
		sum += d
	}
	if sum%2 != 0 {
		return 0, fmt.Errorf("%s: sum=%d: %w", methodEdgeList, sum, ErrOddDegreeSum)
	}
	m := sum / 2

	bits := coding.Log2Factorial(2*m) - coding.Log2Factorial(m) - float64(m)
	for _, d := range degrees {
		bits -= coding.Log2Factorial(d)
	}

	return bits + DegreePrior(degrees, p), nil
}

// DirectedEdgeList returns the code length of a directed simple graph with
// the given (in, out) sequence, prior included:
// log2(m!) - Σ log2(in!) - Σ log2(out!) + prior.
//
// Errors:
//   - ErrNegativeDegree, ErrDegreeMismatch.
func DirectedEdgeList(degrees []core.Degree, p Prior) (float64, error) {
	sumIn, sumOut := 0, 0
	for _, d := range degrees {
		if d.In < 0 || d.Out < 0 {
			return 0, fmt.Errorf("%s: %w", methodDirectedEdgeList, ErrNegativeDegree)
		}
		sumIn += d.In
		sumOut += d.Out
	}
	if sumIn != sumOut {
		return 0, fmt.Errorf("%s: in=%d out=%d: %w", methodDirectedEdgeList, sumIn, sumOut, ErrDegreeMismatch)
	}

	bits := coding.Log2Factorial(sumOut)
	for _, d := range degrees {
		bits -= coding.Log2Factorial(d.In) + coding.Log2Factorial(d.Out)
	}

	return bits + DirectedDegreePrior(degrees, p), nil
}

// EdgeListGraph returns the edge-list code length of g under p, choosing the
// directed or undirected form from g.
func EdgeListGraph(g *core.Graph, p Prior) (float64, error) {
	if g.Directed() {
		return DirectedEdgeList(g.DirectedDegrees(), p)
	}

	return EdgeList(g.Degrees(), p)
}
