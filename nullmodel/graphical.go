// SPDX-License-Identifier: MIT
//
// File: graphical.go
// Role: realizability tests for degree sequences.
//   - Undirected: Erdős–Gallai on a degree histogram, checked at the end
//     of each run of equal degrees, O(n).
//   - Directed: Fulkerson–Chen–Anstee over pairs in non-increasing
//     lexicographic (out, in) order, O(n log n) with in-degree prefix sums.

package nullmodel

import (
	"sort"

	"github.com/katalvlaran/motive/core"
)

// Graphical reports whether some simple undirected graph has the degree
// sequence.
func Graphical(degrees []int) bool {
	n := len(degrees)
	hist := make([]int, n)
	for _, d := range degrees {
		if d < 0 || d > n-1 {
			return false
		}
		hist[d]++
	}

	return graphicalHist(hist)
}

// graphicalHist runs Erdős–Gallai on the sequence with hist[d] entries of
// degree d. Only the last position of each run of equal degrees needs a
// check, so the cost is O(len(hist)).
func graphicalHist(hist []int) bool {
	top := len(hist) - 1
	// cntBelow[v] and sumBelow[v] cover the entries of degree < v.
	cntBelow := make([]int, top+2)
	sumBelow := make([]int, top+2)
	for v := 0; v <= top; v++ {
		cntBelow[v+1] = cntBelow[v] + hist[v]
		sumBelow[v+1] = sumBelow[v] + v*hist[v]
	}
	if sumBelow[top+1]%2 != 0 {
		return false
	}

	k, lhs := 0, 0
	for d := top; d >= 1; d-- {
		if hist[d] == 0 {
			continue
		}
		k += hist[d]
		lhs += d * hist[d]
		// The rest all have degree < d; each adds min(degree, k).
		m := min(k, d)
		rest := k*(cntBelow[d]-cntBelow[m]) + sumBelow[m]
		if lhs > k*(k-1)+rest {
			return false
		}
	}

	return true
}

// Digraphical reports whether some simple directed graph (no loops, no
// parallel links) has the (in, out) sequence.
func Digraphical(degrees []core.Degree) bool {
	n := len(degrees)
	sumIn, sumOut := 0, 0
	inHist := make([]int, n)
	for _, d := range degrees {
		if d.In < 0 || d.Out < 0 || d.In > n-1 || d.Out > n-1 {
			return false
		}
		sumIn += d.In
		sumOut += d.Out
		inHist[d.In]++
	}
	if sumIn != sumOut {
		return false
	}

	sorted := append([]core.Degree(nil), degrees...)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].Out != sorted[b].Out {
			return sorted[a].Out > sorted[b].Out
		}

		return sorted[a].In > sorted[b].In
	})

	// cntBelow[v] and sumBelow[v] cover the in-degrees < v.
	cntBelow := make([]int, n+1)
	sumBelow := make([]int, n+1)
	for v := 0; v < n; v++ {
		cntBelow[v+1] = cntBelow[v] + inHist[v]
		sumBelow[v+1] = sumBelow[v] + v*inHist[v]
	}

	// For the first k entries, Σ min(in, k-1) is Σ min(in, k) less one per
	// entry with in >= k. head counts the in-degrees of the first k entries
	// and low those among them with in <= k-1.
	head := make([]int, n)
	lhs, low := 0, 0
	for k := 1; k <= n; k++ {
		low += head[k-1]
		e := sorted[k-1]
		head[e.In]++
		if e.In <= k-1 {
			low++
		}
		lhs += e.Out
		rhs := sumBelow[k] + k*(n-cntBelow[k]) - (k - low)
		if lhs > rhs {
			return false
		}
	}

	return true
}
