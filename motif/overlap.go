// SPDX-License-Identifier: MIT
//
// File: overlap.go
// Role: greedy overlap resolution over one motif's occurrences.

package motif

import (
	"errors"
	"sort"

	"github.com/katalvlaran/motive/core"
	"github.com/katalvlaran/motive/sample"
)

// resolve returns the accepted occurrences in acceptance order together
// with their external degrees.
//
// Occurrences are ordered by ascending external degree with a stable sort,
// then scanned once; an occurrence is accepted when none of its nodes has
// been claimed, and its nodes are claimed on acceptance.
func resolve(g *core.Graph, occurrences [][]int) ([][]int, []int, error) {
	degrees := make([]int, len(occurrences))
	for i, occ := range occurrences {
		d, err := exDegree(g, occ)
		if err != nil {
			return nil, nil, err
		}
		degrees[i] = d
	}

	order := make([]int, len(occurrences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return degrees[order[a]] < degrees[order[b]] })

	var (
		claimed   = make(map[int]struct{})
		accepted  [][]int
		exDegrees []int
	)
scan:
	for _, i := range order {
		for _, v := range occurrences[i] {
			if _, ok := claimed[v]; ok {
				continue scan
			}
		}
		for _, v := range occurrences[i] {
			claimed[v] = struct{}{}
		}
		accepted = append(accepted, occurrences[i])
		exDegrees = append(exDegrees, degrees[i])
	}

	return accepted, exDegrees, nil
}

// exDegree counts link ends from occ to nodes outside it, in both
// directions for directed graphs and with multiplicity.
func exDegree(g *core.Graph, occ []int) (int, error) {
	var d int
	for _, v := range occ {
		nbs, err := g.Neighbors(v)
		if err != nil {
			return 0, err
		}
		for _, w := range nbs {
			if !contains(occ, w) {
				d++
			}
		}
	}

	return d, nil
}

// contains is a linear scan; occurrences are motif-sized.
func contains(occ []int, v int) bool {
	for _, w := range occ {
		if w == v {
			return true
		}
	}

	return false
}

func isNoSubgraph(err error) bool {
	return errors.Is(err, sample.ErrNoSubgraph)
}
