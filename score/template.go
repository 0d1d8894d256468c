// SPDX-License-Identifier: MIT
//
// File: template.go
// Role: the collapsed template as the scorers see it, built either by full
// substitution or by the boundary-walk accountant, plus the terms that do
// not depend on the null model.

package score

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/motive/coding"
	"github.com/katalvlaran/motive/collapse"
	"github.com/katalvlaran/motive/core"
)

// shape is everything the scorers need to know about the simple template.
type shape struct {
	size     int
	links    int
	degrees  []int         // undirected graphs
	directed []core.Degree // directed graphs
	extras   []int
	wiring   [][]int
}

// check validates occurrences and the motif against g and returns the
// occurrence size.
func check(g, motif *core.Graph, occurrences [][]int) (int, error) {
	k, err := collapse.Validate(g, occurrences)
	if err != nil {
		return 0, err
	}
	if motif == nil || motif.Directed() != g.Directed() || (k > 0 && motif.Size() != k) {
		return 0, ErrMotifMismatch
	}

	return k, nil
}

// fast reports whether cfg selects the accountant path for g.
func (c config) fast(g *core.Graph) (bool, error) {
	switch {
	case g.Directed() && c.base != nil, !g.Directed() && c.baseDirected != nil:
		return false, fmt.Errorf("directed=%t: %w", g.Directed(), ErrBaseMismatch)
	case g.Directed():
		return c.baseDirected != nil, nil
	default:
		return c.base != nil, nil
	}
}

// build returns the template shape by the path cfg selects.
func build(g *core.Graph, occurrences [][]int, cfg config) (shape, error) {
	fast, err := cfg.fast(g)
	if err != nil {
		return shape{}, err
	}
	if fast {
		return account(g, occurrences, cfg)
	}
	if cfg.maxRewrites > 0 {
		if err := checkRewrites(g, occurrences, cfg.maxRewrites); err != nil {
			return shape{}, err
		}
	}

	return substitute(g, occurrences)
}

// account runs the accountant; a missing base is computed from g.
func account(g *core.Graph, occurrences [][]int, cfg config) (shape, error) {
	if g.Directed() {
		base := cfg.baseDirected
		if base == nil {
			base = g.DirectedDegrees()
		}
		acc, err := collapse.DirectedDegrees(g, base, occurrences, cfg.maxRewrites)
		if err != nil {
			return shape{}, rewriteErr(err)
		}
		links := 0
		for _, d := range acc.Degrees {
			links += d.Out
		}

		return shape{
			size:     len(acc.Degrees),
			links:    links,
			directed: acc.Degrees,
			extras:   acc.Extras(),
			wiring:   acc.Wiring,
		}, nil
	}

	base := cfg.base
	if base == nil {
		base = g.Degrees()
	}
	acc, err := collapse.UndirectedDegrees(g, base, occurrences, cfg.maxRewrites)
	if err != nil {
		return shape{}, rewriteErr(err)
	}
	sum := 0
	for _, d := range acc.Degrees {
		sum += d
	}

	return shape{
		size:    len(acc.Degrees),
		links:   sum / 2,
		degrees: acc.Degrees,
		extras:  acc.Extras(),
		wiring:  acc.Wiring,
	}, nil
}

func substitute(g *core.Graph, occurrences [][]int) (shape, error) {
	t, err := collapse.Substitute(g, occurrences)
	if err != nil {
		return shape{}, err
	}
	simple, extras := t.Simplify()
	s := shape{
		size:   simple.Size(),
		links:  simple.NumLinks(),
		extras: extras,
		wiring: t.Wiring,
	}
	if g.Directed() {
		s.directed = simple.DirectedDegrees()
	} else {
		s.degrees = simple.Degrees()
	}

	return s, nil
}

// checkRewrites counts links with one or two endpoints in different
// occurrences (or one outside) against limit.
func checkRewrites(g *core.Graph, occurrences [][]int, limit int) error {
	occOf := make(map[int]int)
	for o, occ := range occurrences {
		for _, v := range occ {
			occOf[v] = o
		}
	}
	count := 0
	for _, l := range g.Links() {
		of, inFrom := occOf[l.From]
		ot, inTo := occOf[l.To]
		if !inFrom && !inTo || inFrom && inTo && of == ot {
			continue
		}
		count++
		if count > limit {
			return fmt.Errorf("more than %d rewritten links: %w", limit, ErrTooManyRewrites)
		}
	}

	return nil
}

func rewriteErr(err error) error {
	switch {
	case errors.Is(err, collapse.ErrLimitExceeded):
		return fmt.Errorf("%w: %w", ErrTooManyRewrites, err)
	case errors.Is(err, collapse.ErrDegreeLength):
		return fmt.Errorf("%w: %w", ErrBaseMismatch, err)
	}

	return err
}

// rest fills the model-independent terms of b.
func (s shape) rest(b *Breakdown, n, k, numOcc int, resetWiring bool) {
	b.MultiEdges = coding.MultiEdges(s.extras)
	b.Wiring = coding.Wiring(s.wiring, k, resetWiring)
	b.Labels = coding.Prefix(numOcc) + coding.Log2Choose(s.size, numOcc)
	b.Insertions = coding.Log2Factorial(n) - coding.Log2Factorial(s.size)
}
