// SPDX-License-Identifier: MIT
// Package: motive/builder
//
// planted.go - synthetic graphs with hidden motif instances.
//
// Planted(n, m, motif, instances, maxDegree) builds a graph of n nodes and m
// links containing `instances` node-disjoint copies of motif:
//
//  1. Sample the compressed graph: RandomLinks(n', m') with
//     n' = n - instances*(k-1) and m' = m - instances*|motif links|.
//  2. Pick `instances` distinct nodes of degree <= maxDegree uniformly.
//  3. Draw one multinomial p over the k motif nodes from a flat Dirichlet.
//  4. Replace every picked node by a fresh motif copy; each link that touched
//     it is rewired to a motif node drawn from p.
//
// Rewiring never creates loops or parallel links: a non-instance endpoint
// keeps at most one link per block and direction.

package builder

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/motive/core"
)

const (
	methodPlanted  = "Planted"
	minPlantedSize = 2
)

// Planting is a generated graph plus the node sets of its planted
// instances, each listed in motif node order.
type Planting struct {
	Graph       *core.Graph
	Occurrences [][]int
}

// Planted generates a graph with planted motif instances. The graph's
// direction follows motif. Non-motif nodes are labeled by the configured
// LabelFn; motif nodes keep the motif's labels. Requires an RNG.
//
// Errors:
//   - ErrNilMotif, ErrNeedRandSource.
//   - ErrTooFewVertices: motif smaller than 2 nodes, negative instances or
//     maxDegree, or n too small to hold the instances.
//   - ErrTooManyLinks: m below the links the instances need, or above the
//     compressed graph's capacity.
//   - ErrConstructFailed: fewer than `instances` nodes of degree <= maxDegree.
func Planted(n, m int, motif *core.Graph, instances, maxDegree int, opts ...BuilderOption) (*Planting, error) {
	cfg := newBuilderConfig(opts...)
	if motif == nil {
		return nil, fmt.Errorf("%s: %w", methodPlanted, ErrNilMotif)
	}
	k := motif.Size()
	if k < minPlantedSize {
		return nil, fmt.Errorf("%s: motif size %d < %d: %w", methodPlanted, k, minPlantedSize, ErrTooFewVertices)
	}
	if instances < 0 || maxDegree < 0 {
		return nil, fmt.Errorf("%s: instances=%d, maxDegree=%d: %w",
			methodPlanted, instances, maxDegree, ErrTooFewVertices)
	}
	nc, mc := n-instances*(k-1), m-instances*motif.NumLinks()
	if nc < max(instances, 1) {
		return nil, fmt.Errorf("%s: n=%d cannot hold %d instances of size %d: %w",
			methodPlanted, n, instances, k, ErrTooFewVertices)
	}
	if mc < 0 {
		return nil, fmt.Errorf("%s: m=%d below the %d links of the instances: %w",
			methodPlanted, m, instances*motif.NumLinks(), ErrTooManyLinks)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", methodPlanted, ErrNeedRandSource)
	}

	// Stage 1: compressed graph.
	directed := motif.Directed()
	compressed := core.NewGraph(core.WithDirected(directed))
	if err := RandomLinks(nc, mc)(compressed, builderConfig{label: NoLabel, rng: cfg.rng}); err != nil {
		return nil, fmt.Errorf("%s: %w", methodPlanted, err)
	}

	// Stage 2: instance nodes.
	candidates := make([]int, 0, nc)
	for i := 0; i < nc; i++ {
		if compressed.Degree(i) <= maxDegree {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) < instances {
		return nil, fmt.Errorf("%s: %d candidates of degree <= %d, need %d: %w",
			methodPlanted, len(candidates), maxDegree, instances, ErrConstructFailed)
	}
	for i := 0; i < instances; i++ {
		r := i + cfg.rng.IntN(len(candidates)-i)
		candidates[i], candidates[r] = candidates[r], candidates[i]
	}
	chosen := candidates[:instances]
	slices.Sort(chosen)

	// Stage 3: attachment distribution over motif nodes.
	ones := make([]float64, k)
	for i := range ones {
		ones[i] = 1
	}
	probs := distmv.NewDirichlet(ones, cfg.rng).Rand(nil)
	attach := distuv.NewCategorical(probs, cfg.rng)

	// Stage 4: expand instances into motif copies.
	var (
		g      = core.NewGraph(core.WithDirected(directed))
		index  = make([]int, nc)
		isInst = make([]bool, nc)
		labels = motif.Labels()
		res    = &Planting{Graph: g, Occurrences: make([][]int, 0, instances)}
	)
	for _, c := range chosen {
		isInst[c] = true
	}
	for c := 0; c < nc; c++ {
		index[c] = g.Size()
		if !isInst[c] {
			g.AddNode(cfg.label(index[c]))
			continue
		}
		occ := make([]int, k)
		for i, l := range labels {
			occ[i] = g.AddNode(l)
		}
		res.Occurrences = append(res.Occurrences, occ)
	}
	for _, occ := range res.Occurrences {
		for _, l := range motif.Links() {
			if err := link(g, methodPlanted, occ[l.From], occ[l.To]); err != nil {
				return nil, err
			}
		}
	}
	end := func(c int) int {
		if isInst[c] {
			return index[c] + int(attach.Rand())
		}

		return index[c]
	}
	for _, l := range compressed.Links() {
		if err := link(g, methodPlanted, end(l.From), end(l.To)); err != nil {
			return nil, err
		}
	}

	return res, nil
}
