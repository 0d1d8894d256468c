// SPDX-License-Identifier: MIT
//
// File: sampler.go
// Role: Sampler interface, function adapter and the expansion sampler.
// Complexity:
//   - Expansion: O(size · deg) per attempt, at most MaxAttempts attempts.

package sample

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/motive/core"
)

// DefaultMaxAttempts bounds Expansion restarts when MaxAttempts is zero.
const DefaultMaxAttempts = 100

const methodSample = "Sample"

// Sampler draws the node indices of one random subgraph with size nodes.
// The returned indices are distinct; their order is unspecified.
type Sampler interface {
	Sample(g *core.Graph, size int, rng *rand.Rand) ([]int, error)
}

// Func adapts a plain function to Sampler.
type Func func(g *core.Graph, size int, rng *rand.Rand) ([]int, error)

// Sample calls f.
func (f Func) Sample(g *core.Graph, size int, rng *rand.Rand) ([]int, error) {
	return f(g, size, rng)
}

// Expansion samples connected node sets by random frontier expansion.
// An attempt whose frontier empties before reaching size restarts from a
// new random node.
type Expansion struct {
	// MaxAttempts bounds the restarts; zero means DefaultMaxAttempts.
	MaxAttempts int
}

// Sample returns size distinct node indices in the order they were absorbed.
//
// Errors:
//   - ErrTooSmall if size < 1 or size > g.Size().
//   - ErrNoSubgraph after MaxAttempts failed attempts.
func (e Expansion) Sample(g *core.Graph, size int, rng *rand.Rand) ([]int, error) {
	n := g.Size()
	if size < 1 || size > n {
		return nil, fmt.Errorf("%s: size %d, graph %d: %w", methodSample, size, n, ErrTooSmall)
	}
	attempts := e.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	// member: 0 untouched, 1 on the frontier, 2 selected.
	member := make(map[int]uint8, 2*size)
	for a := 0; a < attempts; a++ {
		clear(member)
		picked, err := e.grow(g, size, rng, member)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodSample, err)
		}
		if picked != nil {
			return picked, nil
		}
	}

	return nil, fmt.Errorf("%s: size %d after %d attempts: %w", methodSample, size, attempts, ErrNoSubgraph)
}

// grow runs one attempt; a nil slice means the component was too small.
func (e Expansion) grow(g *core.Graph, size int, rng *rand.Rand, member map[int]uint8) ([]int, error) {
	const (
		onFrontier uint8 = 1
		selected   uint8 = 2
	)

	picked := make([]int, 0, size)
	frontier := []int{rng.IntN(g.Size())}
	member[frontier[0]] = onFrontier
	for len(picked) < size {
		if len(frontier) == 0 {
			return nil, nil
		}
		i := rng.IntN(len(frontier))
		v := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		member[v] = selected
		picked = append(picked, v)
		if len(picked) == size {
			break
		}

		nbs, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		for _, w := range nbs {
			if member[w] == 0 {
				member[w] = onFrontier
				frontier = append(frontier, w)
			}
		}
	}

	return picked, nil
}
