// SPDX-License-Identifier: MIT
// Package: motive/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig passed
//     by value; no global state.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical graphs.
//   - Constructors append nodes; composition is a disjoint union.

package builder

import (
	"fmt"

	"github.com/katalvlaran/motive/core"
)

const methodBuildGraph = "BuildGraph"

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors must:
//   - validate parameters before adding anything and return sentinel errors;
//   - respect the graph's mode flags (directed, loops, multi-edges);
//   - emit nodes and links in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) plus the sum of the constructors' costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
	}

	return g, nil
}

// link adds from->to and wraps a core error with the constructor name.
func link(g *core.Graph, method string, from, to int) error {
	if err := g.AddEdge(from, to); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, from, to, err)
	}

	return nil
}
