// SPDX-License-Identifier: MIT
// Package: motive/builder
//
// impl_star.go - Star(n) and Wheel(n).
//
// Contract:
//   - Star: n >= 2 nodes; the hub is the first appended node, leaves follow;
//     spokes hub -> leaf in leaf order.
//   - Wheel: n >= 3 rim nodes plus a hub appended first; rim links
//     i -> i+1 (closed), then spokes hub -> rim in rim order.
//
// Complexity: O(n) nodes and links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/motive/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 3
)

// Star returns a Constructor that appends a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.addNodes(g, n)
		for leaf := hub + 1; leaf < hub+n; leaf++ {
			if err := link(g, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that appends a hub and a rim cycle of n nodes.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		hub := cfg.addNodes(g, 1)
		if err := ring(g, cfg, methodWheel, n, true); err != nil {
			return err
		}
		for rim := hub + 1; rim <= hub+n; rim++ {
			if err := link(g, methodWheel, hub, rim); err != nil {
				return err
			}
		}

		return nil
	}
}
