// SPDX-License-Identifier: MIT
// Package: motive/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n >= 2; links base+i -> base+i+1 for i = 0..n-2.
//   - Cycle: n >= 3; Path plus the closing link base+n-1 -> base.
//   - Directed graphs get one direction only, in emission order.
//
// Complexity: O(n) nodes and links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/motive/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that appends a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return ring(g, cfg, methodPath, n, false)
	}
}

// Cycle returns a Constructor that appends a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return ring(g, cfg, methodCycle, n, true)
	}
}

func ring(g *core.Graph, cfg builderConfig, method string, n int, closed bool) error {
	base := cfg.addNodes(g, n)
	for i := 0; i < n-1; i++ {
		if err := link(g, method, base+i, base+i+1); err != nil {
			return err
		}
	}
	if closed {
		return link(g, method, base+n-1, base)
	}

	return nil
}
