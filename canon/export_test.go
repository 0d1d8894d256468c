// SPDX-License-Identifier: MIT
package canon

import "github.com/katalvlaran/motive/core"

// SearchLeaves runs the exhaustive search on g and returns how many complete
// orders it reached.
func SearchLeaves(g *core.Graph) int {
	s := newSearch(g)
	s.place(0)

	return s.leaves
}
