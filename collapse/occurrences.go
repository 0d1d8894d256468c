// SPDX-License-Identifier: MIT
//
// File: occurrences.go
// Role: validation of occurrence lists and the node -> occurrence index.

package collapse

import (
	"fmt"

	"github.com/katalvlaran/motive/core"
)

const (
	methodValidate = "Validate"
	outside        = -1
)

// Validate checks occurrences against g and returns the common occurrence
// size (0 when occurrences is empty).
//
// Errors:
//   - ErrBadOccurrence on an empty occurrence, unequal lengths, an index
//     outside g, or a node shared by two occurrences (or listed twice).
//
// Complexity: O(Σ|occ|).
func Validate(g *core.Graph, occurrences [][]int) (int, error) {
	_, k, err := index(g.Size(), occurrences)

	return k, err
}

// index maps every node to the occurrence containing it (outside if none).
func index(n int, occurrences [][]int) ([]int, int, error) {
	occOf := make([]int, n)
	for i := range occOf {
		occOf[i] = outside
	}
	if len(occurrences) == 0 {
		return occOf, 0, nil
	}

	k := len(occurrences[0])
	for o, occ := range occurrences {
		if len(occ) == 0 || len(occ) != k {
			return nil, 0, fmt.Errorf("%s: occurrence %d has size %d, want %d: %w",
				methodValidate, o, len(occ), k, ErrBadOccurrence)
		}
		for _, node := range occ {
			if node < 0 || node >= n {
				return nil, 0, fmt.Errorf("%s: occurrence %d: node %d out of range: %w",
					methodValidate, o, node, ErrBadOccurrence)
			}
			if occOf[node] != outside {
				return nil, 0, fmt.Errorf("%s: node %d in occurrences %d and %d: %w",
					methodValidate, node, occOf[node], o, ErrBadOccurrence)
			}
			occOf[node] = o
		}
	}

	return occOf, k, nil
}
