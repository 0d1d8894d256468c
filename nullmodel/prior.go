// SPDX-License-Identifier: MIT
//
// File: prior.go
// Role: priors on degree sequences.

package nullmodel

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/motive/coding"
	"github.com/katalvlaran/motive/core"
)

// Prior selects how a degree sequence itself is encoded.
type Prior int

const (
	// PriorML charges the empirical entropy of the degrees: Σ -log2(freq(d)/n).
	// It is a lower bound, not a decodable code; use it for baselines.
	PriorML Prior = iota
	// PriorComplete is a decodable code: the size, the maximum degree and a
	// KT code of the degrees over [0, max].
	PriorComplete
)

// String returns the configuration name of p.
func (p Prior) String() string {
	switch p {
	case PriorML:
		return "ml"
	case PriorComplete:
		return "complete"
	default:
		return fmt.Sprintf("Prior(%d)", int(p))
	}
}

// ParsePrior maps "ml" and "complete" (case-insensitive) to a Prior.
func ParsePrior(s string) (Prior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ml":
		return PriorML, nil
	case "complete":
		return PriorComplete, nil
	default:
		return 0, fmt.Errorf("ParsePrior(%q): %w", s, ErrUnknownPrior)
	}
}

// DegreePrior returns the prior cost of an undirected degree sequence.
func DegreePrior(degrees []int, p Prior) float64 {
	if p == PriorComplete {
		return completePrior(degrees)
	}

	return entropy(degrees)
}

// DirectedDegreePrior returns the prior cost of a directed sequence: the
// in- and out-degrees are coded as two separate sequences.
func DirectedDegreePrior(degrees []core.Degree, p Prior) float64 {
	in, out := split(degrees)
	if p == PriorComplete {
		// The size is shared by both sequences.
		return completePrior(in) + completePrior(out) - coding.Prefix(len(degrees))
	}

	return entropy(in) + entropy(out)
}

func completePrior(degrees []int) float64 {
	bits := coding.Prefix(len(degrees))
	if len(degrees) == 0 {
		return bits + coding.Prefix(0)
	}
	maxDeg := 0
	for _, d := range degrees {
		if d > maxDeg {
			maxDeg = d
		}
	}

	return bits + coding.Prefix(maxDeg) + coding.StoreIntegers(degrees)
}

func entropy(degrees []int) float64 {
	if len(degrees) == 0 {
		return 0
	}
	freq := make(map[int]int)
	for _, d := range degrees {
		freq[d]++
	}
	n := float64(len(degrees))
	bits := 0.0
	for _, f := range freq {
		bits += -float64(f) * math.Log2(float64(f)/n)
	}

	return bits
}

func split(degrees []core.Degree) (in, out []int) {
	in = make([]int, len(degrees))
	out = make([]int, len(degrees))
	for i, d := range degrees {
		in[i], out[i] = d.In, d.Out
	}

	return in, out
}
