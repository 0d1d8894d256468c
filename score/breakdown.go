// SPDX-License-Identifier: MIT

package score

import "fmt"

// Breakdown holds the terms of one code length, in bits.
type Breakdown struct {
	Motif      float64
	Template   float64
	MultiEdges float64
	Wiring     float64
	Labels     float64
	Insertions float64
}

// Total returns the sum of all terms.
func (b Breakdown) Total() float64 {
	return b.Motif + b.Template + b.MultiEdges + b.Wiring + b.Labels + b.Insertions
}

// String renders the terms and the total with two decimals.
func (b Breakdown) String() string {
	return fmt.Sprintf("motif=%.2f template=%.2f multi=%.2f wiring=%.2f labels=%.2f insertions=%.2f total=%.2f",
		b.Motif, b.Template, b.MultiEdges, b.Wiring, b.Labels, b.Insertions, b.Total())
}
