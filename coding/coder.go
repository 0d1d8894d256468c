// SPDX-License-Identifier: MIT
//
// File: coder.go
// Role: Krichevsky–Trofimov adaptive coder over a fixed integer alphabet.
// Determinism:
//   - Pure arithmetic; the same symbol sequence yields the same bits.
// Concurrency:
//   - A Coder is not safe for concurrent use; create one per goroutine.

package coding

import (
	"fmt"
	"math"
)

// ktSmoothing is the pseudo-count every symbol starts with.
const ktSmoothing = 0.5

// Coder is an online categorical coder over the alphabet [0, size).
// Each observation is coded with the current estimate and then counted,
// so later symbols become cheaper as they repeat.
type Coder struct {
	counts []float64
	total  float64
	bits   float64
}

// NewCoder returns a coder over [0, size). Panics if size < 1.
func NewCoder(size int) *Coder {
	if size < 1 {
		panic(fmt.Sprintf("coding: NewCoder(%d): empty alphabet", size))
	}

	return &Coder{counts: make([]float64, size)}
}

// Size returns the alphabet size.
func (c *Coder) Size() int { return len(c.counts) }

// Probability returns the current estimate for symbol s without observing it.
// Panics if s is outside the alphabet.
func (c *Coder) Probability(s int) float64 {
	c.check(s)

	return (c.counts[s] + ktSmoothing) / (c.total + ktSmoothing*float64(len(c.counts)))
}

// Observe returns the probability of s under the current estimate, then
// counts s.
func (c *Coder) Observe(s int) float64 {
	p := c.Probability(s)
	c.counts[s]++
	c.total++
	c.bits += -math.Log2(p)

	return p
}

// Encode observes s and returns its code length, -log2 p.
func (c *Coder) Encode(s int) float64 {
	return -math.Log2(c.Observe(s))
}

// Bits returns the total code length of everything observed since the last
// Reset.
func (c *Coder) Bits() float64 { return c.bits }

// Reset forgets all observations.
func (c *Coder) Reset() {
	for i := range c.counts {
		c.counts[i] = 0
	}
	c.total = 0
	c.bits = 0
}

func (c *Coder) check(s int) {
	if s < 0 || s >= len(c.counts) {
		panic(fmt.Sprintf("coding: symbol %d outside alphabet [0,%d)", s, len(c.counts)))
	}
}
