// SPDX-License-Identifier: MIT
//
// File: codes.go
// Role: composite codes built on Coder and Prefix: integer sequences,
// multi-edge side channel and occurrence wiring.

package coding

// StoreIntegers returns the KT code length of seq over the alphabet
// [0, max(seq)]. The maximum itself is not included (callers send it with
// Prefix). An empty sequence costs 0 bits.
// Panics on negative entries.
func StoreIntegers(seq []int) float64 {
	if len(seq) == 0 {
		return 0
	}
	c := NewCoder(maxOf(seq) + 1)
	for _, s := range seq {
		c.Observe(s)
	}

	return c.Bits()
}

// MultiEdges returns the cost of the multi-edge side channel: for every
// collapsed pair, the number of parallel copies beyond the first.
// No pairs cost Prefix(0); otherwise Prefix(max) plus the KT code of the
// extras over [0, max].
func MultiEdges(extras []int) float64 {
	if len(extras) == 0 {
		return Prefix(0)
	}

	return Prefix(maxOf(extras)) + StoreIntegers(extras)
}

// Wiring returns the cost of the wiring record: every slot index of every
// occurrence is coded with a KT coder over [0, motifSize). With reset the
// coder starts fresh for each occurrence; otherwise it keeps learning
// across the whole record.
func Wiring(wiring [][]int, motifSize int, reset bool) float64 {
	if len(wiring) == 0 || motifSize < 1 {
		return 0
	}
	c := NewCoder(motifSize)
	total := 0.0
	for _, slots := range wiring {
		if reset {
			total += c.Bits()
			c.Reset()
		}
		for _, s := range slots {
			c.Observe(s)
		}
	}

	return total + c.Bits()
}

func maxOf(seq []int) int {
	m := seq[0]
	for _, s := range seq[1:] {
		if s > m {
			m = s
		}
	}

	return m
}
