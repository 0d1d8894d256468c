// SPDX-License-Identifier: MIT
//
// File: prefix.go
// Role: universal self-delimiting code for non-negative integers.

package coding

import "math/bits"

// Prefix returns the length in bits of the Elias gamma code of n+1, a
// prefix-free code over all non-negative integers: 2·⌊log2(n+1)⌋ + 1.
// Prefix(0) is 1.
//
// Panics if n is negative: the code is undefined there, and every caller
// passes a count.
func Prefix(n int) float64 {
	if n < 0 {
		panic("coding: Prefix of negative integer")
	}
	floor := bits.Len64(uint64(n)+1) - 1

	return float64(2*floor + 1)
}
