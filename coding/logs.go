// SPDX-License-Identifier: MIT
//
// File: logs.go
// Role: log2 of factorials and binomial coefficients via math.Lgamma.
// Complexity: O(1) per call.

package coding

import "math"

// Log2Factorial returns log2(n!). Values n <= 1 yield 0.
func Log2Factorial(n int) float64 {
	if n <= 1 {
		return 0
	}
	lg, _ := math.Lgamma(float64(n) + 1)

	return lg / math.Ln2
}

// Log2Choose returns log2 of the binomial coefficient C(n, k).
// C(n,0) and C(n,n) are exactly 0 bits; k < 0 or k > n is +Inf.
func Log2Choose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(1)
	}
	if k == 0 || k == n {
		return 0
	}

	return Log2Factorial(n) - Log2Factorial(k) - Log2Factorial(n-k)
}
