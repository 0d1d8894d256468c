// Package coding provides the code-length primitives of the MDL engine:
// log-factorials and binomials in bits, a universal prefix code for
// non-negative integers, and a Krichevsky–Trofimov adaptive coder.
//
// Every function returns a code length in bits (float64). None of them
// produce NaN for valid input; impossible events (choosing more items than
// exist) are +Inf.
//
// Universal integer code:
//
//	Prefix(n) = 2·⌊log2(n+1)⌋ + 1     // Elias gamma on n+1; Prefix(0) = 1
//
// Adaptive coder (alphabet [0, size)):
//
//	p(s) = (count(s) + ½) / (total + ½·size)
//
// The KT estimator is exchangeable: the total code length of a sequence
// does not depend on the order of its symbols.
package coding
