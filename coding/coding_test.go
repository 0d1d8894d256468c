// SPDX-License-Identifier: MIT
package coding_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/motive/coding"
)

const eps = 1e-9

func TestPrefix(t *testing.T) {
	cases := map[int]float64{0: 1, 1: 3, 2: 3, 3: 5, 6: 5, 7: 7, 1023: 21}
	for n, want := range cases {
		assert.Equal(t, want, coding.Prefix(n), "Prefix(%d)", n)
	}
	assert.Panics(t, func() { coding.Prefix(-1) })
}

func TestLog2FactorialAndChoose(t *testing.T) {
	assert.Equal(t, 0.0, coding.Log2Factorial(0))
	assert.Equal(t, 0.0, coding.Log2Factorial(1))
	assert.InDelta(t, math.Log2(120), coding.Log2Factorial(5), eps)

	assert.InDelta(t, math.Log2(10), coding.Log2Choose(5, 2), eps)
	assert.Equal(t, 0.0, coding.Log2Choose(7, 0))
	assert.Equal(t, 0.0, coding.Log2Choose(7, 7))
	assert.True(t, math.IsInf(coding.Log2Choose(2, 3), 1))
	assert.True(t, math.IsInf(coding.Log2Choose(2, -1), 1))
}

func TestCoder_Observe(t *testing.T) {
	c := coding.NewCoder(2)
	assert.InDelta(t, 0.5, c.Observe(0), eps)
	assert.InDelta(t, 0.75, c.Observe(0), eps)
	assert.InDelta(t, 1+math.Log2(4.0/3.0), c.Bits(), eps)

	c.Reset()
	assert.Equal(t, 0.0, c.Bits())
	assert.InDelta(t, 0.5, c.Probability(1), eps)
	assert.Panics(t, func() { c.Observe(2) })
	assert.Panics(t, func() { coding.NewCoder(0) })
}

func TestCoder_Exchangeable(t *testing.T) {
	a, b := coding.NewCoder(3), coding.NewCoder(3)
	for _, s := range []int{0, 2, 2, 1, 0, 2} {
		a.Encode(s)
	}
	for _, s := range []int{2, 2, 2, 0, 0, 1} {
		b.Encode(s)
	}
	assert.InDelta(t, a.Bits(), b.Bits(), eps)
}

func TestStoreIntegers(t *testing.T) {
	assert.Equal(t, 0.0, coding.StoreIntegers(nil))
	assert.InDelta(t, 0.0, coding.StoreIntegers([]int{0, 0, 0}), eps)
	// [1]: alphabet {0,1}, one symbol at p = 1/2.
	assert.InDelta(t, 1.0, coding.StoreIntegers([]int{1}), eps)
}

func TestMultiEdges(t *testing.T) {
	assert.Equal(t, coding.Prefix(0), coding.MultiEdges(nil))
	assert.InDelta(t, 1.0, coding.MultiEdges([]int{0, 0}), eps)
	assert.InDelta(t, coding.Prefix(1)+1.0, coding.MultiEdges([]int{1}), eps)
}

func TestWiring(t *testing.T) {
	w := [][]int{{0}, {0}}
	assert.InDelta(t, 2.0, coding.Wiring(w, 2, true), eps)
	assert.InDelta(t, 1+math.Log2(4.0/3.0), coding.Wiring(w, 2, false), eps)
	assert.Equal(t, 0.0, coding.Wiring(nil, 3, true))
	assert.Equal(t, 0.0, coding.Wiring([][]int{{}, {}}, 3, false))
}
