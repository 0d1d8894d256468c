package coding_test

import (
	"fmt"

	"github.com/katalvlaran/motive/coding"
)

// ExampleCoder codes a short slot sequence with the adaptive coder.
func ExampleCoder() {
	c := coding.NewCoder(4)
	for _, s := range []int{1, 1, 1, 3} {
		c.Encode(s)
	}
	fmt.Printf("%.3f bits\n", c.Bits())

	// Output:
	// 7.000 bits
}
