// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/velikanov/matinv/matrix"
)

// ExampleNewAugmented shows how the augmented workspace [A|I] is laid out
// and mutated through its elementary row kernels.
func ExampleNewAugmented() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{4, 7},
		{2, 6},
	})
	aug, _ := matrix.NewAugmented(a)

	// Scale the first row so the pivot becomes 1; the identity half
	// records the same transformation.
	_ = aug.ScaleRow(0, 0.25)

	fmt.Print(aug)
	// Output:
	// [1, 1.75, 0.25, 0]
	// [2, 6, 0, 1]
}
