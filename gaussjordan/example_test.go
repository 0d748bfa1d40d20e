package gaussjordan_test

import (
	"fmt"

	"github.com/velikanov/matinv/gaussjordan"
	"github.com/velikanov/matinv/matrix"
)

// ExampleInvert inverts a small matrix and prints the inverse together
// with the recorded elimination trace.
func ExampleInvert() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{4, 7},
		{2, 6},
	})

	res, _ := gaussjordan.Invert(a, nil)
	for i := 0; i < res.Inverse.Rows(); i++ {
		for j := 0; j < res.Inverse.Cols(); j++ {
			v, _ := res.Inverse.At(i, j)
			fmt.Printf("%6.1f", v)
		}
		fmt.Println()
	}
	for _, op := range res.Log {
		fmt.Println(op.Desc)
	}

	// Output:
	//    0.6  -0.7
	//   -0.2   0.4
	// E₁(0.2500)
	// E₂,₁(-2)
	// E₂(0.4000)
	// E₁,₂(-1.7500)
}

// ExampleInvert_singular shows the singular outcome: no inverse, but the
// operations applied before detection are preserved.
func ExampleInvert_singular() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{2, 4},
	})

	res, _ := gaussjordan.Invert(a, nil)
	fmt.Println("singular:", res.Singular)
	fmt.Println("steps recorded:", len(res.Log))

	// Output:
	// singular: true
	// steps recorded: 3
}

// ExampleDet computes a determinant without building the inverse.
func ExampleDet() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{4, 7},
		{2, 6},
	})

	det, _ := gaussjordan.Det(a, nil)
	fmt.Printf("det = %.0f\n", det)

	// Output:
	// det = 10
}

// ExampleReplay re-applies a recorded trace to a fresh augmented matrix.
func ExampleReplay() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{4, 7},
		{2, 6},
	})

	res, _ := gaussjordan.Invert(a, nil)
	aug, _ := gaussjordan.Replay(a, res.Log)

	left := aug.LeftHalf()
	for i := 0; i < left.Rows(); i++ {
		for j := 0; j < left.Cols(); j++ {
			v, _ := left.At(i, j)
			fmt.Printf("%4.0f", v)
		}
		fmt.Println()
	}

	// Output:
	//    1   0
	//    0   1
}
