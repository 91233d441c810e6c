package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/aerovlm/matrix"
)

// ExampleSolve solves a small dense system with partial pivoting.
func ExampleSolve() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{0, 2},
		{4, 1},
	})
	x, err := matrix.Solve(a, []float64{2, 5})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("x = [%.2f %.2f]\n", x[0], x[1])
	// Output:
	// x = [1.00 1.00]
}

// ExampleLU shows the row permutation chosen by partial pivoting.
func ExampleLU() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	f, _ := matrix.LU(a)
	fmt.Println("pivots:", f.Pivots())
	// Output:
	// pivots: [1 0]
}
