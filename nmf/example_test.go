// SPDX-License-Identifier: MIT
package nmf_test

import (
	"fmt"

	"github.com/katalvlaran/lvnmf/matrix"
	"github.com/katalvlaran/lvnmf/nmf"
)

// ExampleFactorize factorizes a small 3×4 count matrix with rank 2.
func ExampleFactorize() {
	v, _ := matrix.NewDenseFromRows([][]float64{
		{1, 0, 2, 4},
		{0, 3, 1, 0},
		{2, 1, 5, 8},
	})

	res, err := nmf.Factorize(v, 2, 50, 42)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("W %dx%d, H %dx%d, %d norms\n",
		res.W.Rows(), res.W.Cols(), res.H.Rows(), res.H.Cols(), len(res.Norms))
	fmt.Println("non-increasing:", nmf.Trace(res.Norms).IsNonIncreasing(1e-6))

	// Output:
	// W 3x2, H 2x4, 50 norms
	// non-increasing: true
}

// ExampleFactorizeJoint shares one basis across two observations with the
// same rows but different columns.
func ExampleFactorizeJoint() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	b, _ := matrix.NewDenseFromRows([][]float64{{2, 0, 1}, {6, 1, 3}, {10, 2, 5}})

	res, err := nmf.FactorizeJoint([]matrix.Matrix{a, b}, 2, 30, 7, nmf.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("W %dx%d\n", res.W.Rows(), res.W.Cols())
	for i, h := range res.Hs {
		fmt.Printf("H%d %dx%d, %d norms\n", i+1, h.Rows(), h.Cols(), len(res.Norms[i]))
	}

	// Output:
	// W 3x2
	// H1 2x2, 30 norms
	// H2 2x3, 30 norms
}

// ExampleFactorizeJoint_rowMismatch shows the validation performed before any arithmetic.
func ExampleFactorizeJoint_rowMismatch() {
	a, _ := matrix.NewDense(3, 2)
	b, _ := matrix.NewDense(5, 2)

	_, err := nmf.FactorizeJoint([]matrix.Matrix{a, b}, 1, 10, 1)
	fmt.Println(err)

	// Output:
	// FactorizeJoint: V[1] has 5 rows, V[0] has 3: nmf: observations must share the row count
}
