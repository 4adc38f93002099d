// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/sparsekit/sparse"
	"github.com/katalvlaran/sparsekit/vector"
)

// ExampleNew builds a 3×3 identity pattern through the OPEN→CLOSED
// protocol and multiplies it against a dense vector.
func ExampleNew() {
	m, _ := sparse.New(3)
	_ = m.Set(0, 0, 1)
	_ = m.Set(1, 1, 1)
	_ = m.Set(2, 2, 1)
	_ = m.Close()

	x, _ := vector.FromSlice([]float64{2, 3, 4})
	y, _ := vector.New(3)
	_ = m.MatVec(x, y, 1)

	fmt.Println(y)

	// Output:
	// [2, 3, 4]
}

// ExampleMatrix_SORStep solves a small diagonally dominant system by
// sweeping SOR until the residual norm is negligible. The caller owns the
// stopping rule; each sweep returns the pre-update residual norm.
func ExampleMatrix_SORStep() {
	// A = [[4, -1, 0], [-1, 4, -1], [0, -1, 4]], diagonal stored first per row.
	m, _ := sparse.New(3)
	_ = m.Set(0, 0, 4)
	_ = m.Set(0, 1, -1)
	_ = m.Set(1, 1, 4)
	_ = m.Set(1, 0, -1)
	_ = m.Set(1, 2, -1)
	_ = m.Set(2, 2, 4)
	_ = m.Set(2, 1, -1)
	_ = m.Close()

	rhs, _ := vector.FromSlice([]float64{3, 2, 3})
	x, _ := vector.New(3)

	res := 1.0
	for res > 1e-12 {
		res, _ = m.SORStep(x, rhs, 1.0)
	}

	x0, _ := x.At(0)
	x1, _ := x.At(1)
	x2, _ := x.At(2)
	fmt.Printf("x ≈ [%.3f %.3f %.3f]\n", x0, x1, x2)

	// Output:
	// x ≈ [1.000 1.000 1.000]
}
