package hilbert

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solve computes x with Ax = b by a dense direct solve. It is a pure
// function; A and b are not modified.
func Solve(a *mat.Dense, b *mat.VecDense) (*mat.VecDense, error) {
	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("failed to solve system: %w", err)
	}
	return &x, nil
}

// Residual returns the Euclidean norm of Ax - b.
func Residual(a *mat.Dense, x, b *mat.VecDense) float64 {
	var r mat.VecDense
	r.MulVec(a, x)
	r.SubVec(&r, b)
	return mat.Norm(&r, 2)
}

// ErrorNorm returns the Euclidean distance between x and the all-ones
// vector, the exact solution for the harmonic right-hand side.
func ErrorNorm(x *mat.VecDense) float64 {
	var sum float64
	for i := 0; i < x.Len(); i++ {
		d := x.AtVec(i) - 1
		sum += d * d
	}
	return math.Sqrt(sum)
}
