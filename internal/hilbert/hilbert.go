// Package hilbert builds and solves dense linear systems over the Hilbert
// matrix, a classic ill-conditioned benchmark for direct solvers.
package hilbert

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix returns the n-by-n Hilbert matrix with A[i][j] = 1/(i+j+1).
func Matrix(n int) (*mat.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("matrix size must be positive, got %d", n)
	}

	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, 1/float64(i+j+1))
		}
	}
	return a, nil
}

// OnesRHS returns the all-ones right-hand side vector of length n.
func OnesRHS(n int) (*mat.VecDense, error) {
	if n < 1 {
		return nil, fmt.Errorf("vector size must be positive, got %d", n)
	}

	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		b.SetVec(i, 1)
	}
	return b, nil
}

// HarmonicRHS returns the vector whose i-th entry is H(i+n) - H(i), where
// H(k) is the k-th harmonic number. These are exactly the row sums of the
// n-by-n Hilbert matrix, so the system Ax = b has the all-ones vector as
// its exact solution and the solver's error is directly measurable.
func HarmonicRHS(n int) (*mat.VecDense, error) {
	if n < 1 {
		return nil, fmt.Errorf("vector size must be positive, got %d", n)
	}

	h := harmonicNumbers(2 * n)
	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		b.SetVec(i, h[i+n]-h[i])
	}
	return b, nil
}

// harmonicNumbers returns H(0)..H(n).
func harmonicNumbers(n int) []float64 {
	h := make([]float64, n+1)
	for k := 1; k <= n; k++ {
		h[k] = h[k-1] + 1/float64(k)
	}
	return h
}
