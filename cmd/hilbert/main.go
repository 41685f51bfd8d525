package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"brocard-search/internal/hilbert"
)

func main() {
	harmonic := flag.Bool("harmonic", false, "Use the harmonic-number right-hand side (exact solution is all ones)")
	flag.Parse()

	n, err := sizeFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a, err := hilbert.Matrix(n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var b *mat.VecDense
	if *harmonic {
		b, err = hilbert.HarmonicRHS(n)
	} else {
		b, err = hilbert.OnesRHS(n)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	x, err := hilbert.Solve(a, b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Print vertically for easier reading
	fmt.Println("Solution for x:")
	for i := 0; i < n; i++ {
		fmt.Println(x.AtVec(i))
	}

	fmt.Println("Check Ax = b")
	var ax mat.VecDense
	ax.MulVec(a, x)
	for i := 0; i < n; i++ {
		fmt.Println(ax.AtVec(i))
	}

	fmt.Printf("Residual ||Ax - b|| = %g\n", hilbert.Residual(a, x, b))
	if *harmonic {
		fmt.Printf("Error ||x - 1|| = %g\n", hilbert.ErrorNorm(x))
	}
}

// sizeFromEnv reads the system size from the N environment variable,
// defaulting to 10.
func sizeFromEnv() (int, error) {
	env := os.Getenv("N")
	if env == "" {
		return 10, nil
	}

	n, err := strconv.Atoi(env)
	if err != nil {
		return 0, fmt.Errorf("N must be an integer, got %q", env)
	}
	if n < 1 {
		return 0, fmt.Errorf("N must be positive, got %d", n)
	}
	return n, nil
}
