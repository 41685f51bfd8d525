// Package search looks for solutions to Brocard's equation n! + 1 = x^2
// within a bounded candidate range, either sequentially or across a fixed
// pool of workers with private factorial caches.
package search

import (
	"fmt"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the number of consecutive candidates handed to a
// worker at a time.
const DefaultChunkSize = 10

// Solution is a candidate n for which n! + 1 is a perfect square, together
// with the exact integer square root x, so that x*x == n! + 1.
type Solution struct {
	N int
	X *big.Int
}

// Options control how Find distributes work.
type Options struct {
	// Workers is the size of the worker pool. Zero or negative means one
	// worker per CPU core.
	Workers int

	// ChunkSize is the number of consecutive candidates per work chunk.
	// Zero or negative means DefaultChunkSize.
	ChunkSize int
}

// Sequential evaluates every candidate in {1, ..., limit} in ascending order
// with a single running factorial product. It is the reference the parallel
// search must agree with.
func Sequential(limit int) ([]Solution, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	var solutions []Solution
	factorial := big.NewInt(1)
	term := new(big.Int)
	v := new(big.Int)

	for n := 1; n <= limit; n++ {
		term.SetInt64(int64(n))
		factorial.Mul(factorial, term)
		v.Add(factorial, bigOne)
		if x, ok := perfectSquareRoot(v); ok {
			solutions = append(solutions, Solution{N: n, X: x})
		}
	}

	return solutions, nil
}

// Find evaluates every candidate in {1, ..., limit} across a fixed pool of
// workers and returns the solutions in ascending n order.
//
// The range is statically partitioned into contiguous chunks. Workers pull
// chunk indices from a channel and write each chunk's solutions into a slot
// reserved for that chunk, so the final concatenation follows candidate
// order rather than completion order and the result is identical to
// Sequential regardless of scheduling, worker count, or chunk size. Each
// worker keeps its own factorial cache across all chunks it takes; caches
// are never shared between workers.
func Find(limit int, opts Options) ([]Solution, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	numChunks := (limit + chunkSize - 1) / chunkSize
	partials := make([][]Solution, numChunks)

	chunks := make(chan int, numChunks)
	for i := 0; i < numChunks; i++ {
		chunks <- i
	}
	close(chunks)

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			cache := NewFactorialCache()
			for idx := range chunks {
				start := idx*chunkSize + 1
				end := start + chunkSize - 1
				if end > limit {
					end = limit
				}

				part, err := evalRange(cache, start, end)
				if err != nil {
					return err
				}
				// Each chunk index is taken by exactly one worker, so
				// the slot is written once and never contended.
				partials[idx] = part
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var solutions []Solution
	for _, part := range partials {
		solutions = append(solutions, part...)
	}
	return solutions, nil
}

// evalRange checks candidates start..end in ascending order against the
// worker's private cache. Candidates without a solution contribute nothing;
// no placeholder markers are produced.
func evalRange(cache *FactorialCache, start, end int) ([]Solution, error) {
	var part []Solution
	v := new(big.Int)

	for n := start; n <= end; n++ {
		factorial, err := cache.Factorial(n)
		if err != nil {
			return nil, err
		}
		v.Add(factorial, bigOne)
		if x, ok := perfectSquareRoot(v); ok {
			part = append(part, Solution{N: n, X: x})
		}
	}

	return part, nil
}

var bigOne = big.NewInt(1)
