package search

import (
	"fmt"
	"math/big"
)

// FactorialCache memoizes exact factorial values for a single worker.
// It is not safe for concurrent use; every worker owns its own cache and
// caches are never shared, so no locking is needed anywhere.
type FactorialCache struct {
	values map[int]*big.Int
	maxN   int // largest n present in values; every m <= maxN is cached
}

// NewFactorialCache returns a cache seeded with 0! = 1.
func NewFactorialCache() *FactorialCache {
	return &FactorialCache{
		values: map[int]*big.Int{0: big.NewInt(1)},
	}
}

// Factorial returns n! as an exact arbitrary-precision integer. A cache miss
// is filled iteratively from the largest cached factorial, storing every
// intermediate value, so an ascending run of candidates costs a single
// multiplication per step. Callers must not mutate the returned value.
func (c *FactorialCache) Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("factorial is not defined for negative numbers: %d", n)
	}

	if v, ok := c.values[n]; ok {
		return v, nil
	}

	// Miss implies n > maxN, since all entries up to maxN are present.
	acc := new(big.Int).Set(c.values[c.maxN])
	term := new(big.Int)
	for i := c.maxN + 1; i <= n; i++ {
		term.SetInt64(int64(i))
		acc.Mul(acc, term)
		c.values[i] = new(big.Int).Set(acc)
	}
	c.maxN = n

	return c.values[n], nil
}

// Len reports how many factorial values are cached.
func (c *FactorialCache) Len() int {
	return len(c.values)
}
