package search

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		want string
	}{
		{
			name: "zero",
			n:    0,
			want: "1",
		},
		{
			name: "one",
			n:    1,
			want: "1",
		},
		{
			name: "five",
			n:    5,
			want: "120",
		},
		{
			name: "twenty",
			n:    20,
			want: "2432902008176640000",
		},
		{
			name: "beyond int64",
			n:    25,
			want: "15511210043330985984000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewFactorialCache()
			got, err := cache.Factorial(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFactorial_Negative(t *testing.T) {
	t.Parallel()

	cache := NewFactorialCache()
	_, err := cache.Factorial(-1)
	assert.Error(t, err, "negative n must be rejected, not ignored")
}

// TestFactorial_CacheReuse verifies that an ascending run of candidates
// fills the cache once and that earlier values are served from it.
func TestFactorial_CacheReuse(t *testing.T) {
	t.Parallel()

	cache := NewFactorialCache()

	first, err := cache.Factorial(10)
	require.NoError(t, err)
	assert.Equal(t, "3628800", first.String())

	// Every intermediate 0..10 should now be cached.
	assert.Equal(t, 11, cache.Len())

	// A smaller n is a pure cache hit and must not grow the cache.
	mid, err := cache.Factorial(7)
	require.NoError(t, err)
	assert.Equal(t, "5040", mid.String())
	assert.Equal(t, 11, cache.Len())

	// Extending past the cached maximum multiplies up from it.
	next, err := cache.Factorial(12)
	require.NoError(t, err)
	assert.Equal(t, "479001600", next.String())
	assert.Equal(t, 13, cache.Len())
}

// TestFactorial_MatchesRecurrence cross-checks cached values against an
// independent running product.
func TestFactorial_MatchesRecurrence(t *testing.T) {
	t.Parallel()

	cache := NewFactorialCache()
	product := big.NewInt(1)

	for n := 1; n <= 50; n++ {
		product.Mul(product, big.NewInt(int64(n)))
		got, err := cache.Factorial(n)
		require.NoError(t, err)
		assert.Zero(t, product.Cmp(got), "factorial mismatch at n=%d", n)
	}
}
