package search

import "math/big"

// isqrt returns the integer floor of the square root of v. big.Int.Sqrt is
// integer-only, so there is no precision loss however large v grows.
func isqrt(v *big.Int) *big.Int {
	return new(big.Int).Sqrt(v)
}

// perfectSquareRoot reports whether v is a perfect square and, when it is,
// returns its exact integer square root.
func perfectSquareRoot(v *big.Int) (*big.Int, bool) {
	r := isqrt(v)
	var sq big.Int
	sq.Mul(r, r)
	return r, sq.Cmp(v) == 0
}
