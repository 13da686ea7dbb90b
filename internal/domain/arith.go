package domain

import "math"

// addClamped adds a and b, clamping at math.MaxInt and math.MinInt instead of
// wrapping around.
func addClamped(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}

	return a + b
}

// mulClamped multiplies a and b, clamping at math.MaxInt and math.MinInt
// instead of wrapping around.
func mulClamped(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}

	positive := (a > 0) == (b > 0)

	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return math.MaxInt
	}

	c := a * b
	if c/b != a {
		if positive {
			return math.MaxInt
		}
		return math.MinInt
	}

	return c
}
