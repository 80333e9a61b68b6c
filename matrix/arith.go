// SPDX-License-Identifier: MIT
// Package matrix — checked integer arithmetic for fraction-free elimination.
//
// Elimination multiplies rows by lcm-derived factors, so intermediate values
// can grow. Every product and difference in the reduction kernel goes through
// the checked helpers below; an overflow surfaces as ErrArithmeticOverflow
// instead of silently wrapping.

package matrix

import "math"

// abs returns |x|. abs(math.MinInt) is never requested: the checked helpers
// reject any operation that could produce it.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// gcd returns the greatest common divisor of |a| and |b| (gcd(0,0) == 0).
func gcd(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// mulChecked returns a*b and false when the product does not fit in int.
func mulChecked(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt || b == math.MinInt {
		return 0, false
	}
	c := a * b
	if c/b != a || c == math.MinInt {
		return 0, false
	}

	return c, true
}

// subChecked returns a-b and false on overflow.
func subChecked(a, b int) (int, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) || c == math.MinInt {
		return 0, false
	}

	return c, true
}

// lcmChecked returns lcm(|a|, |b|) for nonzero a, b, and false on overflow.
func lcmChecked(a, b int) (int, bool) {
	g := gcd(a, b)
	if g == 0 {
		return 0, true
	}

	return mulChecked(abs(a)/g, abs(b))
}
