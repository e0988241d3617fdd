// SPDX-License-Identifier: MIT

package logarithm

import (
	"fmt"
	"math"
)

// Lg returns ⌊log₂ n⌋, the unique i with 2^i <= n < 2^(i+1).
// Precondition: n > 0. For n <= 0 the result is 0 and carries no meaning.
func Lg(n int) int {
	i := 0
	for n > 1 {
		n /= 2
		i++
	}

	return i
}

// Lg10 returns ⌊log₁₀ n⌋, or -1 when n <= 0.
func Lg10(n int) int {
	if n <= 0 {
		return -1
	}
	count := 0
	for n >= 10 {
		n /= 10
		count++
	}

	return count
}

// LogBase returns log_base(x).
// Returns ErrDomain unless x > 0, base > 0 and base != 1.
func LogBase(x, base float64) (float64, error) {
	if !(x > 0) || !(base > 0) || base == 1 || math.IsInf(x, 0) || math.IsInf(base, 0) {
		return math.NaN(), fmt.Errorf("%w: log_%g(%g)", ErrDomain, base, x)
	}

	return math.Log(x) / math.Log(base), nil
}
