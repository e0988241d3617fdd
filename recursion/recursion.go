// SPDX-License-Identifier: MIT

package recursion

import (
	"fmt"
	"math"
)

// Factorial returns n! computed recursively.
// Returns ErrNegative for n < 0 and ErrOverflow once n! exceeds MaxInt.
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: factorial(%d)", ErrNegative, n)
	}
	if n <= 1 {
		return 1, nil
	}
	prev, err := Factorial(n - 1)
	if err != nil {
		return 0, err
	}
	if prev > math.MaxInt/n {
		return 0, fmt.Errorf("%w: factorial(%d)", ErrOverflow, n)
	}

	return prev * n, nil
}

// Fibonacci returns F(n) with F(0)=0, F(1)=1.
// Returns ErrNegative for n < 0 and ErrOverflow when F(n) exceeds MaxInt.
func Fibonacci(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: fibonacci(%d)", ErrNegative, n)
	}
	a, b := 0, 1 // F(i), F(i+1)
	for i := 0; i < n; i++ {
		if b > math.MaxInt-a {
			// F(i+2) would overflow; fine while it is not the answer
			if i+1 == n {
				return b, nil
			}

			return 0, fmt.Errorf("%w: fibonacci(%d)", ErrOverflow, n)
		}
		a, b = b, a+b
	}

	return a, nil
}

// GCD returns the greatest common divisor of |a| and |b| by Euclid's
// algorithm. GCD(0, 0) is 0. The result is undefined when it would be
// |MinInt|.
func GCD(a, b int) int {
	if b == 0 {
		if a < 0 {
			return -a
		}

		return a
	}

	return GCD(b, a%b)
}

// Power returns base^exp by recursive squaring. Power(x, 0) is 1 for every
// x, including 0.
// Returns ErrNegative for exp < 0 and ErrOverflow when the result leaves
// the int range.
func Power(base, exp int) (int, error) {
	if exp < 0 {
		return 0, fmt.Errorf("%w: exponent %d", ErrNegative, exp)
	}
	r, ok := power(base, exp)
	if !ok {
		return 0, fmt.Errorf("%w: %d^%d", ErrOverflow, base, exp)
	}

	return r, nil
}

// power squares base^(exp/2) and reports false once any product overflows.
func power(base, exp int) (int, bool) {
	if exp == 0 {
		return 1, true
	}
	half, ok := power(base, exp/2)
	if !ok {
		return 0, false
	}
	r, ok := mulChecked(half, half)
	if ok && exp%2 == 1 {
		r, ok = mulChecked(r, base)
	}

	return r, ok
}

// mulChecked returns a*b and whether it fits in an int.
func mulChecked(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}

	return c, true
}

// Hanoi returns the 2ⁿ-1 moves that transfer n disks from peg from to peg
// to using aux, never placing a larger disk on a smaller one.
// n <= 0 yields no moves.
func Hanoi(n int, from, to, aux string) []Move {
	if n <= 0 {
		return []Move{}
	}
	moves := make([]Move, 0, (1<<min(n, 20))-1)
	hanoi(n, from, to, aux, &moves)

	return moves
}

func hanoi(n int, from, to, aux string, moves *[]Move) {
	if n == 0 {
		return
	}
	hanoi(n-1, from, aux, to, moves)
	*moves = append(*moves, Move{Disk: n, From: from, To: to})
	hanoi(n-1, aux, to, from, moves)
}
