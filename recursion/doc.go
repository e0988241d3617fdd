// SPDX-License-Identifier: MIT

// Package recursion collects the classic recursive routines used to teach
// divide-and-conquer: factorial, Fibonacci numbers, Euclid's GCD, fast
// exponentiation and the towers of Hanoi.
//
// Integer results are native ints. Every routine that can exceed the int
// range reports ErrOverflow instead of silently wrapping.
//
// Complexity:
//
//	Factorial  O(n) time, O(n) stack
//	Fibonacci  O(n) time, O(1) space (iterative; the naive recursion is exponential)
//	GCD        O(log min(|a|,|b|))
//	Power      O(log exp) multiplications, O(log exp) stack
//	Hanoi      O(2ⁿ) moves, O(n) stack
//
// Errors:
//
//   - ErrNegative  negative argument where only n >= 0 is defined
//   - ErrOverflow  result does not fit in an int
package recursion
