// SPDX-License-Identifier: MIT

// Package logarithm computes truncated (floor) logarithms with integer
// arithmetic, the quantities that show up when analysing divide-and-conquer
// running times.
//
// What:
//
//   - Lg(n):   ⌊log₂ n⌋ by repeated halving. Defined for n > 0 only; for
//     n <= 0 it returns 0, a value callers must not rely on.
//   - Lg10(n): ⌊log₁₀ n⌋ by repeated division. Returns -1 for n <= 0.
//   - LogBase(x, base): real logarithm in any valid base.
//
// The two integer functions deliberately keep their different out-of-domain
// behaviour; they are documented, not unified.
//
// Division never overflows, so both integer loops are safe for every int,
// unlike the doubling formulation n = 2*n which wraps near MaxInt.
//
// Complexity: Lg O(log n), Lg10 O(log n), LogBase O(1).
//
// Errors:
//
//   - ErrDomain  LogBase outside x > 0, base > 0, base != 1
package logarithm
