// SPDX-License-Identifier: MIT

package sorting

import "fmt"

// RadixSort sorts non-negative integers in place with least-significant-
// digit radix sort.
//
// Algorithm:
//  1. Scan once to reject negatives and find the maximum.
//  2. For each digit of the maximum (in Options.RadixBase), run a stable
//     counting pass from the source buffer into the other buffer.
//  3. Copy back if the last pass landed in the scratch buffer.
//
// A negative element yields ErrNegativeValue and no element is moved;
// the check runs before the length shortcut, so a lone negative is
// rejected too. Options.Less is ignored.
//
// Stable.
// Time Complexity: O(d·(n+base)), d = number of digits of max(a).
// Memory: O(n + base).
func RadixSort(a []int, opts ...Option) error {
	maxVal := 0
	for i, v := range a {
		if v < 0 {
			return fmt.Errorf("%w: a[%d] = %d", ErrNegativeValue, i, v)
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if len(a) < 2 || maxVal == 0 { // nothing to order
		return nil
	}
	base := gatherOptions(opts).RadixBase

	src, dst := a, make([]int, len(a))
	count := make([]int, base)
	for exp := 1; ; exp *= base {
		countingPass(src, dst, count, exp, base)
		src, dst = dst, src
		if maxVal/exp < base { // no higher digit left; also keeps exp*base from overflowing
			break
		}
	}
	if &src[0] != &a[0] { // result ended in the scratch buffer
		copy(a, src)
	}

	return nil
}

// countingPass stably distributes src into dst by the digit (v/exp)%base.
// count must have length base; it is reset on entry.
func countingPass(src, dst, count []int, exp, base int) {
	clear(count)
	for _, v := range src {
		count[(v/exp)%base]++
	}
	for d := 1; d < base; d++ { // prefix sums: end position of each digit
		count[d] += count[d-1]
	}
	for i := len(src) - 1; i >= 0; i-- { // walk backwards to stay stable
		d := (src[i] / exp) % base
		count[d]--
		dst[count[d]] = src[i]
	}
}
