// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/algokit/order"
)

// MergeSort sorts a in place with a top-down merge sort.
//
// Algorithm:
//  1. Split the range at its midpoint.
//  2. Recursively sort both halves (ranges at or below the cutoff are
//     insertion-sorted instead).
//  3. Skip the merge when the halves are already in order.
//  4. Otherwise merge the two runs by repeated minimum extraction,
//     taking from the left run on ties.
//
// Stable. Recursion depth is ⌈log₂ n⌉.
// Time Complexity: O(n log n). Memory: O(n), a single buffer per call.
func MergeSort(a []int, opts ...Option) {
	if len(a) < 2 {
		return
	}
	o := gatherOptions(opts)
	buf := make([]int, len(a)) // shared scratch for every merge
	mergeSort(a, buf, 0, len(a), o)
}

// MergeSortRange sorts only a[lo:hi], leaving the rest of a untouched.
// Returns ErrBadRange if the range is not inside a.
func MergeSortRange(a []int, lo, hi int, opts ...Option) error {
	if err := checkRange(a, lo, hi); err != nil {
		return err
	}
	MergeSort(a[lo:hi], opts...)

	return nil
}

// mergeSort sorts a[lo:hi] using buf[lo:hi] as scratch.
func mergeSort(a, buf []int, lo, hi int, o Options) {
	n := hi - lo
	if n < 2 {
		return
	}
	if o.Cutoff > 0 && n <= o.Cutoff {
		insertionRange(a, lo, hi, o.Less)

		return
	}
	mid := lo + n/2
	mergeSort(a, buf, lo, mid, o)
	mergeSort(a, buf, mid, hi, o)
	if !o.Less(a[mid], a[mid-1]) { // runs already in order
		return
	}
	merge(a, buf, lo, mid, hi, o.Less)
}

// merge combines the sorted runs a[lo:mid] and a[mid:hi].
// On ties the left element wins, which keeps the sort stable.
func merge(a, buf []int, lo, mid, hi int, less order.Less) {
	copy(buf[lo:hi], a[lo:hi])
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if less(buf[j], buf[i]) { // right strictly smaller
			a[k] = buf[j]
			j++
		} else {
			a[k] = buf[i]
			i++
		}
		k++
	}
	k += copy(a[k:], buf[i:mid]) // left leftovers
	copy(a[k:hi], buf[j:hi])     // right leftovers
}

// checkRange validates a half-open [lo, hi) range against a.
func checkRange(a []int, lo, hi int) error {
	if lo < 0 || hi > len(a) || lo > hi {
		return fmt.Errorf("%w: [%d, %d) over length %d", ErrBadRange, lo, hi, len(a))
	}

	return nil
}
