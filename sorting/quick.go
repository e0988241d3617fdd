// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/algokit/order"

// QuickSort sorts a in place with Hoare-partition quicksort.
//
// Algorithm:
//  1. Pick a pivot index per Options.Pivot and move that element to the
//     front of the range.
//  2. Hoare-partition the range into a left part <= pivot and a right
//     part >= pivot; both parts are non-empty.
//  3. Recurse into the smaller part, then continue the loop on the larger
//     one. Ranges at or below the cutoff are insertion-sorted.
//
// Step 3 bounds the stack at O(log n) frames for every input, including
// sorted data under FirstPivot, which still costs O(n²) time.
// Not stable.
// Time Complexity: O(n log n) average. Memory: O(log n) stack.
func QuickSort(a []int, opts ...Option) {
	if len(a) < 2 {
		return
	}
	quickSort(a, 0, len(a), gatherOptions(opts))
}

// QuickSortRange sorts only a[lo:hi], leaving the rest of a untouched.
// Returns ErrBadRange if the range is not inside a.
func QuickSortRange(a []int, lo, hi int, opts ...Option) error {
	if err := checkRange(a, lo, hi); err != nil {
		return err
	}
	QuickSort(a[lo:hi], opts...)

	return nil
}

// quickSort sorts a[lo:hi].
func quickSort(a []int, lo, hi int, o Options) {
	for hi-lo > 1 {
		if o.Cutoff > 0 && hi-lo <= o.Cutoff {
			insertionRange(a, lo, hi, o.Less)

			return
		}
		p := partition(a, lo, hi, o)
		if p-lo < hi-p { // left side is smaller
			quickSort(a, lo, p, o)
			lo = p
		} else {
			quickSort(a, p, hi, o)
			hi = p
		}
	}
}

// partition splits a[lo:hi] (len >= 2) around a pivot value and returns p
// with lo < p < hi such that a[lo:p] <= pivot <= a[p:hi].
//
// The pivot is first swapped to a[lo]; with the pivot at the front the
// right-to-left scan can never run past lo, and the returned split always
// leaves both parts non-empty.
func partition(a []int, lo, hi int, o Options) int {
	pi := choosePivot(a, lo, hi, o)
	a[lo], a[pi] = a[pi], a[lo]
	pivot := a[lo]
	less := o.Less

	i, j := lo-1, hi
	for {
		i++
		for less(a[i], pivot) {
			i++
		}
		j--
		for less(pivot, a[j]) {
			j--
		}
		if i >= j {
			return j + 1
		}
		a[i], a[j] = a[j], a[i]
	}
}

// choosePivot returns the index of the pivot in a[lo:hi] under o.Pivot.
func choosePivot(a []int, lo, hi int, o Options) int {
	mid := lo + (hi-lo)/2
	switch o.Pivot {
	case FirstPivot:
		return lo
	case LastPivot:
		return hi - 1
	case MiddlePivot:
		return mid
	default:
		return medianOfThree(a, lo, mid, hi-1, o.Less)
	}
}

// medianOfThree returns whichever of i, j, k holds the median value.
func medianOfThree(a []int, i, j, k int, less order.Less) int {
	if less(a[j], a[i]) {
		i, j = j, i
	}
	// a[i] <= a[j]
	if less(a[k], a[j]) {
		if less(a[k], a[i]) {
			return i
		}

		return k
	}

	return j
}
