// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/algokit/order"
)

// LinearSearch returns the first index i with a[i] == target, or NotFound.
// Works on unsorted input.
// Time Complexity: O(n).
func LinearSearch(a []int, target int) int {
	for i, v := range a { // iterate through slice
		if v == target {
			return i
		}
	}

	return NotFound
}

// BinarySearch returns the leftmost index i with a[i] == target, or NotFound.
// a must be sorted ascending.
//
// The loop keeps the invariant a[:lo] < target <= a[hi:], shrinking
// [lo, hi) until it is empty; lo is then the lower bound of target.
// Time Complexity: O(log n).
func BinarySearch(a []int, target int) int {
	lo, hi := 0, len(a)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1) // no overflow on huge slices
		if a[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(a) && a[lo] == target {
		return lo
	}

	return NotFound
}

// BinarySearchRecursive is the recursive form of BinarySearch, with the
// same leftmost tie-break.
// Time Complexity: O(log n). Stack: O(log n).
func BinarySearchRecursive(a []int, target int) int {
	return found(a, lowerBound(a, 0, len(a), target), len(a), target)
}

// BinarySearchRange searches only a[lo:hi] and returns an index into a.
// Returns ErrBadRange if the range is not inside a.
func BinarySearchRange(a []int, lo, hi, target int) (int, error) {
	if lo < 0 || hi > len(a) || lo > hi {
		return NotFound, fmt.Errorf("%w: [%d, %d) over length %d", ErrBadRange, lo, hi, len(a))
	}

	return found(a, lowerBound(a, lo, hi, target), hi, target), nil
}

// BinarySearchChecked verifies a is ascending before searching it.
// Returns ErrNotSorted instead of an unspecified index on bad input.
// Time Complexity: O(n).
func BinarySearchChecked(a []int, target int) (int, error) {
	if !order.IsSorted(a, nil) {
		return NotFound, ErrNotSorted
	}

	return BinarySearch(a, target), nil
}

// lowerBound recursively narrows a[lo:hi] to the first position whose
// value is not less than target (hi if there is none).
func lowerBound(a []int, lo, hi, target int) int {
	if lo >= hi {
		return lo
	}
	mid := int(uint(lo+hi) >> 1)
	if a[mid] < target {
		return lowerBound(a, mid+1, hi, target)
	}

	return lowerBound(a, lo, mid, target)
}

// found maps a lower-bound position to an index or NotFound; positions at
// or past end belong to no element of the searched range.
func found(a []int, pos, end, target int) int {
	if pos < end && a[pos] == target {
		return pos
	}

	return NotFound
}
