// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/algokit/order"

// BubbleSort sorts a in place by repeatedly swapping adjacent inversions.
// Each pass shrinks the unsorted tail to the position of its last swap,
// so an already sorted slice costs a single O(n) pass.
//
// Stable: only strictly out-of-order neighbours are swapped.
// Time Complexity: O(n²). Memory: O(1).
func BubbleSort(a []int, opts ...Option) {
	if len(a) < 2 {
		return
	}
	less := gatherOptions(opts).Less

	end := len(a)
	for end > 1 {
		last := 0 // index of the last swap in this pass
		for i := 1; i < end; i++ {
			if less(a[i], a[i-1]) {
				a[i], a[i-1] = a[i-1], a[i]
				last = i
			}
		}
		end = last // everything from last onwards is in final position
	}
}

// InsertionSort sorts a in place by growing a sorted prefix one element
// at a time.
//
// Stable: an element only moves past strictly greater predecessors.
// Time Complexity: O(n²) worst, O(n) on sorted input. Memory: O(1).
func InsertionSort(a []int, opts ...Option) {
	if len(a) < 2 {
		return
	}
	insertionRange(a, 0, len(a), gatherOptions(opts).Less)
}

// SelectionSort sorts a in place by selecting the minimum of the unsorted
// suffix and swapping it to the front.
//
// NOT stable: the swap can carry an element past another one equal to it.
// Time Complexity: O(n²). Memory: O(1).
func SelectionSort(a []int, opts ...Option) {
	if len(a) < 2 {
		return
	}
	less := gatherOptions(opts).Less

	for i := 0; i < len(a)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(a); j++ {
			if less(a[j], a[minIdx]) {
				minIdx = j
			}
		}
		if minIdx != i {
			a[i], a[minIdx] = a[minIdx], a[i]
		}
	}
}

// insertionRange insertion-sorts a[lo:hi]. Shared by the divide-and-conquer
// sorts for their small ranges.
func insertionRange(a []int, lo, hi int, less order.Less) {
	for i := lo + 1; i < hi; i++ {
		v := a[i]
		j := i - 1
		for j >= lo && less(v, a[j]) { // shift strictly greater elements right
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}
