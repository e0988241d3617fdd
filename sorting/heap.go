// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/algokit/order"

// HeapSort sorts a in place with a binary max-heap.
//
// Algorithm:
//  1. Heapify bottom-up, sifting down every internal node from n/2-1 to 0.
//  2. Repeatedly swap the root (maximum) to the end of the shrinking heap
//     and sift the new root down.
//
// Not stable.
// Time Complexity: O(n) build + O(n log n) extraction. Memory: O(1).
func HeapSort(a []int, opts ...Option) {
	n := len(a)
	if n < 2 {
		return
	}
	less := gatherOptions(opts).Less

	for i := n/2 - 1; i >= 0; i-- {
		siftDown(a, i, n, less)
	}
	for end := n - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0] // largest to its final slot
		siftDown(a, 0, end, less)
	}
}

// siftDown restores the heap property for the subtree rooted at root
// within a[:n].
func siftDown(a []int, root, n int, less order.Less) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && less(a[child], a[child+1]) {
			child++ // pick the larger child
		}
		if !less(a[root], a[child]) {
			return
		}
		a[root], a[child] = a[child], a[root]
		root = child
	}
}
