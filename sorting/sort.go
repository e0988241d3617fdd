// SPDX-License-Identifier: MIT

package sorting

import "fmt"

// Sort runs the named algorithm over a with the given options.
// Only Radix can fail on its input; the other algorithms always return nil
// unless alg itself is unknown.
func Sort(alg Algorithm, a []int, opts ...Option) error {
	switch alg {
	case Bubble:
		BubbleSort(a, opts...)
	case Insertion:
		InsertionSort(a, opts...)
	case Selection:
		SelectionSort(a, opts...)
	case Merge:
		MergeSort(a, opts...)
	case Quick:
		QuickSort(a, opts...)
	case Heap:
		HeapSort(a, opts...)
	case Radix:
		return RadixSort(a, opts...)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}

	return nil
}
