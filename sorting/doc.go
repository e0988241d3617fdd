// SPDX-License-Identifier: MIT

// Package sorting implements the classic in-place integer sorts: bubble,
// insertion, selection, merge, quick, heap and LSD radix sort.
//
// What:
//
//   - BubbleSort, InsertionSort: stable O(n²) baselines, useful as
//     references and for tiny inputs.
//   - SelectionSort: O(n²), NOT stable (a long-distance swap may jump an
//     element over its equals).
//   - MergeSort: top-down, stable; ties prefer the left run. One auxiliary
//     buffer of len(a) per call.
//   - QuickSort: Hoare partition around a pivot picked by PivotPolicy
//     (median-of-three by default). Recurses into the smaller side and
//     loops on the larger one, so the stack stays O(log n) even on
//     adversarial inputs. Not stable.
//   - HeapSort: in-place max-heap, O(1) auxiliary space, not stable.
//   - RadixSort: LSD counting passes in a configurable base. Non-negative
//     values only; negatives are rejected with ErrNegativeValue before any
//     element moves.
//
// Every routine sorts in ascending order unless WithLess installs another
// ordering. Slices of length 0 or 1 are returned untouched, and the output
// is always a permutation of the input.
//
// Complexity:
//
//   - Bubble, Insertion, Selection: Time O(n²), Memory O(1)
//   - MergeSort:                    Time O(n log n), Memory O(n)
//   - QuickSort:                    Time O(n log n) avg, O(n²) worst; Stack O(log n)
//   - HeapSort:                     Time O(n log n), Memory O(1)
//   - RadixSort:                    Time O(d·(n+base)), Memory O(n+base)
//
// Errors:
//
//   - ErrNegativeValue     RadixSort met a negative element
//   - ErrBadRange          a [lo, hi) range lies outside the slice
//   - ErrUnknownAlgorithm  Sort was given an Algorithm it does not know
//
// Options (see types.go): WithLess, WithPivot, WithCutoff, WithRadixBase.
package sorting
