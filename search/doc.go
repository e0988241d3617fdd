// SPDX-License-Identifier: MIT

// Package search implements linear and binary search over integer slices.
//
// What:
//
//   - LinearSearch: first index of target in any slice.
//   - BinarySearch: iterative search in an ascending slice.
//   - BinarySearchRecursive: the same contract, written recursively.
//   - BinarySearchRange: recursive search restricted to a[lo:hi].
//   - BinarySearchChecked: verifies sortedness before searching.
//
// Contract:
//
//	Every function returns an index into a (never into a sub-slice) or
//	NotFound (-1). Binary searches require a to be sorted ascending; this
//	precondition is not re-checked except by BinarySearchChecked, and an
//	unsorted input yields an unspecified (but in-range or NotFound) result.
//
// Tie-break:
//
//	When target occurs several times, every binary search returns the
//	LEFTMOST matching index. LinearSearch returns the first one as well,
//	so on sorted input all searches agree exactly.
//
// Complexity:
//
//   - LinearSearch:        O(n)
//   - BinarySearch*:       O(log n); the recursive forms use O(log n) stack
//   - BinarySearchChecked: O(n) for the check + O(log n)
//
// Errors:
//
//   - ErrBadRange   [lo, hi) not inside the slice
//   - ErrNotSorted  BinarySearchChecked found a descent
package search
