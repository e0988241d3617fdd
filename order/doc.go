// SPDX-License-Identifier: MIT

// Package order holds the comparator and key primitives shared by the
// sorting and search packages of algokit.
//
// What:
//
//   - Less: a strict weak ordering over ints (Ascending, Descending).
//   - KeyEqual: exact, case-sensitive byte-string equality.
//   - IsSorted: checks a slice is non-decreasing under a Less.
//
// Complexity:
//
//   - Ascending, Descending: O(1)
//   - KeyEqual:              O(min(len(a), len(b)))
//   - IsSorted:              O(n)
//
// The package has no state and no errors; every function is pure.
package order
