// SPDX-License-Identifier: MIT

package order

// Less reports whether a must be ordered before b.
// It must describe a strict weak ordering; a nil Less means Ascending
// everywhere in algokit.
type Less func(a, b int) bool

// Ascending orders smaller integers first.
func Ascending(a, b int) bool { return a < b }

// Descending orders larger integers first.
func Descending(a, b int) bool { return a > b }

// OrDefault returns less, or Ascending when less is nil.
func OrDefault(less Less) Less {
	if less == nil {
		return Ascending
	}

	return less
}

// KeyEqual reports whether two byte-string keys are identical.
// A nil key equals an empty key.
// Time Complexity: O(n).
func KeyEqual(a, b []byte) bool {
	if len(a) != len(b) { // lengths differ, cannot be equal
		return false
	}
	for i := range a { // compare byte by byte
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// IsSorted reports whether a is non-decreasing under less,
// i.e. there is no i with less(a[i], a[i-1]).
// Time Complexity: O(n).
func IsSorted(a []int, less Less) bool {
	less = OrDefault(less)
	for i := 1; i < len(a); i++ {
		if less(a[i], a[i-1]) { // a[i] strictly before its predecessor
			return false
		}
	}

	return true
}
