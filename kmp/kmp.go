// SPDX-License-Identifier: MIT

package kmp

// PrefixFunction builds the KMP failure table for pattern.
//
// Algorithm:
//  1. π[0] = 0.
//  2. For i = 1..m-1, start from k = π[i-1] and follow k = π[k-1] while
//     pattern[i] != pattern[k]; extend by one on a match.
//
// k grows by at most one per step and every fallback shrinks it, so the
// total work is O(m) and no matched byte is compared twice.
func PrefixFunction(pattern []byte) ([]int, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	return prefixTable(pattern), nil
}

// prefixTable computes π for a non-empty pattern.
func prefixTable(pattern []byte) []int {
	pi := make([]int, len(pattern))
	k := 0 // length of the current border
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = pi[k-1] // fall back to the next shorter border
		}
		if pattern[i] == pattern[k] {
			k++
		}
		pi[i] = k
	}

	return pi
}

// Search returns every offset at which pattern occurs in text, including
// overlapping occurrences, in ascending order.
// A pattern longer than the text yields an empty, non-nil result.
func Search(text, pattern []byte) ([]int, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	if len(pattern) > len(text) {
		return []int{}, nil
	}

	return scan(text, pattern, prefixTable(pattern), -1), nil
}

// SearchString is Search for string arguments.
func SearchString(text, pattern string) ([]int, error) {
	return Search([]byte(text), []byte(pattern))
}

// Index returns the first offset of pattern in text, or -1.
// Unlike strings.Index an empty pattern is not a match: it returns -1.
func Index(text, pattern []byte) int {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return -1
	}
	hits := scan(text, pattern, prefixTable(pattern), 1)
	if len(hits) == 0 {
		return -1
	}

	return hits[0]
}

// scan runs the KMP automaton over text and collects match offsets.
// limit < 0 collects all matches; otherwise scanning stops after limit.
func scan(text, pattern []byte, pi []int, limit int) []int {
	m := len(pattern)
	hits := []int{}
	q := 0 // pattern bytes currently matched
	for i := 0; i < len(text); i++ {
		for q > 0 && text[i] != pattern[q] {
			q = pi[q-1]
		}
		if text[i] == pattern[q] {
			q++
		}
		if q == m {
			hits = append(hits, i-m+1)
			if limit > 0 && len(hits) >= limit {
				return hits
			}
			q = pi[q-1] // keep going for overlapping matches
		}
	}

	return hits
}
