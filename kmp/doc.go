// SPDX-License-Identifier: MIT

// Package kmp finds every occurrence of a byte pattern in a text with the
// Knuth–Morris–Pratt algorithm.
//
// What:
//
//   - PrefixFunction: π[i] = length of the longest proper prefix of
//     pattern[:i+1] that is also its suffix.
//   - Search / SearchString: all starting offsets, overlaps included,
//     in ascending order.
//   - Index: first offset or -1.
//   - Matcher: a compiled pattern whose prefix table is reused across
//     texts.
//
// How:
//
//	The scan keeps q, the number of pattern bytes currently matched. On a
//	mismatch it falls back along π instead of rewinding the text; on a
//	full match it records i-m+1 and falls back to π[m-1], so "aa" in
//	"aaaa" reports 0, 1 and 2. Each text byte is read exactly once.
//
// Complexity:
//
//   - PrefixFunction: Time O(m), Memory O(m)
//   - Search:         Time O(n + m), Memory O(m) + result
//
// Errors:
//
//   - ErrEmptyPattern  the pattern has no bytes. An empty pattern is
//     rejected rather than matched at every offset.
package kmp
