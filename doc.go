// SPDX-License-Identifier: MIT

// Package algokit is a small in-memory toolkit of classic algorithms and
// data structures over integers and byte strings: the sorts, searches and
// tables every systems programmer re-derives sooner or later, written
// plainly with their contracts spelled out.
//
// What is inside?
//
//	order/       comparator primitives (Less, Ascending, Descending, KeyEqual, IsSorted)
//	sorting/     bubble, insertion, selection, merge, quick, heap and LSD radix sort
//	search/      linear and binary search (leftmost match), range and checked variants
//	kmp/         Knuth–Morris–Pratt prefix function, search and a reusable Matcher
//	hashtable/   chained hash table over an entry arena with load-factor growth
//	container/   bounded Stack and Queue, singly linked List, binary search Tree
//	logarithm/   floor logarithms Lg, Lg10 and LogBase
//	recursion/   factorial, Fibonacci, GCD, fast power, towers of Hanoi
//
// Principles:
//
//   - Pure Go, no cgo; xxHash is the only runtime dependency
//   - Sentinel errors per package, matched with errors.Is
//   - Functional options with documented defaults
//   - Single-goroutine structures: callers synchronise concurrent use
//
// Quick example:
//
//	scores := []int{5, 3, 8, 1, 9, 2}
//	sorting.QuickSort(scores)                 // [1 2 3 5 8 9]
//	i := search.BinarySearch(scores, 8)       // 4
//	hits, _ := kmp.SearchString("aaaa", "aa") // [0 1 2]
//
// A runnable walkthrough of every package lives in examples/:
//
//	go run ./examples
package algokit
