// SPDX-License-Identifier: MIT

// Package sorting_test provides deterministic fixtures shared by the
// sorting tests and benchmarks.
package sorting_test

import (
	"math/rand"
	"slices"
)

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// randomInts returns n values drawn from [lo, hi).
func randomInts(rng *rand.Rand, n, lo, hi int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = lo + rng.Intn(hi-lo)
	}

	return out
}

// fixture is a named input used by the table-driven tests.
type fixture struct {
	name string
	in   []int
}

// fixtures returns the canonical edge-case inputs. The caller may mutate
// the returned slices freely; each call builds fresh ones.
func fixtures() []fixture {
	rng := rngFromSeed(0)
	ascending := make([]int, 200)
	descending := make([]int, 200)
	for i := range ascending {
		ascending[i] = i
		descending[i] = 200 - i
	}

	return []fixture{
		{name: "nil", in: nil},
		{name: "empty", in: []int{}},
		{name: "single", in: []int{42}},
		{name: "pair_reversed", in: []int{2, 1}},
		{name: "all_duplicates", in: []int{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7}},
		{name: "already_sorted", in: ascending},
		{name: "reverse_sorted", in: descending},
		{name: "scenario", in: []int{5, 3, 8, 3, 9, 1}},
		{name: "few_distinct", in: randomInts(rng, 300, 0, 4)},
		{name: "random_small", in: randomInts(rng, 37, 0, 100)},
		{name: "random_large", in: randomInts(rng, 2000, 0, 1_000_000)},
		{name: "negatives", in: randomInts(rng, 150, -500, 500)},
	}
}

// hasNegative reports whether a holds a value below zero.
func hasNegative(a []int) bool {
	return slices.ContainsFunc(a, func(v int) bool { return v < 0 })
}

// reference returns a sorted copy of a using the standard library.
func reference(a []int) []int {
	out := slices.Clone(a)
	slices.Sort(out)

	return out
}

// tag encodes a primary key and the original position into one int so
// that stability can be observed through an int-only API.
const tagScale = 1_000_000

func tag(key, idx int) int { return key*tagScale + idx }

// byKey orders tagged values by primary key only.
func byKey(a, b int) bool { return a/tagScale < b/tagScale }
