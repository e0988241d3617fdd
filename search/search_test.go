// SPDX-License-Identifier: MIT

package search_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/algokit/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// binarySearches lists every binary search with a shared signature so the
// property tests can run them side by side.
var binarySearches = map[string]func(a []int, target int) int{
	"iterative": search.BinarySearch,
	"recursive": search.BinarySearchRecursive,
	"range_full": func(a []int, target int) int {
		i, _ := search.BinarySearchRange(a, 0, len(a), target)

		return i
	},
}

// TestLinearSearch covers hits, misses and the first-match rule.
func TestLinearSearch(t *testing.T) {
	assert.Equal(t, search.NotFound, search.LinearSearch([]int{4, 2, 7}, 9))
	assert.Equal(t, 1, search.LinearSearch([]int{4, 2, 7}, 2))
	assert.Equal(t, 0, search.LinearSearch([]int{5, 5, 5}, 5), "first match wins")
	assert.Equal(t, search.NotFound, search.LinearSearch(nil, 0))
}

// TestBinarySearch_Scenario checks the duplicate-key example: 3 sits at 1
// and 2; the leftmost index is returned.
func TestBinarySearch_Scenario(t *testing.T) {
	a := []int{1, 3, 3, 5, 8, 9}
	for name, fn := range binarySearches {
		got := fn(a, 3)
		assert.Contains(t, []int{1, 2}, got, name)
		assert.Equal(t, 1, got, "%s: leftmost tie-break", name)
	}
}

// TestBinarySearch_EdgeCases covers empty, single and boundary targets.
func TestBinarySearch_EdgeCases(t *testing.T) {
	for name, fn := range binarySearches {
		assert.Equal(t, search.NotFound, fn(nil, 1), name)
		assert.Equal(t, search.NotFound, fn([]int{}, 1), name)
		assert.Equal(t, 0, fn([]int{1}, 1), name)
		assert.Equal(t, search.NotFound, fn([]int{1}, 0), name)
		assert.Equal(t, search.NotFound, fn([]int{1}, 2), name)
		assert.Equal(t, 0, fn([]int{-3, 0, 4}, -3), name)
		assert.Equal(t, 2, fn([]int{-3, 0, 4}, 4), name)
		assert.Equal(t, search.NotFound, fn([]int{-3, 0, 4}, 5), name)
		assert.Equal(t, 0, fn([]int{2, 2, 2, 2}, 2), name)
	}
}

// TestBinarySearch_AgreesWithLinear checks presence/absence agreement for
// every target in and around a random sorted slice.
func TestBinarySearch_AgreesWithLinear(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 20; round++ {
		a := make([]int, rng.Intn(60))
		for i := range a {
			a[i] = rng.Intn(40) - 20
		}
		slices.Sort(a)

		for x := -25; x <= 25; x++ {
			want := search.LinearSearch(a, x)
			for name, fn := range binarySearches {
				got := fn(a, x)
				if want == search.NotFound {
					require.Equal(t, search.NotFound, got, "%s: x=%d a=%v", name, x, a)
					continue
				}
				require.NotEqual(t, search.NotFound, got, "%s: x=%d a=%v", name, x, a)
				require.Equal(t, x, a[got], "%s: a[i] must equal target", name)
				require.Equal(t, want, got, "%s: leftmost matches linear first", name)
			}
		}
	}
}

// TestBinarySearchRange restricts the search window and reports indices
// relative to the whole slice.
func TestBinarySearchRange(t *testing.T) {
	a := []int{1, 3, 3, 5, 8, 9}

	i, err := search.BinarySearchRange(a, 2, 6, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, i, "index is into the full slice")

	i, err = search.BinarySearchRange(a, 0, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, search.NotFound, i, "5 lies outside the window")

	i, err = search.BinarySearchRange(a, 3, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, search.NotFound, i, "empty window")

	for _, r := range [][2]int{{-1, 2}, {0, 7}, {4, 3}} {
		_, err = search.BinarySearchRange(a, r[0], r[1], 1)
		assert.ErrorIs(t, err, search.ErrBadRange)
	}
}

// TestBinarySearchChecked rejects unsorted input explicitly.
func TestBinarySearchChecked(t *testing.T) {
	i, err := search.BinarySearchChecked([]int{1, 4, 9}, 9)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	i, err = search.BinarySearchChecked([]int{4, 1, 9}, 9)
	assert.ErrorIs(t, err, search.ErrNotSorted)
	assert.Equal(t, search.NotFound, i)
}
