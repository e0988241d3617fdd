// SPDX-License-Identifier: MIT

package logarithm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/algokit/logarithm"
)

var sink int

// BenchmarkLg measures the halving loop at its worst case.
func BenchmarkLg(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = logarithm.Lg(math.MaxInt)
	}
}

// BenchmarkLg10 measures the division loop at its worst case.
func BenchmarkLg10(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = logarithm.Lg10(math.MaxInt)
	}
}
