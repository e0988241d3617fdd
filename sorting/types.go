// SPDX-License-Identifier: MIT

// Package sorting defines sentinel errors, functional options and the
// Algorithm enumeration shared by every sort in this package.
package sorting

import (
	"errors"

	"github.com/katalvlaran/algokit/order"
)

// Sentinel errors for sorting operations.
var (
	// ErrNegativeValue is returned by RadixSort when the input holds a
	// negative integer. The slice is left unchanged.
	ErrNegativeValue = errors.New("sorting: radix sort requires non-negative values")

	// ErrBadRange indicates a [lo, hi) range that is not inside the slice.
	ErrBadRange = errors.New("sorting: range out of bounds")

	// ErrUnknownAlgorithm is returned by Sort for an unrecognized Algorithm.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
)

// PivotPolicy selects how QuickSort picks the partitioning pivot.
type PivotPolicy int

const (
	// MedianOfThree takes the median of the first, middle and last elements.
	// Sorted and reverse-sorted inputs stay O(n log n).
	MedianOfThree PivotPolicy = iota

	// FirstPivot takes the first element of the range.
	FirstPivot

	// MiddlePivot takes the element at the midpoint of the range.
	MiddlePivot

	// LastPivot takes the last element of the range.
	LastPivot
)

// String returns the policy name.
func (p PivotPolicy) String() string {
	switch p {
	case MedianOfThree:
		return "median-of-three"
	case FirstPivot:
		return "first"
	case MiddlePivot:
		return "middle"
	case LastPivot:
		return "last"
	default:
		return "unknown"
	}
}

// Defaults applied by DefaultOptions.
const (
	// DefaultCutoff is the range length at or below which MergeSort and
	// QuickSort hand the range to insertion sort.
	DefaultCutoff = 12

	// DefaultRadixBase is the digit base used by RadixSort.
	DefaultRadixBase = 10

	// DefaultPivot is the pivot policy used by QuickSort.
	DefaultPivot = MedianOfThree
)

const (
	panicCutoffInvalid = "sorting: WithCutoff: cutoff must be >= 0"
	panicBaseInvalid   = "sorting: WithRadixBase: base must be >= 2"
	panicPivotInvalid  = "sorting: WithPivot: unknown pivot policy"
)

// Option configures a sort call.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the tunables of a sort call.
type Options struct {
	// Less orders the elements; nil means order.Ascending.
	// RadixSort ignores it and always sorts numerically ascending.
	Less order.Less

	// Pivot is the QuickSort pivot policy.
	Pivot PivotPolicy

	// Cutoff is the insertion-sort threshold for MergeSort and QuickSort.
	// Zero disables the hand-off.
	Cutoff int

	// RadixBase is the digit base for RadixSort (>= 2).
	RadixBase int
}

// DefaultOptions returns Options with:
//   - ascending order
//   - median-of-three pivots
//   - DefaultCutoff insertion threshold
//   - base-10 radix digits
func DefaultOptions() Options {
	return Options{
		Less:      order.Ascending,
		Pivot:     DefaultPivot,
		Cutoff:    DefaultCutoff,
		RadixBase: DefaultRadixBase,
	}
}

// WithLess installs a custom ordering. A nil less keeps the default.
func WithLess(less order.Less) Option {
	return func(o *Options) {
		if less != nil {
			o.Less = less
		}
	}
}

// WithPivot sets the QuickSort pivot policy.
func WithPivot(p PivotPolicy) Option {
	if p < MedianOfThree || p > LastPivot {
		panic(panicPivotInvalid)
	}

	return func(o *Options) { o.Pivot = p }
}

// WithCutoff sets the insertion-sort threshold. Zero disables it.
func WithCutoff(n int) Option {
	if n < 0 {
		panic(panicCutoffInvalid)
	}

	return func(o *Options) { o.Cutoff = n }
}

// WithRadixBase sets the digit base used by RadixSort.
func WithRadixBase(base int) Option {
	if base < 2 {
		panic(panicBaseInvalid)
	}

	return func(o *Options) { o.RadixBase = base }
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Algorithm names one of the sorts in this package.
type Algorithm int

const (
	Bubble Algorithm = iota
	Insertion
	Selection
	Merge
	Quick
	Heap
	Radix
)

// All returns every Algorithm in declaration order.
func All() []Algorithm {
	return []Algorithm{Bubble, Insertion, Selection, Merge, Quick, Heap, Radix}
}

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Bubble:
		return "bubble"
	case Insertion:
		return "insertion"
	case Selection:
		return "selection"
	case Merge:
		return "merge"
	case Quick:
		return "quick"
	case Heap:
		return "heap"
	case Radix:
		return "radix"
	default:
		return "unknown"
	}
}

// Stable reports whether the algorithm keeps equal elements in input order.
func (a Algorithm) Stable() bool {
	switch a {
	case Bubble, Insertion, Merge, Radix:
		return true
	default:
		return false
	}
}
