// SPDX-License-Identifier: MIT

package search

import "errors"

// NotFound is returned by every search when the target is absent.
// It is outside the valid index range of any slice.
const NotFound = -1

// Sentinel errors for search operations.
var (
	// ErrBadRange indicates a [lo, hi) range that is not inside the slice.
	ErrBadRange = errors.New("search: range out of bounds")

	// ErrNotSorted indicates the input violates the ascending-order precondition.
	ErrNotSorted = errors.New("search: input is not sorted ascending")
)
