// SPDX-License-Identifier: MIT

package kmp

import "errors"

// ErrEmptyPattern is returned when the pattern is empty.
var ErrEmptyPattern = errors.New("kmp: pattern must be non-empty")
