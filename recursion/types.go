// SPDX-License-Identifier: MIT

package recursion

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNegative indicates a negative argument to a routine defined for n >= 0.
	ErrNegative = errors.New("recursion: negative argument")

	// ErrOverflow indicates the result exceeds the int range.
	ErrOverflow = errors.New("recursion: integer overflow")
)

// Move is a single towers-of-Hanoi step: Disk goes from peg From to peg To.
// Disks are numbered 1 (smallest) to n.
type Move struct {
	Disk int
	From string
	To   string
}

// String renders the move as "disk 1: A -> C".
func (m Move) String() string {
	return fmt.Sprintf("disk %d: %s -> %s", m.Disk, m.From, m.To)
}
