// SPDX-License-Identifier: MIT

package container

import "fmt"

// Stack is a bounded LIFO of ints backed by a fixed array.
type Stack struct {
	data []int
	top  int // number of stored items
}

// NewStack creates an empty Stack holding at most capacity items.
func NewStack(capacity int) (*Stack, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}

	return &Stack{data: make([]int, capacity)}, nil
}

// Push adds v on top. Returns ErrFull when the stack is at capacity.
func (s *Stack) Push(v int) error {
	if s.top == len(s.data) {
		return ErrFull
	}
	s.data[s.top] = v
	s.top++

	return nil
}

// Pop removes and returns the top item, or ErrEmpty.
func (s *Stack) Pop() (int, error) {
	if s.top == 0 {
		return 0, ErrEmpty
	}
	s.top--

	return s.data[s.top], nil
}

// Peek returns the top item without removing it, or ErrEmpty.
func (s *Stack) Peek() (int, error) {
	if s.top == 0 {
		return 0, ErrEmpty
	}

	return s.data[s.top-1], nil
}

// Len returns the number of stored items.
func (s *Stack) Len() int { return s.top }

// Cap returns the fixed capacity.
func (s *Stack) Cap() int { return len(s.data) }

// IsEmpty reports whether the stack holds no items.
func (s *Stack) IsEmpty() bool { return s.top == 0 }

// IsFull reports whether the stack is at capacity.
func (s *Stack) IsFull() bool { return s.top == len(s.data) }
