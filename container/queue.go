// SPDX-License-Identifier: MIT

package container

import "fmt"

// Queue is a bounded FIFO of ints stored in a ring buffer.
type Queue struct {
	data  []int
	front int // index of the oldest item
	size  int
}

// NewQueue creates an empty Queue holding at most capacity items.
func NewQueue(capacity int) (*Queue, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}

	return &Queue{data: make([]int, capacity)}, nil
}

// Enqueue appends v at the rear. Returns ErrFull at capacity.
func (q *Queue) Enqueue(v int) error {
	if q.size == len(q.data) {
		return ErrFull
	}
	rear := (q.front + q.size) % len(q.data)
	q.data[rear] = v
	q.size++

	return nil
}

// Dequeue removes and returns the oldest item, or ErrEmpty.
func (q *Queue) Dequeue() (int, error) {
	if q.size == 0 {
		return 0, ErrEmpty
	}
	v := q.data[q.front]
	q.front = (q.front + 1) % len(q.data)
	q.size--

	return v, nil
}

// Peek returns the oldest item without removing it, or ErrEmpty.
func (q *Queue) Peek() (int, error) {
	if q.size == 0 {
		return 0, ErrEmpty
	}

	return q.data[q.front], nil
}

// Len returns the number of stored items.
func (q *Queue) Len() int { return q.size }

// Cap returns the fixed capacity.
func (q *Queue) Cap() int { return len(q.data) }

// IsEmpty reports whether the queue holds no items.
func (q *Queue) IsEmpty() bool { return q.size == 0 }

// IsFull reports whether the queue is at capacity.
func (q *Queue) IsFull() bool { return q.size == len(q.data) }
