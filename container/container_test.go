// SPDX-License-Identifier: MIT

package container_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/algokit/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStack_Bounded covers LIFO order and the full/empty failures.
func TestStack_Bounded(t *testing.T) {
	_, err := container.NewStack(0)
	require.ErrorIs(t, err, container.ErrBadCapacity)

	s, err := container.NewStack(3)
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
	_, err = s.Pop()
	assert.ErrorIs(t, err, container.ErrEmpty)
	_, err = s.Peek()
	assert.ErrorIs(t, err, container.ErrEmpty)

	for _, v := range []int{1, 2, 3} {
		require.NoError(t, s.Push(v))
	}
	assert.True(t, s.IsFull())
	assert.ErrorIs(t, s.Push(4), container.ErrFull, "push on full must fail")
	assert.Equal(t, 3, s.Len(), "failed push must not change the stack")

	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 3, top)
	for _, want := range []int{3, 2, 1} {
		v, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.Equal(t, 3, s.Cap())
}

// TestQueue_Wraparound checks FIFO order across the ring boundary and
// that a full queue rejects instead of overwriting.
func TestQueue_Wraparound(t *testing.T) {
	_, err := container.NewQueue(-1)
	require.ErrorIs(t, err, container.ErrBadCapacity)

	q, err := container.NewQueue(3)
	require.NoError(t, err)
	_, err = q.Dequeue()
	assert.ErrorIs(t, err, container.ErrEmpty)

	var got []int
	next := 0
	for round := 0; round < 5; round++ {
		for !q.IsFull() {
			require.NoError(t, q.Enqueue(next))
			next++
		}
		require.ErrorIs(t, q.Enqueue(-1), container.ErrFull)
		v, err := q.Dequeue()
		require.NoError(t, err)
		got = append(got, v)
		v, err = q.Dequeue()
		require.NoError(t, err)
		got = append(got, v)
	}
	for !q.IsEmpty() {
		v, err := q.Dequeue()
		require.NoError(t, err)
		got = append(got, v)
	}
	want := make([]int, next)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, got, "every enqueued value comes out once, in order")
	_, err = q.Peek()
	assert.ErrorIs(t, err, container.ErrEmpty)
	assert.Equal(t, 3, q.Cap())
}

// TestList covers pushes, pops, find, remove and reverse.
func TestList(t *testing.T) {
	l := container.NewList(2, 3)
	l.PushFront(1)
	l.PushBack(4)
	assert.Equal(t, []int{1, 2, 3, 4}, l.Values())
	assert.Equal(t, 2, l.Find(3))
	assert.Equal(t, -1, l.Find(9))

	assert.True(t, l.Remove(4), "remove tail")
	l.PushBack(5)
	assert.Equal(t, []int{1, 2, 3, 5}, l.Values(), "tail pointer updated after removal")
	assert.True(t, l.Remove(1), "remove head")
	assert.False(t, l.Remove(1))

	l.Reverse()
	assert.Equal(t, []int{5, 3, 2}, l.Values())
	l.PushBack(0)
	assert.Equal(t, []int{5, 3, 2, 0}, l.Values(), "tail valid after reverse")

	v, err := l.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, 3, l.Len())

	l.Clear()
	_, err = l.PopFront()
	assert.ErrorIs(t, err, container.ErrEmpty)
	l.PushBack(7)
	assert.Equal(t, []int{7}, l.Values())
}

// TestList_ZeroValue ensures the zero List is usable.
func TestList_ZeroValue(t *testing.T) {
	var l container.List
	l.Reverse()
	assert.Empty(t, l.Values())
	l.PushFront(1)
	v, err := l.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	l.PushBack(2)
	assert.Equal(t, []int{2}, l.Values())
}

// TestTree covers ordering, duplicates and degenerate shapes.
func TestTree(t *testing.T) {
	var tr container.Tree
	_, err := tr.Min()
	assert.ErrorIs(t, err, container.ErrEmpty)
	_, err = tr.Max()
	assert.ErrorIs(t, err, container.ErrEmpty)
	assert.Equal(t, 0, tr.Height())

	in := []int{50, 30, 70, 20, 40, 60, 80, 30}
	for _, v := range in {
		tr.Insert(v)
	}
	want := slices.Clone(in)
	slices.Sort(want)
	assert.Equal(t, want, tr.InOrder(), "in-order walk is sorted, duplicates kept")
	assert.Equal(t, len(in), tr.Len())
	assert.True(t, tr.Contains(40))
	assert.False(t, tr.Contains(45))
	lo, _ := tr.Min()
	hi, _ := tr.Max()
	assert.Equal(t, 20, lo)
	assert.Equal(t, 80, hi)
	assert.Equal(t, 4, tr.Height(), "duplicate 30 hangs below 40")

	tr.Clear()
	for i := 0; i < 10_000; i++ { // list-shaped tree
		tr.Insert(i)
	}
	assert.Equal(t, 10_000, tr.Height())
	assert.Len(t, tr.InOrder(), 10_000)
}
