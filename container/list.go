// SPDX-License-Identifier: MIT

package container

// listNode is one cell of a List.
type listNode struct {
	value int
	next  *listNode
}

// List is a singly linked list of ints. The zero value is an empty list.
type List struct {
	head *listNode
	tail *listNode
	size int
}

// NewList returns a list holding values in order.
func NewList(values ...int) *List {
	l := &List{}
	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

// PushFront inserts v before the head. O(1).
func (l *List) PushFront(v int) {
	n := &listNode{value: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// PushBack appends v after the tail. O(1).
func (l *List) PushBack(v int) {
	n := &listNode{value: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// PopFront removes and returns the head value, or ErrEmpty. O(1).
func (l *List) PopFront() (int, error) {
	if l.head == nil {
		return 0, ErrEmpty
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--

	return n.value, nil
}

// Find returns the position of the first node holding v, or -1. O(n).
func (l *List) Find(v int) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return i
		}
		i++
	}

	return -1
}

// Remove unlinks the first node holding v and reports whether one existed. O(n).
func (l *List) Remove(v int) bool {
	var prev *listNode
	for n := l.head; n != nil; prev, n = n, n.next {
		if n.value != v {
			continue
		}
		if prev == nil {
			l.head = n.next
		} else {
			prev.next = n.next
		}
		if l.tail == n {
			l.tail = prev
		}
		l.size--

		return true
	}

	return false
}

// Reverse reverses the list in place. O(n).
func (l *List) Reverse() {
	var prev *listNode
	l.tail = l.head
	for n := l.head; n != nil; {
		next := n.next
		n.next = prev
		prev, n = n, next
	}
	l.head = prev
}

// Values returns the list contents from head to tail.
func (l *List) Values() []int {
	out := make([]int, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// Len returns the number of nodes.
func (l *List) Len() int { return l.size }

// Clear drops every node.
func (l *List) Clear() {
	l.head, l.tail, l.size = nil, nil, 0
}
