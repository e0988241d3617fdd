// SPDX-License-Identifier: MIT

// Package container provides the classic int containers: a bounded stack,
// a bounded circular queue, a singly linked list and a binary search tree.
//
// What:
//
//   - Stack: array-backed LIFO with a fixed capacity.
//   - Queue: array-backed FIFO ring with a fixed capacity.
//   - List:  singly linked list with head and tail pointers.
//   - Tree:  unbalanced binary search tree; equal values go right.
//
// Capacity:
//
//	Stack and Queue never grow. Pushing onto a full container returns
//	ErrFull and leaves it unchanged; nothing is dropped or overwritten.
//
// Complexity:
//
//   - Stack, Queue: O(1) per operation
//   - List:         O(1) push/pop front, push back; O(n) find/remove/reverse
//   - Tree:         O(h) insert/contains/min/max, O(n) traversal
//
// Errors:
//
//   - ErrBadCapacity  capacity < 1 at construction
//   - ErrFull         push/enqueue on a full Stack or Queue
//   - ErrEmpty        pop/dequeue/peek on an empty container
//
// None of the containers are safe for concurrent use.
package container
