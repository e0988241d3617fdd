// SPDX-License-Identifier: MIT

package container

// treeNode is one node of a Tree.
type treeNode struct {
	value       int
	left, right *treeNode
}

// Tree is an unbalanced binary search tree of ints. Values smaller than a
// node go left; equal or larger values go right, so duplicates are kept.
// The zero value is an empty tree.
type Tree struct {
	root *treeNode
	size int
}

// Insert adds v. O(h).
func (t *Tree) Insert(v int) {
	n := &treeNode{value: v}
	t.size++
	if t.root == nil {
		t.root = n

		return
	}
	cur := t.root
	for {
		if v < cur.value {
			if cur.left == nil {
				cur.left = n

				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n

				return
			}
			cur = cur.right
		}
	}
}

// Contains reports whether v is stored. O(h).
func (t *Tree) Contains(v int) bool {
	for cur := t.root; cur != nil; {
		switch {
		case v < cur.value:
			cur = cur.left
		case v > cur.value:
			cur = cur.right
		default:
			return true
		}
	}

	return false
}

// Min returns the smallest value, or ErrEmpty.
func (t *Tree) Min() (int, error) {
	if t.root == nil {
		return 0, ErrEmpty
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}

	return cur.value, nil
}

// Max returns the largest value, or ErrEmpty.
func (t *Tree) Max() (int, error) {
	if t.root == nil {
		return 0, ErrEmpty
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}

	return cur.value, nil
}

// InOrder returns the values in ascending order.
// The walk uses an explicit stack, so degenerate (list-shaped) trees do
// not deepen the goroutine stack.
func (t *Tree) InOrder() []int {
	out := make([]int, 0, t.size)
	var stack []*treeNode
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil { // descend left
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur.value)
		cur = cur.right
	}

	return out
}

// Height returns the number of nodes on the longest root-to-leaf path
// (0 for an empty tree).
func (t *Tree) Height() int {
	type frame struct {
		n     *treeNode
		depth int
	}
	best := 0
	if t.root == nil {
		return 0
	}
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > best {
			best = f.depth
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}

	return best
}

// Len returns the number of stored values.
func (t *Tree) Len() int { return t.size }

// Clear drops every node.
func (t *Tree) Clear() {
	t.root, t.size = nil, 0
}
