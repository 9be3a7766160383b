// Package avl provides an AVL tree: a binary search tree that keeps
// itself height-balanced by rotating subtrees as values are inserted.
//
// A Tree is either a Leaf (the empty tree) or a Branch holding a value
// and exclusively owning its left and right subtrees. Restructuring
// a subtree always takes the branch out of its position, rebuilds it,
// and writes the result back.
//
// Heights are not cached anywhere. Height and BalanceFactor walk the
// whole subtree every time they are called.
package avl

import (
	"go.lepak.sg/containers/tree"
	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree. It is not safe for concurrent use.
//
// The zero Tree is a Leaf and may be used immediately.
// Like list.Node, a non-empty Tree should not be copied: use a *Tree.
//
// This tree implementation does not support removal.
//
// Invariants, which hold after every call to Insert:
//   - At any branch B, all values in B.Left are less than B's value,
//     and all values in B.Right are greater than B's value.
//   - Every value appears at most once (duplicates are dropped).
//   - At any branch, the heights of its two subtrees differ by at most 1.
type Tree[T constraints.Ordered] struct {
	// nil means Leaf
	b *branch[T]
}

type branch[T constraints.Ordered] struct {
	value       T
	left, right Tree[T]
}

// New returns an empty tree.
func New[T constraints.Ordered]() Tree[T] {
	return Tree[T]{}
}

// Branch returns a tree with value at the root, owning left and right.
// Branch does not check the invariants; see Validate.
func Branch[T constraints.Ordered](value T, left, right Tree[T]) Tree[T] {
	return Tree[T]{
		b: &branch[T]{
			value: value,
			left:  left,
			right: right,
		},
	}
}

// take hands over the root branch to the caller, leaving t a Leaf.
func (t *Tree[T]) take() *branch[T] {
	b := t.b
	t.b = nil
	return b
}

// IsLeaf returns true if t is empty.
func (t *Tree[T]) IsLeaf() bool {
	return t.b == nil
}

// Value returns the value at the root of t.
// If t is a Leaf, v is the zero T and ok is false.
func (t *Tree[T]) Value() (v T, ok bool) {
	if t.b == nil {
		return
	}
	return t.b.value, true
}

// Left returns the left subtree, or nil if t is a Leaf.
func (t *Tree[T]) Left() *Tree[T] {
	if t.b == nil {
		return nil
	}
	return &t.b.left
}

// Right returns the right subtree, or nil if t is a Leaf.
func (t *Tree[T]) Right() *Tree[T] {
	if t.b == nil {
		return nil
	}
	return &t.b.right
}

// Height returns the number of branches on the longest path from
// the root down to a Leaf. A Leaf has height 0.
func (t *Tree[T]) Height() int {
	if t.b == nil {
		return 0
	}

	l, r := t.b.left.Height(), t.b.right.Height()
	if l > r {
		return l + 1
	}
	return r + 1
}

// BalanceFactor returns the height of the left subtree minus the
// height of the right subtree. A Leaf is perfectly balanced.
func (t *Tree[T]) BalanceFactor() int {
	if t.b == nil {
		return 0
	}
	return t.b.left.Height() - t.b.right.Height()
}

// Insert inserts value into the tree, then rebalances every subtree
// on the way back up to the root.
// If value is already in the tree, the tree is left as it is.
func (t *Tree[T]) Insert(value T) {
	if t.b == nil {
		t.b = &branch[T]{value: value}
		return
	}

	switch tree.Compare(value, t.b.value) {
	case tree.Less:
		t.b.left.Insert(value)
	case tree.Greater:
		t.b.right.Insert(value)
	case tree.Equal:
		return
	default:
		panic("unreachable")
	}

	t.rebalance()
}

// rebalance restores the balance of t with a single or double
// rotation, assuming that both subtrees are already balanced and
// that t is off by at most 2.
func (t *Tree[T]) rebalance() {
	if t.b == nil {
		return
	}

	switch t.BalanceFactor() {
	case -2:
		// right-left: straighten the dogleg first
		if t.b.right.BalanceFactor() == 1 {
			t.b.right.RotateRight()
		}
		t.RotateLeft()
	case 2:
		// left-right
		if t.b.left.BalanceFactor() == -1 {
			t.b.left.RotateLeft()
		}
		t.RotateRight()
	}
}

// Contains searches for value in the tree and returns true if it was found.
func (t *Tree[T]) Contains(value T) bool {
	n := t

	for n.b != nil {
		switch tree.Compare(value, n.b.value) {
		case tree.Less:
			n = &n.b.left
		case tree.Greater:
			n = &n.b.right
		case tree.Equal:
			return true
		default:
			panic("unreachable")
		}
	}

	return false
}

// Len returns the number of values in the tree. It visits every branch.
func (t *Tree[T]) Len() int {
	if t.b == nil {
		return 0
	}
	return 1 + t.b.left.Len() + t.b.right.Len()
}
