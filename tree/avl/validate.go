package avl

import (
	"golang.org/x/exp/constraints"
)

// IsBST returns true if every value in the tree lies strictly between
// the values of the ancestors it is hanging under.
func (t *Tree[T]) IsBST() bool {
	return isBST(t, nil, nil)
}

// lo and hi are exclusive bounds, nil when unbounded
func isBST[T constraints.Ordered](t *Tree[T], lo, hi *T) bool {
	if t.b == nil {
		return true
	}

	v := t.b.value
	if lo != nil && v <= *lo {
		return false
	}
	if hi != nil && v >= *hi {
		return false
	}

	return isBST(&t.b.left, lo, &v) && isBST(&t.b.right, &v, hi)
}

// IsBalanced returns true if, at every branch, the heights of the
// two subtrees differ by at most 1.
func (t *Tree[T]) IsBalanced() bool {
	if t.b == nil {
		return true
	}

	bf := t.BalanceFactor()
	return bf >= -1 && bf <= 1 && t.b.left.IsBalanced() && t.b.right.IsBalanced()
}

// Validate returns true if t is both a binary search tree and balanced.
func (t *Tree[T]) Validate() bool {
	return t.IsBST() && t.IsBalanced()
}
