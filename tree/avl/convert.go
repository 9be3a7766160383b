package avl

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// FromSlice builds a tree by inserting each element of s in order.
// Different orderings of the same elements give the same Slice,
// but not necessarily the same shape.
func FromSlice[S ~[]T, T constraints.Ordered](s S) Tree[T] {
	var t Tree[T]
	for _, v := range s {
		t.Insert(v)
	}
	return t
}

// Slice returns the values in the tree in ascending order.
// An empty tree gives an empty, non-nil slice.
func (t *Tree[T]) Slice() []T {
	out := make([]T, 0, t.Len())
	t.InOrder(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// InOrder applies f to each value in the tree in ascending order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(v T) bool) {
	visitInOrder(t, f)
}

func visitInOrder[T constraints.Ordered](t *Tree[T], f func(v T) bool) bool {
	if t.b == nil {
		return true
	}

	return visitInOrder(&t.b.left, f) &&
		f(t.b.value) &&
		visitInOrder(&t.b.right, f)
}

// Equal reports whether t and other have the same shape and hold
// the same value at every branch.
// Trees holding the same values may still differ in shape;
// compare their Slice to check only the contents.
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	switch {
	case t.b == nil && other.b == nil:
		return true
	case t.b == nil || other.b == nil:
		return false
	}

	return t.b.value == other.b.value &&
		t.b.left.Equal(&other.b.left) &&
		t.b.right.Equal(&other.b.right)
}

// String returns a string representation of the tree.
// A complete tree with height 3 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
//
// An empty tree gives an empty string.
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.b == nil {
		return ""
	}

	printvisit(&sb, t, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T constraints.Ordered](
	sb *strings.Builder, t *Tree[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(t.b.value))
	sb.WriteRune('\n')

	if t.b.left.b != nil {
		printvisit(sb, &t.b.left, prefix, treeLeftBranch, false, t.b.right.b != nil)
	}

	if t.b.right.b != nil {
		printvisit(sb, &t.b.right, prefix, treeRightBranch, false, false)
	}
}
