// Package list provides a generic singly linked list built from
// recursively owned nodes.
//
// A list is either Empty, or it Holds a value together with the rest
// of the list. Every Node exclusively owns whatever comes after it,
// so the list can only be restructured by taking a node out of its
// position, rebuilding it and writing it back.
package list

import (
	"fmt"
	"strings"
)

// Node is a position in a singly linked list.
// The zero Node is Empty and may be used immediately.
//
// Node should not be copied after it Holds a value: the copy and
// the original would share the same rest of the list.
//
// Invariants:
//   - A list is a finite chain of Holds nodes terminated by
//     exactly one Empty node.
//   - No cell is reachable from two positions at once.
type Node[T comparable] struct {
	// nil means Empty
	c *cell[T]
}

type cell[T comparable] struct {
	value T
	rest  Node[T]
}

// New returns an Empty list.
func New[T comparable]() Node[T] {
	return Node[T]{}
}

// take hands over the contents of n to the caller,
// leaving n Empty.
func (n *Node[T]) take() *cell[T] {
	c := n.c
	n.c = nil
	return c
}

// IsEmpty returns true if n is the terminating Empty node.
func (n *Node[T]) IsEmpty() bool {
	return n.c == nil
}

// Value returns the value held at n.
// If n is Empty, v is the zero T and ok is false.
func (n *Node[T]) Value() (v T, ok bool) {
	if n.c == nil {
		return
	}
	return n.c.value, true
}

// Rest returns the position after n, or nil if n is Empty.
func (n *Node[T]) Rest() *Node[T] {
	if n.c == nil {
		return nil
	}
	return &n.c.rest
}

// Insert splices value into the list immediately after n.
//
// If n is Empty, n itself now holds value and n is returned.
// Otherwise the new node goes between n and the rest of the list,
// and a pointer to the new node is returned, so that successive
// calls build the list in order:
//
//	var head list.Node[int]
//	at := &head
//	for _, v := range values {
//		at = at.Insert(v)
//	}
func (n *Node[T]) Insert(value T) *Node[T] {
	owned := n.take()
	if owned == nil {
		n.c = &cell[T]{value: value}
		return n
	}

	// owned.rest moves into the new node
	inserted := &cell[T]{value: value, rest: Node[T]{c: owned.rest.take()}}
	owned.rest = Node[T]{c: inserted}
	n.c = owned

	return &n.c.rest
}

// Delete removes the value held at n. The rest of the list moves
// up into n's position. Deleting an Empty node does nothing.
func (n *Node[T]) Delete() {
	owned := n.take()
	if owned == nil {
		return
	}

	n.c = owned.rest.take()
}

// Reverse reverses the list starting at n in place.
// It runs in a single pass without recursion, so it is safe
// on lists of any length.
func (n *Node[T]) Reverse() {
	// prev starts Empty: the old head becomes the new tail
	var prev Node[T]
	current := Node[T]{c: n.take()}

	for !current.IsEmpty() {
		owned := current.take()
		next := Node[T]{c: owned.rest.take()}

		// flip the edge so owned points back at prev
		owned.rest = Node[T]{c: prev.take()}
		prev = Node[T]{c: owned}

		current = next
	}

	n.c = prev.take()
}

// Len walks the list and returns the number of values in it.
func (n *Node[T]) Len() int {
	count := 0
	for at := n; !at.IsEmpty(); at = &at.c.rest {
		count++
	}
	return count
}

// Equal reports whether n and other hold equal values in the same order.
func (n *Node[T]) Equal(other *Node[T]) bool {
	l, r := n, other
	for {
		switch {
		case l.IsEmpty() && r.IsEmpty():
			return true
		case l.IsEmpty() || r.IsEmpty():
			return false
		case l.c.value != r.c.value:
			return false
		}
		l, r = &l.c.rest, &r.c.rest
	}
}

// String returns a representation of the list like "1 -> 2 -> 3 -> Nil".
// If T implements [fmt.Stringer], it will be used, otherwise
// the default format for its underlying type is used.
func (n *Node[T]) String() string {
	var sb strings.Builder

	for at := n; !at.IsEmpty(); at = &at.c.rest {
		sb.WriteString(fmt.Sprint(at.c.value))
		sb.WriteString(" -> ")
	}
	sb.WriteString("Nil")

	return sb.String()
}

// FromSlice builds a list holding the elements of s in the same order.
func FromSlice[S ~[]T, T comparable](s S) Node[T] {
	var head Node[T]

	at := &head
	for _, v := range s {
		at = at.Insert(v)
	}

	return head
}

// Slice returns the values in the list, in order.
// An Empty list gives an empty, non-nil slice.
func (n *Node[T]) Slice() []T {
	out := make([]T, 0, n.Len())
	for at := n; !at.IsEmpty(); at = &at.c.rest {
		out = append(out, at.c.value)
	}
	return out
}
