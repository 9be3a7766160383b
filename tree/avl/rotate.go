package avl

// RotateLeft rotates t to the left around its right child.
// For example, this is the result of calling t.RotateLeft:
//
//	  -> n            p
//	    / \          / \
//	   m   p   ->   n   q
//	      / \      / \
//	     o   q    m   o
//
// The right child p ends up at the root of t.
// The ordering invariant m < n < o < p < q is always preserved.
// If t is a Leaf, or t has no right child, t is left unchanged.
func (t *Tree[T]) RotateLeft() {
	n := t.take()
	if n == nil {
		return
	}

	p := n.right.take()
	if p == nil {
		t.b = n
		return
	}

	n.right.b = p.left.take()
	p.left.b = n
	t.b = p
}

// RotateRight rotates t to the right around its left child.
// For example, this is the result of calling t.RotateRight:
//
//	  -> n            l
//	    / \          / \
//	   l   o   ->   k   n
//	  / \              / \
//	 k   m            m   o
//
// The left child l ends up at the root of t.
// The ordering invariant k < l < m < n < o is always preserved.
// If t is a Leaf, or t has no left child, t is left unchanged.
func (t *Tree[T]) RotateRight() {
	n := t.take()
	if n == nil {
		return
	}

	l := n.left.take()
	if l == nil {
		t.b = n
		return
	}

	n.left.b = l.right.take()
	l.right.b = n
	t.b = l
}
