// Package tree holds helpers shared by the tree implementations
// in its subpackages.
package tree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Order is the result of a three-way comparison.
type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Compare returns Less if l < r, Greater if l > r, and Equal otherwise.
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
