package avl

import "github.com/goose-lang/primitive"

// rebalance restores the AVL property at n, whose children are balanced and
// whose height is current, after one insertion below it. It returns the new
// root of the subtree.
//
// After a single insertion the balance factor of n is within [-2, 2], so at
// most one single or double rotation is needed.
func rebalance[T any](n *node[T]) *node[T] {
	switch n.balanceFactor() {
	case -2:
		// right-heavy
		r := n.right
		primitive.Assert(r != nil)
		if height(r.right) >= height(r.left) {
			// right-right
			return rotateLeft(n)
		}
		// right-left
		n.right = rotateRight(r)
		return rotateLeft(n)
	case 2:
		// left-heavy
		l := n.left
		primitive.Assert(l != nil)
		if height(l.left) >= height(l.right) {
			// left-left
			return rotateRight(n)
		}
		// left-right
		n.left = rotateLeft(l)
		return rotateRight(n)
	}
	return n
}

// rotateLeft lifts the right child of n into n's place.
//
//	  n              r
//	 / \            / \
//	A   r    =>    n   C
//	   / \        / \
//	  B   C      A   B
func rotateLeft[T any](n *node[T]) *node[T] {
	r := n.right
	primitive.Assert(r != nil)
	n.right = r.left
	n.updateHeight()
	r.left = n
	r.updateHeight()
	return r
}

// rotateRight lifts the left child of n into n's place.
//
//	    n          l
//	   / \        / \
//	  l   C  =>  A   n
//	 / \            / \
//	A   B          B   C
func rotateRight[T any](n *node[T]) *node[T] {
	l := n.left
	primitive.Assert(l != nil)
	n.left = l.right
	n.updateHeight()
	l.right = n
	l.updateHeight()
	return l
}
