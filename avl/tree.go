package avl

import (
	"cmp"

	"github.com/goose-lang/std"
)

// Tree is a set of unique keys ordered by compare.
type Tree[T any] struct {
	root    *node[T]
	size    uint64
	compare func(a, b T) int
}

// New creates an empty tree ordered by the natural order of T.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc creates an empty tree ordered by compare, which must return a
// negative number if a < b, zero if a == b and a positive number if a > b,
// and must define a total order.
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{compare: compare}
}

// Len returns the number of keys in the tree.
func (t *Tree[T]) Len() int {
	return int(t.size)
}

// Height returns the height of the tree: 0 for a single key, -1 if the tree
// is empty.
func (t *Tree[T]) Height() int {
	return int(height(t.root))
}

// Insert adds key to the tree. Inserting a key that is already present does
// nothing.
func (t *Tree[T]) Insert(key T) {
	var added bool
	t.root, added = t.insert(t.root, key)
	if added {
		t.size = std.SumAssumeNoOverflow(t.size, 1)
	}
}

// insert adds key below n and returns the new root of that subtree, which
// the caller must store in place of n, and whether a node was created.
func (t *Tree[T]) insert(n *node[T], key T) (*node[T], bool) {
	if n == nil {
		return newNode(key), true
	}
	var added bool
	c := t.compare(key, n.key)
	if c < 0 {
		n.left, added = t.insert(n.left, key)
	} else if c > 0 {
		n.right, added = t.insert(n.right, key)
	} else {
		// key is already present
		return n, false
	}
	n.updateHeight()
	return rebalance(n), added
}

// Contains reports whether key is in the tree.
func (t *Tree[T]) Contains(key T) bool {
	var n = t.root
	for n != nil {
		c := t.compare(key, n.key)
		if c == 0 {
			return true
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return false
}

// Predecessor returns the greatest key in the tree that is less than key.
// If key itself is in the tree, Predecessor returns key (so it behaves as a
// floor query). The boolean is false if no such key exists, which includes
// the empty tree.
func (t *Tree[T]) Predecessor(key T) (T, bool) {
	var n = t.root
	// last node we moved right from, the best candidate so far
	var last *node[T]
	for n != nil {
		c := t.compare(n.key, key)
		if c > 0 {
			n = n.left
		} else if c < 0 {
			last = n
			n = n.right
		} else {
			return n.key, true
		}
	}
	if last == nil {
		var zero T
		return zero, false
	}
	return last.key, true
}
