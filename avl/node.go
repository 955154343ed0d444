package avl

// node is one key of the tree. It exclusively owns left and right (either
// may be nil) and caches the height of the subtree rooted at it; a leaf has
// height 0.
type node[T any] struct {
	key    T
	height int16
	left   *node[T]
	right  *node[T]
}

func newNode[T any](key T) *node[T] {
	return &node[T]{key: key, height: 0}
}

// height returns the cached height of n, or -1 for a missing subtree.
func height[T any](n *node[T]) int16 {
	if n == nil {
		return -1
	}
	return n.height
}

// updateHeight recomputes n.height from the cached heights of its children.
// It must be called after any change to n.left or n.right and before n's
// balance factor is read.
func (n *node[T]) updateHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

// balanceFactor is height(left) - height(right), from the cached heights.
func (n *node[T]) balanceFactor() int {
	return int(height(n.left)) - int(height(n.right))
}
