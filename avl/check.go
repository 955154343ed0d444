package avl

import "fmt"

// Check walks the whole tree and verifies the search order, the balance of
// every node, the cached heights and the key count. It returns nil if the
// tree is well formed.
func (t *Tree[T]) Check() error {
	count, err := t.check(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("tree holds %d keys but counted %d", count, t.size)
	}
	return nil
}

// check verifies the subtree rooted at n, whose keys must lie strictly
// between lo and hi (nil meaning unbounded), and returns its node count.
func (t *Tree[T]) check(n *node[T], lo, hi *node[T]) (uint64, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && t.compare(lo.key, n.key) >= 0 {
		return 0, fmt.Errorf("key %v is not greater than %v", n.key, lo.key)
	}
	if hi != nil && t.compare(n.key, hi.key) >= 0 {
		return 0, fmt.Errorf("key %v is not less than %v", n.key, hi.key)
	}
	left, err := t.check(n.left, lo, n)
	if err != nil {
		return 0, err
	}
	right, err := t.check(n.right, n, hi)
	if err != nil {
		return 0, err
	}
	if h := max(height(n.left), height(n.right)) + 1; n.height != h {
		return 0, fmt.Errorf("key %v: cached height %d, actual %d", n.key, n.height, h)
	}
	if b := n.balanceFactor(); b < -1 || b > 1 {
		return 0, fmt.Errorf("key %v: balance factor %d", n.key, b)
	}
	return left + right + 1, nil
}
