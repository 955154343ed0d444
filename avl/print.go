package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print writes an ASCII drawing of the tree to w, with right subtrees above
// their parent and each node shown as "key [height balance]". It returns the
// number of levels drawn.
func (t *Tree[T]) Print(w io.Writer) int {
	return printTree(w, t.root, "", rootBranch)
}

func printTree[T any](w io.Writer, n *node[T], prefix string, br branch) int {
	if n == nil {
		return 0
	}
	var rd, ld int
	if n.right != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		rd = printTree(w, n.right, prefix+pad, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v [%d %+d]\n", n.key, n.height, n.balanceFactor())
	if n.left != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		ld = printTree(w, n.left, prefix+pad, leftBranch)
	}
	return 1 + max(rd, ld)
}
