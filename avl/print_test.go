package avl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	assert := assert.New(t)

	tree := New[int]()
	for _, k := range []int{1, 2, 3} {
		tree.Insert(k)
	}

	var b strings.Builder
	levels := tree.Print(&b)
	assert.Equal(2, levels)
	assert.Equal(
		"       /------+ 3 [0 +0]\n"+
			"|------+ 2 [1 +0]\n"+
			"       \\------+ 1 [0 +0]\n",
		b.String())
}

func TestPrintDeeper(t *testing.T) {
	assert := assert.New(t)

	tree := New[int]()
	for _, k := range []int{2, 1, 3, 4} {
		tree.Insert(k)
	}

	var b strings.Builder
	assert.Equal(3, tree.Print(&b))
	assert.Equal(
		"              /------+ 4 [0 +0]\n"+
			"       /------+ 3 [1 -1]\n"+
			"|------+ 2 [2 -1]\n"+
			"       \\------+ 1 [0 +0]\n",
		b.String())
}

func TestPrintEmpty(t *testing.T) {
	var b strings.Builder
	assert.Equal(t, 0, New[int]().Print(&b))
	assert.Empty(t, b.String())
}
