package sorted

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestBinarySearch(t *testing.T) {
	assert := assert.New(t)

	s := []uint64{1, 3, 4, 5}
	var i uint64
	var ok bool
	i, ok = BinarySearch(s, 2)
	assert.Equal(uint64(1), i)
	assert.False(ok)

	i, ok = BinarySearch(s, 1)
	assert.Equal(uint64(0), i)
	assert.True(ok)

	i, ok = BinarySearch(s, 5)
	assert.Equal(uint64(3), i)
	assert.True(ok)

	i, ok = BinarySearch(s, 6)
	assert.Equal(uint64(4), i)
	assert.False(ok)

	_, ok = BinarySearch([]uint64{}, 6)
	assert.False(ok)
}

func TestInsert(t *testing.T) {
	assert := assert.New(t)

	var s []int
	s = Insert(s, 3)
	s = Insert(s, 1)
	s = Insert(s, 2)
	s = Insert(s, 3)
	assert.Equal([]int{1, 2, 3}, s)

	s = Insert(s, 0)
	s = Insert(s, 10)
	assert.Equal([]int{0, 1, 2, 3, 10}, s)
}

func TestPredecessor(t *testing.T) {
	assert := assert.New(t)

	s := []uint8{3, 10, 15, 20, 30, 50}
	tests := []struct {
		x        uint8
		expected uint8
		ok       bool
	}{
		{2, 0, false},
		{3, 3, true},
		{4, 3, true},
		{11, 10, true},
		{19, 15, true},
		{50, 50, true},
		{255, 50, true},
	}

	for _, test := range tests {
		p, ok := Predecessor(s, test.x)
		assert.Equal(test.ok, ok, "Predecessor(%d)", test.x)
		assert.Equal(test.expected, p, "Predecessor(%d)", test.x)
	}

	_, ok := Predecessor([]uint8{}, 4)
	assert.False(ok, "empty slice")
}

func TestInsertProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		xs := rapid.SliceOf(rapid.IntRange(-50, 50)).Draw(t, "xs")

		var s []int
		for _, x := range xs {
			s = Insert(s, x)
		}

		expected := slices.Clone(xs)
		slices.Sort(expected)
		expected = slices.Compact(expected)
		if len(expected) == 0 {
			assert.Empty(s)
		} else {
			assert.Equal(expected, s)
		}
	})
}
