// Package sorted implements a small ordered set as a sorted slice without
// duplicates. It is the reference model the avl package is tested against.
package sorted

import "cmp"

// BinarySearch looks for needle in the sorted list s. It returns (index, found)
// where index is the first position whose element is not less than needle, and
// found reports whether s[index] == needle.
func BinarySearch[T cmp.Ordered](s []T, needle T) (uint64, bool) {
	var i = uint64(0)
	var j = uint64(len(s))
	for i < j {
		mid := i + (j-i)/2
		if s[mid] < needle {
			i = mid + 1
		} else {
			j = mid
		}
	}
	if i < uint64(len(s)) {
		return i, s[i] == needle
	}
	return i, false
}

// Insert adds x to s, keeping s sorted. If x is already present s is returned
// unchanged.
func Insert[T cmp.Ordered](s []T, x T) []T {
	i, found := BinarySearch(s, x)
	if found {
		return s
	}
	var zero T
	s = append(s, zero)
	copy(s[i+1:], s[i:])
	s[i] = x
	return s
}

// Predecessor returns x itself if it is in s, and otherwise the greatest
// element less than x. The boolean is false if there is no such element.
func Predecessor[T cmp.Ordered](s []T, x T) (T, bool) {
	i, found := BinarySearch(s, x)
	if found {
		return s[i], true
	}
	if i == 0 {
		var zero T
		return zero, false
	}
	return s[i-1], true
}
