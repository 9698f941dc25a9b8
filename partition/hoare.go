package partition

import "cmp"

// Hoare partitions s[lo..hi] (inclusive) around the value at pivotIndex
// and returns the boundary b such that every element of s[lo:b] is less
// than the pivot value and every element of s[b:hi+1] is greater than or
// equal to it.
//
// Example: s = [5 3 1 6 9], Hoare(s, 0, 4, 0) returns 2 with s[0:2] < 5.
func Hoare[T cmp.Ordered](s []T, lo, hi, pivotIndex int) int {
	return HoareFunc(s, lo, hi, pivotIndex, cmp.Compare[T])
}

// HoareFunc is Hoare with a caller-supplied three-way comparator.
func HoareFunc[T any](s []T, lo, hi, pivotIndex int, cmp func(a, b T) int) int {
	checkRange(len(s), lo, hi, pivotIndex)

	// 1. Sample the pivot by value before anything moves
	p := s[pivotIndex]
	i, j := lo, hi
	for {
		// 2. Low cursor skips elements already below the pivot
		for i <= hi && cmp(s[i], p) < 0 {
			i++
		}
		// 3. High cursor skips elements already at or above it
		for j >= lo && cmp(s[j], p) >= 0 {
			j--
		}
		// 4. Cursors crossed: s[lo:i] < p and s[i:hi+1] >= p
		if i >= j {
			return i
		}
		s[i], s[j] = s[j], s[i]
		i++
		j--
	}
}
