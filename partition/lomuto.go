package partition

import "cmp"

// Lomuto partitions s[lo..hi] (inclusive) around the value at pivotIndex
// and returns the pivot's final index m: s[lo:m] < s[m], s[m] equals the
// pivot value, and s[m+1:hi+1] >= s[m].
//
// Example: s = [5 3 1 6 9], Lomuto(s, 0, 4, 0) returns 2 and s[2] == 5.
func Lomuto[T cmp.Ordered](s []T, lo, hi, pivotIndex int) int {
	return LomutoFunc(s, lo, hi, pivotIndex, cmp.Compare[T])
}

// LomutoFunc is Lomuto with a caller-supplied three-way comparator.
func LomutoFunc[T any](s []T, lo, hi, pivotIndex int, cmp func(a, b T) int) int {
	checkRange(len(s), lo, hi, pivotIndex)

	// 1. Park the pivot at the end of the range
	p := s[pivotIndex]
	s[pivotIndex], s[hi] = s[hi], s[pivotIndex]

	// 2. store is the first slot not known to be < p
	store := lo
	for i := lo; i < hi; i++ {
		if cmp(s[i], p) < 0 {
			s[store], s[i] = s[i], s[store]
			store++
		}
	}

	// 3. Drop the pivot into the boundary
	s[store], s[hi] = s[hi], s[store]

	return store
}
