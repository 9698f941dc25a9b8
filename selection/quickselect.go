package selection

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/algokit/partition"
)

// Select returns the value that would sit at index k if s[lo..hi] were
// sorted, rearranging s[lo..hi] in the process. k is an absolute index.
//
// Example: for s = [5 3 1 6 9], Select(s, 0, 4, k) yields 1, 3, 5, 6, 9 for
// k = 0..4.
func Select[T cmp.Ordered](s []T, lo, hi, k int) T {
	return SelectFunc(s, lo, hi, k, cmp.Compare[T])
}

// SelectFunc is Select with a caller-supplied three-way comparator.
func SelectFunc[T any](s []T, lo, hi, k int, cmp func(a, b T) int) T {
	if lo < 0 || hi >= len(s) || lo > hi {
		panic(fmt.Sprintf("selection: range [%d, %d] invalid for length %d", lo, hi, len(s)))
	}
	if k < lo || k > hi {
		panic(fmt.Sprintf("selection: k %d outside [%d, %d]", k, lo, hi))
	}

	for lo < hi {
		// middle-index pivot, no randomization
		m := partition.LomutoFunc(s, lo, hi, lo+(hi-lo)/2, cmp)
		switch {
		case k < m:
			hi = m - 1
		case k > m:
			lo = m + 1
		default:
			return s[m]
		}
	}

	return s[lo]
}

// Nth returns the k-th smallest element of s (0-based) without modifying s.
// Panics if k is outside [0, len(s)).
func Nth[T cmp.Ordered](s []T, k int) T {
	buf := slices.Clone(s)
	if len(buf) == 0 {
		panic("selection: Nth of empty slice")
	}

	return Select(buf, 0, len(buf)-1, k)
}

// Median returns the lower median of s, i.e. Nth(s, (len(s)-1)/2), without
// modifying s. Panics if s is empty.
func Median[T cmp.Ordered](s []T) T {
	return Nth(s, (len(s)-1)/2)
}
