package lis

import (
	"cmp"
	"slices"
)

// Length returns the length of the longest strictly increasing subsequence
// of seq.
//
// Examples: [10 9 2 5 3 7 101 18] → 4, [7 7 7] → 1, [0 1 0 3 2 3] → 4.
func Length[T cmp.Ordered](seq []T) int {
	return LengthFunc(seq, cmp.Compare[T])
}

// LengthFunc is Length with a caller-supplied three-way comparator.
func LengthFunc[T any](seq []T, cmp func(a, b T) int) int {
	tails := make([]T, 0, len(seq))
	for _, v := range seq {
		i, found := slices.BinarySearchFunc(tails, v, cmp)
		switch {
		case found:
			// equal tail already present
		case i == len(tails):
			tails = append(tails, v)
		default:
			tails[i] = v
		}
	}

	return len(tails)
}

// Indices returns the positions in seq of one longest strictly increasing
// subsequence, in ascending order. len(Indices(seq)) == Length(seq); nil
// for an empty seq.
//
// Among equally long subsequences it returns the one whose last element is
// the smallest possible tail.
func Indices[T cmp.Ordered](seq []T) []int {
	return IndicesFunc(seq, cmp.Compare[T])
}

// IndicesFunc is Indices with a caller-supplied three-way comparator.
func IndicesFunc[T any](seq []T, cmp func(a, b T) int) []int {
	if len(seq) == 0 {
		return nil
	}
	// tails[L-1] is the index in seq ending the best run of length L
	tails := make([]int, 0, len(seq))
	// prev[i] is the index preceding seq[i] in its best run, -1 at a start
	prev := make([]int, len(seq))

	for i, v := range seq {
		pos, found := slices.BinarySearchFunc(tails, v, func(t int, target T) int {
			return cmp(seq[t], target)
		})
		if found {
			prev[i] = -1 // never read: i is not recorded in tails
			continue
		}
		if pos > 0 {
			prev[i] = tails[pos-1]
		} else {
			prev[i] = -1
		}
		if pos == len(tails) {
			tails = append(tails, i)
		} else {
			tails[pos] = i
		}
	}

	// walk predecessor links back from the last tail
	out := make([]int, len(tails))
	for k, i := len(out)-1, tails[len(tails)-1]; k >= 0; k, i = k-1, prev[i] {
		out[k] = i
	}

	return out
}
