// Package lis computes longest strictly increasing subsequences in
// O(n log n).
//
// Length keeps a tails slice where tails[L-1] is the smallest value that
// ends an increasing subsequence of length L seen so far. Each element is
// binary-searched in tails: an exact match is skipped (duplicates never
// extend a strictly increasing run), an insertion point past the end
// appends, and any other insertion point overwrites that tail. The final
// len(tails) is the answer.
//
// Indices additionally keeps, per element, a link to its predecessor in the
// best run ending there, and walks the links back from the last tail to
// return one longest subsequence.
//
// Complexity: O(n log n) time, O(n) memory.
package lis
