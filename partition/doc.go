// Package partition rearranges a range of a slice in place around a pivot
// value, using either Hoare's or Lomuto's scheme.
//
// What:
//
//   - Hoare / HoareFunc: two cursors close in from the range ends and swap
//     misplaced pairs. Returns a split boundary b: s[lo:b] < p and
//     s[b:hi+1] >= p. b is not necessarily the pivot's final index.
//   - Lomuto / LomutoFunc: the pivot is parked at hi, a single left-to-right
//     walk grows the "< p" prefix, then the pivot is dropped into the
//     boundary. Returns the pivot's exact final index.
//
// Both take an inclusive range [lo, hi] and a pivotIndex inside it; the
// pivot value is copied once before any swap. The Func variants accept a
// three-way comparator (negative, zero, positive as in cmp.Compare) so any
// totally ordered type, e.g. decimal.Decimal via its Cmp method, can be
// partitioned.
//
// Complexity:
//
//   - Time:   O(hi-lo+1) comparisons; Hoare swaps ≈ 3x less than Lomuto
//   - Memory: O(1)
//
// Contract:
//
//	0 <= lo <= pivotIndex <= hi < len(s). Violations panic. Orders that are
//	not total (NaN) give unspecified but memory-safe results.
package partition
