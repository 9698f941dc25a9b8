// Package selection finds order statistics (the k-th smallest element)
// without fully sorting, using quickselect over partition.Lomuto.
//
// Select narrows [lo, hi] around a middle-index pivot until the pivot lands
// on position k. The pivot choice is deterministic, so adversarial inputs
// can still cost O(n²); average cost is O(n). The narrowing is a loop, not
// recursion, so stack use is constant.
//
// Select and SelectFunc reorder the caller's slice. Nth and Median work on
// a copy.
//
// Contract: 0 <= lo <= k <= hi < len(s); violations panic.
package selection
