// Package rangesum provides Tree, a fixed-size array-backed segment tree
// with O(log n) point updates and O(log n) inclusive range sums.
//
// Layout:
//
//	tree has 2n slots. Leaves tree[n..2n) hold the element values in order;
//	every internal slot i in [1, n) holds tree[2i] + tree[2i+1]. Slot 0 is
//	unused. The layout works for any n, not only powers of two.
//
//	values 5 3 1 6 9 (n = 5):
//
//	slot   1   2   3   4 | 5  6  7  8  9
//	value 24  20   4  15 | 5  3  1  6  9
//	        internal      leaves
//
// Element types:
//
//	New accepts any built-in numeric type via the Number constraint and uses
//	+ and the zero value. NewWith takes an Ops value (identity and Add) so
//	any additive type works; NewDecimal wires DecimalOps for exact decimal
//	arithmetic with github.com/shopspring/decimal.
//
// Complexity:
//
//   - New/NewWith: O(n) time, O(n) memory
//   - Update:      O(log n)
//   - SumRange:    O(log n)
//
// Contract: indices must satisfy 0 <= left <= right < Len(); violations
// panic. A Tree is not safe for concurrent use.
package rangesum
