// Package dsu provides a fixed-size disjoint-set (union-find) structure over
// the integer elements 0..n-1.
//
// What:
//
//   - New(n): n singleton sets.
//   - Find: representative of an element's set, with full path compression.
//   - UnionSet: merge two sets using union by rank; reports whether a merge
//     happened.
//   - Connected, NSets, Size, Sets, Len: membership and summary queries.
//
// Why:
//   - Connectivity and component counting (Kruskal's MST, grid islands,
//     network partitions, equivalence classes)
//
// Heuristics:
//
//	Union by rank attaches the lower-rank root under the higher-rank one,
//	bumping the survivor's rank on ties, which bounds tree height by
//	O(log n). Find first walks to the root and then rewrites every visited
//	parent to point straight at it. Together they give O(α(n)) amortized
//	operations. Both loops are iterative.
//
// Complexity:
//
//   - New:        O(n) time and memory
//   - Find/Union: O(α(n)) amortized
//   - NSets/Sets: O(n α(n))
//
// Contract:
//
//	Every element argument must lie in [0, Len()). Violations are caller
//	bugs and panic with an index-out-of-range message.
//
// A DisjointSet is not safe for concurrent use; Find mutates internal state.
package dsu
