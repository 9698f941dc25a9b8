// Package algokit is a toolbox of classic array and graph algorithms and
// the small data structures behind them, meant to be embedded in larger
// programs.
//
// What is inside:
//
//	dsu/         disjoint-set union with union by rank and path compression
//	partition/   in-place Hoare and Lomuto partitioning
//	selection/   quickselect order statistics built on Lomuto
//	rangesum/    array-backed segment tree: point update, range sum
//	lis/         longest strictly increasing subsequence in O(n log n)
//	toposort/    DFS topological order and cycle detection
//	cmd/algokit  command-line front end over YAML documents
//
// Why:
//
//   - Generic: cmp.Ordered or a comparator for ordering, an Ops value for
//     summation, so ints, floats, strings and decimal.Decimal all work
//   - Predictable: deterministic results, no hidden randomness
//   - Stack-safe: union-find and DFS are iterative
//   - Contract-first: index violations panic like slice indexing does;
//     the only recoverable outcome (a dependency cycle) is an error value
//
// Every structure is synchronous and meant for a single owner; wrap it in
// your own lock if several goroutines share it.
//
// Quick example:
//
//	order, err := toposort.Sort(toposort.Graph{{}, {0}, {1}})
//	// order == [2 1 0], err == nil
//
//	go get github.com/katalvlaran/algokit
package algokit
