// Package toposort implements depth‑first topological ordering and cycle
// detection over a dependency graph given as an adjacency list of node
// indices.
//
// What:
//
//   - Sort: orders every node so that each node appears before all of
//     the nodes it depends on (for every edge u→v, u precedes v).
//     Returns ErrCycleDetected if the graph is not a DAG.
//   - DependencyOrder: the reverse of Sort: prerequisites first, which is
//     the order in which a build or task runner would execute the nodes.
//   - FindCycle: reports one directed cycle as a closed walk [a … a].
//   - FromEdges, IsTopological: helpers to build a Graph from an edge
//     list and to check an ordering against every edge.
//
// Why:
//   - Determine safe execution orders in build systems, package managers
//     and schedulers
//   - Reject dependency cycles before they cause infinite loops
//
// Graph model:
//
//	Graph[u] lists the nodes u depends on (edges u→v, "visit v first").
//	Nodes are the indices 0..len(g)-1; an edge pointing outside that
//	range is reported as ErrNodeOutOfRange.
//
// Algorithm:
//
//	Three‑colour DFS (White, Gray, Black) started from every White node
//	in ascending index order. Reaching a Gray node is a back edge, so a
//	cycle: the whole sort aborts and partial results are dropped. A node
//	turns Black after all its prerequisites finish and is prepended to
//	the result. Traversal keeps an explicit frame stack instead of
//	recursing, so deep dependency chains cannot overflow the goroutine
//	stack.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) (state marks, frame stack, result)
//
// Options:
//
//   - WithRoots(ids...)   restrict traversal to nodes reachable from ids.
//
// Errors:
//
//   - ErrCycleDetected    the graph contains a directed cycle.
//   - ErrNodeOutOfRange   an edge or root names a node outside the graph.
//   - ErrNegativeSize     FromEdges called with n < 0.
package toposort
