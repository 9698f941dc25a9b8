package toposort

import "fmt"

// FromEdges builds a Graph with n nodes from a list of [from, to] pairs,
// where from depends on to. Edge order within each adjacency list follows
// the input order.
// Time Complexity: O(n + len(edges)).
func FromEdges(n int, edges [][2]int) (Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	g := make(Graph, n)
	for _, e := range edges {
		from, to := e[0], e[1]
		if from < 0 || from >= n || to < 0 || to >= n {
			return nil, fmt.Errorf("%w: edge %d -> %d (graph has %d nodes)", ErrNodeOutOfRange, from, to, n)
		}
		g[from] = append(g[from], to)
	}

	return g, nil
}

// IsTopological reports whether order lists every node of g exactly once
// and places each node before all of the nodes it depends on, which is
// the contract of Sort.
// Time Complexity: O(V + E).
func IsTopological(g Graph, order []int) bool {
	if len(order) != len(g) {
		return false
	}
	pos := make([]int, len(g))
	for i := range pos {
		pos[i] = -1 // not placed yet
	}
	for i, v := range order {
		if v < 0 || v >= len(g) || pos[v] != -1 {
			return false // unknown or duplicate node
		}
		pos[v] = i
	}
	for u, deps := range g {
		for _, v := range deps {
			if v < 0 || v >= len(g) || pos[u] >= pos[v] {
				return false
			}
		}
	}

	return true
}

// reverseInPlace reverses s.
// Time Complexity: O(n).
func reverseInPlace(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
