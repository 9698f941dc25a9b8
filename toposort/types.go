package toposort

import "errors"

// Graph is a dependency graph in adjacency‑list form: g[u] lists the nodes
// that u depends on. Node IDs are the indices 0..len(g)-1.
type Graph [][]int

// State represents the DFS visitation state of a node.
type State uint8

const (
	White State = iota // White: the node has not been visited yet.
	Gray               // Gray: the node is on the current DFS path.
	Black              // Black: the node and all its prerequisites are finished.
)

// String returns the colour name of s.
func (s State) String() string {
	switch s {
	case White:
		return "white"
	case Gray:
		return "gray"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

var (
	// ErrCycleDetected indicates that a cycle was encountered during Sort
	// or DependencyOrder; no ordering exists.
	ErrCycleDetected = errors.New("toposort: cycle detected")

	// ErrNodeOutOfRange indicates an edge or root that names a node
	// outside [0, len(g)).
	ErrNodeOutOfRange = errors.New("toposort: node out of range")

	// ErrNegativeSize is returned by FromEdges when n < 0.
	ErrNegativeSize = errors.New("toposort: negative node count")
)

// Option configures optional behavior of Sort, DependencyOrder and FindCycle.
type Option func(*Options)

// Options holds traversal settings.
type Options struct {
	// Roots, if non-nil, lists the nodes to start DFS from, in order.
	// Only nodes reachable from Roots appear in the result. When nil,
	// every node is a root and is tried in ascending index order.
	Roots []int
}

// DefaultOptions returns Options that traverse the whole graph.
func DefaultOptions() Options {
	return Options{Roots: nil}
}

// WithRoots returns an Option that restricts traversal to the nodes
// reachable from ids. Calling it with no ids yields an empty result.
func WithRoots(ids ...int) Option {
	return func(o *Options) {
		o.Roots = append(make([]int, 0, len(ids)), ids...)
	}
}
