package toposort

import (
	"fmt"
)

// frame is one entry of the explicit DFS stack.
type frame struct {
	node int // node being expanded
	next int // position in graph[node] of the next prerequisite to examine
}

// sorter encapsulates state for a topological sort traversal.
type sorter struct {
	graph Graph   // the graph being sorted
	opts  Options // traversal options
	state []State // visitation state per node, all White at start
	order []int   // recorded post-order sequence
	stack []frame // current DFS path
	cycle []int   // closed walk of the first back edge found, if any
}

// Sort computes a topological ordering of g: for every edge u→v
// (v listed in g[u]), u appears before v.
//
// If a cycle is detected the traversal stops immediately and Sort returns
// (nil, ErrCycleDetected). An edge naming a node outside the graph yields
// an error wrapping ErrNodeOutOfRange. An empty graph yields an empty,
// non-nil order.
//
// Example: g = [[], [0], [1]] (1 depends on 0, 2 depends on 1) gives [2 1 0].
func Sort(g Graph, options ...Option) ([]int, error) {
	// 1. Post-order already lists prerequisites first
	order, err := DependencyOrder(g, options...)
	if err != nil {
		return nil, err
	}
	// 2. Reverse post-order: every node before its prerequisites
	reverseInPlace(order)

	return order, nil
}

// DependencyOrder returns the nodes of g with every prerequisite before the
// nodes that depend on it, i.e. the reverse of Sort. This is the order in
// which the nodes can be executed. Errors are the same as for Sort.
func DependencyOrder(g Graph, options ...Option) ([]int, error) {
	s, err := newSorter(g, options)
	if err != nil {
		return nil, err
	}
	if err = s.run(); err != nil {
		return nil, err
	}

	return s.order, nil
}

// newSorter validates g and the options and allocates traversal state.
func newSorter(g Graph, options []Option) (*sorter, error) {
	// 1. Apply optional settings
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 2. Every edge and root must name an existing node
	if err := validate(g); err != nil {
		return nil, err
	}
	for _, r := range opts.Roots {
		if r < 0 || r >= len(g) {
			return nil, fmt.Errorf("%w: root %d (graph has %d nodes)", ErrNodeOutOfRange, r, len(g))
		}
	}

	return &sorter{
		graph: g,
		opts:  opts,
		state: make([]State, len(g)),  // zero value is White
		order: make([]int, 0, len(g)), // capacity hint for post-order
		stack: make([]frame, 0, 16),   // grows with the longest path
	}, nil
}

// run drives DFS from every White root.
func (s *sorter) run() error {
	if s.opts.Roots != nil {
		for _, r := range s.opts.Roots {
			if s.state[r] == White {
				if err := s.visit(r); err != nil {
					return err
				}
			}
		}

		return nil
	}
	for v := range s.graph {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return err
			}
		}
	}

	return nil
}

// visit performs an iterative DFS from root, marking states, detecting
// cycles and recording finished nodes in post-order.
func (s *sorter) visit(root int) error {
	// 1. Root enters the path as Gray
	s.state[root] = Gray
	s.stack = append(s.stack[:0], frame{node: root})

	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]
		deps := s.graph[top.node]

		// 2. Next unexplored prerequisite of the node on top
		if top.next < len(deps) {
			v := deps[top.next]
			top.next++
			switch s.state[v] {
			case Gray:
				// back edge: v is on the current path
				s.recordCycle(v)
				s.order = nil

				return ErrCycleDetected
			case Black:
				continue
			default:
				s.state[v] = Gray
				s.stack = append(s.stack, frame{node: v})
			}

			continue
		}

		// 3. All prerequisites finished: node turns Black
		s.state[top.node] = Black
		s.order = append(s.order, top.node)
		s.stack = s.stack[:len(s.stack)-1]
	}

	return nil
}

// recordCycle captures the path segment from the Gray node v to the top of
// the stack, closed by v again.
func (s *sorter) recordCycle(v int) {
	start := len(s.stack) - 1
	for start > 0 && s.stack[start].node != v {
		start--
	}
	s.cycle = make([]int, 0, len(s.stack)-start+1)
	for _, f := range s.stack[start:] {
		s.cycle = append(s.cycle, f.node)
	}
	s.cycle = append(s.cycle, v)
}

// validate reports the first edge of g that points outside the graph.
func validate(g Graph) error {
	n := len(g)
	for u, deps := range g {
		for _, v := range deps {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: edge %d -> %d (graph has %d nodes)", ErrNodeOutOfRange, u, v, n)
			}
		}
	}

	return nil
}
