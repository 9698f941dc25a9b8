package toposort

import "errors"

// FindCycle inspects g for a directed cycle using the same three‑colour
// traversal as Sort.
//
// It returns the first cycle met as a closed walk [a, b, …, a] where every
// consecutive pair is an edge of g, or (nil, nil) if g is acyclic. A
// self-loop on a is reported as [a, a]. Only validation failures produce an
// error (wrapping ErrNodeOutOfRange).
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle(g Graph, options ...Option) ([]int, error) {
	s, err := newSorter(g, options)
	if err != nil {
		return nil, err
	}
	if err = s.run(); err != nil {
		if errors.Is(err, ErrCycleDetected) {
			return s.cycle, nil
		}

		return nil, err
	}

	return nil, nil
}
