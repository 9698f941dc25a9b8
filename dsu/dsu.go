package dsu

import "fmt"

// DisjointSet tracks a partition of {0..n-1} into disjoint sets.
type DisjointSet struct {
	root []int // parent pointer; root[r] == r for a representative
	rank []int // height estimate, meaningful only for representatives
	size []int // member count, meaningful only for representatives
}

// New returns n singleton sets {0}, {1}, …, {n-1}.
// Panics if n < 0.
func New(n int) *DisjointSet {
	if n < 0 {
		panic(fmt.Sprintf("dsu: negative size %d", n))
	}
	d := &DisjointSet{
		root: make([]int, n),
		rank: make([]int, n),
		size: make([]int, n),
	}
	for i := 0; i < n; i++ {
		d.root[i] = i // every element is its own representative
		d.rank[i] = 1
		d.size[i] = 1
	}

	return d
}

// Len returns the number of elements, fixed at construction.
func (d *DisjointSet) Len() int {
	return len(d.root)
}

// Find returns the representative of the set containing x.
//
// Once the representative r is reached, every node on the path from x is
// re-pointed directly at r, so repeated lookups are O(1) amortized.
func (d *DisjointSet) Find(x int) int {
	d.check(x)

	// 1. Walk parent pointers up to the fixed point
	r := x
	for d.root[r] != r {
		r = d.root[r]
	}
	// 2. Path compression: second pass rewrites parents to r
	for x != r {
		x, d.root[x] = d.root[x], r
	}

	return r
}

// UnionSet merges the sets containing x and y.
// It returns true if a merge happened and false if x and y were already
// connected, in which case nothing changes.
func (d *DisjointSet) UnionSet(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	// Attach the lower-rank tree under the higher-rank root.
	switch {
	case d.rank[rx] > d.rank[ry]:
		d.attach(ry, rx)
	case d.rank[rx] < d.rank[ry]:
		d.attach(rx, ry)
	default:
		d.attach(ry, rx)
		d.rank[rx]++
	}

	return true
}

// attach makes root child a child of root parent.
func (d *DisjointSet) attach(child, parent int) {
	d.root[child] = parent
	d.size[parent] += d.size[child]
}

// Connected reports whether x and y belong to the same set.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// NSets returns the current number of disjoint sets by counting distinct
// representatives across all elements.
func (d *DisjointSet) NSets() int {
	n := len(d.root)
	found := make([]bool, n)
	count := 0
	for i := 0; i < n; i++ {
		if r := d.Find(i); !found[r] {
			found[r] = true
			count++
		}
	}

	return count
}

// Size returns the number of elements in the set containing x.
func (d *DisjointSet) Size(x int) int {
	return d.size[d.Find(x)]
}

// Sets returns the disjoint sets. Elements in each set are ascending and
// sets are ordered by their smallest element.
func (d *DisjointSet) Sets() [][]int {
	// slot maps a representative to its position in out
	slot := make(map[int]int, len(d.root))
	var out [][]int
	for i := range d.root {
		r := d.Find(i)
		pos, ok := slot[r]
		if !ok {
			pos = len(out)
			slot[r] = pos
			out = append(out, make([]int, 0, d.size[r]))
		}
		// ascending i keeps every set sorted
		out[pos] = append(out[pos], i)
	}

	return out
}

// check panics if x is not an element of d.
func (d *DisjointSet) check(x int) {
	if x < 0 || x >= len(d.root) {
		panic(fmt.Sprintf("dsu: element %d out of range [0, %d)", x, len(d.root)))
	}
}
