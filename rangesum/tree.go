package rangesum

import "fmt"

// Tree is an array-backed segment tree over n elements.
type Tree[T any] struct {
	n    int    // element count, fixed at construction
	tree []T    // internal slots [1, n), leaves [n, 2n)
	ops  Ops[T] // identity and combine
}

// New builds a Tree over values using + and the zero value of T.
// values is copied; the caller keeps ownership.
func New[T Number](values []T) *Tree[T] {
	return NewWith(values, NumberOps[T]())
}

// NewWith builds a Tree over values combined with ops.
// Panics if ops.Zero or ops.Add is nil.
func NewWith[T any](values []T, ops Ops[T]) *Tree[T] {
	if ops.Zero == nil || ops.Add == nil {
		panic("rangesum: Ops requires both Zero and Add")
	}
	n := len(values)
	t := &Tree[T]{
		n:    n,
		tree: make([]T, 2*n),
		ops:  ops,
	}
	// 1. Leaves hold the values in order
	copy(t.tree[n:], values)
	// 2. Internal slots bottom-up, children before parents
	if n > 0 {
		t.tree[0] = ops.Zero()
	}
	for i := n - 1; i >= 1; i-- {
		t.tree[i] = ops.Add(t.tree[2*i], t.tree[2*i+1])
	}

	return t
}

// Len returns the number of elements.
func (t *Tree[T]) Len() int {
	return t.n
}

// Get returns the current value at index i.
func (t *Tree[T]) Get(i int) T {
	t.checkIndex(i)

	return t.tree[t.n+i]
}

// Update overwrites the element at index i with v and recomputes every
// ancestor sum up to the root.
func (t *Tree[T]) Update(i int, v T) {
	t.checkIndex(i)

	p := t.n + i
	t.tree[p] = v
	for p > 1 {
		p >>= 1
		t.tree[p] = t.ops.Add(t.tree[2*p], t.tree[2*p+1])
	}
}

// SumRange returns the sum of the elements at indices [left, right].
//
// The bounds start at the leaves and climb one level per step. A left bound
// that is a right child contributes its slot and steps past it; a right
// bound that is a left child contributes and steps back. The walk stops when
// the bounds cross.
func (t *Tree[T]) SumRange(left, right int) T {
	if left < 0 || right >= t.n || left > right {
		panic(fmt.Sprintf("rangesum: range [%d, %d] invalid for length %d", left, right, t.n))
	}

	sum := t.ops.Zero()
	l, r := left+t.n, right+t.n
	for l <= r {
		if l&1 == 1 {
			sum = t.ops.Add(sum, t.tree[l])
			l++
		}
		if r&1 == 0 {
			sum = t.ops.Add(sum, t.tree[r])
			r--
		}
		l >>= 1
		r >>= 1
	}

	return sum
}

// Total returns the sum of all elements, or the zero value if the tree is
// empty.
func (t *Tree[T]) Total() T {
	if t.n == 0 {
		return t.ops.Zero()
	}

	// slot 1 is the root; for n == 1 it is the only leaf
	return t.tree[1]
}

// Values returns a copy of the current elements.
func (t *Tree[T]) Values() []T {
	out := make([]T, t.n)
	copy(out, t.tree[t.n:])

	return out
}

// checkIndex panics if i is not an element index.
func (t *Tree[T]) checkIndex(i int) {
	if i < 0 || i >= t.n {
		panic(fmt.Sprintf("rangesum: index %d out of range [0, %d)", i, t.n))
	}
}
