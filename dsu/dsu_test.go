package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/dsu"
)

// TestDSU_Basic covers singleton sets and a single union.
func TestDSU_Basic(t *testing.T) {
	uf := dsu.New(3)
	assert.Equal(t, 0, uf.Find(0))
	assert.Equal(t, 1, uf.Find(1))
	assert.Equal(t, 2, uf.Find(2))
	assert.False(t, uf.Connected(0, 1))
	assert.False(t, uf.Connected(0, 2))
	assert.False(t, uf.Connected(1, 2))
	assert.Equal(t, 3, uf.NSets())

	assert.True(t, uf.UnionSet(0, 1))
	assert.True(t, uf.Connected(0, 1))
	assert.False(t, uf.Connected(0, 2))
	assert.False(t, uf.Connected(1, 2))
	assert.Equal(t, 2, uf.NSets())
}

// TestDSU_Empty ensures a zero-size structure is usable.
func TestDSU_Empty(t *testing.T) {
	uf := dsu.New(0)
	assert.Equal(t, 0, uf.Len())
	assert.Equal(t, 0, uf.NSets())
	assert.Empty(t, uf.Sets())
}

// TestDSU_RepeatedUnion checks that a no-op union returns false and leaves
// the set count unchanged.
func TestDSU_RepeatedUnion(t *testing.T) {
	uf := dsu.New(4)
	require.True(t, uf.UnionSet(0, 1))
	require.True(t, uf.UnionSet(1, 2))
	before := uf.NSets()

	assert.False(t, uf.UnionSet(0, 2))
	assert.False(t, uf.UnionSet(2, 0))
	assert.False(t, uf.UnionSet(3, 3))
	assert.Equal(t, before, uf.NSets())
	assert.Equal(t, 2, before)
}

// TestDSU_UnionByRank verifies the attachment policy: ties keep the first
// argument's root, lower rank goes under higher rank.
func TestDSU_UnionByRank(t *testing.T) {
	uf := dsu.New(4)
	// tie: root of 1 goes under root of 0, rank(0) becomes 2
	uf.UnionSet(0, 1)
	assert.Equal(t, 0, uf.Find(1))
	// rank(2)=1 < rank(0)=2: 2 goes under 0 even as first argument
	uf.UnionSet(2, 0)
	assert.Equal(t, 0, uf.Find(2))
	// 3 joins through a non-root member
	uf.UnionSet(3, 1)
	assert.Equal(t, 0, uf.Find(3))
	assert.Equal(t, 1, uf.NSets())
	assert.Equal(t, 4, uf.Size(3))
}

// TestDSU_PathCompression builds a long chain through equal-rank merges and
// checks every element resolves to the same representative.
func TestDSU_PathCompression(t *testing.T) {
	const n = 1 << 12
	uf := dsu.New(n)
	// pairwise merges in rounds build a binomial-style tree of height log n
	for step := 1; step < n; step <<= 1 {
		for i := 0; i+step < n; i += step << 1 {
			require.True(t, uf.UnionSet(i, i+step))
		}
	}
	r := uf.Find(n - 1)
	for i := 0; i < n; i++ {
		assert.Equal(t, r, uf.Find(i))
	}
	assert.Equal(t, 1, uf.NSets())
	assert.Equal(t, n, uf.Size(0))
}

// TestDSU_SizeAndSets checks group reporting.
func TestDSU_SizeAndSets(t *testing.T) {
	uf := dsu.New(6)
	uf.UnionSet(4, 1)
	uf.UnionSet(5, 3)
	uf.UnionSet(3, 1)

	assert.Equal(t, 4, uf.Size(5))
	assert.Equal(t, 1, uf.Size(0))
	assert.Equal(t, 1, uf.Size(2))
	assert.Equal(t, [][]int{{0}, {1, 3, 4, 5}, {2}}, uf.Sets())
	assert.Equal(t, 3, uf.NSets())
}

// TestDSU_OutOfRangePanics treats bad indices as contract violations.
func TestDSU_OutOfRangePanics(t *testing.T) {
	uf := dsu.New(2)
	assert.PanicsWithValue(t, "dsu: element 2 out of range [0, 2)", func() { uf.Find(2) })
	assert.Panics(t, func() { uf.UnionSet(-1, 0) })
	assert.Panics(t, func() { uf.Connected(0, 5) })
	assert.Panics(t, func() { dsu.New(-1) })
}

// TestDSU_RandomAgainstNaive compares NSets and Connected against a
// label-propagation reference on random unions.
func TestDSU_RandomAgainstNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 64
	uf := dsu.New(n)
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	merges := 0
	for step := 0; step < 200; step++ {
		x, y := rng.Intn(n), rng.Intn(n)
		lx, ly := label[x], label[y]
		merged := uf.UnionSet(x, y)
		assert.Equal(t, lx != ly, merged)
		if merged {
			merges++
			for i := range label {
				if label[i] == ly {
					label[i] = lx
				}
			}
		}
		a, b := rng.Intn(n), rng.Intn(n)
		assert.Equal(t, label[a] == label[b], uf.Connected(a, b))
	}
	assert.Equal(t, n-merges, uf.NSets())
}
