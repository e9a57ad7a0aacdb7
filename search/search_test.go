package search_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsort/order"
	"github.com/katalvlaran/lvlsort/search"
)

// TestLinear covers the reference scenarios and degenerate inputs.
func TestLinear(t *testing.T) {
	s := []int{5, 2, 42, 6, 1, 3, 2}
	assert.Equal(t, 2, search.Linear(s, 42))
	assert.Equal(t, search.NotFound, search.Linear(s, 99))
	assert.Equal(t, 1, search.Linear(s, 2), "first occurrence wins")
	assert.Equal(t, 0, search.Linear(s, 5))
	assert.Equal(t, 6, search.Linear([]int{0, 0, 0, 0, 0, 0, 7}, 7))

	assert.Equal(t, search.NotFound, search.Linear([]int{}, 1))
	assert.Equal(t, search.NotFound, search.Linear[int](nil, 0))
	assert.Equal(t, []int{5, 2, 42, 6, 1, 3, 2}, s, "no mutation")
}

// TestLinear_Strings checks a non-numeric comparable type.
func TestLinear_Strings(t *testing.T) {
	s := []string{"bfs", "dfs", "dtw", "dfs"}
	assert.Equal(t, 1, search.Linear(s, "dfs"))
	assert.Equal(t, search.NotFound, search.Linear(s, "tsp"))
}

// TestLinear_NaNNeverMatches documents == semantics for floats.
func TestLinear_NaNNeverMatches(t *testing.T) {
	s := []float64{1, math.NaN(), 3}
	assert.Equal(t, search.NotFound, search.Linear(s, math.NaN()))
	assert.Equal(t, 2, search.Linear(s, 3))
}

// TestLinearFunc finds the first element satisfying a predicate.
func TestLinearFunc(t *testing.T) {
	s := []int{5, 2, 42, 6, 1, 3, 2}
	assert.Equal(t, 2, search.LinearFunc(s, func(v int) bool { return v > 10 }))
	assert.Equal(t, 3, search.LinearFunc(s, func(v int) bool { return v%2 == 0 && v < 10 && v > 2 }))
	assert.Equal(t, search.NotFound, search.LinearFunc(s, func(v int) bool { return v < 0 }))
	assert.Equal(t, search.NotFound, search.LinearFunc(s, nil))
}

// TestBinary checks hits, misses and the leftmost rule on duplicates.
func TestBinary(t *testing.T) {
	s := []int{1, 2, 4, 6, 8, 12, 16, 18, 24, 42}
	for i, v := range s {
		assert.Equal(t, i, search.Binary(s, v), "value %d", v)
	}
	for _, miss := range []int{0, 3, 13, 43, -7} {
		assert.Equal(t, search.NotFound, search.Binary(s, miss), "value %d", miss)
	}

	dups := []int{1, 4, 4, 4, 4, 9}
	assert.Equal(t, 1, search.Binary(dups, 4))
	assert.Equal(t, search.NotFound, search.Binary([]int{}, 4))
	assert.Equal(t, 0, search.Binary([]int{4}, 4))
}

// TestBinaryFunc searches a descending slice with a reversed ordering.
func TestBinaryFunc(t *testing.T) {
	desc := []int{42, 24, 18, 18, 6, 1}
	rev := order.Reverse(order.Natural[int])

	idx, err := search.BinaryFunc(desc, 18, rev)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	idx, err = search.BinaryFunc(desc, 7, rev)
	require.NoError(t, err)
	assert.Equal(t, search.NotFound, idx)

	idx, err = search.BinaryFunc(desc, 18, nil)
	assert.ErrorIs(t, err, search.ErrNilLess)
	assert.Equal(t, search.NotFound, idx)
}

// TestTernary checks every element and gaps of a sorted slice.
func TestTernary(t *testing.T) {
	s := []int{1, 2, 4, 6, 8, 12, 16, 18, 24, 42}
	for i, v := range s {
		assert.Equal(t, i, search.Ternary(s, v), "value %d", v)
	}
	for _, miss := range []int{0, 3, 7, 13, 43} {
		assert.Equal(t, search.NotFound, search.Ternary(s, miss), "value %d", miss)
	}
	assert.Equal(t, search.NotFound, search.Ternary([]int{}, 1))
	assert.Equal(t, 0, search.Ternary([]int{1}, 1))

	dups := []int{2, 3, 3, 3, 3, 3, 5}
	idx := search.Ternary(dups, 3)
	require.NotEqual(t, search.NotFound, idx)
	assert.Equal(t, 3, dups[idx])
}

// TestSearchesAgree compares every lookup on a large sorted slice.
func TestSearchesAgree(t *testing.T) {
	s := make([]int, 0, 2000)
	for i := 0; i < 1000; i++ {
		s = append(s, i*3, i*3) // every value twice
	}
	require.True(t, slices.IsSorted(s))

	for target := -1; target < 3002; target++ {
		lin := search.Linear(s, target)
		bin := search.Binary(s, target)
		ter := search.Ternary(s, target)
		require.Equal(t, lin, bin, "target %d", target)
		if lin == search.NotFound {
			require.Equal(t, search.NotFound, ter, "target %d", target)
		} else {
			require.Equal(t, target, s[ter], "target %d", target)
		}
	}
}
