package sorting_test

import (
	"math/rand/v2"
	"slices"

	"github.com/katalvlaran/lvlsort/order"
	"github.com/katalvlaran/lvlsort/sorting"
)

// tagged pairs a sort key with its original position, for stability checks.
type tagged struct {
	Key int
	Pos int
}

var byKey = order.By(func(t tagged) int { return t.Key })

// tag wraps keys with their positions.
func tag(keys []int) []tagged {
	out := make([]tagged, len(keys))
	for i, k := range keys {
		out[i] = tagged{Key: k, Pos: i}
	}

	return out
}

// randomInts returns n values in [0, span) from a fixed seed.
func randomInts(seed uint64, n, span int) []int {
	r := rand.New(rand.NewPCG(seed, seed+1))
	out := make([]int, n)
	for i := range out {
		out[i] = r.IntN(span)
	}

	return out
}

// sortedCopy is the reference result: same multiset, non-decreasing.
func sortedCopy(s []int) []int {
	out := slices.Clone(s)
	slices.Sort(out)

	return out
}

// counting wraps less and counts its invocations.
func counting(n *int) order.Less[int] {
	return func(a, b int) bool {
		*n++

		return a < b
	}
}

// algorithm bundles the three entry points of one sort.
type algorithm struct {
	name   string
	plain  func([]int)
	byFunc func([]tagged, order.Less[tagged]) error
	ranged func([]int, int, int, order.Less[int]) error
	stable bool
}

// algorithms lists every sort in the package. Quick uses a fixed seed so a
// failure is reproducible.
func algorithms() []algorithm {
	return []algorithm{
		{
			name:   "Bubble",
			plain:  sorting.Bubble[int],
			byFunc: sorting.BubbleFunc[tagged],
			ranged: sorting.BubbleRange[int],
			stable: true,
		},
		{
			name:   "Selection",
			plain:  sorting.Selection[int],
			byFunc: sorting.SelectionFunc[tagged],
			ranged: sorting.SelectionRange[int],
		},
		{
			name:   "Insertion",
			plain:  sorting.Insertion[int],
			byFunc: sorting.InsertionFunc[tagged],
			ranged: sorting.InsertionRange[int],
			stable: true,
		},
		{
			name:   "Merge",
			plain:  sorting.Merge[int],
			byFunc: sorting.MergeFunc[tagged],
			ranged: sorting.MergeRange[int],
			stable: true,
		},
		{
			name:  "Quick",
			plain: sorting.Quick[int],
			byFunc: func(s []tagged, less order.Less[tagged]) error {
				return sorting.QuickFunc(s, less, sorting.WithSeed(7))
			},
			ranged: func(s []int, l, r int, less order.Less[int]) error {
				return sorting.QuickRange(s, l, r, less, sorting.WithSeed(7))
			},
		},
	}
}
