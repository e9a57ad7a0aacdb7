package sorting

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlsort/order"
)

// Bubble sorts s in non-decreasing order.
func Bubble[T constraints.Ordered](s []T) {
	bubble(s, 0, len(s), order.Natural[T])
}

// BubbleFunc sorts s by less. It is stable.
func BubbleFunc[T any](s []T, less order.Less[T]) error {
	return BubbleRange(s, 0, len(s), less)
}

// BubbleRange sorts s[left:right] by less.
func BubbleRange[T any](s []T, left, right int, less order.Less[T]) error {
	if err := prepare(s, left, right, less); err != nil {
		return err
	}
	bubble(s, left, right, less)

	return nil
}

// bubble runs passes over the unsorted prefix [lo, end). Each pass carries
// the largest remaining element to end-1, so end shrinks by one per pass.
// A pass without swaps proves the prefix sorted.
func bubble[T any](s []T, lo, hi int, less order.Less[T]) {
	for end := hi; end-lo > 1; end-- {
		swapped := false
		for i := lo; i+1 < end; i++ {
			// swap only strict inversions; equal neighbours keep their order
			if less(s[i+1], s[i]) {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}
