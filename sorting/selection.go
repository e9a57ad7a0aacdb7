package sorting

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlsort/order"
)

// Selection sorts s in non-decreasing order.
func Selection[T constraints.Ordered](s []T) {
	selection(s, 0, len(s), order.Natural[T])
}

// SelectionFunc sorts s by less. It is not stable.
func SelectionFunc[T any](s []T, less order.Less[T]) error {
	return SelectionRange(s, 0, len(s), less)
}

// SelectionRange sorts s[left:right] by less.
func SelectionRange[T any](s []T, left, right int, less order.Less[T]) error {
	if err := prepare(s, left, right, less); err != nil {
		return err
	}
	selection(s, left, right, less)

	return nil
}

func selection[T any](s []T, lo, hi int, less order.Less[T]) {
	for p := lo; p < hi-1; p++ {
		// leftmost minimum of [p, hi): the candidate moves only on strict less
		m := p
		for i := p + 1; i < hi; i++ {
			if less(s[i], s[m]) {
				m = i
			}
		}
		s[p], s[m] = s[m], s[p]
	}
}
