package sorting

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlsort/order"
)

// Insertion sorts s in non-decreasing order.
func Insertion[T constraints.Ordered](s []T) {
	insertion(s, 0, len(s), order.Natural[T])
}

// InsertionFunc sorts s by less. It is stable and runs in O(n) on
// already-sorted input.
func InsertionFunc[T any](s []T, less order.Less[T]) error {
	return InsertionRange(s, 0, len(s), less)
}

// InsertionRange sorts s[left:right] by less.
func InsertionRange[T any](s []T, left, right int, less order.Less[T]) error {
	if err := prepare(s, left, right, less); err != nil {
		return err
	}
	insertion(s, left, right, less)

	return nil
}

// insertion grows the sorted prefix [lo, i) one key at a time.
func insertion[T any](s []T, lo, hi int, less order.Less[T]) {
	for i := lo + 1; i < hi; i++ {
		key := s[i]
		j := i - 1
		// shift strictly greater elements one slot right
		for j >= lo && less(key, s[j]) {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}
