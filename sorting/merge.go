package sorting

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlsort/order"
)

// Merge sorts s in non-decreasing order.
func Merge[T constraints.Ordered](s []T) {
	mergeSort(s, 0, len(s), order.Natural[T])
}

// MergeFunc sorts s by less, keeping equal elements in their original
// relative order.
//
// Complexity:
//
//   - Time:   O(n log n) in every case
//   - Memory: O(n) for merge buffers, O(log n) stack
func MergeFunc[T any](s []T, less order.Less[T]) error {
	return MergeRange(s, 0, len(s), less)
}

// MergeRange sorts s[left:right] by less. Elements outside the range are
// never read or written.
func MergeRange[T any](s []T, left, right int, less order.Less[T]) error {
	if err := prepare(s, left, right, less); err != nil {
		return err
	}
	mergeSort(s, left, right, less)

	return nil
}

// mergeSort sorts [lo, hi). Depth is ⌈log2(hi-lo)⌉, so plain recursion is safe.
func mergeSort[T any](s []T, lo, hi int, less order.Less[T]) {
	// 1) Ranges of length 0 or 1 are sorted.
	if hi-lo < 2 {
		return
	}

	// 2) Split at the midpoint and sort each half independently.
	mid := lo + (hi-lo)/2
	mergeSort(s, lo, mid, less)
	mergeSort(s, mid, hi, less)

	// 3) Combine the sorted halves back into [lo, hi).
	merge(s, lo, mid, hi, less)
}

// merge combines the sorted runs [lo, mid) and [mid, hi).
// Both runs are copied into buffers owned by this call; the buffers become
// garbage on return, so the live scratch space never exceeds hi-lo elements.
func merge[T any](s []T, lo, mid, hi int, less order.Less[T]) {
	left := append([]T(nil), s[lo:mid]...)
	right := append([]T(nil), s[mid:hi]...)

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		// take from right only when strictly smaller; ties go left (stability)
		if less(right[j], left[i]) {
			s[k] = right[j]
			j++
		} else {
			s[k] = left[i]
			i++
		}
		k++
	}

	// drain whichever buffer is left over
	k += copy(s[k:], left[i:])
	copy(s[k:], right[j:])
}
