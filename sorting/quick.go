package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlsort/order"
)

// Quick sorts s in non-decreasing order using a freshly seeded pivot source.
func Quick[T constraints.Ordered](s []T) {
	q := quicksorter[T]{s: s, less: order.Natural[T], pick: DefaultOptions().sampler()}
	// the default sampler always yields in-range offsets, so sort cannot fail
	_ = q.sort(0, len(s))
}

// QuickFunc sorts s by less. It is not stable.
//
// Options control pivot sampling (WithSeed, WithSource, WithPivot).
// Errors:
//   - ErrNilLess         — less is nil.
//   - ErrOptionViolation — an option is invalid, or a WithPivot sampler
//     returned an offset outside the range. In the latter case s is left a
//     partially sorted permutation of its input.
func QuickFunc[T any](s []T, less order.Less[T], opts ...Option) error {
	return QuickRange(s, 0, len(s), less, opts...)
}

// QuickRange sorts s[left:right] by less.
func QuickRange[T any](s []T, left, right int, less order.Less[T], opts ...Option) error {
	if err := prepare(s, left, right, less); err != nil {
		return err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	q := quicksorter[T]{s: s, less: less, pick: o.sampler()}

	return q.sort(left, right)
}

// quicksorter carries the borrowed slice and collaborators through the
// partition loop so that only range bounds travel between calls.
type quicksorter[T any] struct {
	s    []T
	less order.Less[T]
	pick func(n int) int
}

// sort orders [lo, hi). It recurses into the smaller side of each split and
// loops on the larger one, which bounds stack depth by log2(hi-lo).
func (q *quicksorter[T]) sort(lo, hi int) error {
	for hi-lo > 1 {
		j, err := q.partition(lo, hi)
		if err != nil {
			return err
		}
		// lo <= j < hi-1: both [lo, j+1) and [j+1, hi) are non-empty and
		// strictly smaller than [lo, hi).
		split := j + 1
		if split-lo < hi-split {
			if err = q.sort(lo, split); err != nil {
				return err
			}
			lo = split
		} else {
			if err = q.sort(split, hi); err != nil {
				return err
			}
			hi = split
		}
	}

	return nil
}

// partition rearranges [lo, hi), hi-lo >= 2, around a randomly sampled pivot
// value and returns j such that every element of [lo, j] is not greater than
// the pivot and every element of [j+1, hi) is not less than it.
//
// The sampled element is first moved to lo. With the pivot in the first slot
// the left cursor stops at lo on the first scan, so the cursors can only
// meet at j <= hi-2. Both cursors also stop on elements equal to the pivot,
// which swaps duplicates across the split and keeps all-equal ranges
// balanced instead of peeling off one element per call.
func (q *quicksorter[T]) partition(lo, hi int) (int, error) {
	s, less := q.s, q.less

	n := hi - lo
	off := q.pick(n)
	if off < 0 || off >= n {
		return 0, fmt.Errorf("%w: pivot offset %d outside [0, %d)", ErrOptionViolation, off, n)
	}
	s[lo], s[lo+off] = s[lo+off], s[lo]
	pivot := s[lo]

	i, j := lo-1, hi
	for {
		// advance left cursor past elements strictly less than the pivot
		i++
		for less(s[i], pivot) {
			i++
		}
		// retreat right cursor past elements strictly greater than the pivot
		j--
		for less(pivot, s[j]) {
			j--
		}
		if i >= j {
			return j, nil
		}
		s[i], s[j] = s[j], s[i]
	}
}
