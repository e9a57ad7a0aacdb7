package search

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlsort/order"
)

// NotFound is returned when no element matches.
const NotFound = -1

// Sentinel errors for comparator-based lookups.
var (
	// ErrNilLess is returned when a nil comparator is supplied.
	ErrNilLess = order.ErrNilLess
)

// Linear scans s from index 0 and returns the index of the first element
// equal to target, or NotFound.
func Linear[T comparable](s []T, target T) int {
	for i, v := range s {
		if v == target {
			return i
		}
	}

	return NotFound
}

// LinearFunc returns the index of the first element satisfying match, or
// NotFound. A nil match finds nothing.
func LinearFunc[T any](s []T, match func(T) bool) int {
	if match == nil {
		return NotFound
	}
	for i, v := range s {
		if match(v) {
			return i
		}
	}

	return NotFound
}

// Binary returns the leftmost index of target in the non-decreasing slice s,
// or NotFound.
func Binary[T constraints.Ordered](s []T, target T) int {
	return binary(s, target, order.Natural[T])
}

// BinaryFunc is Binary under a caller ordering. Elements a and b are equal
// when neither is less than the other.
func BinaryFunc[T any](s []T, target T, less order.Less[T]) (int, error) {
	if less == nil {
		return NotFound, ErrNilLess
	}

	return binary(s, target, less), nil
}

// binary narrows [lo, hi) to the first position whose element is not less
// than target, then checks that element for equality.
func binary[T any](s []T, target T, less order.Less[T]) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if less(s[mid], target) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(s) && !less(target, s[lo]) {
		return lo
	}

	return NotFound
}

// Ternary returns an index of target in the non-decreasing slice s, or
// NotFound. With duplicates any matching index may be returned.
func Ternary[T constraints.Ordered](s []T, target T) int {
	lo, hi := 0, len(s)-1 // inclusive bounds
	for lo <= hi {
		third := (hi - lo) / 3
		m1, m2 := lo+third, hi-third
		switch {
		case s[m1] == target:
			return m1
		case s[m2] == target:
			return m2
		case target < s[m1]:
			hi = m1 - 1
		case target > s[m2]:
			lo = m2 + 1
		default:
			lo, hi = m1+1, m2-1
		}
	}

	return NotFound
}
