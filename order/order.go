package order

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors shared by every range- or comparator-based entry point.
var (
	// ErrInvalidRange indicates a [left, right) range outside the sequence
	// bounds or with left > right.
	ErrInvalidRange = errors.New("order: invalid range")

	// ErrNilLess indicates a nil comparator was supplied.
	ErrNilLess = errors.New("order: less function is nil")
)

// Less reports whether a sorts strictly before b.
type Less[T any] func(a, b T) bool

// Natural is the ordering induced by the < operator.
func Natural[T constraints.Ordered](a, b T) bool {
	return a < b
}

// Reverse returns the ordering opposite to less.
// Reverse(nil) is nil, so callers still get ErrNilLess downstream.
func Reverse[T any](less Less[T]) Less[T] {
	if less == nil {
		return nil
	}

	return func(a, b T) bool { return less(b, a) }
}

// By orders values of T by the key extracted with key.
func By[T any, K constraints.Ordered](key func(T) K) Less[T] {
	if key == nil {
		return nil
	}

	return func(a, b T) bool { return key(a) < key(b) }
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[T constraints.Ordered](s []T) bool {
	return IsSortedFunc(s, Natural[T])
}

// IsSortedFunc reports whether s is non-decreasing under less.
// A nil less reports false for sequences of two or more elements.
func IsSortedFunc[T any](s []T, less Less[T]) bool {
	if len(s) < 2 {
		return true
	}
	if less == nil {
		return false
	}
	for i := 1; i < len(s); i++ {
		if less(s[i], s[i-1]) {
			return false
		}
	}

	return true
}

// CheckRange validates the half-open range [left, right) against a sequence
// of length n.
func CheckRange(n, left, right int) error {
	if left < 0 || right > n || left > right {
		return fmt.Errorf("%w: [%d, %d) over length %d", ErrInvalidRange, left, right, n)
	}

	return nil
}
