package sorting

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/lvlsort/order"
)

// Sentinel errors for sorting entry points.
var (
	// ErrInvalidRange is returned when [left, right) is not inside the slice.
	ErrInvalidRange = order.ErrInvalidRange

	// ErrNilLess is returned when a nil comparator is supplied.
	ErrNilLess = order.ErrNilLess

	// ErrOptionViolation is returned when an invalid Option is supplied or a
	// custom pivot sampler yields an offset outside the active range.
	ErrOptionViolation = errors.New("sorting: invalid option supplied")
)

// Option configures QuickFunc and QuickRange via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the sort is invoked.
type Option func(*Options)

// Options holds the pivot-sampling collaborators of QuickSort.
type Options struct {
	// Source drives uniform pivot sampling when Pivot is nil.
	Source rand.Source

	// Pivot, if set, replaces Source. It receives the length n > 1 of the
	// active range and must return an offset in [0, n).
	Pivot func(n int) int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options backed by a fresh PCG source seeded from
// the global generator.
func DefaultOptions() Options {
	return Options{
		Source: rand.NewPCG(rand.Uint64(), rand.Uint64()),
	}
}

// WithSeed makes pivot sampling deterministic.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Source = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}
}

// WithSource installs a caller-owned random source.
// A nil source is an ErrOptionViolation.
func WithSource(src rand.Source) Option {
	return func(o *Options) {
		if src == nil {
			o.err = fmt.Errorf("%w: nil random source", ErrOptionViolation)

			return
		}
		o.Source = src
	}
}

// WithPivot installs a custom pivot sampler, e.g. for adversarial tests.
// A nil sampler is an ErrOptionViolation.
func WithPivot(pick func(n int) int) Option {
	return func(o *Options) {
		if pick == nil {
			o.err = fmt.Errorf("%w: nil pivot sampler", ErrOptionViolation)

			return
		}
		o.Pivot = pick
	}
}

// buildOptions applies opts over DefaultOptions and returns the recorded error, if any.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// sampler returns the pivot offset function described by o.
func (o Options) sampler() func(n int) int {
	if o.Pivot != nil {
		return o.Pivot
	}
	r := rand.New(o.Source)

	return r.IntN
}

// prepare validates the common arguments of every XRange entry point.
func prepare[T any](s []T, left, right int, less order.Less[T]) error {
	if less == nil {
		return ErrNilLess
	}

	return order.CheckRange(len(s), left, right)
}
