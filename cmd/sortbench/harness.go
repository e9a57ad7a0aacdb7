package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlsort/order"
	"github.com/katalvlaran/lvlsort/search"
	"github.com/katalvlaran/lvlsort/sorting"
)

// ErrVerification is returned when a sort output breaks the order or the
// permutation invariant.
var ErrVerification = errors.New("sortbench: output verification failed")

// algorithm is one runnable sort.
type algorithm struct {
	name      string
	quadratic bool
	run       func(s []int, seed uint64) error
}

var registry = []algorithm{
	{name: "bubble", quadratic: true, run: func(s []int, _ uint64) error {
		return sorting.BubbleFunc(s, order.Natural[int])
	}},
	{name: "selection", quadratic: true, run: func(s []int, _ uint64) error {
		return sorting.SelectionFunc(s, order.Natural[int])
	}},
	{name: "insertion", quadratic: true, run: func(s []int, _ uint64) error {
		return sorting.InsertionFunc(s, order.Natural[int])
	}},
	{name: "merge", run: func(s []int, _ uint64) error {
		return sorting.MergeFunc(s, order.Natural[int])
	}},
	{name: "quick", run: func(s []int, seed uint64) error {
		return sorting.QuickFunc(s, order.Natural[int], sorting.WithSeed(seed))
	}},
}

// algorithmNames lists registry names in order.
func algorithmNames() []string {
	names := make([]string, len(registry))
	for i, a := range registry {
		names[i] = a.name
	}

	return names
}

// lookup finds an algorithm by name.
func lookup(name string) (algorithm, bool) {
	i := search.LinearFunc(registry, func(a algorithm) bool { return a.name == name })
	if i == search.NotFound {
		return algorithm{}, false
	}

	return registry[i], true
}

// Result is the outcome of one trial.
type Result struct {
	Algorithm string
	N         int
	Elapsed   time.Duration
	Skipped   bool
}

// generate builds the input described by cfg.
func generate(cfg Config) []int {
	r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed+1))
	s := make([]int, cfg.N)
	for i := range s {
		switch cfg.Dist {
		case Sorted:
			s[i] = i
		case Reversed:
			s[i] = cfg.N - i
		case Equal:
			s[i] = 42
		case FewKeys:
			s[i] = r.IntN(4)
		default:
			s[i] = r.IntN(max(cfg.N, 1))
		}
	}

	return s
}

// run executes every configured algorithm on its own copy of one input and
// verifies each output against slices.Sort. Results keep cfg.Algorithms order.
func run(ctx context.Context, cfg Config, log logrus.FieldLogger) ([]Result, error) {
	input := generate(cfg)
	want := slices.Clone(input)
	slices.Sort(want)

	log.WithFields(logrus.Fields{
		"n":    cfg.N,
		"dist": cfg.Dist,
		"seed": cfg.Seed,
	}).Info("input generated")

	algos := make([]algorithm, len(cfg.Algorithms))
	for i, name := range cfg.Algorithms {
		algo, ok := lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown algorithm %q", ErrBadConfig, name)
		}
		algos[i] = algo
	}

	results := make([]Result, len(algos))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i, algo := range algos {
		entry := log.WithField("algorithm", algo.name)

		if algo.quadratic && cfg.QuadraticMax > 0 && cfg.N > cfg.QuadraticMax {
			entry.WithField("limit", cfg.QuadraticMax).Warn("skipping quadratic sort")
			results[i] = Result{Algorithm: algo.name, N: cfg.N, Skipped: true}

			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			work := slices.Clone(input)

			start := time.Now()
			if err := algo.run(work, cfg.Seed); err != nil {
				return fmt.Errorf("sortbench: %s: %w", algo.name, err)
			}
			elapsed := time.Since(start)

			if !order.IsSorted(work) {
				return fmt.Errorf("%w: %s output is not ordered", ErrVerification, algo.name)
			}
			if !slices.Equal(work, want) {
				return fmt.Errorf("%w: %s output is not a permutation of the input", ErrVerification, algo.name)
			}

			results[i] = Result{Algorithm: algo.name, N: cfg.N, Elapsed: elapsed}
			entry.WithField("elapsed", elapsed).Debug("trial finished")

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
