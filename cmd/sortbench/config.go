package main

import (
	"errors"
	"flag"
	"fmt"
	"runtime"
	"strings"
)

// ErrBadConfig is returned for flag values the harness cannot run with.
var ErrBadConfig = errors.New("sortbench: invalid configuration")

// Distribution names the shape of the generated input.
type Distribution string

const (
	Random   Distribution = "random"
	Sorted   Distribution = "sorted"
	Reversed Distribution = "reversed"
	Equal    Distribution = "equal"
	FewKeys  Distribution = "few"
)

// Config holds the parsed command line.
type Config struct {
	N            int          // input length
	Seed         uint64       // input and pivot seed
	Dist         Distribution // input shape
	Algorithms   []string     // algorithm names to run, in order
	QuadraticMax int          // skip O(n²) sorts above this length (0 = never skip)
	Workers      int          // concurrent trials
	Verbose      bool         // debug logging
}

// parseConfig reads args (without the program name) into a Config.
func parseConfig(args []string) (Config, error) {
	fs := flag.NewFlagSet("sortbench", flag.ContinueOnError)

	var (
		cfg   Config
		dist  string
		algos string
	)
	fs.IntVar(&cfg.N, "n", 10_000, "number of elements to sort")
	fs.Uint64Var(&cfg.Seed, "seed", 1, "seed for input generation and quicksort pivots")
	fs.StringVar(&dist, "dist", string(Random), "input distribution: random, sorted, reversed, equal, few")
	fs.StringVar(&algos, "algos", strings.Join(algorithmNames(), ","), "comma-separated algorithms to run")
	fs.IntVar(&cfg.QuadraticMax, "quadratic-max", 50_000, "skip quadratic sorts above this size (0 disables the limit)")
	fs.IntVar(&cfg.Workers, "workers", runtime.GOMAXPROCS(0), "number of trials to run concurrently")
	fs.BoolVar(&cfg.Verbose, "v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	cfg.Dist = Distribution(dist)
	switch cfg.Dist {
	case Random, Sorted, Reversed, Equal, FewKeys:
	default:
		return Config{}, fmt.Errorf("%w: unknown distribution %q", ErrBadConfig, dist)
	}
	if cfg.N < 0 {
		return Config{}, fmt.Errorf("%w: n cannot be negative (%d)", ErrBadConfig, cfg.N)
	}
	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("%w: workers must be positive (%d)", ErrBadConfig, cfg.Workers)
	}
	if cfg.QuadraticMax < 0 {
		return Config{}, fmt.Errorf("%w: quadratic-max cannot be negative (%d)", ErrBadConfig, cfg.QuadraticMax)
	}

	for _, name := range strings.Split(algos, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := lookup(name); !ok {
			return Config{}, fmt.Errorf("%w: unknown algorithm %q", ErrBadConfig, name)
		}
		cfg.Algorithms = append(cfg.Algorithms, name)
	}
	if len(cfg.Algorithms) == 0 {
		return Config{}, fmt.Errorf("%w: no algorithms selected", ErrBadConfig)
	}

	return cfg, nil
}
