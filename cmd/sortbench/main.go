// Command sortbench generates an input, runs the lvlsort algorithms on
// copies of it, verifies every output and logs the timings.
//
// Usage:
//
//	sortbench -n 100000 -dist few -algos merge,quick
//	sortbench -n 2000 -dist reversed -v
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.WithError(err).Fatal("bad flags")
	}
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	results, err := run(ctx, cfg, log)
	stop()
	if err != nil {
		log.WithError(err).Fatal("benchmark failed")
	}
	for _, r := range results {
		entry := log.WithFields(logrus.Fields{"algorithm": r.Algorithm, "n": r.N})
		if r.Skipped {
			entry.Info("skipped")

			continue
		}
		entry.WithField("elapsed", r.Elapsed).Info("sorted")
	}
}
