package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/config"
	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/momentum"
)

// solution pairs a variant name with its search result.
type solution struct {
	Variant string
	Result  dijkstra.Result
}

// run parses args on top of the environment config, solves every variant
// and writes one "<variant>: <cost>" line per variant to stdout.
func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("heatloss", flag.ContinueOnError)
	fs.SetOutput(stderr)
	input := fs.String("i", cfg.InputPath, "path to the digit grid")
	variants := fs.String("variants", "", "comma-separated momentum variants (default from "+config.EnvVariants+")")
	verbose := fs.Bool("v", false, "log at debug level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *variants != "" {
		if cfg.Variants, err = config.SplitVariants(*variants); err != nil {
			return err
		}
	}
	if *verbose {
		cfg.LogLevel = log.DebugLevel
	}
	logger := newLogger(stderr, cfg.LogLevel)

	f, err := os.Open(*input)
	if err != nil {
		return fmt.Errorf("open grid: %w", err)
	}
	defer f.Close()

	g, err := gridgraph.ParseDigits(f)
	if err != nil {
		return err
	}
	logger.WithFields(log.Fields{"path": *input, "rows": g.Rows(), "cols": g.Cols()}).Info("grid loaded")

	sols, err := solve(g, cfg.Variants, logger)
	if err != nil {
		return err
	}

	return report(stdout, sols)
}

// solve runs one search per variant concurrently over the shared grid.
// Results keep the order of variants.
func solve(g *gridgraph.Grid, variants []string, logger log.FieldLogger) ([]solution, error) {
	policies := make([]momentum.Policy, len(variants))
	for i, name := range variants {
		p, err := momentum.ByName(name)
		if err != nil {
			return nil, err
		}
		policies[i] = p
	}

	sols := make([]solution, len(variants))
	var eg errgroup.Group
	for i := range variants {
		i := i
		eg.Go(func() error {
			entry := logger.WithField("variant", variants[i])
			res, err := dijkstra.MinimumCost(g, policies[i], dijkstra.WithReturnPath(), dijkstra.WithLogger(entry))
			if err != nil {
				return fmt.Errorf("variant %s: %w", variants[i], err)
			}
			sols[i] = solution{Variant: variants[i], Result: res}
			entry.WithFields(log.Fields{
				"cost":     res.Cost,
				"segments": len(momentum.Runs(res.Path)),
				"expanded": res.Expanded,
			}).Info("variant solved")

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return sols, nil
}

// report prints the solutions, one per line.
func report(w io.Writer, sols []solution) error {
	for _, s := range sols {
		var err error
		if s.Result.Reachable {
			_, err = fmt.Fprintf(w, "%s: %d\n", s.Variant, s.Result.Cost)
		} else {
			_, err = fmt.Fprintf(w, "%s: unreachable\n", s.Variant)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
