package experiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"forestfire/internal/fire"
	"forestfire/internal/seed"
)

type job struct {
	density int
	trial   int
}

type outcome struct {
	rec     Record
	skipped bool
}

// Run executes cfg.Trials trials at every density of the sweep on a pool of
// workers and reduces them to a Result. Each worker owns the grids it builds;
// records are merged only after every worker has finished. Cancelling ctx
// stops dispatching and returns ctx's error.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seeder, err := seed.Lookup(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	densities := Densities(cfg.DensityStep)

	logger.Info("starting sweep",
		"rows", cfg.Rows,
		"cols", cfg.Cols,
		"densities", len(densities),
		"trials", cfg.Trials,
		"strategy", cfg.Strategy,
		"seed", cfg.Seed,
		"workers", workers,
	)

	jobs := make(chan job)
	results := make(chan outcome)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for _, d := range densities {
			for trial := 0; trial < cfg.Trials; trial++ {
				select {
				case jobs <- job{density: d, trial: trial}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
		}
		return nil
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for j := range jobs {
				rec, err := RunTrial(cfg, seeder, j.density, j.trial)
				out := outcome{rec: rec}
				if errors.Is(err, fire.ErrEmptyForest) {
					out = outcome{rec: Record{Density: j.density, Trial: j.trial}, skipped: true}
				} else if err != nil {
					return fmt.Errorf("density %d trial %d: %w", j.density, j.trial, err)
				}
				select {
				case results <- out:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(results)
	}()

	var records []Record
	skipped := map[int]int{}
	for out := range results {
		if out.skipped {
			skipped[out.rec.Density]++
			logger.Debug("skipped trial without trees", "density", out.rec.Density, "trial", out.rec.Trial)
			continue
		}
		records = append(records, out.rec)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	points := Aggregate(records, skipped)
	for _, p := range points {
		logger.Info("density point",
			"density", p.Density,
			"burned_pct", p.BurnedPercent,
			"stddev", p.StdDev,
			"mean_steps", p.MeanSteps,
			"trials", p.Trials,
			"skipped", p.Skipped,
		)
	}
	opt, err := FindOptimum(points, cfg.TotalCells())
	if err != nil {
		return nil, err
	}
	logger.Info("optimal density", "density", opt.Density, "surviving", opt.Surviving)

	return &Result{Config: cfg, Points: points, Optimum: opt}, nil
}
