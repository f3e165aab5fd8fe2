package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"forestfire/internal/experiment"
	"forestfire/internal/report"
)

const snapshotName = "config.yaml"

func newSweepCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Sweep tree densities and find the one that loses the fewest trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd.Context(), e, cmd.OutOrStdout())
		},
	}
}

func runSweep(ctx context.Context, e *env, out io.Writer) error {
	exp := e.cfg.Experiment()
	res, err := experiment.Run(ctx, exp, e.logger)
	if err != nil {
		return err
	}

	if dir := e.cfg.Output.Dir; dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		snapshot := *e.cfg
		snapshot.Sweep.Seed = exp.Seed
		if err := snapshot.WriteYAML(e.cfg.OutputPath(snapshotName)); err != nil {
			return err
		}
	}
	if path := e.cfg.OutputPath(e.cfg.Output.CSV); path != "" {
		if err := report.WriteCSVFile(path, res); err != nil {
			return err
		}
		e.logger.Info("results written", "path", path)
	}
	if path := e.cfg.OutputPath(e.cfg.Output.Chart); path != "" {
		if err := report.PlotFile(path, res); err != nil {
			return err
		}
		e.logger.Info("chart generated", "path", path)
	}

	fmt.Fprintf(out, "%8s %9s %8s %7s\n", "density", "burned", "stddev", "trials")
	for _, p := range res.Points {
		fmt.Fprintf(out, "%7d%% %8.2f%% %8.2f %7d\n", p.Density, p.BurnedPercent, p.StdDev, p.Trials)
	}
	fmt.Fprintf(out, "optimal density: %d%% (%.0f trees survive)\n", res.Optimum.Density, res.Optimum.Surviving)
	return nil
}
