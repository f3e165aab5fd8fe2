package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"forestfire/internal/experiment"
	"forestfire/internal/fire"
	"forestfire/internal/seed"
)

func newTrialCmd(e *env) *cobra.Command {
	var index int
	cmd := &cobra.Command{
		Use:   "trial <density>",
		Short: "Burn a single forest at the given density",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			density, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("density must be an integer percent: %w", err)
			}
			exp := e.cfg.Experiment()
			if err := exp.Validate(); err != nil {
				return err
			}
			s, err := seed.Lookup(exp.Strategy)
			if err != nil {
				return err
			}
			density = seed.ClampDensity(density)
			rec, err := experiment.RunTrial(exp, s, density, index)
			if errors.Is(err, fire.ErrEmptyForest) {
				fmt.Fprintf(cmd.OutOrStdout(), "density %d%%: no trees to ignite\n", density)
				return nil
			}
			if err != nil {
				return err
			}
			e.logger.Debug("trial complete", "density", density, "trial", index, "seed", exp.Seed)
			fmt.Fprintf(cmd.OutOrStdout(), "density %d%%: burned %.2f%% in %d steps\n", rec.Density, rec.BurnedPercent, rec.Steps)
			return nil
		},
	}
	cmd.Flags().IntVar(&index, "index", 0, "trial index mixed into the random stream")
	return cmd
}
