//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"forestfire/internal/app"
	"forestfire/internal/sims/forest"
)

func newViewCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Watch a single fire spread in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := e.cfg.View
			seedValue := e.cfg.Experiment().Seed
			world, err := forest.New(forest.Config{
				Rows:     v.Rows,
				Cols:     v.Cols,
				Density:  v.Density,
				Strategy: e.cfg.Sweep.Strategy,
				Seed:     seedValue,
			})
			if err != nil {
				return err
			}
			world.Reset(seedValue)

			opts := app.Options{Scale: v.Scale, StepsPerSecond: v.StepsPerSecond, Seed: seedValue, Logger: e.logger}
			game := app.New(world, opts)

			ebiten.SetWindowTitle("forestfire")
			ebiten.SetTPS(v.TPS)
			ebiten.SetWindowSize(opts.WindowSize(v.Rows, v.Cols))

			e.logger.Info("viewer started", "rows", v.Rows, "cols", v.Cols, "density", v.Density, "seed", seedValue)
			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
}
