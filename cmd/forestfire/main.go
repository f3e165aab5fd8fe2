// Command forestfire runs forest-fire percolation sweeps and an interactive
// viewer for single burns.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"forestfire/internal/config"
	"forestfire/internal/logging"
)

// env carries the resolved configuration and logger to subcommands.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	e := &env{}
	flags := config.Default()
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "forestfire",
		Short: "Forest-fire percolation experiments",
		Long: `forestfire plants trees on a grid at a given density, ignites one tree
and lets the fire spread to orthogonal neighbours until it dies out.

The sweep command repeats this over a range of densities, averages the
burned share and reports the density that leaves the most trees standing.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg.Overlay(cmd.Flags(), flags)
			e.cfg = cfg
			e.logger = logging.NewLogger(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file overlaid on the defaults")
	flags.Bind(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newSweepCmd(e),
		newTrialCmd(e),
		newStrategiesCmd(),
		newViewCmd(e),
	)
	return rootCmd
}
