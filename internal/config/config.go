// Package config loads sweep and viewer settings from embedded defaults, an
// optional YAML file and command-line flags, in that order of precedence.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"forestfire/internal/experiment"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the command-line tools.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Sweep  SweepConfig  `yaml:"sweep"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
	View   ViewConfig   `yaml:"view"`
}

// GridConfig holds the sweep grid dimensions.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SweepConfig holds the density sweep parameters.
type SweepConfig struct {
	DensityStep int    `yaml:"density_step"` // Percent between sweep points
	Trials      int    `yaml:"trials"`       // Trials averaged per density
	Strategy    string `yaml:"strategy"`     // exact | sequential
	Seed        int64  `yaml:"seed"`         // 0 = time-based
	Workers     int    `yaml:"workers"`      // 0 = runtime.NumCPU()
}

// OutputConfig names the artifacts written by the sweep command.
type OutputConfig struct {
	Dir   string `yaml:"dir"`
	CSV   string `yaml:"csv"`   // Empty disables the CSV file
	Chart string `yaml:"chart"` // Empty disables the chart
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
}

// ViewConfig holds the interactive viewer settings.
type ViewConfig struct {
	Rows           int `yaml:"rows"`
	Cols           int `yaml:"cols"`
	Density        int `yaml:"density"`
	Scale          int `yaml:"scale"`
	TPS            int `yaml:"tps"`
	StepsPerSecond int `yaml:"steps_per_second"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the embedded defaults and overlays the YAML file at path, if
// any. Only keys present in the file replace defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Experiment converts the sweep settings for the driver. A zero seed is
// replaced with the current time so unseeded runs differ.
func (c *Config) Experiment() experiment.Config {
	seed := c.Sweep.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return experiment.Config{
		Rows:        c.Grid.Rows,
		Cols:        c.Grid.Cols,
		DensityStep: c.Sweep.DensityStep,
		Trials:      c.Sweep.Trials,
		Strategy:    c.Sweep.Strategy,
		Seed:        seed,
		Workers:     c.Sweep.Workers,
	}
}

// OutputPath joins name onto the output directory. Empty names stay empty.
func (c *Config) OutputPath(name string) string {
	if name == "" {
		return ""
	}
	return filepath.Join(c.Output.Dir, name)
}

// Bind registers flags for the settings on fs, writing parsed values into c.
// Bind a scratch Config and use Overlay to copy only the flags a user set.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Grid.Rows, "rows", c.Grid.Rows, "grid rows")
	fs.IntVar(&c.Grid.Cols, "cols", c.Grid.Cols, "grid columns")
	fs.IntVar(&c.Sweep.DensityStep, "density-step", c.Sweep.DensityStep, "density increment in percent")
	fs.IntVar(&c.Sweep.Trials, "trials", c.Sweep.Trials, "trials averaged per density")
	fs.StringVar(&c.Sweep.Strategy, "strategy", c.Sweep.Strategy, "seeding strategy (exact|sequential)")
	fs.Int64Var(&c.Sweep.Seed, "seed", c.Sweep.Seed, "RNG seed (0 = time-based)")
	fs.IntVar(&c.Sweep.Workers, "workers", c.Sweep.Workers, "worker goroutines (0 = one per CPU)")
	fs.StringVar(&c.Output.Dir, "output-dir", c.Output.Dir, "directory for CSV, chart and config snapshot")
	fs.StringVar(&c.Output.CSV, "csv", c.Output.CSV, "CSV file name (empty = skip)")
	fs.StringVar(&c.Output.Chart, "chart", c.Output.Chart, "chart PNG file name (empty = skip)")
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "log level (debug|info|warn|error)")
	fs.StringVar(&c.Log.Format, "log-format", c.Log.Format, "log format (text|json)")
	fs.IntVar(&c.View.Density, "density", c.View.Density, "viewer tree density in percent")
	fs.IntVar(&c.View.Scale, "scale", c.View.Scale, "viewer pixel scale")
	fs.IntVar(&c.View.TPS, "tps", c.View.TPS, "viewer ticks per second")
	fs.IntVar(&c.View.StepsPerSecond, "steps-per-second", c.View.StepsPerSecond, "viewer fire steps per second (0 = one per tick)")
}

var overlays = map[string]func(dst, src *Config){
	"rows":             func(d, s *Config) { d.Grid.Rows, d.View.Rows = s.Grid.Rows, s.Grid.Rows },
	"cols":             func(d, s *Config) { d.Grid.Cols, d.View.Cols = s.Grid.Cols, s.Grid.Cols },
	"density-step":     func(d, s *Config) { d.Sweep.DensityStep = s.Sweep.DensityStep },
	"trials":           func(d, s *Config) { d.Sweep.Trials = s.Sweep.Trials },
	"strategy":         func(d, s *Config) { d.Sweep.Strategy = s.Sweep.Strategy },
	"seed":             func(d, s *Config) { d.Sweep.Seed = s.Sweep.Seed },
	"workers":          func(d, s *Config) { d.Sweep.Workers = s.Sweep.Workers },
	"output-dir":       func(d, s *Config) { d.Output.Dir = s.Output.Dir },
	"csv":              func(d, s *Config) { d.Output.CSV = s.Output.CSV },
	"chart":            func(d, s *Config) { d.Output.Chart = s.Output.Chart },
	"log-level":        func(d, s *Config) { d.Log.Level = s.Log.Level },
	"log-format":       func(d, s *Config) { d.Log.Format = s.Log.Format },
	"density":          func(d, s *Config) { d.View.Density = s.View.Density },
	"scale":            func(d, s *Config) { d.View.Scale = s.View.Scale },
	"tps":              func(d, s *Config) { d.View.TPS = s.View.TPS },
	"steps-per-second": func(d, s *Config) { d.View.StepsPerSecond = s.View.StepsPerSecond },
}

// Overlay copies into c the value of every flag explicitly set on fs, read
// from src, the Config the flags were bound to.
func (c *Config) Overlay(fs *pflag.FlagSet, src *Config) {
	fs.Visit(func(f *pflag.Flag) {
		if apply, ok := overlays[f.Name]; ok {
			apply(c, src)
		}
	})
}
