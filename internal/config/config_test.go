package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Grid.Rows != 100 || cfg.Grid.Cols != 100 {
		t.Fatalf("grid = %+v", cfg.Grid)
	}
	if cfg.Sweep.DensityStep != 10 || cfg.Sweep.Trials != 10 || cfg.Sweep.Strategy != "exact" {
		t.Fatalf("sweep = %+v", cfg.Sweep)
	}
	if cfg.Output.CSV != "results.csv" || cfg.Output.Chart != "chart.png" {
		t.Fatalf("output = %+v", cfg.Output)
	}
	if err := cfg.Experiment().Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
}

func TestLoadOverlaysOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	data := "grid:\n  rows: 40\nsweep:\n  strategy: sequential\n  seed: 77\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Rows != 40 || cfg.Grid.Cols != 100 {
		t.Fatalf("grid = %+v", cfg.Grid)
	}
	if cfg.Sweep.Strategy != "sequential" || cfg.Sweep.Trials != 10 {
		t.Fatalf("sweep = %+v", cfg.Sweep)
	}
	if got := cfg.Experiment().Seed; got != 77 {
		t.Fatalf("seed = %d, want 77", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFlagsOverrideOnlyWhenSet(t *testing.T) {
	cfg := Default()
	cfg.Sweep.Trials = 25 // pretend this came from a config file

	flagged := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagged.Bind(fs)
	if err := fs.Parse([]string{"--rows", "64", "--strategy=sequential", "--chart", ""}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg.Overlay(fs, flagged)

	if cfg.Grid.Rows != 64 || cfg.View.Rows != 64 {
		t.Fatalf("rows not applied: %+v %+v", cfg.Grid, cfg.View)
	}
	if cfg.Sweep.Strategy != "sequential" {
		t.Fatalf("strategy = %q", cfg.Sweep.Strategy)
	}
	if cfg.Output.Chart != "" {
		t.Fatalf("chart = %q, want disabled", cfg.Output.Chart)
	}
	if cfg.Sweep.Trials != 25 {
		t.Fatalf("unset flag clobbered trials: %d", cfg.Sweep.Trials)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Sweep.Seed = 9
	cfg.Output.Dir = t.TempDir()
	path := cfg.OutputPath("config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *cfg {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", loaded, cfg)
	}
	if cfg.OutputPath("") != "" {
		t.Fatal("empty output name should stay empty")
	}
}
