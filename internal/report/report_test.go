package report

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"forestfire/internal/experiment"
)

func sampleResult() *experiment.Result {
	cfg := experiment.DefaultConfig()
	cfg.Rows, cfg.Cols = 10, 10
	points := []experiment.Point{
		{Density: 20, BurnedPercent: 1, Trials: 3},
		{Density: 40, BurnedPercent: 4, StdDev: 1.5, Trials: 3},
		{Density: 60, BurnedPercent: 45, StdDev: 9, Trials: 2, Skipped: 1},
	}
	opt, _ := experiment.FindOptimum(points, cfg.TotalCells())
	return &experiment.Result{Config: cfg, Points: points, Optimum: opt}
}

func TestRowsMarkOptimum(t *testing.T) {
	rows := Rows(sampleResult())
	if len(rows) != 3 {
		t.Fatalf("got %d rows", len(rows))
	}
	if !rows[1].Optimal || rows[0].Optimal || rows[2].Optimal {
		t.Fatalf("optimum flag misplaced: %+v", rows)
	}
	if rows[1].Surviving != 36 {
		t.Fatalf("surviving = %f, want 36", rows[1].Surviving)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleResult()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "density_pct,burned_pct,burned_stddev") {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "40,4,1.5,") || !strings.HasSuffix(lines[2], ",true") {
		t.Fatalf("optimum row = %q", lines[2])
	}
}

func TestPlotFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	if err := PlotFile(path, sampleResult()); err != nil {
		t.Fatalf("PlotFile: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("chart is not a PNG: %v", err)
	}
	if cfg.Width != chartWidth || cfg.Height != chartHeight {
		t.Fatalf("chart is %dx%d", cfg.Width, cfg.Height)
	}
}

func TestPlotWithoutPoints(t *testing.T) {
	res := sampleResult()
	res.Points = nil
	if err := Plot(&bytes.Buffer{}, res); !errors.Is(err, experiment.ErrNoData) {
		t.Fatalf("Plot error = %v", err)
	}
}
