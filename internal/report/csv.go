// Package report turns sweep results into CSV tables and PNG charts.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"forestfire/internal/experiment"
)

// Row is one CSV line: an averaged density point.
type Row struct {
	Density       int     `csv:"density_pct"`
	BurnedPercent float64 `csv:"burned_pct"`
	StdDev        float64 `csv:"burned_stddev"`
	MeanSteps     float64 `csv:"mean_steps"`
	Trials        int     `csv:"trials"`
	Skipped       int     `csv:"skipped"`
	Surviving     float64 `csv:"surviving_trees"`
	Optimal       bool    `csv:"optimal"`
}

// Rows flattens a result into CSV rows in ascending density.
func Rows(res *experiment.Result) []Row {
	total := res.Config.TotalCells()
	rows := make([]Row, len(res.Points))
	for i, p := range res.Points {
		rows[i] = Row{
			Density:       p.Density,
			BurnedPercent: p.BurnedPercent,
			StdDev:        p.StdDev,
			MeanSteps:     p.MeanSteps,
			Trials:        p.Trials,
			Skipped:       p.Skipped,
			Surviving:     experiment.Surviving(p, total),
			Optimal:       p.Density == res.Optimum.Density,
		}
	}
	return rows
}

// WriteCSV writes the averaged series with a header line to w.
func WriteCSV(w io.Writer, res *experiment.Result) error {
	rows := Rows(res)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}

// WriteCSVFile writes the averaged series to path.
func WriteCSVFile(path string, res *experiment.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteCSV(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
