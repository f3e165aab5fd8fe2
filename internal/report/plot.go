package report

import (
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"forestfire/internal/experiment"
)

const (
	chartWidth  = 1600
	chartHeight = 1200
)

// percentTicks returns 0%, 10%, ... 100%.
func percentTicks() []chart.Tick {
	ticks := make([]chart.Tick, 0, 11)
	for v := 0.0; v <= 100; v += 10 {
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%.0f%%", v)})
	}
	return ticks
}

// Chart builds the density/burned line chart with the optimum annotated.
func Chart(res *experiment.Result) (*chart.Chart, error) {
	if len(res.Points) == 0 {
		return nil, experiment.ErrNoData
	}
	xs, ys := res.Series()
	burnColor := drawing.Color{R: 220, G: 40, B: 40, A: 255}

	optimum := res.Optimum
	var optBurned float64
	for _, p := range res.Points {
		if p.Density == optimum.Density {
			optBurned = p.BurnedPercent
		}
	}

	graph := chart.Chart{
		Title:  "Forest burn chart",
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 60, Left: 20, Right: 40, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "Tree density %",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
			Ticks: percentTicks(),
		},
		YAxis: chart.YAxis{
			Name:  "Burned %",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
			Ticks: percentTicks(),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "burned",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: burnColor,
					StrokeWidth: 3,
					DotColor:    burnColor,
					DotWidth:    5,
				},
			},
			chart.AnnotationSeries{
				Annotations: []chart.Value2{{
					XValue: float64(optimum.Density),
					YValue: optBurned,
					Label:  fmt.Sprintf("optimal %d%% (%.0f trees left)", optimum.Density, optimum.Surviving),
				}},
			},
		},
	}
	return &graph, nil
}

// Plot renders the chart as PNG to w.
func Plot(w io.Writer, res *experiment.Result) error {
	graph, err := Chart(res)
	if err != nil {
		return err
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

// PlotFile renders the chart as PNG to path.
func PlotFile(path string, res *experiment.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Plot(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
