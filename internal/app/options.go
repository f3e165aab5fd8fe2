package app

import (
	"log/slog"

	"forestfire/internal/ui"
)

// Options configures the viewer window.
type Options struct {
	Scale          int
	StepsPerSecond int
	PanelWidth     int
	Seed           int64
	Logger         *slog.Logger
}

const defaultPanelWidth = 220

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.PanelWidth <= 0 {
		o.PanelWidth = defaultPanelWidth
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// WindowSize returns the window dimensions for a rows*cols grid.
func (o Options) WindowSize(rows, cols int) (int, int) {
	o = o.withDefaults()
	return cols*o.Scale + o.PanelWidth, rows*o.Scale + 2*ui.BarHeight
}
