package app

import (
	"testing"

	"forestfire/internal/ui"
)

func TestWindowSize(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		rows  int
		cols  int
		wantW int
		wantH int
	}{
		{name: "defaults", opts: Options{}, rows: 10, cols: 20, wantW: 20 + defaultPanelWidth, wantH: 10 + 2*ui.BarHeight},
		{name: "scaled", opts: Options{Scale: 4, PanelWidth: 100}, rows: 120, cols: 160, wantW: 740, wantH: 480 + 2*ui.BarHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.opts.WindowSize(tt.rows, tt.cols)
			if w != tt.wantW || h != tt.wantH {
				t.Fatalf("WindowSize = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	if o.Scale != 1 || o.PanelWidth != defaultPanelWidth || o.Logger == nil {
		t.Fatalf("defaults = %+v", o)
	}
}
