// Package render converts forest display buffers into RGBA pixels.
package render

import (
	"image/color"

	"forestfire/internal/sims/forest"
)

// Palette maps forest display values to colours: bare ground, trees, burned ground and
// the burning front.
func Palette() []color.RGBA {
	p := make([]color.RGBA, forest.DisplayFront+1)
	p[forest.DisplayEmpty] = color.RGBA{R: 18, G: 14, B: 10, A: 255}
	p[forest.DisplayAlive] = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	p[forest.DisplayBurned] = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	p[forest.DisplayFront] = color.RGBA{R: 255, G: 190, B: 40, A: 255}
	return p
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. Values
// past the end of the palette use its last colour. When the palette is empty
// the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
