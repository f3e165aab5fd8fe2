//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	barColor    = color.RGBA{R: 28, G: 28, B: 34, A: 255}
	barText     = color.RGBA{R: 235, G: 235, B: 240, A: 255}
	promptFill  = color.RGBA{R: 50, G: 20, B: 16, A: 235}
	promptFrame = color.RGBA{R: 255, G: 110, B: 20, A: 255}
)

// Chrome draws the status bars around the grid and the exit prompt.
type Chrome struct {
	pixel *ebiten.Image
}

// NewChrome allocates the drawing resources.
func NewChrome() *Chrome {
	c := &Chrome{pixel: ebiten.NewImage(1, 1)}
	c.pixel.Fill(color.White)
	return c
}

// DrawTitle paints the top bar with msg centred.
func (c *Chrome) DrawTitle(screen *ebiten.Image, width int, msg string) {
	c.drawBar(screen, image.Rect(0, 0, width, BarHeight), msg)
}

// DrawFooter paints the bottom bar starting at y.
func (c *Chrome) DrawFooter(screen *ebiten.Image, width, y int) {
	c.drawBar(screen, image.Rect(0, y, width, y+BarHeight), FooterText)
}

// DrawPrompt paints the exit confirmation centred in the w*h area.
func (c *Chrome) DrawPrompt(screen *ebiten.Image, w, h int) {
	face := basicfont.Face7x13
	b := text.BoundString(face, PromptText)
	pw, ph := b.Dx()+48, b.Dy()+36
	box := image.Rect((w-pw)/2, (h-ph)/2, (w+pw)/2, (h+ph)/2)
	fillRect(screen, c.pixel, box, promptFrame)
	fillRect(screen, c.pixel, box.Inset(2), promptFill)
	x := box.Min.X + (box.Dx()-b.Dx())/2
	y := box.Min.Y + (box.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(screen, PromptText, face, x, y, barText)
}

func (c *Chrome) drawBar(screen *ebiten.Image, rect image.Rectangle, msg string) {
	fillRect(screen, c.pixel, rect, barColor)
	face := basicfont.Face7x13
	b := text.BoundString(face, msg)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(screen, msg, face, x, y, barText)
}
