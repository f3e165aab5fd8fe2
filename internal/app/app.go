//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"forestfire/internal/core"
	"forestfire/internal/render"
	"forestfire/internal/sims/forest"
	"forestfire/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a forest trial to the ebiten.Game interface.
type Game struct {
	world   *forest.World
	painter *render.GridPainter
	hud     *ui.HUD
	chrome  *ui.Chrome
	prompt  ui.ExitPrompt
	pacer   *core.Pacer
	logger  *slog.Logger

	scale    int
	paused   bool
	reported bool
	seed     int64
}

// New constructs a Game for the provided world.
func New(world *forest.World, opts Options) *Game {
	opts = opts.withDefaults()
	size := world.Size()
	return &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H, render.Palette()),
		hud:     ui.NewHUD(world, opts.PanelWidth),
		chrome:  ui.NewChrome(),
		pacer:   core.NewPacer(opts.StepsPerSecond),
		logger:  opts.Logger,
		scale:   opts.Scale,
		seed:    opts.Seed,
	}
}

// Reset reseeds the forest and lights a new fire.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.pacer.Reset()
	g.reported = false
	g.logger.Debug("forest reset", "seed", seed)
}

// Update handles input and advances the fire at the paced rate.
func (g *Game) Update() error {
	if g.prompt.Visible() {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyY):
			if g.prompt.Answer("y") == ui.AnswerExit {
				return ebiten.Termination
			}
		case inpututil.IsKeyJustPressed(ebiten.KeyN), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			g.prompt.Answer("n")
			g.pacer.Reset()
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.prompt.Open()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.pacer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustDensity(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustDensity(-1)
	}

	size := g.world.Size()
	if !g.hud.Update(size.W*g.scale, ui.BarHeight) {
		g.handleIgnite()
	}

	if !g.paused {
		for n := g.pacer.Due(time.Now()); n > 0 && !g.world.Done(); n-- {
			g.world.Step()
		}
	}
	if g.world.Done() && !g.reported {
		g.reported = true
		g.logger.Info("fire out", "steps", g.world.Steps(), "burned_pct", g.world.BurnedPercent(), "empty", g.world.Empty())
	}
	return nil
}

func (g *Game) adjustDensity(direction int) {
	g.hud.Adjust("density", direction)
	g.reported = false
	g.pacer.Reset()
}

func (g *Game) handleIgnite() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	y -= ui.BarHeight
	if x < 0 || y < 0 {
		return
	}
	if g.world.Ignite(y/g.scale, x/g.scale) {
		g.reported = false
	}
}

// Draw renders the title bar, grid, HUD, footer and any prompt.
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.Layout(0, 0)
	size := g.world.Size()
	gridH := size.H * g.scale

	g.chrome.DrawTitle(screen, w, ui.Title(g.world.BurnedPercent(), g.world.Steps()))
	g.painter.Blit(screen, g.world.Cells(), g.scale, ui.BarHeight)
	g.hud.Draw(screen, gridH)
	g.chrome.DrawFooter(screen, w, ui.BarHeight+gridH)
	if g.prompt.Visible() {
		g.chrome.DrawPrompt(screen, w, h)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + g.hud.Width(), s.H*g.scale + 2*ui.BarHeight
}
