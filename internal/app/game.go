// Package app wires the simulation, renderer and UI into an ebiten game.
package app

import (
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/matrix-rain/internal/config"
	"github.com/iburimskiy/matrix-rain/internal/rain"
	"github.com/iburimskiy/matrix-rain/internal/render"
	"github.com/iburimskiy/matrix-rain/internal/ui"
)

// A tick arriving this long after the previous one means the process was
// suspended; the simulation skips the tick instead of applying a huge
// catch-up step.
const maxTickGap = 500 // ms

const uiFontSize = 14

// Game runs one tick per frame: UI event handling first, then the
// simulation update, then rendering. Nothing here runs concurrently.
type Game struct {
	cfg      *config.Config
	field    *rain.Field
	renderer *render.Renderer
	controls *ui.Controls

	start    time.Time
	lastTick int64

	prevCursor cursor
	keys       []ebiten.Key
}

type cursor struct{ x, y int }

// New builds the game: renderer, a freshly reset column field, and the
// parameter panel.
func New(cfg *config.Config) (*Game, error) {
	renderer, err := render.New(cfg)
	if err != nil {
		return nil, err
	}

	field := rain.NewField(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	field.Reset(cfg)

	p := cfg.Params()
	controls := ui.NewControls(cfg, p.Width, p.Height,
		renderer.Faces().Label(uiFontSize), promptCustomChars)

	return &Game{
		cfg:      cfg,
		field:    field,
		renderer: renderer,
		controls: controls,
		start:    time.Now(),
	}, nil
}

func (g *Game) Update() error {
	now := time.Since(g.start).Milliseconds()

	for _, ev := range g.pollEvents() {
		if ev.Kind == ui.KeyDown {
			switch ev.Key {
			case ebiten.KeyEscape, ebiten.KeyQ:
				return ebiten.Termination
			case ebiten.KeyF:
				g.toggleFullscreen()
				continue
			case ebiten.KeyR:
				g.field.Reset(g.cfg)
				continue
			}
		}
		g.controls.HandleEvent(ev)
	}

	if g.controls.ConsumeChanged() {
		// The glyph size range may have moved; refresh the face cache
		// before laying the columns back out.
		g.renderer.Resize(g.cfg)
		g.field.Reset(g.cfg)
	}

	delta := now - g.lastTick
	g.lastTick = now
	if delta > maxTickGap {
		// The window was inactive; render but leave the simulation alone.
		return nil
	}

	g.field.Update(g.cfg, now)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.cfg, g.field)
	g.controls.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	p := g.cfg.Params()
	return p.Width, p.Height
}

func (g *Game) toggleFullscreen() {
	fs := !g.cfg.Params().Fullscreen
	if err := g.cfg.Update(config.Patch{Fullscreen: &fs}); err != nil {
		return
	}
	ebiten.SetFullscreen(fs)
	g.renderer.Resize(g.cfg)
}

// promptCustomChars asks for the characters of a custom glyph set.
func promptCustomChars() (string, bool) {
	s, err := zenity.Entry("Characters for the custom set:",
		zenity.Title("Custom Character Set"))
	if err != nil {
		return "", false
	}
	return s, true
}
