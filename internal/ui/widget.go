// Package ui is a small retained-mode widget toolkit for the parameter
// panel: buttons, sliders, dropdowns and a color picker, all mutating the
// shared configuration through partial updates.
//
// Widgets consume synthesized events (see Event); they never poll input
// devices themselves, which keeps their behavior testable.
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EventKind discriminates input events.
type EventKind int

const (
	PointerMove EventKind = iota
	PointerDown
	PointerUp
	KeyDown
)

// Event is one input event delivered to the widget tree, at most a handful
// per tick.
type Event struct {
	Kind EventKind
	Pos  image.Point
	Key  ebiten.Key
}

// Widget is the shared widget contract: draw yourself, and report whether
// you consumed an event.
type Widget interface {
	Draw(dst *ebiten.Image)
	HandleEvent(ev Event) bool
}

// Panel and widget chrome colors, shared across the package.
var (
	colorIdle    = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	colorHovered = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	colorPressed = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorBorder  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorListBG  = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	colorText    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorLabel   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()), clr, false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()), width, clr, false)
}

// drawText draws str with its left edge at x, vertically centered on cy.
func drawText(dst *ebiten.Image, face text.Face, str string, x, cy float64, clr color.Color) {
	if face == nil {
		return
	}
	_, h := text.Measure(str, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, cy-h/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}

// drawTextCentered draws str centered on (cx, cy).
func drawTextCentered(dst *ebiten.Image, face text.Face, str string, cx, cy float64, clr color.Color) {
	if face == nil {
		return
	}
	w, h := text.Measure(str, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-w/2, cy-h/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}
