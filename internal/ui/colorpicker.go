package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	swatchesPerRow = 3
	swatchSize     = 30
	swatchPadding  = 5
)

// Fixed swatch palette, Matrix green first.
var swatches = []color.RGBA{
	{G: 255, A: 255},
	{G: 255, B: 255, A: 255},
	{R: 255, A: 255},
	{R: 255, B: 255, A: 255},
	{R: 255, G: 255, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
	{B: 255, A: 255},
	{R: 128, B: 255, A: 255},
	{R: 255, G: 128, A: 255},
}

// ColorPicker shows the current color; clicking it opens a fixed swatch
// palette, clicking a swatch selects it and fires the callback.
type ColorPicker struct {
	rect   image.Rectangle
	label  string
	face   text.Face
	color  color.RGBA
	onPick func(color.RGBA)

	expanded bool
}

func NewColorPicker(x, y, w, h int, label string, initial color.RGBA, face text.Face, onPick func(color.RGBA)) *ColorPicker {
	return &ColorPicker{
		rect:   image.Rect(x, y, x+w, y+h),
		label:  label,
		face:   face,
		color:  initial,
		onPick: onPick,
	}
}

// Color returns the currently selected color.
func (p *ColorPicker) Color() color.RGBA {
	return p.color
}

// SetColor changes the displayed color without firing the callback.
func (p *ColorPicker) SetColor(c color.RGBA) {
	p.color = c
}

func (p *ColorPicker) Draw(dst *ebiten.Image) {
	fillRect(dst, p.rect, p.color)
	strokeRect(dst, p.rect, 2, colorBorder)

	drawText(dst, p.face, p.label, float64(p.rect.Min.X), float64(p.rect.Min.Y-10), colorLabel)
	rgb := fmt.Sprintf("RGB: %d, %d, %d", p.color.R, p.color.G, p.color.B)
	cy := float64(p.rect.Min.Y+p.rect.Max.Y) / 2
	drawText(dst, p.face, rgb, float64(p.rect.Max.X+10), cy, colorText)

	if !p.expanded {
		return
	}
	palette := p.paletteRect()
	fillRect(dst, palette, colorListBG)
	strokeRect(dst, palette, 2, colorBorder)
	for i, c := range swatches {
		r := p.swatchRect(i)
		fillRect(dst, r, c)
		strokeRect(dst, r, 1, colorBorder)
	}
}

func (p *ColorPicker) HandleEvent(ev Event) bool {
	if ev.Kind != PointerDown {
		return false
	}
	if ev.Pos.In(p.rect) {
		p.expanded = !p.expanded
		return true
	}
	if !p.expanded {
		return false
	}
	for i, c := range swatches {
		if ev.Pos.In(p.swatchRect(i)) {
			p.color = c
			p.expanded = false
			p.onPick(c)
			return true
		}
	}
	p.expanded = false
	return true
}

func (p *ColorPicker) paletteRect() image.Rectangle {
	rows := (len(swatches) + swatchesPerRow - 1) / swatchesPerRow
	w := swatchesPerRow*(swatchSize+swatchPadding) - swatchPadding
	h := rows*(swatchSize+swatchPadding) - swatchPadding
	top := p.rect.Max.Y + 5
	return image.Rect(p.rect.Min.X, top, p.rect.Min.X+w, top+h)
}

func (p *ColorPicker) swatchRect(i int) image.Rectangle {
	row := i / swatchesPerRow
	col := i % swatchesPerRow
	x := p.rect.Min.X + col*(swatchSize+swatchPadding)
	y := p.rect.Max.Y + 5 + row*(swatchSize+swatchPadding)
	return image.Rect(x, y, x+swatchSize, y+swatchSize)
}
