// Package render turns column and drop state into frames: glyphs drawn onto
// the screen plus a persistent trail layer that fades over time.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/matrix-rain/internal/config"
	"github.com/iburimskiy/matrix-rain/internal/rain"
)

// trailAlpha is the base opacity of glyph impressions stamped onto the
// trail layer, before brightness scaling.
const trailAlpha = 150.0 / 255.0

// blendMultiply scales the destination by the source color, leaving the
// source contributing nothing of its own. Drawing a uniform (k,k,k,k) quad
// with it multiplies the whole buffer by k.
var blendMultiply = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorZero,
	BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
	BlendFactorDestinationRGB:   ebiten.BlendFactorSourceColor,
	BlendFactorDestinationAlpha: ebiten.BlendFactorSourceAlpha,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// Renderer draws the rain. It owns the trail buffer and the face cache; the
// column state stays with the simulation.
type Renderer struct {
	faces  *FaceCache
	trail  *ebiten.Image
	white  *ebiten.Image
	width  int
	height int
}

// New builds a renderer sized to the configured viewport.
func New(cfg *config.Config) (*Renderer, error) {
	faces, err := NewFaceCache()
	if err != nil {
		return nil, err
	}
	r := &Renderer{faces: faces}
	r.Resize(cfg)
	return r, nil
}

// Faces exposes the face cache so the UI layer can share it for labels.
func (r *Renderer) Faces() *FaceCache {
	return r.faces
}

// Resize rebuilds the trail buffer for the configured viewport and reloads
// the face cache across the configured glyph size range. The previous trail
// content is discarded.
func (r *Renderer) Resize(cfg *config.Config) {
	p := cfg.Params()
	if r.trail == nil || r.width != p.Width || r.height != p.Height {
		r.width, r.height = p.Width, p.Height
		r.trail = ebiten.NewImage(p.Width, p.Height)
		if r.white == nil {
			r.white = ebiten.NewImage(1, 1)
			r.white.Fill(color.White)
		}
	}
	r.faces.Preload(p.CharSizeMin, p.CharSizeMax)
}

// Draw produces one frame: black background, faded trail layer, the columns'
// glyphs, and the trail composited additively on top.
func (r *Renderer) Draw(screen *ebiten.Image, cfg *config.Config, field *rain.Field) {
	p := cfg.Params()

	screen.Fill(color.Black)
	r.fadeTrail(p.FadingSpeed)

	for _, c := range field.Columns() {
		r.drawColumn(screen, c)
	}

	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendLighter
	screen.DrawImage(r.trail, op)
}

// fadeTrail multiplies the trail buffer toward transparent. A lower fading
// speed keeps impressions around longer.
func (r *Renderer) fadeTrail(fadingSpeed float64) {
	k := float32(1 - fadingSpeed)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.width), float64(r.height))
	op.ColorScale.Scale(k, k, k, k)
	op.Blend = blendMultiply
	r.trail.DrawImage(r.white, op)
}

func (r *Renderer) drawColumn(screen *ebiten.Image, c *rain.Column) {
	face := r.faces.Face(c.Size)
	if face == nil {
		// No usable face for this size; skip the column, not the frame.
		return
	}
	for i, d := range c.Drops {
		var clr color.RGBA
		if i == 0 && c.Active {
			// Head glyph renders at full white regardless of brightness.
			clr = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		} else {
			clr = scaleColor(d.Color, d.Brightness)
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(d.X), d.Y)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, string(d.Glyph), face, op)

		stamp := &text.DrawOptions{}
		stamp.GeoM.Translate(float64(d.X), d.Y)
		stamp.ColorScale.ScaleWithColor(clr)
		stamp.ColorScale.ScaleAlpha(float32(trailAlpha * d.Brightness))
		text.Draw(r.trail, string(d.Glyph), face, stamp)
	}
}

func scaleColor(c color.RGBA, brightness float64) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, float64(c.R)*brightness)),
		G: uint8(min(255, float64(c.G)*brightness)),
		B: uint8(min(255, float64(c.B)*brightness)),
		A: 255,
	}
}
