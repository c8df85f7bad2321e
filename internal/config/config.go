// Package config holds the live-tunable parameters of the rain effect.
//
// A Config is shared read-only by the simulation and renderer; the UI layer
// is its single writer. Updates are atomic: a partial update either commits
// all of its fields or none of them.
package config

import (
	"fmt"
	"image/color"
	"math/rand/v2"
)

// ColorMode selects how column colors are chosen.
type ColorMode int

const (
	ColorFixed ColorMode = iota // keep whatever color the column started with
	ColorCustom
	ColorRainbow
)

func (m ColorMode) String() string {
	switch m {
	case ColorFixed:
		return "Fixed"
	case ColorCustom:
		return "Custom"
	case ColorRainbow:
		return "Rainbow"
	}
	return fmt.Sprintf("ColorMode(%d)", int(m))
}

// CharSet selects the glyph palette drops are drawn from.
type CharSet int

const (
	CharSetMixed CharSet = iota
	CharSetLatin
	CharSetKatakana
	CharSetBinary
	CharSetCustom
)

func (s CharSet) String() string {
	switch s {
	case CharSetMixed:
		return "Mixed"
	case CharSetLatin:
		return "Latin"
	case CharSetKatakana:
		return "Katakana"
	case CharSetBinary:
		return "Binary"
	case CharSetCustom:
		return "Custom"
	}
	return fmt.Sprintf("CharSet(%d)", int(s))
}

// Params is the full parameter set of the effect.
type Params struct {
	Width      int
	Height     int
	Fullscreen bool

	RainSpeed   float64
	RainDensity float64

	CharSet     CharSet
	CustomChars string
	CharSizeMin int
	CharSizeMax int

	ColorMode ColorMode
	BaseColor color.RGBA

	FadingSpeed    float64
	SpeedVariation float64
}

// Default returns the stock parameter set: an 800x600 window of green,
// medium-speed mixed-glyph rain.
func Default() Params {
	return Params{
		Width:          800,
		Height:         600,
		RainSpeed:      1.0,
		RainDensity:    1.0,
		CharSet:        CharSetMixed,
		CharSizeMin:    10,
		CharSizeMax:    20,
		ColorMode:      ColorFixed,
		BaseColor:      color.RGBA{G: 255, A: 255},
		FadingSpeed:    0.07,
		SpeedVariation: 0.5,
	}
}

// Patch is a partial parameter update. Nil fields are left unchanged.
type Patch struct {
	Width      *int
	Height     *int
	Fullscreen *bool

	RainSpeed   *float64
	RainDensity *float64

	CharSet     *CharSet
	CustomChars *string
	CharSizeMin *int
	CharSizeMax *int

	ColorMode *ColorMode
	BaseColor *color.RGBA

	FadingSpeed    *float64
	SpeedVariation *float64
}

// Config is a validated parameter bag plus the cached glyph palette derived
// from it. The zero value is not usable; construct with New.
type Config struct {
	params  Params
	palette []rune
	rng     *rand.Rand
}

// New validates p and returns a Config, or a *ValidationError describing the
// first violated bound.
func New(p Params) (*Config, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	c := &Config{
		params: p,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	c.palette = buildPalette(p)
	return c, nil
}

// Params returns a copy of the current parameters.
func (c *Config) Params() Params {
	return c.params
}

// Update applies a partial parameter change. Either every field of the patch
// commits, or the Config is left exactly as it was and a *ValidationError is
// returned. The glyph palette is recomputed when the character set or the
// custom characters change.
func (c *Config) Update(p Patch) error {
	next := c.params
	p.apply(&next)
	if err := validate(next); err != nil {
		return err
	}
	rebuild := next.CharSet != c.params.CharSet || next.CustomChars != c.params.CustomChars
	c.params = next
	if rebuild {
		c.palette = buildPalette(next)
	}
	return nil
}

// RandomGlyph returns one rune drawn uniformly from the active palette,
// rebuilding it first if it is somehow empty.
func (c *Config) RandomGlyph() rune {
	if len(c.palette) == 0 {
		c.palette = buildPalette(c.params)
	}
	return c.palette[c.rng.IntN(len(c.palette))]
}

func (p Patch) apply(dst *Params) {
	if p.Width != nil {
		dst.Width = *p.Width
	}
	if p.Height != nil {
		dst.Height = *p.Height
	}
	if p.Fullscreen != nil {
		dst.Fullscreen = *p.Fullscreen
	}
	if p.RainSpeed != nil {
		dst.RainSpeed = *p.RainSpeed
	}
	if p.RainDensity != nil {
		dst.RainDensity = *p.RainDensity
	}
	if p.CharSet != nil {
		dst.CharSet = *p.CharSet
	}
	if p.CustomChars != nil {
		dst.CustomChars = *p.CustomChars
	}
	if p.CharSizeMin != nil {
		dst.CharSizeMin = *p.CharSizeMin
	}
	if p.CharSizeMax != nil {
		dst.CharSizeMax = *p.CharSizeMax
	}
	if p.ColorMode != nil {
		dst.ColorMode = *p.ColorMode
	}
	if p.BaseColor != nil {
		dst.BaseColor = *p.BaseColor
	}
	if p.FadingSpeed != nil {
		dst.FadingSpeed = *p.FadingSpeed
	}
	if p.SpeedVariation != nil {
		dst.SpeedVariation = *p.SpeedVariation
	}
}
