package ui

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/matrix-rain/internal/config"
)

const (
	panelWidth    = 300
	elementHeight = 30
)

// PromptFunc asks the user for a custom character string. It reports ok as
// false when the user cancels. The app wires this to a modal dialog; tests
// stub it.
type PromptFunc func() (string, bool)

// Controls aggregates the parameter panel: it owns the widgets, forwards
// events to them in fixed order, short-circuits on the first widget that
// handles an event, and tracks whether any event mutated the configuration.
//
// While the panel is hidden only the toggle button receives events.
type Controls struct {
	cfg    *config.Config
	face   text.Face
	prompt PromptFunc

	visible bool
	changed bool

	toggle    *Button
	widgets   []Widget
	panelRect image.Rectangle

	speed     *Slider
	density   *Slider
	sizeMin   *Slider
	sizeMax   *Slider
	fade      *Slider
	variation *Slider
	colorMode *Dropdown
	charSet   *Dropdown
	picker    *ColorPicker
}

// NewControls builds the panel for a screen of the given dimensions.
func NewControls(cfg *config.Config, screenW, screenH int, face text.Face, prompt PromptFunc) *Controls {
	c := &Controls{
		cfg:     cfg,
		face:    face,
		prompt:  prompt,
		visible: true,
	}
	c.init(screenW, screenH)
	return c
}

// Resize rebuilds the widget layout for new screen dimensions. Widget values
// are re-read from the configuration.
func (c *Controls) Resize(screenW, screenH int) {
	c.init(screenW, screenH)
}

func (c *Controls) init(screenW, screenH int) {
	p := c.cfg.Params()
	panelX := screenW - panelWidth
	c.panelRect = image.Rect(panelX, 0, screenW, screenH)

	c.toggle = NewButton(screenW-50, 10, 40, elementHeight, "UI", c.face, func() {
		c.visible = !c.visible
	})

	x := panelX + 20
	w := panelWidth - 40
	y := 50

	c.speed = NewSlider(x, y, w, elementHeight, 0.1, 5.0, p.RainSpeed, "Rain Speed", c.face,
		func(v float64) { c.apply(config.Patch{RainSpeed: &v}) })
	y += 40
	c.density = NewSlider(x, y, w, elementHeight, 0.1, 2.0, p.RainDensity, "Rain Density", c.face,
		func(v float64) { c.apply(config.Patch{RainDensity: &v}) })
	y += 40
	c.sizeMin = NewSlider(x, y, w, elementHeight, 6, 40, float64(p.CharSizeMin), "Min Char Size", c.face,
		func(v float64) {
			n := int(v)
			if c.apply(config.Patch{CharSizeMin: &n}) {
				c.sizeMin.SetValue(float64(n))
			}
		})
	y += 40
	c.sizeMax = NewSlider(x, y, w, elementHeight, 6, 40, float64(p.CharSizeMax), "Max Char Size", c.face,
		func(v float64) {
			n := int(v)
			if c.apply(config.Patch{CharSizeMax: &n}) {
				c.sizeMax.SetValue(float64(n))
			}
		})
	y += 40
	c.fade = NewSlider(x, y, w, elementHeight, 0.01, 0.5, p.FadingSpeed, "Fade Speed", c.face,
		func(v float64) { c.apply(config.Patch{FadingSpeed: &v}) })
	y += 40
	c.variation = NewSlider(x, y, w, elementHeight, 0.0, 2.0, p.SpeedVariation, "Speed Variation", c.face,
		func(v float64) { c.apply(config.Patch{SpeedVariation: &v}) })

	y += 60
	c.colorMode = NewDropdown(x, y, w, elementHeight, "Color Mode", []Option{
		{Value: int(config.ColorFixed), Label: config.ColorFixed.String()},
		{Value: int(config.ColorCustom), Label: config.ColorCustom.String()},
		{Value: int(config.ColorRainbow), Label: config.ColorRainbow.String()},
	}, int(p.ColorMode), c.face, func(v int) {
		m := config.ColorMode(v)
		c.apply(config.Patch{ColorMode: &m})
	})

	y += 60
	c.charSet = NewDropdown(x, y, w, elementHeight, "Character Set", []Option{
		{Value: int(config.CharSetMixed), Label: config.CharSetMixed.String()},
		{Value: int(config.CharSetLatin), Label: config.CharSetLatin.String()},
		{Value: int(config.CharSetKatakana), Label: config.CharSetKatakana.String()},
		{Value: int(config.CharSetBinary), Label: config.CharSetBinary.String()},
		{Value: int(config.CharSetCustom), Label: config.CharSetCustom.String()},
	}, int(p.CharSet), c.face, c.selectCharSet)

	y += 60
	c.picker = NewColorPicker(x, y, 40, elementHeight, "Base Color", p.BaseColor, c.face,
		func(clr color.RGBA) { c.apply(config.Patch{BaseColor: &clr}) })

	y += 60
	reset := NewButton(panelX+panelWidth/2-50, y, 100, elementHeight, "Reset", c.face, c.reset)

	c.widgets = []Widget{
		c.speed, c.density, c.sizeMin, c.sizeMax, c.fade, c.variation,
		c.colorMode, c.charSet, c.picker, reset,
	}
}

// HandleEvent forwards ev through the widget tree and reports whether any
// widget consumed it.
func (c *Controls) HandleEvent(ev Event) bool {
	if c.toggle.HandleEvent(ev) {
		return true
	}
	if !c.visible {
		return false
	}
	for _, w := range c.widgets {
		if w.HandleEvent(ev) {
			return true
		}
	}
	return false
}

// Draw renders the toggle button and, when visible, the translucent panel
// with every widget.
func (c *Controls) Draw(dst *ebiten.Image) {
	c.toggle.Draw(dst)
	if !c.visible {
		return
	}
	fillRect(dst, c.panelRect, color.RGBA{A: 180})
	for _, w := range c.widgets {
		w.Draw(dst)
	}
}

// ConsumeChanged reports whether the configuration was mutated since the
// last call, and clears the flag.
func (c *Controls) ConsumeChanged() bool {
	ch := c.changed
	c.changed = false
	return ch
}

// Visible reports whether the panel is shown.
func (c *Controls) Visible() bool {
	return c.visible
}

func (c *Controls) apply(p config.Patch) bool {
	if err := c.cfg.Update(p); err != nil {
		slog.Warn("config update rejected", "err", err)
		c.syncFromConfig()
		return false
	}
	c.changed = true
	return true
}

// selectCharSet prompts for characters when the custom set is chosen, since
// a custom set must not be empty.
func (c *Controls) selectCharSet(v int) {
	s := config.CharSet(v)
	if s != config.CharSetCustom {
		c.apply(config.Patch{CharSet: &s})
		return
	}
	chars := c.cfg.Params().CustomChars
	if c.prompt != nil {
		if entered, ok := c.prompt(); ok && entered != "" {
			chars = entered
		}
	}
	if chars == "" {
		slog.Warn("custom character set not applied: no characters entered")
		c.syncFromConfig()
		return
	}
	c.apply(config.Patch{CharSet: &s, CustomChars: &chars})
}

// reset restores the default tunables, leaving window geometry alone.
func (c *Controls) reset() {
	d := config.Default()
	c.apply(config.Patch{
		RainSpeed:      &d.RainSpeed,
		RainDensity:    &d.RainDensity,
		CharSet:        &d.CharSet,
		CustomChars:    &d.CustomChars,
		CharSizeMin:    &d.CharSizeMin,
		CharSizeMax:    &d.CharSizeMax,
		ColorMode:      &d.ColorMode,
		BaseColor:      &d.BaseColor,
		FadingSpeed:    &d.FadingSpeed,
		SpeedVariation: &d.SpeedVariation,
	})
	c.syncFromConfig()
}

func (c *Controls) syncFromConfig() {
	p := c.cfg.Params()
	c.speed.SetValue(p.RainSpeed)
	c.density.SetValue(p.RainDensity)
	c.sizeMin.SetValue(float64(p.CharSizeMin))
	c.sizeMax.SetValue(float64(p.CharSizeMax))
	c.fade.SetValue(p.FadingSpeed)
	c.variation.SetValue(p.SpeedVariation)
	c.colorMode.SetValue(int(p.ColorMode))
	c.charSet.SetValue(int(p.CharSet))
	c.picker.SetColor(p.BaseColor)
}
