package ui

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/matrix-rain/internal/config"
)

func down(x, y int) Event { return Event{Kind: PointerDown, Pos: image.Pt(x, y)} }
func up(x, y int) Event   { return Event{Kind: PointerUp, Pos: image.Pt(x, y)} }
func move(x, y int) Event { return Event{Kind: PointerMove, Pos: image.Pt(x, y)} }

func click(t *testing.T, w Widget, x, y int) {
	t.Helper()
	w.HandleEvent(down(x, y))
	w.HandleEvent(up(x, y))
}

func TestButton(t *testing.T) {
	t.Run("should fire on press and release inside bounds", func(t *testing.T) {
		fired := 0
		b := NewButton(10, 10, 100, 30, "Go", nil, func() { fired++ })
		assert.True(t, b.HandleEvent(down(20, 20)))
		assert.True(t, b.HandleEvent(up(20, 20)))
		assert.Equal(t, 1, fired)
	})
	t.Run("should cancel when released outside bounds", func(t *testing.T) {
		fired := 0
		b := NewButton(10, 10, 100, 30, "Go", nil, func() { fired++ })
		assert.True(t, b.HandleEvent(down(20, 20)))
		assert.True(t, b.HandleEvent(up(500, 500)), "release after a press is still consumed")
		assert.Equal(t, 0, fired)
	})
	t.Run("should ignore presses outside bounds", func(t *testing.T) {
		b := NewButton(10, 10, 100, 30, "Go", nil, func() { t.Fatal("must not fire") })
		assert.False(t, b.HandleEvent(down(500, 500)))
		assert.False(t, b.HandleEvent(up(500, 500)))
	})
	t.Run("should track hover without consuming motion", func(t *testing.T) {
		b := NewButton(10, 10, 100, 30, "Go", nil, func() {})
		assert.False(t, b.HandleEvent(move(20, 20)))
		assert.True(t, b.hovered)
		assert.False(t, b.HandleEvent(move(500, 500)))
		assert.False(t, b.hovered)
	})
}

func TestSlider(t *testing.T) {
	newSlider := func(onChange func(float64)) *Slider {
		return NewSlider(0, 0, 200, 30, 0.1, 5.0, 1.0, "Speed", nil, onChange)
	}
	grab := func(t *testing.T, s *Slider) {
		t.Helper()
		r := s.handleRect()
		require.True(t, s.HandleEvent(down((r.Min.X+r.Max.X)/2, 15)))
	}

	t.Run("should update value linearly while dragging", func(t *testing.T) {
		var got []float64
		s := newSlider(func(v float64) { got = append(got, v) })
		grab(t, s)
		assert.True(t, s.HandleEvent(move(100, 15)))
		assert.True(t, s.HandleEvent(move(150, 15)))
		require.Len(t, got, 2, "callback fires on every motion sample")
		assert.InDelta(t, 0.1+4.9*0.5, got[0], 0.01)
		assert.InDelta(t, 0.1+4.9*0.75, got[1], 0.01)
		assert.True(t, s.HandleEvent(up(150, 15)))
	})
	t.Run("should clamp to min when dragged left of the track", func(t *testing.T) {
		s := newSlider(func(float64) {})
		grab(t, s)
		s.HandleEvent(move(-500, 15))
		assert.Equal(t, 0.1, s.Value())
	})
	t.Run("should clamp to max when dragged right of the track", func(t *testing.T) {
		s := newSlider(func(float64) {})
		grab(t, s)
		s.HandleEvent(move(9999, 15))
		assert.Equal(t, 5.0, s.Value())
	})
	t.Run("should round to two decimal places", func(t *testing.T) {
		s := newSlider(func(float64) {})
		grab(t, s)
		s.HandleEvent(move(57, 15))
		assert.Equal(t, s.Value(), float64(int(s.Value()*100+0.5))/100)
	})
	t.Run("should not react to motion when not dragging", func(t *testing.T) {
		s := newSlider(func(float64) { t.Fatal("must not fire") })
		assert.False(t, s.HandleEvent(move(100, 15)))
		assert.Equal(t, 1.0, s.Value())
	})
	t.Run("should ignore presses away from the handle", func(t *testing.T) {
		s := newSlider(func(float64) {})
		assert.False(t, s.HandleEvent(down(199, 15)))
		assert.False(t, s.dragging)
	})
}

func TestDropdown(t *testing.T) {
	options := []Option{
		{Value: 10, Label: "Ten"},
		{Value: 20, Label: "Twenty"},
		{Value: 30, Label: "Thirty"},
	}
	newDropdown := func(onSelect func(int)) *Dropdown {
		return NewDropdown(0, 0, 100, 30, "Pick", options, 10, nil, onSelect)
	}

	t.Run("should open on click and select an option", func(t *testing.T) {
		var got int
		d := newDropdown(func(v int) { got = v })
		assert.True(t, d.HandleEvent(down(50, 15)))
		assert.True(t, d.expanded)
		// Second option sits one row below the list top.
		assert.True(t, d.HandleEvent(down(50, 30+30+15)))
		assert.Equal(t, 20, got)
		assert.Equal(t, 20, d.Value())
		assert.False(t, d.expanded)
	})
	t.Run("should close without selecting on outside click", func(t *testing.T) {
		d := newDropdown(func(int) { t.Fatal("must not select") })
		assert.True(t, d.HandleEvent(down(50, 15)))
		assert.True(t, d.HandleEvent(down(500, 500)), "closing consumes the click")
		assert.False(t, d.expanded)
		assert.Equal(t, 10, d.Value())
	})
	t.Run("should toggle closed when clicked again", func(t *testing.T) {
		d := newDropdown(func(int) {})
		d.HandleEvent(down(50, 15))
		d.HandleEvent(down(50, 15))
		assert.False(t, d.expanded)
	})
	t.Run("should not consume clicks while closed", func(t *testing.T) {
		d := newDropdown(func(int) {})
		assert.False(t, d.HandleEvent(down(500, 500)))
	})
}

func TestColorPicker(t *testing.T) {
	t.Run("should select a swatch", func(t *testing.T) {
		var got color.RGBA
		p := NewColorPicker(0, 0, 40, 30, "Base", swatches[0], nil, func(c color.RGBA) { got = c })
		assert.True(t, p.HandleEvent(down(20, 15)))
		r := p.swatchRect(2)
		assert.True(t, p.HandleEvent(down((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)))
		assert.Equal(t, swatches[2], got)
		assert.Equal(t, swatches[2], p.Color())
		assert.False(t, p.expanded)
	})
	t.Run("should close without selecting on outside click", func(t *testing.T) {
		p := NewColorPicker(0, 0, 40, 30, "Base", swatches[0], nil,
			func(color.RGBA) { t.Fatal("must not pick") })
		assert.True(t, p.HandleEvent(down(20, 15)))
		assert.True(t, p.HandleEvent(down(500, 500)))
		assert.False(t, p.expanded)
		assert.Equal(t, swatches[0], p.Color())
	})
}

const (
	testScreenW = 800
	testScreenH = 600
)

func newTestControls(t *testing.T, prompt PromptFunc) (*Controls, *config.Config) {
	t.Helper()
	cfg, err := config.New(config.Default())
	require.NoError(t, err)
	return NewControls(cfg, testScreenW, testScreenH, nil, prompt), cfg
}

func dragSlider(t *testing.T, c *Controls, s *Slider, toX int) {
	t.Helper()
	r := s.handleRect()
	require.True(t, c.HandleEvent(down((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)))
	c.HandleEvent(move(toX, (r.Min.Y+r.Max.Y)/2))
	c.HandleEvent(up(toX, (r.Min.Y+r.Max.Y)/2))
}

func TestControls(t *testing.T) {
	t.Run("should mutate config from a slider drag", func(t *testing.T) {
		c, cfg := newTestControls(t, nil)
		dragSlider(t, c, c.speed, testScreenW) // right edge clamps to max
		assert.Equal(t, 5.0, cfg.Params().RainSpeed)
		assert.True(t, c.ConsumeChanged())
		assert.False(t, c.ConsumeChanged(), "flag clears after consumption")
	})
	t.Run("should revert slider and config on a rejected update", func(t *testing.T) {
		c, cfg := newTestControls(t, nil)
		// Default sizes are 10..20; dragging max below min must be rejected.
		dragSlider(t, c, c.sizeMax, 0)
		assert.Equal(t, 20, cfg.Params().CharSizeMax)
		assert.Equal(t, 20.0, c.sizeMax.Value())
		assert.False(t, c.ConsumeChanged())
	})
	t.Run("should snap size sliders to the committed whole number", func(t *testing.T) {
		c, cfg := newTestControls(t, nil)
		// 100 px of 260 lands between whole sizes (19.08 on the 6..40 range).
		r := c.sizeMax.rect
		dragSlider(t, c, c.sizeMax, r.Min.X+100)
		assert.Equal(t, 19, cfg.Params().CharSizeMax)
		assert.Equal(t, 19.0, c.sizeMax.Value(), "panel shows the value the config holds")
		assert.True(t, c.ConsumeChanged())
	})
	t.Run("should hide every widget but the toggle", func(t *testing.T) {
		c, cfg := newTestControls(t, nil)
		click(t, c, testScreenW-30, 25) // toggle button
		require.False(t, c.Visible())
		r := c.speed.handleRect()
		assert.False(t, c.HandleEvent(down((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)))
		assert.Equal(t, 1.0, cfg.Params().RainSpeed)
		click(t, c, testScreenW-30, 25)
		assert.True(t, c.Visible())
	})
	t.Run("should prompt for characters when selecting the custom set", func(t *testing.T) {
		c, cfg := newTestControls(t, func() (string, bool) { return "ネオ", true })
		c.selectCharSet(int(config.CharSetCustom))
		assert.Equal(t, config.CharSetCustom, cfg.Params().CharSet)
		assert.Equal(t, "ネオ", cfg.Params().CustomChars)
		assert.True(t, c.ConsumeChanged())
	})
	t.Run("should keep the previous set when the prompt is canceled", func(t *testing.T) {
		c, cfg := newTestControls(t, func() (string, bool) { return "", false })
		c.selectCharSet(int(config.CharSetCustom))
		assert.Equal(t, config.CharSetMixed, cfg.Params().CharSet)
		assert.Equal(t, int(config.CharSetMixed), c.charSet.Value())
		assert.False(t, c.ConsumeChanged())
	})
	t.Run("should restore defaults on reset", func(t *testing.T) {
		c, cfg := newTestControls(t, nil)
		dragSlider(t, c, c.speed, testScreenW)
		require.Equal(t, 5.0, cfg.Params().RainSpeed)
		c.ConsumeChanged()
		c.reset()
		assert.Equal(t, config.Default().RainSpeed, cfg.Params().RainSpeed)
		assert.Equal(t, config.Default().RainSpeed, c.speed.Value())
		assert.True(t, c.ConsumeChanged())
	})
	t.Run("should short-circuit on the first handling widget", func(t *testing.T) {
		c, _ := newTestControls(t, nil)
		// Open the color-mode dropdown; its option list overlaps the widgets
		// below, and the open dropdown must win the next click.
		r := c.colorMode.rect
		require.True(t, c.HandleEvent(down((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)))
		require.True(t, c.colorMode.expanded)
		assert.True(t, c.HandleEvent(down(r.Min.X+10, r.Max.Y+15)))
		assert.False(t, c.colorMode.expanded)
	})
}
