package ui

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

const sliderHandleWidth = 10

// Slider maps a draggable handle linearly onto [minVal, maxVal]. The
// callback fires with the new value on every motion sample while dragging;
// values are rounded to two decimal places.
type Slider struct {
	rect     image.Rectangle
	minVal   float64
	maxVal   float64
	value    float64
	label    string
	face     text.Face
	onChange func(float64)

	dragging  bool
	handlePos int // pixels right of rect.Min.X
}

func NewSlider(x, y, w, h int, minVal, maxVal, initial float64, label string, face text.Face, onChange func(float64)) *Slider {
	s := &Slider{
		rect:     image.Rect(x, y, x+w, y+h),
		minVal:   minVal,
		maxVal:   maxVal,
		label:    label,
		face:     face,
		onChange: onChange,
	}
	s.SetValue(initial)
	return s
}

// Value returns the current slider value.
func (s *Slider) Value() float64 {
	return s.value
}

// SetValue moves the handle without firing the callback. Used to resync the
// panel with the configuration.
func (s *Slider) SetValue(v float64) {
	v = math.Min(math.Max(v, s.minVal), s.maxVal)
	s.value = v
	s.handlePos = int((v - s.minVal) / (s.maxVal - s.minVal) * float64(s.rect.Dx()))
}

func (s *Slider) Draw(dst *ebiten.Image) {
	track := image.Rect(
		s.rect.Min.X, (s.rect.Min.Y+s.rect.Max.Y)/2-2,
		s.rect.Max.X, (s.rect.Min.Y+s.rect.Max.Y)/2+2,
	)
	fillRect(dst, track, colorIdle)

	handle := s.handleRect()
	bg := colorHovered
	if s.dragging {
		bg = colorPressed
	}
	fillRect(dst, handle, bg)

	label := fmt.Sprintf("%s: %.2f", s.label, s.value)
	drawText(dst, s.face, label, float64(s.rect.Min.X), float64(s.rect.Min.Y-10), colorLabel)
}

func (s *Slider) HandleEvent(ev Event) bool {
	switch ev.Kind {
	case PointerDown:
		if ev.Pos.In(s.handleRect()) {
			s.dragging = true
			return true
		}
	case PointerUp:
		if s.dragging {
			s.dragging = false
			return true
		}
	case PointerMove:
		if s.dragging {
			s.drag(ev.Pos.X)
			return true
		}
	}
	return false
}

func (s *Slider) drag(pointerX int) {
	relX := pointerX - s.rect.Min.X
	relX = max(0, min(relX, s.rect.Dx()))
	s.handlePos = relX

	v := s.minVal + (s.maxVal-s.minVal)*float64(relX)/float64(s.rect.Dx())
	s.value = math.Round(v*100) / 100
	s.onChange(s.value)
}

func (s *Slider) handleRect() image.Rectangle {
	x := s.rect.Min.X + s.handlePos - sliderHandleWidth/2
	return image.Rect(x, s.rect.Min.Y, x+sliderHandleWidth, s.rect.Max.Y)
}
