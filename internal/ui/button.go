package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Button fires its callback on a click: press and release both inside its
// bounds. Pressing inside and releasing outside cancels.
type Button struct {
	rect    image.Rectangle
	label   string
	face    text.Face
	onClick func()

	hovered bool
	pressed bool
}

func NewButton(x, y, w, h int, label string, face text.Face, onClick func()) *Button {
	return &Button{
		rect:    image.Rect(x, y, x+w, y+h),
		label:   label,
		face:    face,
		onClick: onClick,
	}
}

func (b *Button) Draw(dst *ebiten.Image) {
	bg := colorIdle
	if b.hovered {
		bg = colorHovered
	}
	if b.pressed {
		bg = colorPressed
	}
	fillRect(dst, b.rect, bg)
	strokeRect(dst, b.rect, 2, colorBorder)

	cx := float64(b.rect.Min.X+b.rect.Max.X) / 2
	cy := float64(b.rect.Min.Y+b.rect.Max.Y) / 2
	drawTextCentered(dst, b.face, b.label, cx, cy, colorText)
}

func (b *Button) HandleEvent(ev Event) bool {
	switch ev.Kind {
	case PointerMove:
		b.hovered = ev.Pos.In(b.rect)
	case PointerDown:
		if ev.Pos.In(b.rect) {
			b.pressed = true
			return true
		}
	case PointerUp:
		if b.pressed {
			b.pressed = false
			if ev.Pos.In(b.rect) {
				b.onClick()
			}
			return true
		}
	}
	return false
}
