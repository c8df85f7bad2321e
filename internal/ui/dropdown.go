package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Option is one selectable dropdown entry.
type Option struct {
	Value int
	Label string
}

// Dropdown shows the selected option; clicking it opens the option list,
// clicking an option selects it and fires the callback, clicking anywhere
// else closes the list without selecting.
type Dropdown struct {
	rect     image.Rectangle
	label    string
	options  []Option
	face     text.Face
	onSelect func(value int)

	selected int
	expanded bool
	hoverPos image.Point
}

func NewDropdown(x, y, w, h int, label string, options []Option, initial int, face text.Face, onSelect func(int)) *Dropdown {
	d := &Dropdown{
		rect:     image.Rect(x, y, x+w, y+h),
		label:    label,
		options:  options,
		face:     face,
		onSelect: onSelect,
	}
	d.SetValue(initial)
	return d
}

// Value returns the value of the selected option.
func (d *Dropdown) Value() int {
	return d.options[d.selected].Value
}

// SetValue selects the option carrying v without firing the callback.
func (d *Dropdown) SetValue(v int) {
	for i, opt := range d.options {
		if opt.Value == v {
			d.selected = i
			return
		}
	}
}

func (d *Dropdown) Draw(dst *ebiten.Image) {
	fillRect(dst, d.rect, colorIdle)
	strokeRect(dst, d.rect, 2, colorBorder)

	drawText(dst, d.face, d.label+":", float64(d.rect.Min.X), float64(d.rect.Min.Y-10), colorLabel)
	cy := float64(d.rect.Min.Y+d.rect.Max.Y) / 2
	drawText(dst, d.face, d.options[d.selected].Label, float64(d.rect.Min.X+10), cy, colorText)
	d.drawArrow(dst)

	if !d.expanded {
		return
	}
	list := d.listRect()
	fillRect(dst, list, colorListBG)
	strokeRect(dst, list, 2, colorBorder)
	for i, opt := range d.options {
		r := d.optionRect(i)
		if d.hoverPos.In(r) {
			fillRect(dst, r, colorIdle)
		}
		drawText(dst, d.face, opt.Label, float64(r.Min.X+10), float64(r.Min.Y+r.Max.Y)/2, colorText)
	}
}

func (d *Dropdown) drawArrow(dst *ebiten.Image) {
	x := float32(d.rect.Max.X - 15)
	y := float32(d.rect.Min.Y) + float32(d.rect.Dy())/3
	w := float32(10)
	h := float32(d.rect.Dy()) / 3
	vector.StrokeLine(dst, x, y, x+w/2, y+h, 2, colorText, false)
	vector.StrokeLine(dst, x+w/2, y+h, x+w, y, 2, colorText, false)
}

func (d *Dropdown) HandleEvent(ev Event) bool {
	switch ev.Kind {
	case PointerMove:
		d.hoverPos = ev.Pos
	case PointerDown:
		if ev.Pos.In(d.rect) {
			d.expanded = !d.expanded
			return true
		}
		if !d.expanded {
			return false
		}
		if ev.Pos.In(d.listRect()) {
			i := (ev.Pos.Y - d.rect.Max.Y) / d.rect.Dy()
			if i >= 0 && i < len(d.options) {
				d.selected = i
				d.expanded = false
				d.onSelect(d.options[i].Value)
				return true
			}
		}
		// Click elsewhere closes without selecting.
		d.expanded = false
		return true
	}
	return false
}

func (d *Dropdown) listRect() image.Rectangle {
	return image.Rect(
		d.rect.Min.X, d.rect.Max.Y,
		d.rect.Max.X, d.rect.Max.Y+len(d.options)*d.rect.Dy(),
	)
}

func (d *Dropdown) optionRect(i int) image.Rectangle {
	h := d.rect.Dy()
	top := d.rect.Max.Y + i*h
	return image.Rect(d.rect.Min.X, top, d.rect.Max.X, top+h)
}
