package app

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/matrix-rain/internal/ui"
)

// pollEvents synthesizes the tick's input events from ebiten's polled state:
// cursor movement, left-button edges, and freshly pressed keys. The UI layer
// consumes these; it never touches the input devices directly.
func (g *Game) pollEvents() []ui.Event {
	var events []ui.Event

	x, y := ebiten.CursorPosition()
	pos := image.Pt(x, y)
	if (cursor{x, y}) != g.prevCursor {
		g.prevCursor = cursor{x, y}
		events = append(events, ui.Event{Kind: ui.PointerMove, Pos: pos})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, ui.Event{Kind: ui.PointerDown, Pos: pos})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, ui.Event{Kind: ui.PointerUp, Pos: pos})
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		events = append(events, ui.Event{Kind: ui.KeyDown, Pos: pos, Key: k})
	}
	return events
}
