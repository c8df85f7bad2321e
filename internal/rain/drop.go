// Package rain implements the falling-glyph simulation: drops, the
// per-column spawn/fade/recycle state machine, and the column field.
//
// Time is a monotonic tick counter in milliseconds supplied by the caller
// once per frame. The simulation is single-threaded: one Update per tick,
// never concurrent with rendering.
package rain

import (
	"image/color"
	"math/rand/v2"

	"github.com/iburimskiy/matrix-rain/internal/config"
)

const (
	// Chance per tick that a drop swaps its glyph mid-fall.
	glyphRerollChance = 0.02

	// Brightness decays down to this floor and no further, so tails stay
	// faintly visible until they leave the screen.
	brightnessFloor = 0.2
)

// Drop is a single falling glyph.
type Drop struct {
	X          int
	Y          float64
	Glyph      rune
	Speed      float64
	Color      color.RGBA
	Brightness float64
	Size       int
}

// Update advances the drop by one tick: it falls, occasionally re-rolls its
// glyph, and dims until the brightness floor.
func (d *Drop) Update(cfg *config.Config, rng *rand.Rand) {
	p := cfg.Params()
	d.Y += d.Speed * p.RainSpeed
	if rng.Float64() < glyphRerollChance {
		d.Glyph = cfg.RandomGlyph()
	}
	if d.Brightness > brightnessFloor {
		d.Brightness -= 0.01 * p.FadingSpeed
		if d.Brightness < brightnessFloor {
			d.Brightness = brightnessFloor
		}
	}
}

func (d *Drop) offscreen(height int) bool {
	return d.Y > float64(height)
}
