package rain

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/matrix-rain/internal/config"
)

const (
	// Per-tick state transition chances. These are deliberately not scaled
	// by elapsed time, so the effective dormancy rate tracks the tick rate.
	dormancyChance     = 0.001
	reactivationChance = 0.05

	// Base interval between spawns in time units, divided by rain density.
	spawnInterval = 50.0

	// Upper bound of the random spawn delay applied on reactivation.
	reactivationDelayMax = 1000
)

// Column is a vertical lane owning an ordered list of drops, oldest first.
// An active column spawns new drops on its schedule; a dormant one lets its
// existing drops fall and fade out.
type Column struct {
	X         int
	Drops     []*Drop
	Speed     float64
	Length    int
	Active    bool
	NextSpawn int64
	Color     color.RGBA
	Size      int
}

// Update advances the column by one tick: existing drops fall, off-screen
// drops are discarded, a new drop is spawned when due, and the column rolls
// its active/dormant transitions.
func (c *Column) Update(cfg *config.Config, now int64, rng *rand.Rand) {
	p := cfg.Params()

	for _, d := range c.Drops {
		d.Update(cfg, rng)
	}

	c.Drops = deleteOffscreen(c.Drops, p.Height)

	if c.Active && now >= c.NextSpawn && len(c.Drops) < c.Length {
		c.spawn(cfg, now, rng)
	}

	if rng.Float64() < dormancyChance {
		c.Active = false
	}
	if !c.Active && rng.Float64() < reactivationChance {
		c.Active = true
		c.NextSpawn = now + rng.Int64N(reactivationDelayMax+1)
	}
}

func (c *Column) spawn(cfg *config.Config, now int64, rng *rand.Rand) {
	p := cfg.Params()

	switch p.ColorMode {
	case config.ColorRainbow:
		c.Color = rainbowColor(now, c.X)
	case config.ColorCustom:
		c.Color = p.BaseColor
	}

	c.Drops = append(c.Drops, &Drop{
		X:          c.X,
		Y:          0,
		Glyph:      cfg.RandomGlyph(),
		Speed:      c.Speed,
		Color:      c.Color,
		Brightness: 1.0,
		Size:       c.Size,
	})

	// Jitter the spawn interval so neighboring columns do not pulse in sync.
	delay := spawnInterval / p.RainDensity * (rng.Float64()*0.5 + 0.75)
	c.NextSpawn = now + int64(delay)
}

// rainbowColor derives a fully saturated hue from elapsed time and the
// column's horizontal position, producing a diagonal rainbow sweep.
func rainbowColor(now int64, x int) color.RGBA {
	hue := math.Mod(float64(now)/10000+float64(x)/50, 1.0)
	if hue < 0 {
		hue++
	}
	r, g, b := colorful.Hsv(hue*360, 1, 1).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func deleteOffscreen(drops []*Drop, height int) []*Drop {
	kept := drops[:0]
	for _, d := range drops {
		if !d.offscreen(height) {
			kept = append(kept, d)
		}
	}
	// Let the tail slots go to the garbage collector.
	for i := len(kept); i < len(drops); i++ {
		drops[i] = nil
	}
	return kept
}
