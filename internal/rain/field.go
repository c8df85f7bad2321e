package rain

import (
	"log/slog"
	"math/rand/v2"

	"github.com/iburimskiy/matrix-rain/internal/config"
)

const (
	minColumnSpacing = 10
	columnJitter     = 3

	minColumnLength = 5
	maxColumnLength = 30

	// Chance that a freshly created column starts active.
	initialActiveChance = 0.8

	// Upper bound of the random initial spawn delay, in time units.
	initialSpawnDelayMax = 2000
)

// Field owns the full set of rain columns. Reset replaces the set
// atomically between ticks; there is no partial rebuild.
type Field struct {
	columns []*Column
	rng     *rand.Rand
}

// NewField returns an empty field drawing randomness from rng.
func NewField(rng *rand.Rand) *Field {
	return &Field{rng: rng}
}

// Columns returns the current column set, left to right.
func (f *Field) Columns() []*Column {
	return f.columns
}

// Reset discards every column and builds a fresh set from the current
// configuration: one column per spacing interval, each with independently
// randomized speed, length, glyph size, color, and spawn schedule.
func (f *Field) Reset(cfg *config.Config) {
	p := cfg.Params()

	spacing := max(minColumnSpacing, p.CharSizeMax+2)
	count := p.Width / spacing
	f.columns = make([]*Column, 0, count)

	for i := range count {
		jitter := f.rng.IntN(2*columnJitter+1) - columnJitter
		f.columns = append(f.columns, &Column{
			X:         i*spacing + jitter,
			Speed:     1.0 + (f.rng.Float64()*2-1)*p.SpeedVariation,
			Length:    minColumnLength + f.rng.IntN(maxColumnLength-minColumnLength+1),
			Active:    f.rng.Float64() < initialActiveChance,
			NextSpawn: f.rng.Int64N(initialSpawnDelayMax + 1),
			Color:     p.BaseColor,
			Size:      p.CharSizeMin + f.rng.IntN(p.CharSizeMax-p.CharSizeMin+1),
		})
	}
	slog.Debug("matrix reset", "columns", count, "spacing", spacing)
}

// Update advances every column by one tick.
func (f *Field) Update(cfg *config.Config, now int64) {
	for _, c := range f.columns {
		c.Update(cfg, now, f.rng)
	}
}
