package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// preloadStep is the size granularity of the preloaded face cache.
const preloadStep = 2

// FaceCache hands out glyph faces by pixel size. Faces are preloaded across
// the configured size range; a request for an uncached size is served by the
// cached size with the smallest absolute difference.
type FaceCache struct {
	source *text.GoTextFaceSource
	faces  map[int]*text.GoTextFace
	sizes  []int
}

// NewFaceCache parses the bundled M+ 1p font, which covers Latin, symbols
// and the Katakana block.
func NewFaceCache() (*FaceCache, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
	if err != nil {
		return nil, fmt.Errorf("parse bundled font: %w", err)
	}
	return &FaceCache{
		source: src,
		faces:  map[int]*text.GoTextFace{},
	}, nil
}

// Preload replaces the cache with faces for every other size in
// [minSize, maxSize].
func (fc *FaceCache) Preload(minSize, maxSize int) {
	fc.faces = map[int]*text.GoTextFace{}
	fc.sizes = fc.sizes[:0]
	for size := minSize; size <= maxSize; size += preloadStep {
		fc.faces[size] = &text.GoTextFace{Source: fc.source, Size: float64(size)}
		fc.sizes = append(fc.sizes, size)
	}
}

// Face returns the cached face closest to size, or nil when nothing has been
// preloaded.
func (fc *FaceCache) Face(size int) *text.GoTextFace {
	if f, ok := fc.faces[size]; ok {
		return f
	}
	nearest, ok := nearestSize(fc.sizes, size)
	if !ok {
		return nil
	}
	return fc.faces[nearest]
}

// Label returns an exact-size face for UI text, independent of the rain
// size range.
func (fc *FaceCache) Label(size int) *text.GoTextFace {
	return &text.GoTextFace{Source: fc.source, Size: float64(size)}
}

func nearestSize(sizes []int, want int) (int, bool) {
	if len(sizes) == 0 {
		return 0, false
	}
	best := sizes[0]
	for _, s := range sizes[1:] {
		if abs(s-want) < abs(best-want) {
			best = s
		}
	}
	return best, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
