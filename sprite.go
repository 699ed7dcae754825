package spriteframe

import (
	"image"
	"math"

	"github.com/phanxgames/spriteframe/internal/ids"
)

// Sprite is a placed image: an image handle plus the rect it is drawn into.
// The rect is replaced (never mutated in place) as the sprite is dragged.
type Sprite struct {
	ID    string
	Image image.Image
	Rect  Rect
}

// NewSprite creates a sprite with a fresh ID drawn at rect.
func NewSprite(img image.Image, rect Rect) *Sprite {
	return &Sprite{ID: ids.NewSpriteID(), Image: img, Rect: rect}
}

// IntentAt classifies p against the sprite's handles.
func (s *Sprite) IntentAt(p Vec2, margin Vec2) Intent {
	return ClassifyIntent(s.Rect, margin, p)
}

// ImageSize returns the pixel dimensions of img, or zero for a nil image.
func ImageSize(img image.Image) Vec2 {
	if img == nil {
		return Vec2{}
	}
	b := img.Bounds()
	return Vec2{float64(b.Dx()), float64(b.Dy())}
}

// FitRect returns the rect an image of the given size occupies when dropped
// into frame: scaled down (never up) until it fits both dimensions, then
// centered. Degenerate sizes pass through as degenerate rects.
func FitRect(size Vec2, frame Frame) Rect {
	scale := math.Min(1, math.Min(frame.Width/size.X, frame.Height/size.Y))
	if math.IsNaN(scale) {
		scale = 1
	}
	scaled := size.Mul(scale)
	pos := frame.Size().Sub(scaled).Mul(0.5)
	return RectAt(pos, scaled)
}
