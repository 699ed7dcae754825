package spriteframe

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws onto an *ebiten.Image with the ebiten vector package.
// Clipping uses SubImage, which keeps the parent's coordinate space.
type EbitenSurface struct {
	dst *ebiten.Image
	// Antialias enables anti-aliased shape edges.
	Antialias bool

	op    ebiten.DrawImageOptions
	cache map[image.Image]*ebiten.Image
}

// NewEbitenSurface wraps dst.
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{dst: dst, Antialias: true}
}

// Target returns the wrapped image.
func (s *EbitenSurface) Target() *ebiten.Image {
	return s.dst
}

// SetTarget points the surface at a new image, keeping the upload cache.
func (s *EbitenSurface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// Bounds implements Surface.
func (s *EbitenSurface) Bounds() Rect {
	return rectFromBounds(s.dst.Bounds())
}

// Clear implements Surface.
func (s *EbitenSurface) Clear() {
	s.dst.Clear()
}

// clipped returns the part of the target inside clip, or nil when nothing
// is left.
func (s *EbitenSurface) clipped(clip Rect) *ebiten.Image {
	r := clip.Bounds().Intersect(s.dst.Bounds())
	if r.Empty() {
		return nil
	}
	if r == s.dst.Bounds() {
		return s.dst
	}
	return s.dst.SubImage(r).(*ebiten.Image)
}

// FillRect implements Surface.
func (s *EbitenSurface) FillRect(r Rect, c Color, clip Rect) {
	if dst := s.clipped(clip); dst != nil {
		vector.DrawFilledRect(dst, float32(r.Left()), float32(r.Top()),
			float32(r.Width()), float32(r.Height()), c.RGBA8(), s.Antialias)
	}
}

// StrokeRect implements Surface.
func (s *EbitenSurface) StrokeRect(r Rect, c Color, width float64, clip Rect) {
	if dst := s.clipped(clip); dst != nil {
		vector.StrokeRect(dst, float32(r.Left()), float32(r.Top()),
			float32(r.Width()), float32(r.Height()), float32(width), c.RGBA8(), s.Antialias)
	}
}

// FillCircle implements Surface.
func (s *EbitenSurface) FillCircle(center Vec2, radius float64, c Color, clip Rect) {
	if dst := s.clipped(clip); dst != nil {
		vector.DrawFilledCircle(dst, float32(center.X), float32(center.Y), float32(radius), c.RGBA8(), s.Antialias)
	}
}

// StrokeCircle implements Surface.
func (s *EbitenSurface) StrokeCircle(center Vec2, radius float64, c Color, width float64, clip Rect) {
	if dst := s.clipped(clip); dst != nil {
		vector.StrokeCircle(dst, float32(center.X), float32(center.Y), float32(radius),
			float32(width), c.RGBA8(), s.Antialias)
	}
}

// DrawImage implements Surface. Images that are not already ebiten images
// are uploaded on first use and cached by identity.
func (s *EbitenSurface) DrawImage(img image.Image, dst Rect, clip Rect) {
	target := s.clipped(clip)
	if target == nil {
		return
	}
	src := s.upload(img)
	b := src.Bounds()
	if b.Empty() {
		return
	}
	op := &s.op
	op.GeoM.Reset()
	op.GeoM.Translate(-float64(b.Min.X), -float64(b.Min.Y))
	op.GeoM.Scale(dst.Width()/float64(b.Dx()), dst.Height()/float64(b.Dy()))
	op.GeoM.Translate(dst.Left(), dst.Top())
	op.Filter = ebiten.FilterLinear
	target.DrawImage(src, op)
}

func (s *EbitenSurface) upload(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if e, ok := s.cache[img]; ok {
		return e
	}
	if s.cache == nil {
		s.cache = make(map[image.Image]*ebiten.Image)
	}
	e := ebiten.NewImageFromImage(img)
	s.cache[img] = e
	return e
}

// Forget drops the uploaded copy of img, if any.
func (s *EbitenSurface) Forget(img image.Image) {
	if e, ok := s.cache[img]; ok {
		e.Deallocate()
		delete(s.cache, img)
	}
}
