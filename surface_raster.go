package spriteframe

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve, as a fraction of the radius.
const kappa = 0.5522847498

// RasterSurface is a CPU Surface backed by an *image.RGBA. Shapes are
// anti-aliased coverage masks from golang.org/x/image/vector; images are
// scaled with golang.org/x/image/draw. It needs no GPU or window, which makes
// it the surface for export, the terminal host and tests.
type RasterSurface struct {
	img  *image.RGBA
	mask *image.Alpha
	z    *vector.Rasterizer
	// Filter scales images in DrawImage. Defaults to ApproxBiLinear.
	Filter xdraw.Scaler
}

// NewRasterSurface creates a transparent surface of w×h pixels.
func NewRasterSurface(w, h int) *RasterSurface {
	w, h = max(w, 0), max(h, 0)
	return &RasterSurface{
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		mask:   image.NewAlpha(image.Rect(0, 0, w, h)),
		z:      vector.NewRasterizer(w, h),
		Filter: xdraw.ApproxBiLinear,
	}
}

// Image returns the backing image. It is live: later draws change it.
func (s *RasterSurface) Image() *image.RGBA {
	return s.img
}

// Resize reallocates the surface if its size differs from w×h. The content
// is cleared either way.
func (s *RasterSurface) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if b := s.img.Bounds(); b.Dx() == w && b.Dy() == h {
		s.Clear()
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	s.mask = image.NewAlpha(image.Rect(0, 0, w, h))
}

// Bounds implements Surface.
func (s *RasterSurface) Bounds() Rect {
	return rectFromBounds(s.img.Bounds())
}

// Clear implements Surface.
func (s *RasterSurface) Clear() {
	clear(s.img.Pix)
}

// FillRect implements Surface.
func (s *RasterSurface) FillRect(r Rect, c Color, clip Rect) {
	s.fill(c, clip, func(p pather) {
		p.rect(r, false)
	})
}

// StrokeRect implements Surface.
func (s *RasterSurface) StrokeRect(r Rect, c Color, width float64, clip Rect) {
	if !(width > 0) {
		return
	}
	half := Vec2{width / 2, width / 2}
	outer, inner := r.ExtendedBy(half), r.ShrunkBy(half)
	s.fill(c, clip, func(p pather) {
		p.rect(outer, false)
		if !inner.Empty() {
			p.rect(inner, true)
		}
	})
}

// FillCircle implements Surface.
func (s *RasterSurface) FillCircle(center Vec2, radius float64, c Color, clip Rect) {
	s.fill(c, clip, func(p pather) {
		p.circle(center, radius, false)
	})
}

// StrokeCircle implements Surface.
func (s *RasterSurface) StrokeCircle(center Vec2, radius float64, c Color, width float64, clip Rect) {
	if !(width > 0) {
		return
	}
	s.fill(c, clip, func(p pather) {
		p.circle(center, radius+width/2, false)
		if in := radius - width/2; in > 0 {
			p.circle(center, in, true)
		}
	})
}

// DrawImage implements Surface.
func (s *RasterSurface) DrawImage(img image.Image, dst Rect, clip Rect) {
	cr := clip.Bounds().Intersect(s.img.Bounds())
	dr := dst.Bounds()
	if cr.Empty() || dr.Empty() || img == nil {
		return
	}
	sub := s.img.SubImage(cr).(*image.RGBA)
	f := s.Filter
	if f == nil {
		f = xdraw.ApproxBiLinear
	}
	f.Scale(sub, dr, img, img.Bounds(), xdraw.Over, nil)
}

// Dim scales the color of every pixel by factor in [0, 1], keeping alpha.
// Hosts apply it to the background pass.
func (s *RasterSurface) Dim(factor float64) {
	f := clamp01(factor)
	if f == 1 {
		return
	}
	cm := NewColorMatrixFilter()
	cm.SetDim(f)
	cm.ApplyRGBA(s.img)
}

// CompositeOver draws src over this surface, aligned at the origin.
func (s *RasterSurface) CompositeOver(src *RasterSurface) {
	xdraw.Draw(s.img, s.img.Bounds(), src.img, image.Point{}, xdraw.Over)
}

// At returns the color of the pixel at (x, y).
func (s *RasterSurface) At(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

// fill rasterizes the contours added by build, limited to clip, and composites
// c through the resulting coverage mask.
func (s *RasterSurface) fill(c Color, clip Rect, build func(p pather)) {
	cr := clip.Bounds().Intersect(s.img.Bounds())
	if cr.Empty() || !(c.A > 0) {
		return
	}
	s.z.Reset(cr.Dx(), cr.Dy())
	s.z.DrawOp = xdraw.Src
	build(pather{z: s.z, org: Vec2{float64(cr.Min.X), float64(cr.Min.Y)}})
	s.z.Draw(s.mask, cr, image.Opaque, image.Point{})
	xdraw.DrawMask(s.img, cr, image.NewUniform(c.RGBA8()), image.Point{}, s.mask, cr.Min, xdraw.Over)
}

// pather adds contours to a rasterizer whose origin sits at org in surface
// space. Forward contours run clockwise; reversed ones punch holes.
type pather struct {
	z   *vector.Rasterizer
	org Vec2
}

func (p pather) pt(x, y float64) (float32, float32) {
	return float32(x - p.org.X), float32(y - p.org.Y)
}

func (p pather) moveTo(x, y float64) {
	p.z.MoveTo(p.pt(x, y))
}

func (p pather) lineTo(x, y float64) {
	p.z.LineTo(p.pt(x, y))
}

func (p pather) cubeTo(bx, by, cx, cy, dx, dy float64) {
	x1, y1 := p.pt(bx, by)
	x2, y2 := p.pt(cx, cy)
	x3, y3 := p.pt(dx, dy)
	p.z.CubeTo(x1, y1, x2, y2, x3, y3)
}

func (p pather) rect(r Rect, reverse bool) {
	l, t, rr, b := r.Left(), r.Top(), r.Right(), r.Bottom()
	p.moveTo(l, t)
	if reverse {
		p.lineTo(l, b)
		p.lineTo(rr, b)
		p.lineTo(rr, t)
	} else {
		p.lineTo(rr, t)
		p.lineTo(rr, b)
		p.lineTo(l, b)
	}
	p.z.ClosePath()
}

func (p pather) circle(c Vec2, r float64, reverse bool) {
	k := kappa * r
	x, y := c.X, c.Y
	p.moveTo(x+r, y)
	if reverse {
		p.cubeTo(x+r, y-k, x+k, y-r, x, y-r)
		p.cubeTo(x-k, y-r, x-r, y-k, x-r, y)
		p.cubeTo(x-r, y+k, x-k, y+r, x, y+r)
		p.cubeTo(x+k, y+r, x+r, y+k, x+r, y)
	} else {
		p.cubeTo(x+r, y+k, x+k, y+r, x, y+r)
		p.cubeTo(x-k, y+r, x-r, y+k, x-r, y)
		p.cubeTo(x-r, y-k, x-k, y-r, x, y-r)
		p.cubeTo(x+k, y-r, x+r, y-k, x+r, y)
	}
	p.z.ClosePath()
}
