package spriteframe

import (
	"image"
	"math"
)

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API. Values are immutable; every operation returns a new
// vector.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{x, y} }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul scales both components by s.
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Div divides both components by s. Division by zero follows IEEE semantics
// (Inf/NaN); in debug mode it panics, since callers must never pass zero.
func (v Vec2) Div(s float64) Vec2 {
	if globalDebug && s == 0 {
		panic("spriteframe: Vec2.Div by zero")
	}
	return Vec2{v.X / s, v.Y / s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Rect is an axis-aligned rectangle described by its top-left position and
// its size. The coordinate system has its origin at the top-left, with Y
// increasing downward.
//
// Size components may become negative as the result of edge shifts; no
// clamping is done here. Such a rect is Empty and is never drawn.
type Rect struct {
	Position Vec2
	Size     Vec2
}

// RectOf builds a rect from left, top, width and height.
func RectOf(left, top, width, height float64) Rect {
	return Rect{Position: Vec2{left, top}, Size: Vec2{width, height}}
}

// RectAt builds a rect from a position and a size.
func RectAt(position, size Vec2) Rect {
	return Rect{Position: position, Size: size}
}

// RectSized builds a rect of the given size at the origin.
func RectSized(size Vec2) Rect {
	return Rect{Size: size}
}

func (r Rect) Left() float64   { return r.Position.X }
func (r Rect) Top() float64    { return r.Position.Y }
func (r Rect) Right() float64  { return r.Position.X + r.Size.X }
func (r Rect) Bottom() float64 { return r.Position.Y + r.Size.Y }
func (r Rect) Width() float64  { return r.Size.X }
func (r Rect) Height() float64 { return r.Size.Y }

// Center returns the midpoint of the rect.
func (r Rect) Center() Vec2 {
	return r.Position.Add(r.Size.Div(2))
}

// Empty reports whether the rect has a non-positive width or height
// (including NaN extents).
func (r Rect) Empty() bool {
	return !(r.Size.X > 0) || !(r.Size.Y > 0)
}

// Contains reports whether p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() <= other.Right() &&
		r.Right() >= other.Left() &&
		r.Top() <= other.Bottom() &&
		r.Bottom() >= other.Top()
}

// Intersect returns the overlapping region of r and other. When they do not
// overlap the result is Empty.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left(), other.Left())
	top := math.Max(r.Top(), other.Top())
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}
	return RectOf(left, top, right-left, bottom-top)
}

// WithWidth returns r with its width replaced; the position is kept.
func (r Rect) WithWidth(width float64) Rect {
	r.Size.X = width
	return r
}

// WithHeight returns r with its height replaced; the position is kept.
func (r Rect) WithHeight(height float64) Rect {
	r.Size.Y = height
	return r
}

// MovedBy translates the rect by offset without resizing it.
func (r Rect) MovedBy(offset Vec2) Rect {
	r.Position = r.Position.Add(offset)
	return r
}

// MovedTo places the rect's top-left corner at position.
func (r Rect) MovedTo(position Vec2) Rect {
	r.Position = position
	return r
}

// ExtendedBy grows the rect by margin on every side.
func (r Rect) ExtendedBy(margin Vec2) Rect {
	return Rect{
		Position: r.Position.Sub(margin),
		Size:     r.Size.Add(margin.Mul(2)),
	}
}

// ShrunkBy shrinks the rect by margin on every side.
func (r Rect) ShrunkBy(margin Vec2) Rect {
	return r.ExtendedBy(margin.Neg())
}

// LeftShiftedBy moves the left edge by d, holding the right edge fixed.
// A positive d shrinks the rect from the left.
func (r Rect) LeftShiftedBy(d float64) Rect {
	r.Position.X += d
	r.Size.X -= d
	return r
}

// RightShiftedBy moves the right edge by d, holding the left edge fixed.
func (r Rect) RightShiftedBy(d float64) Rect {
	r.Size.X += d
	return r
}

// TopShiftedBy moves the top edge by d, holding the bottom edge fixed.
func (r Rect) TopShiftedBy(d float64) Rect {
	r.Position.Y += d
	r.Size.Y -= d
	return r
}

// BottomShiftedBy moves the bottom edge by d, holding the top edge fixed.
func (r Rect) BottomShiftedBy(d float64) Rect {
	r.Size.Y += d
	return r
}

// Bounds converts the rect to an integer image.Rectangle, rounding each edge
// to the nearest pixel. Empty rects yield an empty rectangle.
func (r Rect) Bounds() image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Round(r.Left())), int(math.Round(r.Top())),
		int(math.Round(r.Right())), int(math.Round(r.Bottom())),
	)
}

// rectFromBounds converts an integer rectangle back to a Rect.
func rectFromBounds(b image.Rectangle) Rect {
	return RectOf(float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy()))
}
