package spriteframe

import "image"

// OpKind identifies the kind of draw instruction.
type OpKind uint8

const (
	OpClear        OpKind = iota // clear the whole surface
	OpFillRect                   // fill Rect with Paint.Color
	OpStrokeRect                 // outline Rect with Paint.Color and Paint.LineWidth
	OpFillCircle                 // fill the circle at Center with Radius
	OpStrokeCircle               // outline the circle at Center with Radius
	OpImage                      // blit Image scaled into Rect
	OpPushClip                   // open a clip scope restricted to Rect
	OpPopClip                    // close the innermost clip scope
)

// String returns a short lower-case name for the op.
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFillRect:
		return "fill-rect"
	case OpStrokeRect:
		return "stroke-rect"
	case OpFillCircle:
		return "fill-circle"
	case OpStrokeCircle:
		return "stroke-circle"
	case OpImage:
		return "image"
	case OpPushClip:
		return "push-clip"
	case OpPopClip:
		return "pop-clip"
	default:
		return "unknown"
	}
}

// Paint is the style of a single primitive. A zero LineWidth inherits the
// enclosing scope's line width (1 by default).
type Paint struct {
	Color     Color
	LineWidth float64
}

// DrawOp is a single draw instruction. Which fields are meaningful depends
// on Kind.
type DrawOp struct {
	Kind   OpKind
	Rect   Rect
	Center Vec2
	Radius float64
	Image  image.Image
	Paint  Paint
}

// DrawList is an ordered list of draw instructions. Paint order is list
// order: later ops draw over earlier ones. Clip scopes are only opened
// through Clip, so push and pop are always balanced.
type DrawList struct {
	ops   []DrawOp
	depth int
}

// NewDrawList returns an empty list.
func NewDrawList() *DrawList {
	return &DrawList{ops: make([]DrawOp, 0, 32)}
}

// Reset empties the list, keeping its capacity.
func (l *DrawList) Reset() {
	l.ops = l.ops[:0]
	l.depth = 0
}

// Ops returns the instructions in order. The returned slice MUST NOT be
// mutated.
func (l *DrawList) Ops() []DrawOp {
	return l.ops
}

// Len returns the number of instructions.
func (l *DrawList) Len() int {
	return len(l.ops)
}

// Clear appends an instruction clearing the whole surface.
func (l *DrawList) Clear() {
	l.ops = append(l.ops, DrawOp{Kind: OpClear})
}

// FillRect appends a filled rectangle.
func (l *DrawList) FillRect(r Rect, p Paint) {
	l.ops = append(l.ops, DrawOp{Kind: OpFillRect, Rect: r, Paint: p})
}

// StrokeRect appends a rectangle outline centered on r's edges.
func (l *DrawList) StrokeRect(r Rect, p Paint) {
	l.ops = append(l.ops, DrawOp{Kind: OpStrokeRect, Rect: r, Paint: p})
}

// FillCircle appends a filled circle.
func (l *DrawList) FillCircle(center Vec2, radius float64, p Paint) {
	l.ops = append(l.ops, DrawOp{Kind: OpFillCircle, Center: center, Radius: radius, Paint: p})
}

// StrokeCircle appends a circle outline.
func (l *DrawList) StrokeCircle(center Vec2, radius float64, p Paint) {
	l.ops = append(l.ops, DrawOp{Kind: OpStrokeCircle, Center: center, Radius: radius, Paint: p})
}

// DrawImage appends a blit of img scaled into dst.
func (l *DrawList) DrawImage(img image.Image, dst Rect) {
	l.ops = append(l.ops, DrawOp{Kind: OpImage, Rect: dst, Image: img})
}

// Clip opens a clip scope restricted to r, runs fn (which appends to this
// same list), and closes the scope. Scopes nest: drawing inside is limited to
// the intersection of every enclosing clip.
func (l *DrawList) Clip(r Rect, fn func()) {
	l.ops = append(l.ops, DrawOp{Kind: OpPushClip, Rect: r})
	l.depth++
	fn()
	l.depth--
	l.ops = append(l.ops, DrawOp{Kind: OpPopClip})
}

// Depth returns the number of clip scopes currently open while building.
func (l *DrawList) Depth() int {
	return l.depth
}
