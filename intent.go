package spriteframe

import "github.com/hajimehoshi/ebiten/v2"

// DefaultHandleMargin is the half-width of the hit band centered on each
// sprite edge. Corners are where two bands cross.
var DefaultHandleMargin = Vec2{20, 20}

// Intent is the interaction a pointer position affords on a sprite: move the
// whole rect, or drag one or two of its edges. It is a bitmask of edges, so a
// corner intent is the union of its two edge intents.
type Intent uint8

const (
	intentLeft Intent = 1 << iota
	intentRight
	intentTop
	intentBottom
	intentMove
)

const (
	IntentNone              Intent = 0
	IntentMove                     = intentMove
	IntentResizeLeft               = intentLeft
	IntentResizeRight              = intentRight
	IntentResizeTop                = intentTop
	IntentResizeBottom             = intentBottom
	IntentResizeTopLeft            = intentTop | intentLeft
	IntentResizeTopRight           = intentTop | intentRight
	IntentResizeBottomLeft         = intentBottom | intentLeft
	IntentResizeBottomRight        = intentBottom | intentRight
)

// String returns the camel-case intent name, or "none".
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentMove:
		return "move"
	case IntentResizeLeft:
		return "resizeLeft"
	case IntentResizeRight:
		return "resizeRight"
	case IntentResizeTop:
		return "resizeTop"
	case IntentResizeBottom:
		return "resizeBottom"
	case IntentResizeTopLeft:
		return "resizeTopLeft"
	case IntentResizeTopRight:
		return "resizeTopRight"
	case IntentResizeBottomLeft:
		return "resizeBottomLeft"
	case IntentResizeBottomRight:
		return "resizeBottomRight"
	default:
		return "invalid"
	}
}

// Resizes reports whether the intent drags at least one edge.
func (i Intent) Resizes() bool {
	return i&(intentLeft|intentRight|intentTop|intentBottom) != 0
}

// Apply returns r mutated by delta according to the intent. Move translates;
// each edge bit shifts its edge along the matching delta axis, so a corner
// applies two shifts.
func (i Intent) Apply(r Rect, delta Vec2) Rect {
	if i&intentMove != 0 {
		return r.MovedBy(delta)
	}
	if i&intentLeft != 0 {
		r = r.LeftShiftedBy(delta.X)
	}
	if i&intentRight != 0 {
		r = r.RightShiftedBy(delta.X)
	}
	if i&intentTop != 0 {
		r = r.TopShiftedBy(delta.Y)
	}
	if i&intentBottom != 0 {
		r = r.BottomShiftedBy(delta.Y)
	}
	return r
}

// Cursor returns the ebiten cursor shape hinting at the intent.
func (i Intent) Cursor() ebiten.CursorShapeType {
	switch i {
	case IntentResizeTopLeft, IntentResizeBottomRight:
		return ebiten.CursorShapeNWSEResize
	case IntentResizeTopRight, IntentResizeBottomLeft:
		return ebiten.CursorShapeNESWResize
	case IntentResizeLeft, IntentResizeRight:
		return ebiten.CursorShapeEWResize
	case IntentResizeTop, IntentResizeBottom:
		return ebiten.CursorShapeNSResize
	case IntentMove:
		return ebiten.CursorShapeMove
	default:
		return ebiten.CursorShapeDefault
	}
}

// handleBands holds the four edge hit strips of a rect. Each strip is twice
// the margin wide, centered on its edge, and spans the extended rect along
// the edge.
type handleBands struct {
	left, right, top, bottom Rect
}

func bandsFor(r Rect, margin Vec2) handleBands {
	outer := r.ExtendedBy(margin)
	return handleBands{
		left:   RectOf(r.Left()-margin.X, outer.Top(), 2*margin.X, outer.Height()),
		right:  RectOf(r.Right()-margin.X, outer.Top(), 2*margin.X, outer.Height()),
		top:    RectOf(outer.Left(), r.Top()-margin.Y, outer.Width(), 2*margin.Y),
		bottom: RectOf(outer.Left(), r.Bottom()-margin.Y, outer.Width(), 2*margin.Y),
	}
}

// ClassifyIntent hit-tests p against the handles of r. Corners win over
// edges, and edges win over the interior; a point outside every band and
// outside r yields IntentNone.
func ClassifyIntent(r Rect, margin Vec2, p Vec2) Intent {
	b := bandsFor(r, margin)
	left, right := b.left.Contains(p), b.right.Contains(p)
	top, bottom := b.top.Contains(p), b.bottom.Contains(p)

	switch {
	case left && top:
		return IntentResizeTopLeft
	case left && bottom:
		return IntentResizeBottomLeft
	case right && top:
		return IntentResizeTopRight
	case right && bottom:
		return IntentResizeBottomRight
	case left:
		return IntentResizeLeft
	case right:
		return IntentResizeRight
	case top:
		return IntentResizeTop
	case bottom:
		return IntentResizeBottom
	case r.Contains(p):
		return IntentMove
	}
	return IntentNone
}
