package spriteframe

import (
	"image"
	"time"
)

// Surface is a drawing backend. Coordinates are surface pixels. Every call
// carries the resolved clip; implementations must not draw outside it.
// Surfaces keep no style state between calls.
type Surface interface {
	// Bounds returns the drawable area of the surface.
	Bounds() Rect
	// Clear erases the whole surface to transparent, ignoring any clip.
	Clear()
	FillRect(r Rect, c Color, clip Rect)
	// StrokeRect outlines r with a line of the given width centered on its
	// edges.
	StrokeRect(r Rect, c Color, width float64, clip Rect)
	FillCircle(center Vec2, radius float64, c Color, clip Rect)
	StrokeCircle(center Vec2, radius float64, c Color, width float64, clip Rect)
	// DrawImage scales img into dst.
	DrawImage(img image.Image, dst Rect, clip Rect)
}

// renderState is the scope state saved and restored around every primitive
// and every clip scope.
type renderState struct {
	clip      Rect
	lineWidth float64
}

// Renderer replays draw lists onto surfaces. It is cheap to keep around and
// reuse; its state stack is rebuilt on every Draw.
type Renderer struct {
	// View maps frame-local list coordinates to surface pixels.
	View View

	stack []renderState
	stats debugStats
}

// NewRenderer returns a renderer with the identity view.
func NewRenderer() *Renderer {
	return &Renderer{View: IdentityView}
}

// Draw replays every instruction of l onto s in order. A full redraw happens
// on every call; replaying the same list twice yields the same pixels.
// Primitives with an empty rect or a non-positive radius are skipped.
func (r *Renderer) Draw(s Surface, l *DrawList) {
	var t0 time.Time
	if globalDebug {
		r.stats = debugStats{opCount: len(l.ops)}
		t0 = time.Now()
	}

	r.stack = append(r.stack[:0], renderState{clip: s.Bounds(), lineWidth: 1})

	for i := range l.ops {
		op := &l.ops[i]
		switch op.Kind {
		case OpClear:
			s.Clear()
		case OpPushClip:
			r.save()
			top := r.top()
			top.clip = top.clip.Intersect(r.View.RectToSurface(op.Rect))
			if globalDebug {
				r.stats.maxDepth = max(r.stats.maxDepth, len(r.stack)-1)
				debugCheckClipDepth(len(r.stack) - 1)
			}
		case OpPopClip:
			if len(r.stack) <= 1 {
				panic("spriteframe: pop of a clip scope that was never pushed")
			}
			r.restore()
		default:
			r.isolate(func(st *renderState) { r.primitive(s, op, st) })
		}
	}

	if len(r.stack) != 1 {
		panic("spriteframe: draw list ended with unclosed clip scopes")
	}

	if globalDebug {
		r.stats.replayTime = time.Since(t0)
		r.stats.log()
	}
}

func (r *Renderer) primitive(s Surface, op *DrawOp, st *renderState) {
	if op.Paint.LineWidth > 0 {
		st.lineWidth = op.Paint.LineWidth
	}
	if st.clip.Empty() {
		r.skip()
		return
	}
	switch op.Kind {
	case OpFillRect, OpStrokeRect, OpImage:
		if op.Rect.Empty() {
			r.skip()
			return
		}
		dst := r.View.RectToSurface(op.Rect)
		switch op.Kind {
		case OpFillRect:
			s.FillRect(dst, op.Paint.Color, st.clip)
		case OpStrokeRect:
			s.StrokeRect(dst, op.Paint.Color, st.lineWidth, st.clip)
		case OpImage:
			if op.Image == nil || op.Image.Bounds().Empty() {
				r.skip()
				return
			}
			s.DrawImage(op.Image, dst, st.clip)
		}
	case OpFillCircle, OpStrokeCircle:
		if !(op.Radius > 0) {
			r.skip()
			return
		}
		center := r.View.ToSurface(op.Center)
		radius := op.Radius * r.View.zoom()
		if op.Kind == OpFillCircle {
			s.FillCircle(center, radius, op.Paint.Color, st.clip)
		} else {
			s.StrokeCircle(center, radius, op.Paint.Color, st.lineWidth, st.clip)
		}
	}
	if globalDebug {
		r.stats.drawn++
	}
}

func (r *Renderer) skip() {
	if globalDebug {
		r.stats.skipped++
	}
}

func (r *Renderer) top() *renderState {
	return &r.stack[len(r.stack)-1]
}

func (r *Renderer) save() {
	r.stack = append(r.stack, *r.top())
}

func (r *Renderer) restore() {
	r.stack = r.stack[:len(r.stack)-1]
}

// isolate runs fn against a saved copy of the current state and restores it
// afterwards, so nothing fn changes leaks into the next primitive.
func (r *Renderer) isolate(fn func(st *renderState)) {
	r.save()
	fn(r.top())
	r.restore()
}
