package spriteframe

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// ErrUnknownSprite is returned when an operation names a sprite ID that is
// not in the editor.
var ErrUnknownSprite = errors.New("spriteframe: unknown sprite")

// DefaultMinSize is the smallest extent a drag may resize a sprite to.
var DefaultMinSize = Vec2{1, 1}

// Target is a sprite together with the intent a pointer position affords on
// it.
type Target struct {
	Sprite *Sprite
	Intent Intent
}

// dragState is the interaction state machine: idle when active is false,
// otherwise dragging spriteID with intent.
type dragState struct {
	active   bool
	spriteID string
	intent   Intent
}

// Editor owns the frame, the sprites in paint order, the selection, and the
// pointer drag state. All mutation happens synchronously inside its methods;
// OnChange callbacks fire after each one.
type Editor struct {
	frame    Frame
	sprites  []*Sprite
	selected string
	drag     dragState

	margin  Vec2
	minSize Vec2

	handlers handlerRegistry
}

// NewEditor creates an empty editor for the given frame.
func NewEditor(frame Frame) *Editor {
	return &Editor{
		frame:   frame,
		margin:  DefaultHandleMargin,
		minSize: DefaultMinSize,
	}
}

// SetHandleMargin sets the half-width of the resize hit bands.
func (e *Editor) SetHandleMargin(margin Vec2) {
	e.margin = margin
}

// HandleMargin returns the current resize hit band half-width.
func (e *Editor) HandleMargin() Vec2 {
	return e.margin
}

// SetMinSize sets the smallest width and height a resize drag may produce.
// A zero component disables clamping on that axis, which lets a drag invert
// the rect.
func (e *Editor) SetMinSize(size Vec2) {
	e.minSize = size
}

// Frame returns the current frame.
func (e *Editor) Frame() Frame {
	return e.frame
}

// SetFrame resizes the frame. Sprites keep their rects.
func (e *Editor) SetFrame(frame Frame) {
	if frame == e.frame {
		return
	}
	e.frame = frame
	e.emit(ChangeFrame, "")
}

// Sprites returns the sprites in paint order (back to front). The returned
// slice MUST NOT be mutated.
func (e *Editor) Sprites() []*Sprite {
	return e.sprites
}

// Sprite returns the sprite with the given ID.
func (e *Editor) Sprite(id string) (*Sprite, bool) {
	for _, s := range e.sprites {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// AddSprite fits img into the frame and appends it on top of the paint order.
func (e *Editor) AddSprite(img image.Image) *Sprite {
	s := NewSprite(img, FitRect(ImageSize(img), e.frame))
	e.sprites = append(e.sprites, s)
	if globalDebug {
		debugf("add sprite %s at %v", s.ID, s.Rect)
	}
	e.emit(ChangeSpriteAdded, s.ID)
	return s
}

// Selected returns the selected sprite, or nil.
func (e *Editor) Selected() *Sprite {
	if e.selected == "" {
		return nil
	}
	s, ok := e.Sprite(e.selected)
	if !ok {
		panic(fmt.Sprintf("spriteframe: selection %q references a missing sprite", e.selected))
	}
	return s
}

// Select makes the sprite with the given ID the selection. Like
// ClearSelection it does nothing while a drag is in progress, so the dragged
// sprite stays the selected one.
func (e *Editor) Select(id string) error {
	if _, ok := e.Sprite(id); !ok {
		return fmt.Errorf("select %q: %w", id, ErrUnknownSprite)
	}
	if e.drag.active {
		if globalDebug {
			debugf("select %s ignored: drag on %s in progress", id, e.drag.spriteID)
		}
		return nil
	}
	e.setSelected(id)
	return nil
}

// ClearSelection deselects any sprite. It does not end an active drag.
func (e *Editor) ClearSelection() {
	if e.drag.active {
		return
	}
	e.setSelected("")
}

func (e *Editor) setSelected(id string) {
	if e.selected == id {
		return
	}
	e.selected = id
	e.emit(ChangeSelection, id)
}

// Dragging reports whether a drag is in progress.
func (e *Editor) Dragging() bool {
	return e.drag.active
}

// ActiveIntent returns the intent of the drag in progress, or IntentNone
// while idle.
func (e *Editor) ActiveIntent() Intent {
	if !e.drag.active {
		return IntentNone
	}
	return e.drag.intent
}

// FindTarget resolves which sprite responds to a pointer at p. The selected
// sprite is tested first and wins whenever it yields an intent, regardless of
// paint order; otherwise sprites are scanned topmost first.
func (e *Editor) FindTarget(p Vec2) (Target, bool) {
	if sel := e.Selected(); sel != nil {
		if intent := sel.IntentAt(p, e.margin); intent != IntentNone {
			return Target{Sprite: sel, Intent: intent}, true
		}
	}
	for i := len(e.sprites) - 1; i >= 0; i-- {
		s := e.sprites[i]
		if intent := s.IntentAt(p, e.margin); intent != IntentNone {
			return Target{Sprite: s, Intent: intent}, true
		}
	}
	return Target{}, false
}

// IntentAt returns the intent a pointer at p would start. It has no side
// effects; hosts call it on hover to pick a cursor.
func (e *Editor) IntentAt(p Vec2) Intent {
	t, ok := e.FindTarget(p)
	if !ok {
		return IntentNone
	}
	return t.Intent
}

// PointerDown starts a drag on the sprite under p and selects it. Pressing
// on empty space clears the selection. A press while already dragging is
// ignored; only one pointer is tracked.
func (e *Editor) PointerDown(p Vec2) {
	if e.drag.active {
		if globalDebug {
			debugf("pointer down at %v ignored: drag on %s in progress", p, e.drag.spriteID)
		}
		return
	}
	t, ok := e.FindTarget(p)
	if !ok {
		e.setSelected("")
		return
	}
	e.drag = dragState{active: true, spriteID: t.Sprite.ID, intent: t.Intent}
	e.setSelected(t.Sprite.ID)
}

// PointerMove applies the active intent to the dragged sprite using delta,
// the movement since the previous call. While idle it does nothing; abs is
// accepted so hosts can forward one event shape for both cases.
func (e *Editor) PointerMove(delta, abs Vec2) {
	if !e.drag.active {
		return
	}
	s, ok := e.Sprite(e.drag.spriteID)
	if !ok {
		panic(fmt.Sprintf("spriteframe: drag references missing sprite %q", e.drag.spriteID))
	}
	next := e.drag.intent.Apply(s.Rect, delta)
	next = clampResize(s.Rect, next, e.drag.intent, e.minSize)
	if next == s.Rect {
		return
	}
	s.Rect = next
	if globalDebug {
		debugf("%s %s by %v -> %v (pointer %v)", e.drag.intent, s.ID, delta, next, abs)
	}
	e.emit(ChangeRect, s.ID)
}

// PointerUp ends any drag in progress. The selection is kept.
func (e *Editor) PointerUp() {
	if !e.drag.active {
		return
	}
	id := e.drag.spriteID
	e.drag = dragState{}
	e.emit(ChangeDragEnd, id)
}

// clampResize keeps a resized rect at least minSize wide and tall, pinning
// the edge opposite the one being dragged. A rect already below the minimum
// may grow toward it but is never shrunk further. A NaN extent keeps the
// previous one. Moves are never clamped.
func clampResize(prev, next Rect, intent Intent, minSize Vec2) Rect {
	if !intent.Resizes() {
		return next
	}
	if minSize.X > 0 && intent&(intentLeft|intentRight) != 0 && !(next.Width() >= minSize.X) {
		w := clampExtent(prev.Width(), next.Width(), minSize.X)
		next.Position.X = prev.Left()
		if intent&intentLeft != 0 {
			next.Position.X = prev.Right() - w
		}
		next.Size.X = w
	}
	if minSize.Y > 0 && intent&(intentTop|intentBottom) != 0 && !(next.Height() >= minSize.Y) {
		h := clampExtent(prev.Height(), next.Height(), minSize.Y)
		next.Position.Y = prev.Top()
		if intent&intentTop != 0 {
			next.Position.Y = prev.Bottom() - h
		}
		next.Size.Y = h
	}
	return next
}

// clampExtent returns next raised to the smaller of minimum and prev.
func clampExtent(prev, next, minimum float64) float64 {
	if math.IsNaN(next) {
		return prev
	}
	lo := math.Min(minimum, prev)
	if next > lo {
		return next
	}
	return lo
}
