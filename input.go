package spriteframe

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSample is one reading of the primary pointer in surface pixels.
// JustPressed marks the first sample of a press.
type PointerSample struct {
	Pos         Vec2
	Pressed     bool
	JustPressed bool
}

// readMouse samples the left mouse button and cursor position.
func readMouse() PointerSample {
	mx, my := ebiten.CursorPosition()
	return PointerSample{
		Pos:         Vec2{float64(mx), float64(my)},
		Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// PointerCapture routes a press-drag-release sequence to the editor. The
// capture is taken on press and held until the button is observed up,
// wherever the cursor is, so a drag released outside the frame or the
// window still reaches PointerUp.
type PointerCapture struct {
	held bool
	last Vec2
}

// Feed advances the capture by one sample and forwards the resulting
// transitions to ed, converting surface pixels through view. It reports
// whether a transition happened.
func (c *PointerCapture) Feed(ed *Editor, view View, s PointerSample) bool {
	switch {
	case !c.held && s.Pressed && s.JustPressed:
		c.held = true
		c.last = s.Pos
		ed.PointerDown(view.ToFrame(s.Pos))
		return true
	case c.held && s.Pressed:
		d := s.Pos.Sub(c.last)
		if d == (Vec2{}) {
			return false
		}
		c.last = s.Pos
		ed.PointerMove(view.DeltaToFrame(d), view.ToFrame(s.Pos))
		return true
	case c.held && !s.Pressed:
		c.held = false
		ed.PointerUp()
		return true
	}
	return false
}

// HoverIntent is the intent that picks the cursor glyph: the active drag's
// intent while captured, otherwise whatever lies under the pointer.
func (c *PointerCapture) HoverIntent(ed *Editor, view View, pos Vec2) Intent {
	if ed.Dragging() {
		return ed.ActiveIntent()
	}
	return ed.IntentAt(view.ToFrame(pos))
}

// Held reports whether a press is being tracked.
func (c *PointerCapture) Held() bool {
	return c.held
}
