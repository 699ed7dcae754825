package spriteframe

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statusText summarizes the editor state in one line.
func statusText(ed *Editor, hover Intent) string {
	f := ed.Frame()
	sel := "none"
	if s := ed.Selected(); s != nil {
		r := s.Rect
		sel = fmt.Sprintf("%s %.0fx%.0f@%.0f,%.0f", s.ID, r.Width(), r.Height(), r.Left(), r.Top())
	}
	return fmt.Sprintf("frame %.0fx%.0f | sprites %d | selected %s | %s",
		f.Width, f.Height, len(ed.Sprites()), sel, hover)
}

// statusLine is a translucent text strip redrawn at most every 0.25s.
type statusLine struct {
	img        *ebiten.Image
	text       string
	lastUpdate float64
}

func (s *statusLine) update(dt float64, text string) {
	s.lastUpdate += dt
	if s.img != nil && (s.lastUpdate < 0.25 || text == s.text) {
		return
	}
	s.lastUpdate = 0
	s.text = text
	w := max(len(text)*6+8, 16)
	if s.img == nil || s.img.Bounds().Dx() < w {
		if s.img != nil {
			s.img.Deallocate()
		}
		s.img = ebiten.NewImage(w, 16)
	}
	s.img.Clear()
	s.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(s.img, text)
}

func (s *statusLine) draw(screen *ebiten.Image) {
	if s.img == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(0, float64(screen.Bounds().Dy()-s.img.Bounds().Dy()))
	screen.DrawImage(s.img, &op)
}
