// Package term runs the sprite editor in a terminal. Each character cell
// shows two vertically stacked pixels using the upper half block glyph, so
// a cols×rows screen is a cols×(2·rows) pixel surface.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/spriteframe"
)

// halfBlock paints the upper pixel as foreground and the lower one as
// background.
const halfBlock = '▀'

// Surface is a raster surface sized in terminal cells.
type Surface struct {
	*spriteframe.RasterSurface
	cols, rows int
}

// NewSurface creates a surface covering cols×rows cells.
func NewSurface(cols, rows int) *Surface {
	cols, rows = max(cols, 0), max(rows, 0)
	return &Surface{
		RasterSurface: spriteframe.NewRasterSurface(cols, rows*2),
		cols:          cols,
		rows:          rows,
	}
}

// Cells returns the surface size in cells.
func (s *Surface) Cells() (cols, rows int) {
	return s.cols, s.rows
}

// Resize changes the cell size, clearing the pixels.
func (s *Surface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 0), max(rows, 0)
	s.RasterSurface.Resize(s.cols, s.rows*2)
}

// Flush writes every cell to screen starting at row top, flattening pixels
// over the opaque canvas color. It does not call Show.
func (s *Surface) Flush(screen tcell.Screen, top int, canvas color.RGBA) {
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			hi := flatten(s.At(x, 2*y), canvas)
			lo := flatten(s.At(x, 2*y+1), canvas)
			style := tcell.StyleDefault.Foreground(hi).Background(lo)
			screen.SetContent(x, top+y, halfBlock, nil, style)
		}
	}
}

// flatten composites a premultiplied pixel over an opaque canvas.
func flatten(p, canvas color.RGBA) tcell.Color {
	inv := 255 - int32(p.A)
	r := int32(p.R) + int32(canvas.R)*inv/255
	g := int32(p.G) + int32(canvas.G)*inv/255
	b := int32(p.B) + int32(canvas.B)*inv/255
	return tcell.NewRGBColor(r, g, b)
}
