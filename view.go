package spriteframe

import "math"

// View maps frame-local coordinates to surface pixels:
//
//	surface = frame*Zoom + Offset
//
// The editor always works in frame-local space; hosts convert raw pointer
// positions with ToFrame and DeltaToFrame before calling it.
type View struct {
	// Offset is where the frame origin lands on the surface.
	Offset Vec2
	// Zoom is the scale factor (1.0 = one frame unit per pixel). Zero or
	// negative values are treated as 1.
	Zoom float64
}

// IdentityView maps frame coordinates straight to surface pixels.
var IdentityView = View{Zoom: 1}

// CenteredView returns a view that centers frame on a surface of the given
// pixel size. A zoom of zero fits the frame to the surface without ever
// scaling it up.
func CenteredView(frame Frame, surfaceW, surfaceH, zoom float64) View {
	if !(zoom > 0) {
		zoom = 1
		if frame.Width > 0 && frame.Height > 0 {
			zoom = math.Min(1, math.Min(surfaceW/frame.Width, surfaceH/frame.Height))
		}
	}
	return View{
		Offset: Vec2{
			X: math.Floor((surfaceW - frame.Width*zoom) / 2),
			Y: math.Floor((surfaceH - frame.Height*zoom) / 2),
		},
		Zoom: zoom,
	}
}

func (v View) zoom() float64 {
	if v.Zoom > 0 {
		return v.Zoom
	}
	return 1
}

// ToSurface converts a frame-local point to surface pixels.
func (v View) ToSurface(p Vec2) Vec2 {
	return p.Mul(v.zoom()).Add(v.Offset)
}

// ToFrame converts a surface pixel position to frame-local coordinates.
func (v View) ToFrame(p Vec2) Vec2 {
	return p.Sub(v.Offset).Div(v.zoom())
}

// RectToSurface converts a frame-local rect to surface pixels.
func (v View) RectToSurface(r Rect) Rect {
	return Rect{Position: v.ToSurface(r.Position), Size: r.Size.Mul(v.zoom())}
}

// DeltaToFrame converts a pointer movement in surface pixels to a
// frame-local delta. Offsets do not apply to deltas.
func (v View) DeltaToFrame(d Vec2) Vec2 {
	return d.Div(v.zoom())
}
