package spriteframe

// Frame is the fixed-size visible and export area sprites are placed into.
// Its origin is always (0, 0) in frame-local space.
type Frame struct {
	Width, Height float64
}

// DefaultFrame is the frame a new editor starts with.
var DefaultFrame = Frame{Width: 640, Height: 360}

// Size returns the frame extent as a vector.
func (f Frame) Size() Vec2 { return Vec2{f.Width, f.Height} }

// Rect returns the frame as a rect anchored at the origin.
func (f Frame) Rect() Rect { return RectSized(f.Size()) }
