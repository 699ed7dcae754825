package spriteframe

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a surface submits the color.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is opaque white.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBlack is opaque black.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorTransparent is fully transparent black.
	ColorTransparent = Color{}
)

// WithAlpha returns c with its alpha component replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGBA8 returns the color as premultiplied 8-bit RGBA, suitable for the
// standard image packages and ebiten.
func (c Color) RGBA8() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(math.Round(clamp01(c.R) * a * 255)),
		G: uint8(math.Round(clamp01(c.G) * a * 255)),
		B: uint8(math.Round(clamp01(c.B) * a * 255)),
		A: uint8(math.Round(a * 255)),
	}
}

// ColorFromHex parses "#rgb", "#rrggbb" or "#rrggbbaa" (leading '#'
// optional). ok is false for malformed input.
func ColorFromHex(s string) (c Color, ok bool) {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]}) + "ff"
	case 6:
		s += "ff"
	case 8:
	default:
		return Color{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, false
	}
	comp := func(shift uint) float64 { return float64(v>>shift&0xff) / 255 }
	return Color{comp(24), comp(16), comp(8), comp(0)}, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ChangeKind identifies what an editor mutation touched.
type ChangeKind uint8

const (
	ChangeSpriteAdded ChangeKind = iota // a sprite was appended to the paint order
	ChangeSelection                     // the selected sprite changed (or was cleared)
	ChangeRect                          // a sprite's rect was replaced during a drag
	ChangeFrame                         // the frame was resized
	ChangeDragEnd                       // the pointer was released after a drag
)

// String returns a lower-case name for the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeSpriteAdded:
		return "sprite-added"
	case ChangeSelection:
		return "selection"
	case ChangeRect:
		return "rect"
	case ChangeFrame:
		return "frame"
	case ChangeDragEnd:
		return "drag-end"
	default:
		return "unknown"
	}
}
