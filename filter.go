package spriteframe

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Filter is a full-pass effect a host applies to a rendered pass, such as
// dimming the background pass.
type Filter interface {
	Apply(src, dst *ebiten.Image)
}

// The matrix runs on straight (un-premultiplied) color; the result is
// premultiplied again before it is written.
const colorMatrixShaderSrc = `//kage:unit pixels
package main

var Scale mat4
var Offset vec4

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a == 0 {
		return vec4(0)
	}
	c.rgb /= c.a
	c = clamp(Scale*c+Offset, vec4(0), vec4(1))
	return vec4(c.rgb*c.a, c.a)
}
`

var colorMatrixShader *ebiten.Shader

func ensureColorMatrixShader() *ebiten.Shader {
	if colorMatrixShader == nil {
		s, err := ebiten.NewShader([]byte(colorMatrixShaderSrc))
		if err != nil {
			panic("spriteframe: compile color matrix shader: " + err.Error())
		}
		colorMatrixShader = s
	}
	return colorMatrixShader
}

// ColorMatrixFilter transforms every pixel by a 4×5 matrix in row-major
// order: each output channel is a weighted sum of R, G, B, A plus an offset
// (row r is Matrix[r*5 : r*5+5]). Apply runs it as a Kage shader on the GPU;
// ApplyRGBA runs the same math on the CPU for raster surfaces.
type ColorMatrixFilter struct {
	Matrix [20]float64

	scale    [16]float32
	offset   [4]float32
	uniforms map[string]any
	op       ebiten.DrawRectShaderOptions
}

// NewColorMatrixFilter returns a filter set to the identity.
func NewColorMatrixFilter() *ColorMatrixFilter {
	f := &ColorMatrixFilter{}
	f.uniforms = map[string]any{
		"Scale":  f.scale[:],
		"Offset": f.offset[:],
	}
	f.SetDim(1)
	return f
}

// SetChannelScale sets a diagonal matrix multiplying each channel by the
// matching factor.
func (f *ColorMatrixFilter) SetChannelScale(r, g, b, a float64) {
	f.Matrix = [20]float64{}
	f.Matrix[0], f.Matrix[6], f.Matrix[12], f.Matrix[18] = r, g, b, a
}

// SetDim scales the color channels by factor and keeps alpha: 0.5 halves
// the brightness, 1 is the identity.
func (f *ColorMatrixFilter) SetDim(factor float64) {
	f.SetChannelScale(factor, factor, factor, 1)
}

// syncUniforms copies Matrix into the shader's column-major mat4 and offset.
func (f *ColorMatrixFilter) syncUniforms() {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			f.scale[col*4+row] = float32(f.Matrix[row*5+col])
		}
		f.offset[row] = float32(f.Matrix[row*5+4])
	}
}

// Apply draws src into dst through the matrix.
func (f *ColorMatrixFilter) Apply(src, dst *ebiten.Image) {
	f.syncUniforms()
	b := src.Bounds()
	f.op.Images[0] = src
	f.op.Uniforms = f.uniforms
	dst.DrawRectShader(b.Dx(), b.Dy(), ensureColorMatrixShader(), &f.op)
}

// ApplyRGBA transforms img in place. Fully transparent pixels are left alone.
func (f *ColorMatrixFilter) ApplyRGBA(img *image.RGBA) {
	m := &f.Matrix
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 0; i+3 < len(row); i += 4 {
			if row[i+3] == 0 {
				continue
			}
			var in, out [4]float64
			in[3] = float64(row[i+3]) / 255
			for c := 0; c < 3; c++ {
				in[c] = float64(row[i+c]) / 255 / in[3]
			}
			for r := 0; r < 4; r++ {
				k := r * 5
				out[r] = clamp01(m[k]*in[0] + m[k+1]*in[1] + m[k+2]*in[2] + m[k+3]*in[3] + m[k+4])
			}
			for c := 0; c < 3; c++ {
				row[i+c] = uint8(math.Round(out[c] * out[3] * 255))
			}
			row[i+3] = uint8(math.Round(out[3] * 255))
		}
	}
}
