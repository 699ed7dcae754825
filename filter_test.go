package spriteframe

import (
	"image"
	"image/color"
	"testing"
)

func TestColorMatrixFilterIdentity(t *testing.T) {
	f := NewColorMatrixFilter()
	for i, v := range f.Matrix {
		want := 0.0
		if i == 0 || i == 6 || i == 12 || i == 18 {
			want = 1
		}
		if v != want {
			t.Errorf("Matrix[%d] = %f, want %f", i, v, want)
		}
	}
}

func TestColorMatrixFilterSetDim(t *testing.T) {
	f := NewColorMatrixFilter()
	f.SetDim(0.25)
	if f.Matrix[0] != 0.25 || f.Matrix[6] != 0.25 || f.Matrix[12] != 0.25 {
		t.Error("dim diagonal should be 0.25")
	}
	if f.Matrix[18] != 1 {
		t.Errorf("alpha scale = %f, want 1", f.Matrix[18])
	}
}

func TestColorMatrixFilterUniforms(t *testing.T) {
	f := NewColorMatrixFilter()
	f.SetChannelScale(0.5, 0.25, 1, 1)
	f.Matrix[4] = 0.1  // R offset
	f.Matrix[15] = 0.3 // A from R
	f.syncUniforms()

	// Column-major: scale[col*4+row].
	checks := []struct {
		i    int
		want float32
	}{
		{0, 0.5}, {5, 0.25}, {10, 1}, {15, 1}, {3, 0.3},
	}
	for _, c := range checks {
		if got := f.scale[c.i]; got != c.want {
			t.Errorf("scale[%d] = %v, want %v", c.i, got, c.want)
		}
	}
	if f.offset != [4]float32{0.1, 0, 0, 0} {
		t.Errorf("offset = %v", f.offset)
	}
}

func TestApplyRGBA(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *ColorMatrixFilter)
		in    color.RGBA
		want  color.RGBA
	}{
		{"identity", func(f *ColorMatrixFilter) {}, color.RGBA{10, 20, 30, 255}, color.RGBA{10, 20, 30, 255}},
		{"dim opaque", func(f *ColorMatrixFilter) { f.SetDim(0.5) }, color.RGBA{200, 100, 50, 255}, color.RGBA{100, 50, 25, 255}},
		{"dim premultiplied", func(f *ColorMatrixFilter) { f.SetDim(0.5) }, color.RGBA{100, 0, 0, 128}, color.RGBA{50, 0, 0, 128}},
		{"channel scale", func(f *ColorMatrixFilter) { f.SetChannelScale(1, 0, 0.5, 1) }, color.RGBA{200, 100, 50, 255}, color.RGBA{200, 0, 25, 255}},
		{"offset clamps", func(f *ColorMatrixFilter) { f.Matrix[4], f.Matrix[9] = 1, 1 }, color.RGBA{0, 128, 255, 255}, color.RGBA{255, 255, 255, 255}},
		{"alpha scale", func(f *ColorMatrixFilter) { f.SetChannelScale(1, 1, 1, 0.5) }, color.RGBA{200, 0, 0, 255}, color.RGBA{100, 0, 0, 128}},
		{"transparent untouched", func(f *ColorMatrixFilter) { f.Matrix[4] = 1 }, color.RGBA{}, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewColorMatrixFilter()
			tt.setup(f)
			img := image.NewRGBA(image.Rect(0, 0, 1, 1))
			img.SetRGBA(0, 0, tt.in)
			f.ApplyRGBA(img)
			if got := img.RGBAAt(0, 0); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyRGBASubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	for x := 0; x < 4; x++ {
		img.SetRGBA(x, 0, color.RGBA{200, 200, 200, 255})
	}
	f := NewColorMatrixFilter()
	f.SetDim(0.5)
	f.ApplyRGBA(img.SubImage(image.Rect(1, 0, 3, 1)).(*image.RGBA))

	want := []uint8{200, 100, 100, 200}
	for x, w := range want {
		if got := img.RGBAAt(x, 0).R; got != w {
			t.Errorf("pixel %d R = %d, want %d", x, got, w)
		}
	}
}
