package spriteframe

import "testing"

func TestCenteredView(t *testing.T) {
	frame := Frame{Width: 640, Height: 360}
	tests := []struct {
		name string
		w, h float64
		zoom float64
		want View
	}{
		{"fits without upscaling", 1280, 720, 0, View{Offset: V(320, 180), Zoom: 1}},
		{"shrinks to fit", 320, 360, 0, View{Offset: V(0, 90), Zoom: 0.5}},
		{"fixed zoom", 1280, 720, 2, View{Offset: V(0, 0), Zoom: 2}},
		{"odd offsets floor", 641, 361, 1, View{Offset: V(0, 0), Zoom: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CenteredView(frame, tt.w, tt.h, tt.zoom); got != tt.want {
				t.Errorf("CenteredView = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestViewRoundTrip(t *testing.T) {
	v := View{Offset: V(12, -7), Zoom: 2.5}
	for _, p := range []Vec2{V(0, 0), V(10, 3), V(-4.5, 100)} {
		got := v.ToFrame(v.ToSurface(p))
		if !approxEqual(got.X, p.X, epsilon) || !approxEqual(got.Y, p.Y, epsilon) {
			t.Errorf("ToFrame(ToSurface(%v)) = %v", p, got)
		}
	}
	if got := v.DeltaToFrame(V(5, 5)); got != V(2, 2) {
		t.Errorf("DeltaToFrame = %v, want (2,2)", got)
	}
	if got := v.RectToSurface(RectOf(0, 0, 2, 4)); got != RectOf(12, -7, 5, 10) {
		t.Errorf("RectToSurface = %v", got)
	}
}

func TestZeroViewIsIdentity(t *testing.T) {
	var v View
	if got := v.ToSurface(V(3, 4)); got != V(3, 4) {
		t.Errorf("zero View ToSurface = %v, want (3,4)", got)
	}
	if got := IdentityView.ToFrame(V(3, 4)); got != V(3, 4) {
		t.Errorf("IdentityView ToFrame = %v, want (3,4)", got)
	}
}
