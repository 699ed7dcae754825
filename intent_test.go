package spriteframe

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestClassifyIntent(t *testing.T) {
	r := RectOf(100, 100, 50, 50)
	m := V(20, 20)
	tests := []struct {
		name string
		p    Vec2
		want Intent
	}{
		{"top-left corner beats edges", V(100, 100), IntentResizeTopLeft},
		{"interior", V(125, 125), IntentMove},
		{"left band", V(90, 125), IntentResizeLeft},
		{"top-right", V(150, 100), IntentResizeTopRight},
		{"bottom-left", V(100, 150), IntentResizeBottomLeft},
		{"bottom-right", V(165, 165), IntentResizeBottomRight},
		{"right band", V(160, 125), IntentResizeRight},
		{"top band", V(125, 85), IntentResizeTop},
		{"bottom band", V(125, 169), IntentResizeBottom},
		{"outside", V(300, 300), IntentNone},
		{"just past the margin", V(79, 125), IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyIntent(r, m, tt.p); got != tt.want {
				t.Errorf("ClassifyIntent(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestClassifyIntentZeroMargin(t *testing.T) {
	r := RectOf(0, 0, 10, 10)
	if got := ClassifyIntent(r, Vec2{}, V(5, 5)); got != IntentMove {
		t.Errorf("interior = %v, want move", got)
	}
	if got := ClassifyIntent(r, Vec2{}, V(0, 5)); got != IntentResizeLeft {
		t.Errorf("on the left edge = %v, want resizeLeft", got)
	}
}

func TestIntentApply(t *testing.T) {
	r := RectOf(10, 10, 20, 20)
	d := V(3, -4)
	tests := []struct {
		intent Intent
		want   Rect
	}{
		{IntentMove, RectOf(13, 6, 20, 20)},
		{IntentResizeLeft, RectOf(13, 10, 17, 20)},
		{IntentResizeRight, RectOf(10, 10, 23, 20)},
		{IntentResizeTop, RectOf(10, 6, 20, 24)},
		{IntentResizeBottom, RectOf(10, 10, 20, 16)},
		{IntentResizeTopLeft, RectOf(13, 6, 17, 24)},
		{IntentResizeBottomRight, RectOf(10, 10, 23, 16)},
		{IntentNone, r},
	}
	for _, tt := range tests {
		t.Run(tt.intent.String(), func(t *testing.T) {
			if got := tt.intent.Apply(r, d); got != tt.want {
				t.Errorf("Apply = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntentResizes(t *testing.T) {
	if IntentMove.Resizes() || IntentNone.Resizes() {
		t.Error("move/none report Resizes")
	}
	if !IntentResizeTopRight.Resizes() || !IntentResizeBottom.Resizes() {
		t.Error("resize intents do not report Resizes")
	}
}

func TestIntentCursor(t *testing.T) {
	tests := []struct {
		intent Intent
		want   ebiten.CursorShapeType
	}{
		{IntentNone, ebiten.CursorShapeDefault},
		{IntentMove, ebiten.CursorShapeMove},
		{IntentResizeLeft, ebiten.CursorShapeEWResize},
		{IntentResizeBottom, ebiten.CursorShapeNSResize},
		{IntentResizeTopLeft, ebiten.CursorShapeNWSEResize},
		{IntentResizeBottomLeft, ebiten.CursorShapeNESWResize},
	}
	for _, tt := range tests {
		if got := tt.intent.Cursor(); got != tt.want {
			t.Errorf("%v.Cursor() = %v, want %v", tt.intent, got, tt.want)
		}
	}
}

func TestIntentString(t *testing.T) {
	if IntentResizeBottomRight.String() != "resizeBottomRight" {
		t.Errorf("String = %q", IntentResizeBottomRight.String())
	}
	if Intent(0xff).String() != "invalid" {
		t.Errorf("String of junk = %q", Intent(0xff).String())
	}
}
