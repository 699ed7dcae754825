package spriteframe

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestEbitenSurfaceClipped(t *testing.T) {
	s := NewEbitenSurface(ebiten.NewImage(100, 50))
	if s.Bounds() != RectOf(0, 0, 100, 50) {
		t.Fatalf("Bounds = %v", s.Bounds())
	}

	if got := s.clipped(s.Bounds()); got != s.Target() {
		t.Error("full clip should draw straight to the target")
	}
	sub := s.clipped(RectOf(10, 10, 200, 20))
	if sub == nil {
		t.Fatal("clip inside the target yielded nil")
	}
	if sub.Bounds() != image.Rect(10, 10, 100, 30) {
		t.Errorf("clipped bounds = %v, want (10,10)-(100,30)", sub.Bounds())
	}
	if got := s.clipped(RectOf(200, 0, 10, 10)); got != nil {
		t.Error("clip outside the target should yield nil")
	}
}

func TestEbitenSurfaceUploadCache(t *testing.T) {
	s := NewEbitenSurface(ebiten.NewImage(8, 8))
	img := testImage(4, 4)

	a := s.upload(img)
	if b := s.upload(img); a != b {
		t.Error("second upload of the same image was not cached")
	}
	if a.Bounds().Dx() != 4 {
		t.Errorf("uploaded width = %d, want 4", a.Bounds().Dx())
	}

	native := ebiten.NewImage(2, 2)
	if s.upload(native) != native {
		t.Error("ebiten images should be drawn directly")
	}

	s.Forget(img)
	if _, ok := s.cache[img]; ok {
		t.Error("Forget kept the upload")
	}
	s.Forget(img)
}
