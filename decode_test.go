package spriteframe

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, solidImage(w, h, color.RGBA{R: 255, A: 255})); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	img, format, err := DecodeImage(bytes.NewReader(encodePNG(t, 3, 2)))
	if err != nil {
		t.Fatal(err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if ImageSize(img) != V(3, 2) {
		t.Errorf("size = %v, want 3x2", ImageSize(img))
	}

	if _, _, err := DecodeImage(strings.NewReader("not an image")); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestLoadImageFileMissing(t *testing.T) {
	if _, err := LoadImageFile(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestLoadDropped(t *testing.T) {
	fsys := fstest.MapFS{
		"a.png":        {Data: encodePNG(t, 4, 4)},
		"dir/b.png":    {Data: encodePNG(t, 8, 2)},
		"notes.txt":    {Data: []byte("hello")},
		"dir/empty.db": {Data: nil},
	}
	imgs, err := LoadDropped(fsys)
	if len(imgs) != 2 {
		t.Fatalf("decoded %d images, want 2", len(imgs))
	}
	if ImageSize(imgs[0]) != V(4, 4) || ImageSize(imgs[1]) != V(8, 2) {
		t.Errorf("sizes = %v, %v; want walk order a.png, dir/b.png", ImageSize(imgs[0]), ImageSize(imgs[1]))
	}
	if err == nil {
		t.Fatal("expected an error for the undecodable files")
	}
	for _, name := range []string{"notes.txt", "dir/empty.db"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention %s", err, name)
		}
	}
}
