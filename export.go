package spriteframe

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RenderExport rasterizes the export composition: a frame-sized image with
// only the sprites, clipped to the frame and without editor chrome.
func RenderExport(ed *Editor) *image.RGBA {
	f := ed.Frame()
	s := NewRasterSurface(int(math.Ceil(f.Width)), int(math.Ceil(f.Height)))
	NewRenderer().Draw(s, ed.ComposeExport())
	return s.Image()
}

// Export writes the export composition to w as PNG.
func Export(ed *Editor, w io.Writer) error {
	if err := png.Encode(w, RenderExport(ed)); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// ExportFile writes the export composition to a PNG file at path, creating
// parent directories as needed.
func ExportFile(ed *Editor, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: mkdir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := Export(ed, f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// ExportName returns a timestamped file name for an export, such as
// "20260102_150405_poster.png".
func ExportName(label string, now time.Time) string {
	return now.Format("20060102_150405") + "_" + sanitizeLabel(label) + ".png"
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "frame" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "frame"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
