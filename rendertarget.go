package spriteframe

import (
	"image"
	"math/bits"

	"github.com/hajimehoshi/ebiten/v2"
)

// poolSize is a power-of-two image size.
type poolSize struct{ w, h int }

// texturePool recycles offscreen images so that resizing the window does not
// allocate a fresh GPU texture per pass every time. Sizes are rounded up to
// powers of two so nearby window sizes share a bucket.
type texturePool struct {
	free map[poolSize][]*ebiten.Image
}

// Acquire returns a cleared image of at least w×h pixels.
func (p *texturePool) Acquire(w, h int) *ebiten.Image {
	size := poolSize{nextPowerOfTwo(w), nextPowerOfTwo(h)}
	if stack := p.free[size]; len(stack) > 0 {
		img := stack[len(stack)-1]
		p.free[size] = stack[:len(stack)-1]
		img.Clear()
		return img
	}
	return ebiten.NewImageWithOptions(image.Rect(0, 0, size.w, size.h), &ebiten.NewImageOptions{Unmanaged: true})
}

// Release hands img back for reuse. Nil is ignored.
func (p *texturePool) Release(img *ebiten.Image) {
	if img == nil {
		return
	}
	if p.free == nil {
		p.free = make(map[poolSize][]*ebiten.Image)
	}
	b := img.Bounds()
	size := poolSize{b.Dx(), b.Dy()}
	p.free[size] = append(p.free[size], img)
}

// nextPowerOfTwo returns the smallest power of two >= n, and 1 for n <= 1.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// passBuffers holds the offscreen images the background and foreground
// passes render into, cropped to the screen size. They change only when the
// screen does.
type passBuffers struct {
	pool texturePool

	backing [2]*ebiten.Image
	bg, fg  *ebiten.Image
	w, h    int
}

func (b *passBuffers) ensure(w, h int) (bg, fg *ebiten.Image) {
	if b.bg != nil && b.w == w && b.h == h {
		return b.bg, b.fg
	}
	b.release()
	crop := image.Rect(0, 0, w, h)
	for i := range b.backing {
		b.backing[i] = b.pool.Acquire(w, h)
	}
	b.bg = b.backing[0].SubImage(crop).(*ebiten.Image)
	b.fg = b.backing[1].SubImage(crop).(*ebiten.Image)
	b.w, b.h = w, h
	return b.bg, b.fg
}

func (b *passBuffers) release() {
	for i, img := range b.backing {
		b.pool.Release(img)
		b.backing[i] = nil
	}
	b.bg, b.fg = nil, nil
}
