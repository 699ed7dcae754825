package spriteframe

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the windowed editor host.
type RunConfig struct {
	Title         string
	Width, Height int
	// Canvas is the window color behind both passes.
	Canvas Color
	Style  Style
	// Dim scales the brightness of the background pass (0.5 halves it).
	Dim float64
	// Zoom is the frame scale on screen. Zero fits the frame to the window
	// without ever scaling it up.
	Zoom float64
	// ShowStatus draws a one-line summary at the bottom of the window.
	ShowStatus bool
	// ExportDir receives PNG exports made with Ctrl+S. Empty means the
	// working directory.
	ExportDir string
	// Script, when set, is stepped once per frame; real pointer input is
	// ignored until it is done.
	Script *Script
	// OnError receives non-fatal errors such as undecodable dropped files.
	// Nil logs them in debug mode.
	OnError func(error)
}

// DefaultRunConfig returns a 1280×720 window with the default style and a
// half-brightness background pass.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:      "spriteframe",
		Width:      1280,
		Height:     720,
		Canvas:     Color{0.09, 0.09, 0.11, 1},
		Style:      DefaultStyle(),
		Dim:        0.5,
		ShowStatus: true,
	}
}

// host adapts an Editor to ebiten.Game.
type host struct {
	ed  *Editor
	cfg RunConfig

	w, h int
	view View

	bufs     passBuffers
	bgSurf   *EbitenSurface
	fgSurf   *EbitenSurface
	dim      Filter
	renderer Renderer
	passes   Passes
	dirty    bool

	capture PointerCapture
	cursor  ebiten.CursorShapeType
	hover   Intent

	handleRadius float64
	handleTween  *fieldTween

	status statusLine
	change CallbackHandle
}

func newHost(ed *Editor, cfg RunConfig) *host {
	dim := NewColorMatrixFilter()
	dim.SetDim(cfg.Dim)
	h := &host{
		ed:           ed,
		cfg:          cfg,
		bgSurf:       &EbitenSurface{Antialias: true},
		fgSurf:       &EbitenSurface{Antialias: true},
		dim:          dim,
		dirty:        true,
		handleRadius: cfg.Style.HandleRadius,
	}
	h.change = ed.OnChange(h.onChange)
	return h
}

func (h *host) onChange(ev ChangeEvent) {
	h.dirty = true
	if ev.Kind == ChangeSelection && ev.SpriteID != "" {
		h.handleTween = handleGrow(&h.handleRadius, h.cfg.Style.HandleRadius)
	}
}

func (h *host) report(err error) {
	if err == nil {
		return
	}
	if h.cfg.OnError != nil {
		h.cfg.OnError(err)
		return
	}
	if globalDebug {
		debugf("%v", err)
	}
}

// Update implements ebiten.Game.
func (h *host) Update() error {
	dt := float32(1) / float32(ebiten.TPS())
	h.view = CenteredView(h.ed.Frame(), float64(h.w), float64(h.h), h.cfg.Zoom)

	if fsys := ebiten.DroppedFiles(); fsys != nil {
		imgs, err := LoadDropped(fsys)
		for _, img := range imgs {
			h.ed.AddSprite(img)
		}
		h.report(err)
	}

	if s := h.cfg.Script; s != nil && !s.Done() {
		h.report(s.Step(h.ed))
	} else {
		sample := readMouse()
		h.capture.Feed(h.ed, h.view, sample)
		h.setHover(h.capture.HoverIntent(h.ed, h.view, sample.Pos))
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		h.ed.ClearSelection()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		path := filepath.Join(h.cfg.ExportDir, ExportName(h.cfg.Title, time.Now()))
		h.report(ExportFile(h.ed, path))
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	}

	if h.handleTween != nil {
		h.handleTween.Update(dt)
		h.dirty = true
		if h.handleTween.Done {
			h.handleTween = nil
		}
	}

	if h.cfg.ShowStatus {
		h.status.update(float64(dt), statusText(h.ed, h.hover))
	}
	return nil
}

func (h *host) setHover(intent Intent) {
	h.hover = intent
	if c := intent.Cursor(); c != h.cursor {
		h.cursor = c
		ebiten.SetCursorShape(c)
	}
}

// Draw implements ebiten.Game.
func (h *host) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	bg, fg := h.bufs.ensure(b.Dx(), b.Dy())
	if h.bgSurf.Target() != bg || h.fgSurf.Target() != fg {
		h.bgSurf.SetTarget(bg)
		h.fgSurf.SetTarget(fg)
		h.dirty = true
	}

	if h.dirty {
		style := h.cfg.Style
		style.HandleRadius = h.handleRadius
		h.ed.ComposeInto(&h.passes, style)
		h.renderer.View = h.view
		h.renderer.Draw(h.bgSurf, h.passes.Background)
		h.renderer.Draw(h.fgSurf, h.passes.Foreground)
		h.dirty = false
	}

	screen.Fill(h.cfg.Canvas.RGBA8())
	h.dim.Apply(bg, screen)
	screen.DrawImage(fg, nil)

	if h.cfg.ShowStatus {
		h.status.draw(screen)
	}
}

// Layout implements ebiten.Game. The logical screen tracks the window size.
func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.w || outsideHeight != h.h {
		h.w, h.h = outsideWidth, outsideHeight
		h.dirty = true
	}
	return outsideWidth, outsideHeight
}

func (h *host) close() {
	h.change.Remove()
	h.bufs.release()
}

// Run opens a window editing ed and blocks until it is closed. Dropping
// image files onto the window adds them as sprites.
func Run(ed *Editor, cfg RunConfig) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	h := newHost(ed, cfg)
	defer h.close()
	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
