package term

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/spriteframe"
)

// Options configures the terminal host.
type Options struct {
	Style spriteframe.Style
	// Canvas is the color behind both passes.
	Canvas spriteframe.Color
	// Dim scales the brightness of the background pass.
	Dim float64
	// Zoom is pixels per frame unit. Zero fits the frame to the terminal.
	Zoom float64
	// StatusLine reserves the bottom row for a one-line summary.
	StatusLine bool
	// Logger receives interaction traces at debug level. Nil uses
	// slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns options with the default style, a half-brightness
// background pass and a status line. Selection handles are shrunk to suit the
// coarse pixel grid.
func DefaultOptions() Options {
	style := spriteframe.DefaultStyle()
	style.SelectionLineWidth = 1
	style.HandleRadius = 1.5
	return Options{
		Style:      style,
		Canvas:     spriteframe.Color{R: 0.09, G: 0.09, B: 0.11, A: 1},
		Dim:        0.5,
		StatusLine: true,
	}
}

// App drives an Editor from tcell events and draws it onto a tcell.Screen.
// It is not safe for concurrent use; Run calls it from a single goroutine.
type App struct {
	screen tcell.Screen
	ed     *spriteframe.Editor
	opts   Options
	log    *slog.Logger

	surf     *Surface
	fg       *spriteframe.RasterSurface
	renderer spriteframe.Renderer
	passes   spriteframe.Passes
	view     spriteframe.View
	frame    spriteframe.Frame
	dirty    bool

	capture spriteframe.PointerCapture
	pressed bool
	hover   spriteframe.Intent

	change spriteframe.CallbackHandle
}

// NewApp creates an App for an initialized screen.
func NewApp(screen tcell.Screen, ed *spriteframe.Editor, opts Options) *App {
	a := &App{
		screen: screen,
		ed:     ed,
		opts:   opts,
		log:    opts.Logger,
		surf:   NewSurface(0, 0),
		fg:     spriteframe.NewRasterSurface(0, 0),
		dirty:  true,
	}
	if a.log == nil {
		a.log = slog.Default()
	}
	a.change = ed.OnChange(func(ev spriteframe.ChangeEvent) {
		a.dirty = true
		a.log.Debug("editor change", "kind", ev.Kind, "sprite", ev.SpriteID)
	})
	a.resize()
	return a
}

// Close unregisters the App from its editor.
func (a *App) Close() {
	a.change.Remove()
}

// View returns the current mapping from frame units to surface pixels.
func (a *App) View() spriteframe.View {
	return a.view
}

func (a *App) resize() {
	cols, rows := a.screen.Size()
	if a.opts.StatusLine && rows > 0 {
		rows--
	}
	a.surf.Resize(cols, rows)
	a.fg.Resize(cols, rows*2)
	a.frame = a.ed.Frame()
	a.view = spriteframe.CenteredView(a.frame, float64(cols), float64(rows*2), a.opts.Zoom)
	a.dirty = true
}

// cellCenter maps a cell to the surface pixel at its center.
func cellCenter(x, y int) spriteframe.Vec2 {
	return spriteframe.Vec2{X: float64(x) + 0.5, Y: float64(2*y) + 1}
}

// HandleEvent applies a single tcell event. It returns false when the event
// asks to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			a.ed.ClearSelection()
		}
	case *tcell.EventMouse:
		a.mouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}
	return true
}

func (a *App) mouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0
	sample := spriteframe.PointerSample{
		Pos:         cellCenter(x, y),
		Pressed:     pressed,
		JustPressed: pressed && !a.pressed,
	}
	a.pressed = pressed
	if a.capture.Feed(a.ed, a.view, sample) {
		a.log.Debug("pointer", "x", x, "y", y, "pressed", pressed, "intent", a.ed.ActiveIntent())
	}
	if h := a.capture.HoverIntent(a.ed, a.view, sample.Pos); h != a.hover {
		a.hover = h
		a.dirty = true
	}
}

// Draw renders both passes when anything changed and shows the result.
func (a *App) Draw() {
	if a.ed.Frame() != a.frame {
		a.resize()
	}
	if !a.dirty {
		return
	}
	a.dirty = false

	a.ed.ComposeInto(&a.passes, a.opts.Style)
	a.renderer.View = a.view
	a.renderer.Draw(a.surf, a.passes.Background)
	a.surf.Dim(a.opts.Dim)
	a.renderer.Draw(a.fg, a.passes.Foreground)
	a.surf.CompositeOver(a.fg)

	canvas := a.opts.Canvas.RGBA8()
	a.surf.Flush(a.screen, 0, canvas)
	if a.opts.StatusLine {
		a.drawStatus()
	}
	a.screen.Show()
}

func (a *App) drawStatus() {
	cols, rows := a.screen.Size()
	if rows == 0 {
		return
	}
	text := a.statusText()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(text) {
			r = rune(text[x])
		}
		a.screen.SetContent(x, rows-1, r, nil, style)
	}
}

func (a *App) statusText() string {
	f := a.ed.Frame()
	sel := "none"
	if s := a.ed.Selected(); s != nil {
		r := s.Rect
		sel = fmt.Sprintf("%.0fx%.0f@%.0f,%.0f", r.Width(), r.Height(), r.Left(), r.Top())
	}
	return fmt.Sprintf(" %.0fx%.0f | sprites %d | selected %s | %s | q quits",
		f.Width, f.Height, len(a.ed.Sprites()), sel, a.hover)
}

// Run pumps screen events into an App until a quit key is pressed or ctx is
// done. The caller owns the screen: it must Init it before and Fini it after.
func Run(ctx context.Context, screen tcell.Screen, ed *spriteframe.Editor, opts Options) error {
	screen.EnableMouse(tcell.MouseMotionEvents)
	defer screen.DisableMouse()

	app := NewApp(screen, ed, opts)
	defer app.Close()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	app.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !app.HandleEvent(ev) {
				return nil
			}
			app.Draw()
		}
	}
}
