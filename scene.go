package spriteframe

// Style controls the colors and sizes of the scene chrome. Sprite pixels are
// never restyled.
type Style struct {
	// Backdrop fills the frame in the foreground pass, under the sprites.
	Backdrop Color
	// SelectionFill and SelectionStroke draw the selection overlay.
	SelectionFill      Color
	SelectionStroke    Color
	SelectionLineWidth float64
	// HandleRadius is the radius of the four corner handles. Zero hides them.
	HandleRadius float64
	HandleColor  Color
}

// DefaultStyle returns the stock editor look: a dark translucent backdrop, a
// blue selection with a 2px outline, and white corner handles.
func DefaultStyle() Style {
	return Style{
		Backdrop:           Color{0, 0, 0, 0.4},
		SelectionFill:      Color{0.23, 0.51, 0.96, 0.2},
		SelectionStroke:    Color{0.23, 0.51, 0.96, 1},
		SelectionLineWidth: 2,
		HandleRadius:       5,
		HandleColor:        ColorWhite,
	}
}

// Passes holds the two draw lists of one scene render.
type Passes struct {
	// Background shows every sprite unclipped. Hosts dim it.
	Background *DrawList
	// Foreground shows the frame backdrop, the sprites clipped to the frame,
	// and the selection overlay.
	Foreground *DrawList
}

// Compose builds both passes from the current editor state.
func (e *Editor) Compose(style Style) Passes {
	p := Passes{Background: NewDrawList(), Foreground: NewDrawList()}
	e.ComposeInto(&p, style)
	return p
}

// ComposeInto rebuilds p in place, reusing its lists' storage. Nil lists are
// allocated.
func (e *Editor) ComposeInto(p *Passes, style Style) {
	if p.Background == nil {
		p.Background = NewDrawList()
	}
	if p.Foreground == nil {
		p.Foreground = NewDrawList()
	}
	e.composeBackground(p.Background)
	e.composeForeground(p.Foreground, style)
}

func (e *Editor) composeBackground(l *DrawList) {
	l.Reset()
	l.Clear()
	e.drawSprites(l)
}

func (e *Editor) composeForeground(l *DrawList, style Style) {
	l.Reset()
	l.Clear()
	frame := e.frame.Rect()
	l.FillRect(frame, Paint{Color: style.Backdrop})
	l.Clip(frame, func() {
		e.drawSprites(l)
	})
	if sel := e.Selected(); sel != nil {
		drawSelection(l, sel.Rect, style)
	}
}

func (e *Editor) drawSprites(l *DrawList) {
	for _, s := range e.sprites {
		l.DrawImage(s.Image, s.Rect)
	}
}

func drawSelection(l *DrawList, r Rect, style Style) {
	l.FillRect(r, Paint{Color: style.SelectionFill})
	l.StrokeRect(r, Paint{Color: style.SelectionStroke, LineWidth: style.SelectionLineWidth})
	if style.HandleRadius <= 0 {
		return
	}
	corners := [4]Vec2{
		r.Position,
		{r.Right(), r.Top()},
		{r.Left(), r.Bottom()},
		{r.Right(), r.Bottom()},
	}
	for _, c := range corners {
		l.FillCircle(c, style.HandleRadius, Paint{Color: style.HandleColor})
	}
}

// ComposeExport builds a single frame-sized pass holding only the sprites,
// clipped to the frame. No backdrop or selection is drawn.
func (e *Editor) ComposeExport() *DrawList {
	l := NewDrawList()
	l.Clear()
	l.Clip(e.frame.Rect(), func() {
		e.drawSprites(l)
	})
	return l
}

// Render composes both passes and replays them: the background pass onto bg
// and the foreground pass onto fg, both through view. Either surface may be
// nil to skip its pass.
func (e *Editor) Render(bg, fg Surface, view View, style Style) {
	p := e.Compose(style)
	r := &Renderer{View: view}
	if bg != nil {
		r.Draw(bg, p.Background)
	}
	if fg != nil {
		r.Draw(fg, p.Foreground)
	}
}
