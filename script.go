package spriteframe

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrEmptyScript is returned by LoadScript for a script without steps.
var ErrEmptyScript = errors.New("spriteframe: script has no steps")

// scriptStep is a single action in a JSON interaction script.
type scriptStep struct {
	Action string   `json:"action"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	DX     float64  `json:"dx,omitempty"`
	DY     float64  `json:"dy,omitempty"`
	FromX  float64  `json:"fromX,omitempty"`
	FromY  float64  `json:"fromY,omitempty"`
	ToX    float64  `json:"toX,omitempty"`
	ToY    float64  `json:"toY,omitempty"`
	Frames int      `json:"frames,omitempty"`
	ID     string   `json:"id,omitempty"`
	Index  *int     `json:"index,omitempty"`
	Width  float64  `json:"width,omitempty"`
	Height float64  `json:"height,omitempty"`
	Path   string   `json:"path,omitempty"`
}

// scriptFile is the top-level JSON structure for a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

type eventKind uint8

const (
	evDown eventKind = iota
	evMoveBy
	evMoveTo
	evUp
	evSelect
	evFrame
	evWait
	evExport
)

// scriptEvent is one editor call. Steps such as drag expand to several.
type scriptEvent struct {
	kind  eventKind
	step  int
	pos   Vec2
	delta Vec2
	abs   bool
	id    string
	index int
	frame Frame
	path  string
}

// Script replays pointer and editor actions against an Editor, either all
// at once with Play or one event per frame with Step. Coordinates are
// frame-local.
//
//	{"steps": [
//	  {"action": "down", "x": 120, "y": 80},
//	  {"action": "move", "dx": 5, "dy": 0},
//	  {"action": "up"},
//	  {"action": "drag", "fromX": 100, "fromY": 100, "toX": 40, "toY": 60, "frames": 10},
//	  {"action": "select", "index": 0},
//	  {"action": "frame", "width": 800, "height": 600},
//	  {"action": "wait", "frames": 30},
//	  {"action": "export", "path": "out.png"}
//	]}
type Script struct {
	events  []scriptEvent
	cursor  int
	pointer Vec2
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, ErrEmptyScript
	}
	s := &Script{}
	for i, st := range f.Steps {
		if err := s.expand(i, st); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return s, nil
}

// LoadScriptFile reads and parses the script at path.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	s, err := LoadScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Script) expand(i int, st scriptStep) error {
	switch st.Action {
	case "down":
		if st.X == nil || st.Y == nil {
			return errors.New("down needs x and y")
		}
		s.push(scriptEvent{kind: evDown, step: i, pos: Vec2{*st.X, *st.Y}})
	case "move":
		ev := scriptEvent{kind: evMoveBy, step: i, delta: Vec2{st.DX, st.DY}}
		if st.X != nil && st.Y != nil {
			ev.pos, ev.abs = Vec2{*st.X, *st.Y}, true
		}
		s.push(ev)
	case "up":
		s.push(scriptEvent{kind: evUp, step: i})
	case "drag":
		frames := max(st.Frames, 2)
		from, to := Vec2{st.FromX, st.FromY}, Vec2{st.ToX, st.ToY}
		s.push(scriptEvent{kind: evDown, step: i, pos: from})
		for n := 1; n < frames; n++ {
			t := float64(n) / float64(frames-1)
			s.push(scriptEvent{kind: evMoveTo, step: i, pos: from.Add(to.Sub(from).Mul(t))})
		}
		s.push(scriptEvent{kind: evUp, step: i})
	case "select":
		ev := scriptEvent{kind: evSelect, step: i, id: st.ID, index: -1}
		if st.Index != nil {
			ev.index = *st.Index
		}
		if ev.id == "" && ev.index < 0 {
			return errors.New("select needs id or a non-negative index")
		}
		s.push(ev)
	case "frame":
		if !(st.Width > 0) || !(st.Height > 0) {
			return fmt.Errorf("frame size %gx%g is not positive", st.Width, st.Height)
		}
		s.push(scriptEvent{kind: evFrame, step: i, frame: Frame{st.Width, st.Height}})
	case "wait":
		for range max(st.Frames, 1) {
			s.push(scriptEvent{kind: evWait, step: i})
		}
	case "export":
		if st.Path == "" {
			return errors.New("export needs a path")
		}
		s.push(scriptEvent{kind: evExport, step: i, path: st.Path})
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

func (s *Script) push(ev scriptEvent) {
	s.events = append(s.events, ev)
}

// Len returns the number of editor events the script expands to.
func (s *Script) Len() int {
	return len(s.events)
}

// Done reports whether every event has been played.
func (s *Script) Done() bool {
	return s.cursor >= len(s.events)
}

// Reset rewinds the script to its first event.
func (s *Script) Reset() {
	s.cursor = 0
	s.pointer = Vec2{}
}

// Play runs every remaining event against ed, stopping at the first error.
func (s *Script) Play(ed *Editor) error {
	for !s.Done() {
		if err := s.Step(ed); err != nil {
			return err
		}
	}
	return nil
}

// Step runs the next event against ed. It is a no-op once the script is
// done. Hosts call it once per frame so drags animate.
func (s *Script) Step(ed *Editor) error {
	if s.Done() {
		return nil
	}
	ev := s.events[s.cursor]
	s.cursor++
	if err := s.apply(ed, ev); err != nil {
		return fmt.Errorf("script step %d: %w", ev.step, err)
	}
	return nil
}

func (s *Script) apply(ed *Editor, ev scriptEvent) error {
	switch ev.kind {
	case evDown:
		s.pointer = ev.pos
		ed.PointerDown(ev.pos)
	case evMoveBy:
		abs := s.pointer.Add(ev.delta)
		if ev.abs {
			abs = ev.pos
		}
		s.pointer = abs
		ed.PointerMove(ev.delta, abs)
	case evMoveTo:
		delta := ev.pos.Sub(s.pointer)
		s.pointer = ev.pos
		ed.PointerMove(delta, ev.pos)
	case evUp:
		ed.PointerUp()
	case evSelect:
		id := ev.id
		if id == "" {
			sprites := ed.Sprites()
			if ev.index >= len(sprites) {
				return fmt.Errorf("select index %d of %d sprites: %w", ev.index, len(sprites), ErrUnknownSprite)
			}
			id = sprites[ev.index].ID
		}
		return ed.Select(id)
	case evFrame:
		ed.SetFrame(ev.frame)
	case evWait:
	case evExport:
		return ExportFile(ed, ev.path)
	}
	return nil
}
