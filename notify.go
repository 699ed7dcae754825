package spriteframe

// ChangeEvent describes a single editor mutation. SpriteID is empty for
// changes that do not concern one sprite (frame resizes, cleared selection).
type ChangeEvent struct {
	Kind     ChangeKind
	SpriteID string
}

type changeHandler struct {
	id uint32
	fn func(ChangeEvent)
}

type handlerRegistry struct {
	change []changeHandler
	nextID uint32
}

// CallbackHandle allows removing a registered editor callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.change = removeChangeHandler(h.reg.change, h.id)
}

func removeChangeHandler(s []changeHandler, id uint32) []changeHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = changeHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnChange registers a callback fired synchronously after every mutation.
// Hosts use it as the signal to redraw.
func (e *Editor) OnChange(fn func(ChangeEvent)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.change = append(e.handlers.change, changeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers}
}

func (e *Editor) emit(kind ChangeKind, spriteID string) {
	if len(e.handlers.change) == 0 {
		return
	}
	ev := ChangeEvent{Kind: kind, SpriteID: spriteID}
	for _, h := range e.handlers.change {
		h.fn(ev)
	}
}
