package spriteframe

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// handleTweenDuration is how long the selection handles take to grow in.
const handleTweenDuration = 0.18

// fieldTween animates a single float64 field. Call Update(dt) each frame
// until Done; there is no global animation manager.
type fieldTween struct {
	tween *gween.Tween
	field *float64
	Done  bool
}

// tweenField creates a tween that animates *field from from to to over
// duration seconds using the easing function.
func tweenField(field *float64, from, to float64, duration float32, fn ease.TweenFunc) *fieldTween {
	*field = from
	return &fieldTween{
		tween: gween.New(float32(from), float32(to), duration, fn),
		field: field,
	}
}

// Update advances the tween by dt seconds and writes the value to the field.
func (t *fieldTween) Update(dt float32) {
	if t == nil || t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	*t.field = float64(val)
	t.Done = finished
}

// handleGrow returns the tween that eases selection handles in from zero.
func handleGrow(field *float64, radius float64) *fieldTween {
	return tweenField(field, 0, radius, handleTweenDuration, ease.OutBack)
}
