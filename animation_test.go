package spriteframe

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestFieldTweenReachesTarget(t *testing.T) {
	var v float64
	tw := tweenField(&v, 10, 100, 1.0, ease.Linear)
	if v != 10 {
		t.Errorf("start = %f, want 10", v)
	}

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	tw.Update(0.5)
	if math.Abs(v-55) > 0.5 {
		t.Errorf("midpoint = %f, want ~55", v)
	}
	tw.Update(0.5)
	if !tw.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(v-100) > 0.01 {
		t.Errorf("end = %f, want ~100", v)
	}

	v = 3
	tw.Update(1)
	if v != 3 {
		t.Error("Update after Done wrote the field")
	}
}

func TestFieldTweenNilSafe(t *testing.T) {
	var tw *fieldTween
	tw.Update(1) // should not panic
}

func TestHandleGrow(t *testing.T) {
	radius := 5.0
	tw := handleGrow(&radius, 5)
	if radius != 0 {
		t.Errorf("radius at start = %f, want 0", radius)
	}
	peak := 0.0
	for !tw.Done {
		tw.Update(0.02)
		peak = math.Max(peak, radius)
	}
	if math.Abs(radius-5) > 0.01 {
		t.Errorf("radius = %f, want ~5", radius)
	}
	if peak <= 5 {
		t.Errorf("peak = %f, want overshoot past 5", peak)
	}
}
