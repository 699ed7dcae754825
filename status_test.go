package spriteframe

import (
	"strings"
	"testing"
)

func TestStatusText(t *testing.T) {
	ed := NewEditor(DefaultFrame)
	if got := statusText(ed, IntentNone); got != "frame 640x360 | sprites 0 | selected none | none" {
		t.Errorf("statusText = %q", got)
	}

	s := placed(ed, RectOf(10, 20, 30, 40))
	if err := ed.Select(s.ID); err != nil {
		t.Fatal(err)
	}
	got := statusText(ed, IntentMove)
	if !strings.Contains(got, s.ID+" 30x40@10,20") || !strings.HasSuffix(got, "| move") {
		t.Errorf("statusText = %q", got)
	}
}
