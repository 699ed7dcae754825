package spriteframe

import (
	"fmt"
	"os"
	"time"
)

// globalDebug gates diagnostics and extra precondition checks. Geometry
// values have no owner to hang a flag on, so the switch is package-wide.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, precondition
// violations such as Vec2.Div by zero panic, editor transitions are traced,
// and per-replay render stats are logged to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug mode is enabled.
func DebugMode() bool {
	return globalDebug
}

// debugStats holds per-replay timing and op metrics.
// Only populated when debug mode is on.
type debugStats struct {
	replayTime time.Duration
	opCount    int
	drawn      int
	skipped    int
	maxDepth   int
}

// debugf prints a prefixed diagnostic line to stderr.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[spriteframe] "+format+"\n", args...)
}

// log prints replay stats to stderr.
func (s debugStats) log() {
	debugf("replay: %v | ops: %d | drawn: %d | skipped: %d | clip depth: %d",
		s.replayTime, s.opCount, s.drawn, s.skipped, s.maxDepth)
}

// debugMaxClipDepth is the clip nesting level past which a warning is printed.
const debugMaxClipDepth = 16

func debugCheckClipDepth(depth int) {
	if depth > debugMaxClipDepth {
		debugf("warning: clip depth %d exceeds %d", depth, debugMaxClipDepth)
	}
}
