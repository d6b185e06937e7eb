package panorama

import (
	"fmt"
	"log"
	"os"
)

// logf logs an engine message with the package prefix.
func logf(format string, args ...any) {
	log.Printf("[panorama] "+format, args...)
}

// globalDebug enables scene-graph sanity checks in code that has no engine
// reference (Panel.Add). Set by Engine.SetDebugMode.
var globalDebug bool

// debugStats holds per-frame scheduler metrics.
// Only populated when Engine.debug is true.
type debugStats struct {
	frame      int
	taskFrames int
	busy       bool
	rootNodes  int
	inventory  int
	events     int
}

// debugLog prints scheduler stats to stderr.
func (e *Engine) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[panorama] frame: %d | busy: %v (%d frames) | root: %d | inventory: %d | events: %d\n",
		stats.frame, stats.busy, stats.taskFrames, stats.rootNodes, stats.inventory, stats.events)
}

// debugCheckChildCount warns on stderr if a panel has more than 256 children.
const debugMaxChildCount = 256

func debugCheckChildCount(p *Panel) {
	if len(p.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[panorama] warning: panel at %v has %d children (threshold %d)\n",
			p.rect, len(p.children), debugMaxChildCount)
	}
}

// debugCheckParent warns on stderr when n is added to target while still a
// child of another container.
func debugCheckParent(n Node, target Container) {
	prev := ParentOf(n)
	if prev == nil || prev == target {
		return
	}
	if prev.Contains(n) {
		_, _ = fmt.Fprintf(os.Stderr, "[panorama] warning: node %s added to a second container\n", nodeName(n))
	}
}

// nodeName returns a short description of n for diagnostics.
func nodeName(n Node) string {
	switch v := n.(type) {
	case nil:
		return "<nil>"
	case *Slide:
		if v == nil {
			return "<nil slide>"
		}
		return fmt.Sprintf("slide %q", v.ID)
	case *Hotspot:
		if v.ID != "" {
			return fmt.Sprintf("hotspot %q", v.ID)
		}
		return "anonymous hotspot"
	case *Movie:
		return "movie"
	case *Text:
		return fmt.Sprintf("text %q", v.Text)
	case *Panel:
		return "panel"
	default:
		return fmt.Sprintf("%T", n)
	}
}
