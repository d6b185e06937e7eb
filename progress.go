package panorama

import (
	"slices"

	"github.com/phanxgames/panorama/store"
)

// Progress returns the play state: the current slide, the visited slides,
// the taken items, and the switches that are on.
func (e *Engine) Progress() store.Progress {
	var p store.Progress
	if e.current != nil {
		p.Current = e.current.ID
	}
	for _, s := range e.Slides.All() {
		if s.visited {
			p.Visited = append(p.Visited, s.ID)
		}
	}
	for _, it := range e.Items.All() {
		if it.taken {
			p.Taken = append(p.Taken, it.ID)
		}
	}
	for _, sw := range e.Switches.All() {
		if sw.on {
			p.SwitchesOn = append(p.SwitchesOn, sw.ID)
		}
	}
	return p
}

// ApplyProgress restores a state returned by Progress on a freshly loaded
// world. Switches whose state differs are toggled so that the hotspots they
// control are rewired. Ids that no longer exist are ignored. The current
// slide, if any, is started.
func (e *Engine) ApplyProgress(p store.Progress) error {
	for _, s := range e.Slides.All() {
		s.visited = slices.Contains(p.Visited, s.ID)
	}
	for _, it := range e.Items.All() {
		it.SetTaken(slices.Contains(p.Taken, it.ID))
	}
	for _, sw := range e.Switches.All() {
		if on := slices.Contains(p.SwitchesOn, sw.ID); on != sw.on {
			sw.Toggle()
		}
	}
	logf("progress restored: %d visited, %d taken, %d switches on", len(p.Visited), len(p.Taken), len(p.SwitchesOn))
	if p.Current == "" {
		return nil
	}
	return e.Start(p.Current)
}
