package panorama

import "github.com/tanema/gween/ease"

// HistoryEntry records one finished transition.
type HistoryEntry struct {
	Old, New Node
}

// History is the stack of finished transitions used by Undo.
type History struct {
	entries []HistoryEntry
}

// Push appends an entry.
func (h *History) Push(old, new Node) {
	h.entries = append(h.entries, HistoryEntry{Old: old, New: new})
}

// Pop removes and returns the most recent entry.
func (h *History) Pop() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = HistoryEntry{}
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

// Last returns the most recent entry without removing it.
func (h *History) Last() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// Entries returns the entries, oldest first. The slice MUST NOT be mutated.
func (h *History) Entries() []HistoryEntry { return h.entries }

// Clear removes every entry.
func (h *History) Clear() {
	clear(h.entries)
	h.entries = h.entries[:0]
}

// targetOf returns the container a transition from old places new into:
// target if given, else old's parent, else the root panel.
func (e *Engine) targetOf(old Node, target Container) Container {
	if target != nil {
		return target
	}
	if p := ParentOf(old); p != nil {
		return p
	}
	return e.root
}

// BeginTransition places new into target (see targetOf), resolves its
// rectangle, and tells old it is exiting and new it is entering. Either
// node may be nil. It returns the container used.
func (e *Engine) BeginTransition(old, new Node, duration float64, target Container) Container {
	target = e.targetOf(old, target)
	if new != nil {
		if globalDebug {
			debugCheckParent(new, target)
		}
		if p, ok := new.(Parented); ok {
			p.SetParent(target)
		}
		new.Rect()
		target.Add(new)
	}
	ExitNode(old, new, duration)
	EnterNode(new, old, duration)
	return target
}

// EndTransition removes old from target and records the transition.
func (e *Engine) EndTransition(old, new Node, target Container) {
	target = e.targetOf(old, target)
	if old != nil {
		target.Remove(old)
	}
	e.history.Push(old, new)
	if e.Design {
		logf("transition %s -> %s", nodeName(old), nodeName(new))
	}
	e.emit(Event{Type: EventTransitionDone, From: nodeID(old), To: nodeID(new)})
}

// frames converts a duration in seconds to a frame count.
func (e *Engine) frames(duration float64) int {
	if duration <= 0 {
		return 0
	}
	return int(duration * e.FrameRate)
}

// Transition schedules t from old to new. Either node may be nil.
func (e *Engine) Transition(t Transition, old, new Node, duration float64) error {
	task, err := e.transitionTask(t, old, new, duration)
	if err != nil {
		return err
	}
	e.Schedule(task)
	return nil
}

// Pause schedules duration seconds of rendering without input.
func (e *Engine) Pause(duration float64) {
	e.Schedule(WaitFrames(e.frames(duration)))
}

// plainTask begins, pauses for duration, and ends.
func (e *Engine) plainTask(old, new Node, duration float64, target Container) Task {
	var used Container
	return Sequence(
		Call(func() { used = e.BeginTransition(old, new, duration, target) }),
		WaitFrames(e.frames(duration)),
		Call(func() { e.EndTransition(old, new, used) }),
	)
}

// Scroll schedules a scroll: old leaves through the edge in direction dir
// while new follows it in from the opposite edge.
func (e *Engine) Scroll(dir Direction, old, new Node, duration float64) {
	e.Schedule(e.scrollTask(dir, old, new, duration, nil))
}

func (e *Engine) scrollTask(dir Direction, old, new Node, duration float64, target Container) Task {
	var used Container
	return Sequence(
		Call(func() { used = e.BeginTransition(old, new, duration, target) }),
		Defer(func() Task { return e.scrollTween(dir, old, new, e.frames(duration)) }),
		Call(func() {
			center := e.Screen().Center()
			if old != nil {
				MoveNode(old, old.Rect().WithCenter(center))
			}
			if new != nil {
				MoveNode(new, new.Rect().WithCenter(center))
			}
			e.EndTransition(old, new, used)
		}),
	)
}

// scrollTween places new against the edge of old and moves both so that
// new ends centered on the screen.
func (e *Engine) scrollTween(dir Direction, old, new Node, frames int) Task {
	screen := e.Screen()
	oldRect, newRect := screen, screen
	if old != nil {
		oldRect = old.Rect()
	}
	if new != nil {
		newRect = new.Rect()
	}
	switch dir {
	case DirLeft:
		newRect.X = oldRect.X - newRect.Width
	case DirRight:
		newRect.X = oldRect.Right()
	case DirUp:
		newRect.Y = oldRect.Y - newRect.Height
	case DirDown:
		newRect.Y = oldRect.Bottom()
	}
	if new != nil {
		MoveNode(new, newRect)
	}
	d := screen.Center().Sub(newRect.Center())
	return NewTweenGroup(
		[]float64{0, 0},
		[]float64{d.X, d.Y},
		frames, ease.Linear,
		func(v [4]float64) {
			off := Vec2{v[0], v[1]}
			if old != nil {
				MoveNode(old, oldRect.Moved(off))
			}
			if new != nil {
				MoveNode(new, newRect.Moved(off))
			}
		},
	)
}

// FadeOptions configures a fade.
type FadeOptions struct {
	// Color is the overlay color at full fade. Defaults to black.
	Color Color
	// Alpha is the overlay opacity at full fade. Defaults to 1.
	Alpha float64
	// Target is the container new is placed into.
	Target Container
}

// Fade schedules a fade through the overlay color. When one side is nil the
// remaining half takes the whole duration twice over.
func (e *Engine) Fade(old, new Node, duration float64, opts FadeOptions) {
	e.Schedule(e.fadeTask(old, new, duration, opts))
}

func (e *Engine) fadeTask(old, new Node, duration float64, opts FadeOptions) Task {
	if opts.Color == (Color{}) {
		opts.Color = ColorBlack
	}
	if opts.Alpha == 0 {
		opts.Alpha = 1
	}
	if old == nil || new == nil {
		duration *= 2
	}
	n := e.frames(duration)
	setAlpha := func(a float64) {
		e.overlay = opts.Color
		e.overlay.A = a
	}
	var fadeOut, fadeIn Task
	if old != nil {
		fadeOut = tweenValue(0, opts.Alpha, n, setAlpha)
	}
	if new != nil {
		fadeIn = tweenValue(opts.Alpha, 0, n, setAlpha)
	}
	var used Container
	return Sequence(
		fadeOut,
		Call(func() {
			used = e.BeginTransition(old, new, duration, opts.Target)
			e.EndTransition(old, new, used)
		}),
		fadeIn,
		Call(func() { e.overlay = Color{} }),
	)
}

// CutsceneOptions configures a cutscene.
type CutsceneOptions struct {
	// Start and Stop are the transitions into and out of the movie.
	// They default to Fade.
	Start, Stop Transition
	// AllowExit lets Escape skip the movie.
	AllowExit bool
}

// Cutscene schedules a transition from old into movie, waits for the movie
// to finish (or for Escape if allowed), and transitions from movie to new.
func (e *Engine) Cutscene(old, new Node, duration float64, movie *Movie, opts CutsceneOptions) error {
	if opts.Start.Kind == TransitionNone {
		opts.Start = Fade
	}
	if opts.Stop.Kind == TransitionNone {
		opts.Stop = Fade
	}
	start, err := e.transitionTask(opts.Start, old, movie, duration)
	if err != nil {
		return err
	}
	e.Schedule(Sequence(
		start,
		WaitUntil(func(e *Engine) bool {
			if opts.AllowExit && e.cancel {
				e.cancel = false
				return true
			}
			return movie.Played()
		}),
		Defer(func() Task {
			stop, err := e.transitionTask(opts.Stop, movie, new, duration)
			if err != nil {
				logf("cutscene: %v", err)
				return nil
			}
			return stop
		}),
	))
	return nil
}

// Undo reverts the last transition in design mode by transitioning back
// instantly. It reports whether anything was undone.
func (e *Engine) Undo() bool {
	if !e.Design {
		return false
	}
	last, ok := e.history.Last()
	if !ok || last.Old == nil {
		return false
	}
	e.history.Pop()
	logf("undo %s -> %s", nodeName(last.New), nodeName(last.Old))
	e.Schedule(Sequence(
		e.plainTask(last.New, last.Old, 0, nil),
		Call(func() { e.history.Pop() }),
	))
	return true
}

// History returns the transition history.
func (e *Engine) History() *History { return &e.history }
