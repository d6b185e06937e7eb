package panorama

import "fmt"

// TransitionKind selects how control moves from one node to another.
type TransitionKind uint8

const (
	TransitionNone        TransitionKind = iota // nothing happens
	TransitionPlain                             // pause, then cut
	TransitionScrollLeft                        // new node enters from the left
	TransitionScrollRight                       // new node enters from the right
	TransitionScrollUp                          // new node enters from the top
	TransitionScrollDown                        // new node enters from the bottom
	TransitionFade                              // fade through the overlay color
	TransitionCustom                            // handler registered under Name
)

// Transition is a persistable transition behavior. Custom transitions are
// looked up by Name in the engine's registry when they run.
type Transition struct {
	Kind TransitionKind
	Name string
}

// Built-in transitions.
var (
	NoTransition    = Transition{Kind: TransitionNone}
	PlainTransition = Transition{Kind: TransitionPlain}
	ScrollLeft      = Transition{Kind: TransitionScrollLeft}
	ScrollRight     = Transition{Kind: TransitionScrollRight}
	ScrollUp        = Transition{Kind: TransitionScrollUp}
	ScrollDown      = Transition{Kind: TransitionScrollDown}
	Fade            = Transition{Kind: TransitionFade}
)

// CustomTransition returns a transition that runs the handler registered
// under name with Engine.RegisterTransition.
func CustomTransition(name string) Transition {
	return Transition{Kind: TransitionCustom, Name: name}
}

var transitionNames = map[TransitionKind]string{
	TransitionNone:        "",
	TransitionPlain:       "transition",
	TransitionScrollLeft:  "scrollLeft",
	TransitionScrollRight: "scrollRight",
	TransitionScrollUp:    "scrollUp",
	TransitionScrollDown:  "scrollDown",
	TransitionFade:        "fade",
}

// Persisted returns the name the transition is stored under. NoTransition
// persists as the empty string.
func (t Transition) Persisted() string {
	if t.Kind == TransitionCustom {
		return t.Name
	}
	return transitionNames[t.Kind]
}

// String implements fmt.Stringer.
func (t Transition) String() string {
	if t.Kind == TransitionNone {
		return "none"
	}
	return t.Persisted()
}

// ParseTransition maps a persisted name back to a transition. Names that are
// not built in become custom transitions; whether a handler exists is only
// known once the transition runs.
func ParseTransition(name string) Transition {
	for k, n := range transitionNames {
		if n == name {
			return Transition{Kind: k}
		}
	}
	return CustomTransition(name)
}

// scrollDirection reports which way a scroll transition moves.
func (t Transition) scrollDirection() (Direction, bool) {
	switch t.Kind {
	case TransitionScrollLeft:
		return DirLeft, true
	case TransitionScrollRight:
		return DirRight, true
	case TransitionScrollUp:
		return DirUp, true
	case TransitionScrollDown:
		return DirDown, true
	}
	return 0, false
}

// TransitionFunc builds the task that moves control from old to new. Either
// node may be nil. A nil task means the transition completed synchronously.
type TransitionFunc func(e *Engine, old, new Node, duration float64) Task

// ClickKind selects what a hotspot does when activated.
type ClickKind uint8

const (
	ClickTransition  ClickKind = iota // run the hotspot's transition to its link
	ClickNone                         // do nothing
	ClickTake                         // take the owning item
	ClickUse                          // use the owning item
	ClickCloseupExit                  // leave the owning item's closeup
	ClickSwitch                       // toggle the owning switch
	ClickCustom                       // handler registered under Name
)

// ClickAction is a hotspot click behavior.
type ClickAction struct {
	Kind ClickKind
	Name string
}

// CustomClick returns a click action that runs the handler registered under
// name with Engine.RegisterClick.
func CustomClick(name string) ClickAction {
	return ClickAction{Kind: ClickCustom, Name: name}
}

// HighlightKind selects what a hotspot does while the pointer is over it.
type HighlightKind uint8

const (
	HighlightNone     HighlightKind = iota
	HighlightPanLeft                // scroll the parent right, wrapping at the edge
	HighlightPanRight               // scroll the parent left, wrapping at the edge
	HighlightCustom                 // handler registered under Name
)

// HighlightAction is a hotspot highlight behavior.
type HighlightAction struct {
	Kind HighlightKind
	Name string
}

// CustomHighlight returns a highlight action that runs the handler
// registered under name with Engine.RegisterHighlight.
func CustomHighlight(name string) HighlightAction {
	return HighlightAction{Kind: HighlightCustom, Name: name}
}

// RegisterTransition makes fn available as CustomTransition(name).
func (e *Engine) RegisterTransition(name string, fn TransitionFunc) {
	e.transitions[name] = fn
}

// RegisterClick makes fn available as CustomClick(name).
func (e *Engine) RegisterClick(name string, fn func(h *Hotspot)) {
	e.clicks[name] = fn
}

// RegisterHighlight makes fn available as CustomHighlight(name).
func (e *Engine) RegisterHighlight(name string, fn func(h *Hotspot, at Vec2)) {
	e.highlights[name] = fn
}

// transitionTask builds the task for t. Unregistered custom transitions
// fail with ErrUnknownTransition.
func (e *Engine) transitionTask(t Transition, old, new Node, duration float64) (Task, error) {
	switch t.Kind {
	case TransitionNone:
		return nil, nil
	case TransitionPlain:
		return e.plainTask(old, new, duration, nil), nil
	case TransitionFade:
		return e.fadeTask(old, new, duration, FadeOptions{}), nil
	case TransitionCustom:
		fn, ok := e.transitions[t.Name]
		if !ok {
			return nil, fmt.Errorf("panorama: transition %q: %w", t.Name, ErrUnknownTransition)
		}
		return fn(e, old, new, duration), nil
	}
	if dir, ok := t.scrollDirection(); ok {
		return e.scrollTask(dir, old, new, duration, nil), nil
	}
	return nil, fmt.Errorf("panorama: transition kind %d: %w", t.Kind, ErrUnknownTransition)
}
