package panorama

// EventType identifies an engine event.
type EventType uint8

const (
	EventSlideEntered EventType = iota
	EventSlideExited
	EventHotspotClicked
	EventItemTaken
	EventItemUsed
	EventSwitchToggled
	EventTransitionDone
)

var eventTypeNames = [...]string{
	EventSlideEntered:   "slide-entered",
	EventSlideExited:    "slide-exited",
	EventHotspotClicked: "hotspot-clicked",
	EventItemTaken:      "item-taken",
	EventItemUsed:       "item-used",
	EventSwitchToggled:  "switch-toggled",
	EventTransitionDone: "transition-done",
}

// String implements fmt.Stringer.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event describes something that happened in the world. Only the fields
// relevant to Type are set; ids are empty for anonymous entities.
type Event struct {
	Type    EventType
	Slide   string
	Hotspot string
	Item    string
	Switch  string
	// From and To name the nodes of a finished transition.
	From string
	To   string
	// On is the new state of a toggled switch.
	On bool
}

// EventSink is the interface for optional event forwarding.
// When set on an Engine, world events are delivered to it as they happen.
type EventSink interface {
	Emit(event Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(event Event)

// Emit calls f(event).
func (f EventSinkFunc) Emit(event Event) { f(event) }

func (e *Engine) emit(ev Event) {
	if e.Events != nil {
		e.Events.Emit(ev)
	}
}

// nodeID returns the persisted id of n, or "" for nodes without one.
func nodeID(n Node) string {
	switch v := n.(type) {
	case *Slide:
		if v != nil {
			return v.ID
		}
	case *Hotspot:
		return v.ID
	case *Movie:
		return v.File
	}
	return ""
}
