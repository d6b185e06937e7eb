package panorama

import "slices"

// SwitchOptions configures a new Switch.
type SwitchOptions struct {
	ID string
	On bool
	// OnSwitch replaces the default reaction to a click on a controlling
	// hotspot, which is Toggle.
	OnSwitch func(s *Switch)
}

// Switch is an on/off object in the world (lever, button, door). Toggling
// it rewires every hotspot leading to one of its two slides to lead to the
// other one instead.
type Switch struct {
	ID       string
	OnSlide  *Slide
	OffSlide *Slide
	Hotspots []*Hotspot
	OnSwitch func(s *Switch)

	e       *Engine
	on      bool
	trigger *Hotspot
}

// NewSwitch creates a switch controlled by hotspots. Clicking any of them
// calls OnSwitch. Named switches are registered in e.Switches.
func (e *Engine) NewSwitch(on, off *Slide, hotspots []*Hotspot, opts SwitchOptions) *Switch {
	s := &Switch{
		ID:       opts.ID,
		OnSlide:  on,
		OffSlide: off,
		Hotspots: hotspots,
		OnSwitch: opts.OnSwitch,
		e:        e,
		on:       opts.On,
	}
	for _, h := range hotspots {
		h.OnClick = ClickAction{Kind: ClickSwitch}
		h.sw = s
	}
	if s.ID != "" {
		e.Switches.Put(s.ID, s)
	}
	return s
}

// On reports the switch state.
func (s *Switch) On() bool { return s.on }

// SetOn sets the state without rewiring, as when restoring progress before
// the rows that depend on it are loaded.
func (s *Switch) SetOn(on bool) { s.on = on }

// Trigger returns the controlling hotspot whose click is being handled, or
// nil outside OnSwitch.
func (s *Switch) Trigger() *Hotspot { return s.trigger }

func (s *Switch) click(h *Hotspot) {
	s.trigger = h
	defer func() { s.trigger = nil }()
	if s.OnSwitch != nil {
		s.OnSwitch(s)
		return
	}
	s.Toggle()
}

// Toggle flips the switch. Hotspots that led to the old slide, other than
// the switch's own, now lead to the new one. When the toggle was caused by
// a click, the clicked hotspot then runs its transition.
func (s *Switch) Toggle() {
	s.on = !s.on
	if s.OnSlide != s.OffSlide && s.OnSlide != nil && s.OffSlide != nil {
		old, new := s.OnSlide, s.OffSlide
		if s.on {
			old, new = s.OffSlide, s.OnSlide
		}
		for _, h := range old.Links() {
			if !slices.Contains(s.Hotspots, h) {
				h.SetLink(new)
			}
		}
	}
	s.e.emit(Event{Type: EventSwitchToggled, Switch: s.ID, On: s.on})
	if s.trigger != nil {
		if err := s.trigger.Transition(); err != nil {
			logf("switch %q: %v", s.ID, err)
		}
	}
}
