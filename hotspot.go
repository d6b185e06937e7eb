package panorama

// DefaultDelay is the transition duration, in seconds, of hotspots the
// engine creates itself.
const DefaultDelay = 0.1

// panFactor is the fraction of the pointer's distance from the far edge of a
// pan hotspot that the slide moves per frame.
const panFactor = 0.1

// HotspotOptions configures a new Hotspot. The zero value is an anonymous,
// absolutely positioned hotspot with the forward cursor, no transition, and
// no delay.
type HotspotOptions struct {
	ID string
	// Geometry places the hotspot relative to its parent's rectangle. Nil
	// means the rectangle is absolute and set with SetRect.
	Geometry *RelativeRect
	// Drag, if set, turns a click into a drag gesture that only activates
	// when released inside this area (relative to the parent).
	Drag        *RelativeRect
	Layer       float64
	Cursor      Cursor
	Text        string
	Sound       string
	Delay       float64
	Zip         bool
	OnClick     ClickAction
	OnHighlight HighlightAction
	Transition  Transition

	template bool
}

// Hotspot is a clickable region of a Panel bound to a target Slide.
type Hotspot struct {
	ID string

	Geometry *RelativeRect
	Drag     *RelativeRect
	Cursor   Cursor
	Text     string
	Sound    string
	Delay    float64
	Zip      bool

	OnClick      ClickAction
	OnHighlight  HighlightAction
	OnTransition Transition

	// Used is set once the hotspot has been activated.
	Used bool

	e        *Engine
	parent   Container
	link     *Slide
	rect     Rect
	layer    float64
	disabled bool
	template bool

	item *Item
	sw   *Switch
}

// NewHotspot creates a hotspot inside parent that leads to link. It is not
// added to parent. Named hotspots are registered in e.Hotspots.
func (e *Engine) NewHotspot(parent Container, link *Slide, opts HotspotOptions) *Hotspot {
	h := &Hotspot{
		ID:           opts.ID,
		Geometry:     opts.Geometry,
		Drag:         opts.Drag,
		Cursor:       opts.Cursor,
		Text:         opts.Text,
		Sound:        opts.Sound,
		Delay:        opts.Delay,
		Zip:          opts.Zip,
		OnClick:      opts.OnClick,
		OnHighlight:  opts.OnHighlight,
		OnTransition: opts.Transition,
		e:            e,
		parent:       parent,
		layer:        opts.Layer,
		template:     opts.template,
	}
	if h.Cursor == "" {
		h.Cursor = CursorForward
	}
	if h.ID != "" && !h.template {
		e.Hotspots.Put(h.ID, h)
	}
	h.SetLink(link)
	return h
}

// Link returns the slide the hotspot leads to, or nil.
func (h *Hotspot) Link() *Slide { return h.link }

// SetLink retargets the hotspot. The old target's back-references lose h and
// the new target's gain it, so Slide.Links always mirrors Hotspot.Link.
func (h *Hotspot) SetLink(s *Slide) {
	if h.link == s {
		return
	}
	if h.link != nil {
		h.link.removeLink(h)
	}
	h.link = s
	if s != nil {
		s.addLink(h)
	}
}

// Parent returns the container the hotspot resolves its geometry against.
func (h *Hotspot) Parent() Container { return h.parent }

// SetParent changes the container the geometry is resolved against.
func (h *Hotspot) SetParent(c Container) { h.parent = c }

// Template reports whether the engine created the hotspot as part of a
// slide (directional and pan hotspots). Templates are not registered by id.
func (h *Hotspot) Template() bool { return h.template }

// Layer returns the hotspot's layer.
func (h *Hotspot) Layer() float64 { return h.layer }

// SetLayer changes the layer. Re-add the hotspot to its parent to re-sort.
func (h *Hotspot) SetLayer(layer float64) { h.layer = layer }

// Rect resolves the hotspot's geometry against its parent's current
// rectangle. Without geometry the absolute rectangle is returned; without a
// parent the rectangle stays as last resolved, zero if never resolved.
func (h *Hotspot) Rect() Rect {
	if h.Geometry != nil && h.parent != nil {
		h.rect = h.Geometry.Absolute(h.parent.Rect())
	}
	return h.rect
}

// SetRect positions the hotspot absolutely and drops its relative geometry.
func (h *Hotspot) SetRect(r Rect) {
	h.Geometry = nil
	h.rect = r
}

// Enabled reports whether a click can activate the hotspot. Zip hotspots
// are only enabled in zip mode, and only once their target was visited.
func (h *Hotspot) Enabled() bool {
	if h.disabled {
		return false
	}
	if !h.Zip {
		return true
	}
	return h.e.Zip && h.link != nil && h.link.visited
}

// SetEnabled enables or disables the hotspot explicitly.
func (h *Hotspot) SetEnabled(enabled bool) { h.disabled = !enabled }

// Draw outlines the hotspot in design mode while Shift is held.
func (h *Hotspot) Draw(s Surface) {
	if !h.e.Design || h.template || h.e.mods&ModShift == 0 {
		return
	}
	s.StrokeRect(h.Rect(), 2, ColorMagenta)
}

// Highlight shows the hotspot's text (or, in design mode, its target's id)
// next to the pointer, runs the highlight behavior, and returns the cursor.
func (h *Hotspot) Highlight(at Vec2) Cursor {
	switch {
	case h.e.Design && h.link != nil:
		h.e.ShowLabel(h.link.ID)
	case h.Text != "":
		h.e.ShowLabel(h.Text)
	}
	switch h.OnHighlight.Kind {
	case HighlightPanLeft:
		h.pan(at, true)
	case HighlightPanRight:
		h.pan(at, false)
	case HighlightCustom:
		if fn, ok := h.e.highlights[h.OnHighlight.Name]; ok {
			fn(h, at)
		}
	}
	return h.Cursor
}

// pan moves the parent horizontally. Once the leading edge of the parent
// would enter the screen it wraps around to show the opposite end.
func (h *Hotspot) pan(at Vec2, left bool) {
	if h.parent == nil {
		return
	}
	screen := h.e.Screen()
	r := h.Rect()
	pr := h.parent.Rect()
	if left {
		d := (r.Right() - at.X) * panFactor
		if edge := pr.X + d; edge < screen.X || edge > screen.Right() {
			pr.X += d
		} else {
			pr.X = screen.Right() - pr.Width
		}
	} else {
		d := (r.X - at.X) * panFactor
		if edge := pr.Right() + d; edge < screen.X || edge > screen.Right() {
			pr.X += d
		} else {
			pr.X = screen.X
		}
	}
	MoveNode(h.parent, pr)
}

// Click handles a press on the hotspot. Design clicks go to the editor.
// Disabled hotspots, and hotspots that need a link but have none, ignore
// the click. Otherwise the click sound plays and the click behavior runs,
// after a drag gesture if one is configured.
func (h *Hotspot) Click(ctx ClickContext) {
	if ctx.Design {
		if h.e.Editor != nil {
			h.e.Editor.EditHotspot(h, ctx)
		}
		return
	}
	if !h.Enabled() {
		return
	}
	if h.link == nil && (h.e.Design || h.OnClick.Kind == ClickTransition) {
		return
	}
	h.e.emit(Event{Type: EventHotspotClicked, Hotspot: h.ID, Slide: nodeID(h.parent)})
	if h.Sound != "" {
		h.e.Media.Sounds.Get(h.Sound).Play()
	}
	if h.Drag != nil {
		h.e.Schedule(&dragTask{h: h})
		return
	}
	h.activate()
}

// activate runs the click behavior and marks the hotspot used.
func (h *Hotspot) activate() {
	switch h.OnClick.Kind {
	case ClickTransition:
		if err := h.Transition(); err != nil {
			logf("hotspot %q: %v", h.ID, err)
		}
	case ClickTake:
		if h.item != nil {
			h.item.Take()
		}
	case ClickUse:
		if h.item != nil {
			h.item.Use()
		}
	case ClickCloseupExit:
		if h.item != nil {
			h.item.ExitCloseup()
		}
	case ClickSwitch:
		if h.sw != nil {
			h.sw.click(h)
		}
	case ClickCustom:
		fn, ok := h.e.clicks[h.OnClick.Name]
		if !ok {
			logf("hotspot %q: no click handler %q", h.ID, h.OnClick.Name)
			break
		}
		fn(h)
	}
	h.Used = true
}

// Transition moves control from the hotspot's parent to its link using
// OnTransition and Delay.
func (h *Hotspot) Transition() error {
	var old Node
	if h.parent != nil {
		old = h.parent
	}
	return h.e.Transition(h.OnTransition, old, slideNode(h.link), h.Delay)
}

// dragTask waits for the pointer to be released and activates h if the
// release point is inside its drag area.
type dragTask struct {
	h *Hotspot
}

func (t *dragTask) Step(e *Engine) bool {
	e.taskCursor = CursorFist
	if e.released == nil {
		return false
	}
	var ref Rect
	if t.h.parent != nil {
		ref = t.h.parent.Rect()
	}
	if t.h.Drag.Absolute(ref).Contains(*e.released) {
		t.h.activate()
	}
	return true
}
