package panorama

// Node is anything that occupies a rectangle in a Panel. Every other
// capability is optional: a node implements the subset it needs and callers
// go through the package helpers (DrawNode, ClickNode, ...), which treat a
// missing capability as a no-op.
type Node interface {
	Rect() Rect
	Layer() float64
}

// Drawer is implemented by nodes that render themselves.
type Drawer interface {
	Draw(s Surface)
}

// Highlighter is implemented by nodes that react to the pointer hovering
// over them. The returned cursor is displayed for the current frame.
type Highlighter interface {
	Highlight(at Vec2) Cursor
}

// Clicker is implemented by nodes that react to a pointer press.
type Clicker interface {
	Click(ctx ClickContext)
}

// Enterer is implemented by nodes that react to becoming visible.
// duration is advisory; the node decides how to spend it.
type Enterer interface {
	Enter(prev Node, duration float64)
}

// Exiter is implemented by nodes that react to being replaced.
type Exiter interface {
	Exit(next Node, duration float64)
}

// Updater is implemented by nodes that advance per-frame state such as
// movie playback. dt is in seconds.
type Updater interface {
	Update(dt float64)
}

// Movable is implemented by nodes whose rectangle can be repositioned by
// transitions and panning.
type Movable interface {
	SetRect(r Rect)
}

// Container is a Node that owns child nodes.
type Container interface {
	Node
	Add(n Node)
	Remove(n Node)
	Contains(n Node) bool
}

// Parented is implemented by nodes that know which Container they are
// placed in. Transitions reparent the incoming node before adding it.
type Parented interface {
	Parent() Container
	SetParent(c Container)
}

// ClickContext carries click event data.
type ClickContext struct {
	Pos       Vec2
	Button    MouseButton
	Modifiers KeyModifiers
	// Design is set for authoring clicks (right button in design mode).
	Design bool
}

// DrawNode resolves n's rectangle and draws it if n is a Drawer.
func DrawNode(n Node, s Surface) {
	if n == nil {
		return
	}
	n.Rect()
	if d, ok := n.(Drawer); ok {
		d.Draw(s)
	}
}

// HighlightNode calls n.Highlight if n is a Highlighter. ok is false when n
// has no highlight capability.
func HighlightNode(n Node, at Vec2) (c Cursor, ok bool) {
	if h, isH := n.(Highlighter); isH {
		return h.Highlight(at), true
	}
	return "", false
}

// ClickNode calls n.Click if n is a Clicker.
func ClickNode(n Node, ctx ClickContext) {
	if c, ok := n.(Clicker); ok {
		c.Click(ctx)
	}
}

// EnterNode calls n.Enter if n is an Enterer.
func EnterNode(n Node, prev Node, duration float64) {
	if e, ok := n.(Enterer); ok {
		e.Enter(prev, duration)
	}
}

// ExitNode calls n.Exit if n is an Exiter.
func ExitNode(n Node, next Node, duration float64) {
	if e, ok := n.(Exiter); ok {
		e.Exit(next, duration)
	}
}

// UpdateNode calls n.Update if n is an Updater.
func UpdateNode(n Node, dt float64) {
	if u, ok := n.(Updater); ok {
		u.Update(dt)
	}
}

// MoveNode sets n's rectangle if n is Movable.
func MoveNode(n Node, r Rect) {
	if m, ok := n.(Movable); ok {
		m.SetRect(r)
	}
}

// ParentOf returns n's container, or nil if n has none or is not Parented.
func ParentOf(n Node) Container {
	if p, ok := n.(Parented); ok {
		return p.Parent()
	}
	return nil
}

// slideNode converts a possibly nil *Slide into a Node without producing a
// non-nil interface that wraps a nil pointer.
func slideNode(s *Slide) Node {
	if s == nil {
		return nil
	}
	return s
}

// slideContainer is slideNode for places that need a Container.
func slideContainer(s *Slide) Container {
	if s == nil {
		return nil
	}
	return s
}
