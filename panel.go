package panorama

// Panel is a Node that owns an ordered, layered collection of child nodes.
// Children are kept sorted by Layer; insertion order breaks ties. Higher
// layers are drawn later and hit-tested first, so the topmost node under
// the pointer receives highlight and click.
//
// Panels nest: a Slide is a Panel, and the engine's root panel holds the
// visible slides, the inventory, and any closeup overlays.
type Panel struct {
	rect     Rect
	layer    float64
	parent   Container
	children []Node

	// Cursor is returned by Highlight when no child is under the pointer.
	Cursor Cursor

	// Transparent panels only count as hit through one of their children.
	// The inventory uses this so that its full-screen bounds do not swallow
	// clicks meant for the slide below it.
	Transparent bool
}

// NewPanel creates an empty panel with the default cursor.
func NewPanel() *Panel {
	return &Panel{Cursor: CursorDefault}
}

// Rect returns the panel's rectangle.
func (p *Panel) Rect() Rect { return p.rect }

// SetRect sets the panel's rectangle.
func (p *Panel) SetRect(r Rect) { p.rect = r }

// Layer returns the panel's layer within its parent.
func (p *Panel) Layer() float64 { return p.layer }

// SetLayer changes the layer. If the panel is already inside a parent, the
// parent re-sorts it on the next Add.
func (p *Panel) SetLayer(layer float64) { p.layer = layer }

// Parent returns the container the panel was last placed in.
func (p *Panel) Parent() Container { return p.parent }

// SetParent records the container the panel is placed in. It does not add
// the panel to c.
func (p *Panel) SetParent(c Container) { p.parent = c }

// Add inserts n after every child whose layer is lower than or equal to
// n's. Adding a node that is already a child re-inserts it at its current
// layer, so membership stays unique.
func (p *Panel) Add(n Node) {
	if n == nil {
		return
	}
	p.Remove(n)
	layer := n.Layer()
	i := len(p.children)
	for i > 0 && p.children[i-1].Layer() > layer {
		i--
	}
	p.children = append(p.children, nil)
	copy(p.children[i+1:], p.children[i:])
	p.children[i] = n
	if globalDebug {
		debugCheckChildCount(p)
	}
}

// Remove removes n from the panel. Removing a non-member is a no-op.
func (p *Panel) Remove(n Node) {
	for i, c := range p.children {
		if c == n {
			copy(p.children[i:], p.children[i+1:])
			p.children[len(p.children)-1] = nil
			p.children = p.children[:len(p.children)-1]
			return
		}
	}
}

// Clear removes every child.
func (p *Panel) Clear() {
	clear(p.children)
	p.children = p.children[:0]
}

// Contains reports whether n is a child of the panel.
func (p *Panel) Contains(n Node) bool {
	for _, c := range p.children {
		if c == n {
			return true
		}
	}
	return false
}

// Children returns the children in ascending layer order. The returned
// slice MUST NOT be mutated.
func (p *Panel) Children() []Node {
	return p.children
}

// Len returns the number of children.
func (p *Panel) Len() int {
	return len(p.children)
}

// snapshot returns a copy of the children so callbacks may mutate the panel
// while it is being iterated.
func (p *Panel) snapshot() []Node {
	if len(p.children) == 0 {
		return nil
	}
	out := make([]Node, len(p.children))
	copy(out, p.children)
	return out
}

func (p *Panel) isTransparent() bool { return p.Transparent }

// seeThrough is implemented by panels (and anything embedding one).
type seeThrough interface {
	isTransparent() bool
	HitTest(at Vec2) Node
}

// HitTest returns the topmost child whose rectangle contains at, or nil.
// Children are scanned from the highest layer down; among equal layers the
// one inserted last wins. A transparent child panel is skipped unless one of
// its own children is hit.
func (p *Panel) HitTest(at Vec2) Node {
	for i := len(p.children) - 1; i >= 0; i-- {
		c := p.children[i]
		if !c.Rect().Contains(at) {
			continue
		}
		if st, ok := c.(seeThrough); ok && st.isTransparent() && st.HitTest(at) == nil {
			continue
		}
		return c
	}
	return nil
}

// Highlight delegates to the hit child's Highlight. If nothing is hit, or
// the hit child cannot highlight, the panel's own cursor is returned.
func (p *Panel) Highlight(at Vec2) Cursor {
	if c, ok := HighlightNode(p.HitTest(at), at); ok {
		return c
	}
	return p.Cursor
}

// Click delegates to the hit child's Click. Nothing happens if no child is
// hit or the hit child cannot be clicked.
func (p *Panel) Click(ctx ClickContext) {
	ClickNode(p.HitTest(ctx.Pos), ctx)
}

// Draw resolves and draws every child in ascending layer order.
func (p *Panel) Draw(s Surface) {
	for _, c := range p.snapshot() {
		DrawNode(c, s)
	}
}

// Enter forwards to every child that can enter.
func (p *Panel) Enter(prev Node, duration float64) {
	for _, c := range p.snapshot() {
		EnterNode(c, prev, duration)
	}
}

// Exit forwards to every child that can exit.
func (p *Panel) Exit(next Node, duration float64) {
	for _, c := range p.snapshot() {
		ExitNode(c, next, duration)
	}
}

// Update forwards to every child that has per-frame state.
func (p *Panel) Update(dt float64) {
	for _, c := range p.snapshot() {
		UpdateNode(c, dt)
	}
}
