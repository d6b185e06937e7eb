package panorama

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = nodeName(n)
		if s, ok := n.(*stubNode); ok {
			out[i] = s.name
		}
	}
	return out
}

// --- Ordering ---

func TestPanelAddSortsByLayer(t *testing.T) {
	p := NewPanel()
	p.Add(newStub("a", Rect{}, 1))
	p.Add(newStub("b", Rect{}, 0))
	p.Add(newStub("c", Rect{}, 1))
	p.Add(newStub("d", Rect{}, -1))
	p.Add(nil)

	assert.Equal(t, []string{"d", "b", "a", "c"}, names(p.Children()))
}

func TestPanelAddIsIdempotent(t *testing.T) {
	p := NewPanel()
	a := newStub("a", Rect{}, 0)
	b := newStub("b", Rect{}, 0)
	p.Add(a)
	p.Add(b)
	p.Add(a)

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []string{"b", "a"}, names(p.Children()))
}

func TestPanelReaddResorts(t *testing.T) {
	p := NewPanel()
	a := newStub("a", Rect{}, 0)
	b := newStub("b", Rect{}, 1)
	p.Add(a)
	p.Add(b)
	a.layer = 2
	p.Add(a)

	assert.Equal(t, []string{"b", "a"}, names(p.Children()))
}

func TestPanelRemove(t *testing.T) {
	p := NewPanel()
	a := newStub("a", Rect{}, 0)
	p.Add(a)
	p.Remove(newStub("other", Rect{}, 0))
	assert.True(t, p.Contains(a))

	p.Remove(a)
	assert.False(t, p.Contains(a))
	assert.Equal(t, 0, p.Len())
}

func TestPanelClear(t *testing.T) {
	p := NewPanel()
	p.Add(newStub("a", Rect{}, 0))
	p.Add(newStub("b", Rect{}, 0))
	p.Clear()
	assert.Equal(t, 0, p.Len())
}

// --- Hit testing ---

func TestPanelHitTestTopmost(t *testing.T) {
	p := NewPanel()
	low := newStub("low", Rect{0, 0, 100, 100}, 0)
	high := newStub("high", Rect{50, 50, 100, 100}, 1)
	p.Add(high)
	p.Add(low)

	assert.Same(t, high, p.HitTest(Vec2{60, 60}))
	assert.Same(t, low, p.HitTest(Vec2{10, 10}))
	assert.Nil(t, p.HitTest(Vec2{200, 200}))
}

func TestPanelHitTestTieGoesToLastAdded(t *testing.T) {
	p := NewPanel()
	first := newStub("first", Rect{0, 0, 100, 100}, 0)
	second := newStub("second", Rect{0, 0, 100, 100}, 0)
	p.Add(first)
	p.Add(second)

	assert.Same(t, second, p.HitTest(Vec2{10, 10}))
}

func TestPanelTransparentChild(t *testing.T) {
	root := NewPanel()
	below := newStub("below", Rect{0, 0, 800, 600}, 0)
	overlay := NewPanel()
	overlay.SetRect(Rect{0, 0, 800, 600})
	overlay.SetLayer(10)
	overlay.Transparent = true
	icon := newStub("icon", Rect{700, 500, 100, 100}, 0)
	overlay.Add(icon)
	root.Add(below)
	root.Add(overlay)

	assert.Same(t, below, root.HitTest(Vec2{100, 100}))
	assert.Same(t, overlay, root.HitTest(Vec2{750, 550}))

	root.Click(ClickContext{Pos: Vec2{750, 550}})
	root.Click(ClickContext{Pos: Vec2{100, 100}})
	assert.Equal(t, 1, icon.clicks)
	assert.Equal(t, 1, below.clicks)
}

func TestPanelHighlight(t *testing.T) {
	p := NewPanel()
	p.Cursor = "empty.png"
	p.Add(newStub("spot.png", Rect{0, 0, 10, 10}, 0))
	p.Add(&Panel{rect: Rect{20, 20, 10, 10}, Cursor: "inner.png"})

	assert.Equal(t, Cursor("spot.png"), p.Highlight(Vec2{5, 5}))
	assert.Equal(t, Cursor("inner.png"), p.Highlight(Vec2{25, 25}))
	assert.Equal(t, Cursor("empty.png"), p.Highlight(Vec2{50, 50}))
}

// plainNode has no optional capabilities.
type plainNode struct{ rect Rect }

func (n plainNode) Rect() Rect     { return n.rect }
func (n plainNode) Layer() float64 { return 0 }

func TestPanelCapabilitiesAreOptional(t *testing.T) {
	p := NewPanel()
	p.Cursor = "panel.png"
	p.Add(plainNode{Rect{0, 0, 10, 10}})
	s := &recordingSurface{}

	assert.NotPanics(t, func() {
		p.Click(ClickContext{Pos: Vec2{5, 5}})
		p.Enter(nil, 0)
		p.Exit(nil, 0)
		p.Update(0.1)
		p.Draw(s)
	})
	assert.Equal(t, Cursor("panel.png"), p.Highlight(Vec2{5, 5}))
	assert.Empty(t, s.calls)
}
