package panorama

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextDefaults(t *testing.T) {
	txt := NewText("hello", TextOptions{})
	assert.Equal(t, float64(DefaultTextSize), txt.Size)
	assert.Equal(t, ColorBlack, txt.Color)
	assert.Equal(t, CursorDefault, txt.Highlight(Vec2{}))
}

func TestTextFollowsSlide(t *testing.T) {
	e, _, _ := newTestEngine(t)
	s := e.NewSlide("a", "a.png", SlideOptions{})
	txt := NewText("Chapter one", TextOptions{
		Slide:    s,
		Geometry: &RelativeRect{0.25, 0.5, 0, 0},
		Size:     20,
	})
	require.True(t, s.Contains(txt))

	surf := &recordingSurface{bounds: e.Screen()}
	DrawNode(txt, surf)
	require.Len(t, surf.calls, 1)
	assert.Equal(t, Rect{200, 300, 110, 20}, surf.calls[0].rect)
	assert.Equal(t, Rect{200, 300, 110, 20}, txt.Rect())

	s.SetRect(Rect{X: 100, Width: 800, Height: 600})
	assert.Equal(t, 300.0, txt.Rect().X)
}

func TestTextSetRectDropsGeometry(t *testing.T) {
	e, _, _ := newTestEngine(t)
	s := e.NewSlide("a", "a.png", SlideOptions{})
	txt := NewText("x", TextOptions{Slide: s, Geometry: &RelativeRect{0.5, 0.5, 0, 0}})

	txt.SetRect(Rect{X: 5, Y: 6, Width: 100, Height: 100})
	assert.Nil(t, txt.Geometry)
	assert.Equal(t, Rect{X: 5, Y: 6}, txt.Rect())
}

func TestTextClick(t *testing.T) {
	e, _, in := newTestEngine(t)
	s := e.NewSlide("menu", "menu.png", SlideOptions{})
	var clicked *Text
	txt := NewText("New game", TextOptions{
		Slide:    s,
		Geometry: &RelativeRect{0.5, 0.5, 0, 0},
		Cursor:   CursorForward,
		OnClick:  func(t *Text) { clicked = t },
	})
	require.NoError(t, e.Start("menu"))
	e.Draw(&recordingSurface{bounds: e.Screen()})

	in.MoveTo(410, 310)
	require.NoError(t, e.Update())
	assert.Equal(t, CursorForward, e.Cursor())

	in.Click(410, 310)
	require.NoError(t, e.Update())
	assert.Same(t, txt, clicked)
}
