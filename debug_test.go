package panorama

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeName(t *testing.T) {
	e, _, _ := newTestEngine(t)
	var nilSlide *Slide
	tests := []struct {
		n    Node
		want string
	}{
		{nil, "<nil>"},
		{nilSlide, "<nil slide>"},
		{e.NewSlide("hall", "hall.png", SlideOptions{}), `slide "hall"`},
		{e.NewHotspot(nil, nil, HotspotOptions{ID: "door"}), `hotspot "door"`},
		{e.NewHotspot(nil, nil, HotspotOptions{}), "anonymous hotspot"},
		{NewText("hi", TextOptions{}), `text "hi"`},
		{NewPanel(), "panel"},
		{newStub("x", Rect{}, 0), "*panorama.stubNode"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nodeName(tt.n))
	}
}

func TestDebugModeRunsFrames(t *testing.T) {
	e, _, in := newTestEngine(t)
	e.SetDebugMode(true)
	t.Cleanup(func() { e.SetDebugMode(false) })
	a := e.NewSlide("a", "a.png", SlideOptions{})
	b := e.NewSlide("b", "b.png", SlideOptions{})
	a.SetDirection(DirForward, b)
	require.NoError(t, e.Start("a"))

	in.Click(400, 300)
	assert.NotPanics(t, func() {
		require.NoError(t, e.Update())
		_, err := e.Settle(100)
		require.NoError(t, err)
	})
	assert.Same(t, b, e.Current())

	st := e.stats(0)
	assert.Equal(t, 2, st.rootNodes)
	assert.False(t, st.busy)
}
