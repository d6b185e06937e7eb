package panorama

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lightWorld is a room with a lamp switch. The hall's door leads to the dark
// room while the switch is off.
type lightWorld struct {
	e          *Engine
	in         *ScriptedInput
	hall, dark *Slide
	lit        *Slide
	door       *Hotspot
	lamp       *Hotspot
	sw         *Switch
}

func newLightWorld(t *testing.T) *lightWorld {
	t.Helper()
	e, _, in := newTestEngine(t)
	w := &lightWorld{e: e, in: in}
	w.hall = e.NewSlide("hall", "hall.png", SlideOptions{})
	w.dark = e.NewSlide("dark", "dark.png", SlideOptions{})
	w.lit = e.NewSlide("lit", "lit.png", SlideOptions{})
	w.door = e.NewHotspot(w.hall, w.dark, HotspotOptions{
		ID:         "door",
		Geometry:   &RelativeRect{0.4, 0.4, 0.2, 0.2},
		Transition: PlainTransition,
	})
	w.hall.Add(w.door)
	w.lamp = e.NewHotspot(w.dark, w.lit, HotspotOptions{
		ID:         "lamp",
		Geometry:   &RelativeRect{0, 0, 0.5, 0.5},
		Transition: PlainTransition,
	})
	w.dark.Add(w.lamp)
	w.sw = e.NewSwitch(w.lit, w.dark, []*Hotspot{w.lamp}, SwitchOptions{ID: "light"})
	return w
}

func TestSwitchRegistersAndOwnsHotspots(t *testing.T) {
	w := newLightWorld(t)
	got, ok := w.e.Switches.Get("light")
	require.True(t, ok)
	assert.Same(t, w.sw, got)
	assert.Equal(t, ClickSwitch, w.lamp.OnClick.Kind)
	assert.False(t, w.sw.On())
}

func TestSwitchToggleRewiresHotspots(t *testing.T) {
	w := newLightWorld(t)
	evs := recordEvents(w.e)

	w.sw.Toggle()
	assert.True(t, w.sw.On())
	assert.Same(t, w.lit, w.door.Link())
	assert.Empty(t, w.dark.Links())
	assert.Same(t, w.lit, w.lamp.Link(), "controlling hotspots keep their link")
	assert.Equal(t, []Event{{Type: EventSwitchToggled, Switch: "light", On: true}}, *evs)

	w.sw.Toggle()
	assert.False(t, w.sw.On())
	assert.Same(t, w.dark, w.door.Link())
	assert.False(t, w.e.Busy())
}

func TestSwitchClickTogglesAndTransitions(t *testing.T) {
	w := newLightWorld(t)
	require.NoError(t, w.e.Start("dark"))

	w.in.Click(100, 100)
	require.NoError(t, w.e.Update())
	assert.True(t, w.sw.On())
	assert.Same(t, w.lit, w.door.Link())

	_, err := w.e.Settle(10)
	require.NoError(t, err)
	assert.Same(t, w.lit, w.e.Current())
	assert.Nil(t, w.sw.Trigger())
}

func TestSwitchOnSwitchReplacesToggle(t *testing.T) {
	w := newLightWorld(t)
	var trigger *Hotspot
	w.sw.OnSwitch = func(s *Switch) { trigger = s.Trigger() }
	require.NoError(t, w.e.Start("dark"))

	w.in.Click(100, 100)
	require.NoError(t, w.e.Update())
	assert.Same(t, w.lamp, trigger)
	assert.False(t, w.sw.On())
	assert.False(t, w.e.Busy())
}

func TestSwitchWithSameSlides(t *testing.T) {
	e, _, _ := newTestEngine(t)
	a := e.NewSlide("a", "a.png", SlideOptions{})
	h := e.NewHotspot(nil, a, HotspotOptions{})
	sw := e.NewSwitch(a, a, nil, SwitchOptions{On: true})

	sw.Toggle()
	assert.False(t, sw.On())
	assert.Same(t, a, h.Link())
	assert.Equal(t, 0, e.Switches.Len())
}
