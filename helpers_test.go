package panorama

import (
	"errors"
	"fmt"
	"testing"
)

var errNotFound = errors.New("not found")

type fakeImage struct {
	path string
	w, h int
}

func (i *fakeImage) Size() (int, int) { return i.w, i.h }

type fakeSound struct {
	path     string
	plays    int
	loops    int
	fadeOuts int
	fadeIn   float64
	playing  bool
	// fading is set between FadeOut and the end of the ramp; the loop is
	// still audible but counts as stopped.
	fading bool
}

func (s *fakeSound) Play() { s.plays++ }

func (s *fakeSound) Loop(fadeIn float64) {
	s.loops++
	s.fadeIn = fadeIn
	s.playing = true
	s.fading = false
}

func (s *fakeSound) FadeOut(float64) {
	s.fadeOuts++
	s.fading = s.playing
}

func (s *fakeSound) Playing() bool { return s.playing && !s.fading }

type fakeClip struct {
	frames int
	rate   float64
	w, h   int
}

func (c *fakeClip) Len() int           { return c.frames }
func (c *fakeClip) FrameRate() float64 { return c.rate }
func (c *fakeClip) Frame(i int) Image {
	return &fakeImage{path: fmt.Sprint("frame", i), w: c.w, h: c.h}
}
func (c *fakeClip) Size() (int, int) { return c.w, c.h }

// fakeLoader serves every image at 800x600 unless a size is set, and fails
// for paths marked missing.
type fakeLoader struct {
	sizes   map[string][2]int
	missing map[string]bool
	sounds  map[string]*fakeSound
	clips   map[string]*fakeClip
	loads   map[string]int
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{
		sizes:   make(map[string][2]int),
		missing: make(map[string]bool),
		sounds:  make(map[string]*fakeSound),
		clips:   make(map[string]*fakeClip),
		loads:   make(map[string]int),
	}
}

func (l *fakeLoader) LoadImage(path string) (Image, error) {
	l.loads[path]++
	if l.missing[path] {
		return nil, fmt.Errorf("%s: %w", path, errNotFound)
	}
	size, ok := l.sizes[path]
	if !ok {
		size = [2]int{800, 600}
	}
	return &fakeImage{path: path, w: size[0], h: size[1]}, nil
}

func (l *fakeLoader) LoadSound(path string) (Sound, error) {
	l.loads[path]++
	if l.missing[path] {
		return nil, fmt.Errorf("%s: %w", path, errNotFound)
	}
	s, ok := l.sounds[path]
	if !ok {
		s = &fakeSound{path: path}
		l.sounds[path] = s
	}
	return s, nil
}

func (l *fakeLoader) LoadClip(path string) (Clip, error) {
	l.loads[path]++
	c, ok := l.clips[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, errNotFound)
	}
	return c, nil
}

// sound returns the sound loaded for path, or nil.
func (l *fakeLoader) sound(path string) *fakeSound { return l.sounds[path] }

type drawCall struct {
	op    string
	path  string
	text  string
	rect  Rect
	color Color
}

// recordingSurface records draw calls. Text is measured at 10 pixels per
// character and size pixels high.
type recordingSurface struct {
	bounds Rect
	calls  []drawCall
}

func (s *recordingSurface) Bounds() Rect { return s.bounds }

func (s *recordingSurface) DrawImage(img Image, dst Rect) {
	var p string
	if fi, ok := img.(*fakeImage); ok {
		p = fi.path
	}
	s.calls = append(s.calls, drawCall{op: "image", path: p, rect: dst})
}

func (s *recordingSurface) DrawText(text string, at Vec2, size float64, c Color) {
	w, h := s.MeasureText(text, size)
	s.calls = append(s.calls, drawCall{op: "text", text: text, rect: Rect{at.X, at.Y, w, h}, color: c})
}

func (s *recordingSurface) MeasureText(text string, size float64) (float64, float64) {
	return float64(len(text)) * 10, size
}

func (s *recordingSurface) StrokeRect(r Rect, _ float64, c Color) {
	s.calls = append(s.calls, drawCall{op: "stroke", rect: r, color: c})
}

func (s *recordingSurface) FillRect(r Rect, c Color) {
	s.calls = append(s.calls, drawCall{op: "fill", rect: r, color: c})
}

func (s *recordingSurface) ops(op string) []drawCall {
	var out []drawCall
	for _, c := range s.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

func newTestEngine(t *testing.T) (*Engine, *fakeLoader, *ScriptedInput) {
	t.Helper()
	return newTestEngineWith(t, DefaultConfig())
}

func newTestEngineWith(t *testing.T, cfg Config) (*Engine, *fakeLoader, *ScriptedInput) {
	t.Helper()
	loader := newFakeLoader()
	in := NewScriptedInput()
	return New(cfg, loader, in), loader, in
}

// recordEvents collects every event emitted by e.
func recordEvents(e *Engine) *[]Event {
	var evs []Event
	e.Events = EventSinkFunc(func(ev Event) { evs = append(evs, ev) })
	return &evs
}

func eventTypes(evs []Event) []EventType {
	out := make([]EventType, len(evs))
	for i, ev := range evs {
		out[i] = ev.Type
	}
	return out
}

// stubNode is a plain Node with an optional click recorder.
type stubNode struct {
	name   string
	rect   Rect
	layer  float64
	clicks int
}

func (n *stubNode) Rect() Rect            { return n.rect }
func (n *stubNode) Layer() float64        { return n.layer }
func (n *stubNode) Click(ClickContext)    { n.clicks++ }
func (n *stubNode) Highlight(Vec2) Cursor { return Cursor(n.name) }
func (n *stubNode) SetRect(r Rect)        { n.rect = r }
func (n *stubNode) String() string        { return n.name }
func newStub(name string, r Rect, layer float64) *stubNode {
	return &stubNode{name: name, rect: r, layer: layer}
}
