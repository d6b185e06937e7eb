package panorama

import (
	"path"
	"slices"
)

// Stage groups slides that share an image folder and default sounds.
type Stage struct {
	ID       string
	Folder   string
	Ambient  string
	Movement string
}

// SlideOptions configures a new Slide.
type SlideOptions struct {
	Stage *Stage
	// Parent is the container the slide is laid out in. Defaults to the
	// engine's root panel. The slide is not added to it.
	Parent Container
	// Geometry overrides the image-derived rectangle, relative to the
	// parent. Zero width or height keep the image's size.
	Geometry *RelativeRect
	Ambient  string
	Movement string
	// Dialog is a voice played the first time the slide is entered.
	Dialog string
	Layer  float64
	Cursor Cursor
}

// Slide is one location of the world: an image with hotspots on top.
// Slides are Panels, so they can hold any other node as well.
type Slide struct {
	Panel

	ID       string
	Stage    *Stage
	Geometry *RelativeRect
	Ambient  string
	Movement string
	Dialog   string

	e       *Engine
	file    string
	loaded  bool
	visited bool
	links   []*Hotspot
	dirs    [numDirections]*Hotspot
	refs    [numDirections]string
	pan     []*Hotspot
}

// NewSlide creates a slide showing file. Named slides are registered in
// e.Slides.
func (e *Engine) NewSlide(id, file string, opts SlideOptions) *Slide {
	s := &Slide{
		Panel:    Panel{Cursor: CursorDefault},
		ID:       id,
		Stage:    opts.Stage,
		Geometry: opts.Geometry,
		Ambient:  opts.Ambient,
		Movement: opts.Movement,
		Dialog:   opts.Dialog,
		e:        e,
		file:     file,
	}
	if opts.Cursor != "" {
		s.Cursor = opts.Cursor
	}
	s.layer = opts.Layer
	s.parent = opts.Parent
	if s.parent == nil {
		s.parent = e.root
	}
	if id != "" {
		e.Slides.Put(id, s)
	}
	return s
}

// File returns the image file name, relative to the stage folder.
func (s *Slide) File() string { return s.file }

// SetFile changes the image. The rectangle and pan hotspots are recomputed
// the next time the slide is resolved.
func (s *Slide) SetFile(file string) {
	s.file = file
	s.loaded = false
}

// Path returns the image path inside the picture library.
func (s *Slide) Path() string {
	if s.Stage != nil && s.Stage.Folder != "" {
		return path.Join(s.Stage.Folder, s.file)
	}
	return s.file
}

// Image returns the slide's image, laying the slide out on first use.
func (s *Slide) Image() Image {
	img := s.e.Media.Images.Get(s.Path())
	if !s.loaded {
		s.layout(img)
	}
	return img
}

// Rect resolves the image and returns the slide's rectangle.
func (s *Slide) Rect() Rect {
	s.Image()
	return s.rect
}

// Loaded reports whether the image has been resolved and laid out.
func (s *Slide) Loaded() bool { return s.loaded }

// Visited reports whether the slide has been entered.
func (s *Slide) Visited() bool { return s.visited }

// SetVisited marks the slide visited or not, as when restoring progress.
func (s *Slide) SetVisited(v bool) { s.visited = v }

// layout centers the image on the parent, applies the geometry override,
// and synthesizes pan hotspots for images wider than the screen.
func (s *Slide) layout(img Image) {
	s.loaded = true
	ref := s.e.Screen()
	if s.parent != nil {
		ref = s.parent.Rect()
	}
	w, h := img.Size()
	r := Rect{Width: float64(w), Height: float64(h)}.WithCenter(ref.Center())
	if s.Geometry != nil {
		abs := s.Geometry.Absolute(ref)
		if s.Geometry.Left != 0 {
			r.X = abs.X
		}
		if s.Geometry.Top != 0 {
			r.Y = abs.Y
		}
		if abs.Width != 0 {
			r.Width = abs.Width
		}
		if abs.Height != 0 {
			r.Height = abs.Height
		}
	}
	s.rect = r
	s.makePanHotspots()
}

func (s *Slide) makePanHotspots() {
	for _, h := range s.pan {
		s.Remove(h)
	}
	s.pan = s.pan[:0]
	screen := s.e.Screen()
	if s.rect.Width <= screen.Width {
		return
	}
	const panWidth = 0.2
	left := s.e.NewHotspot(s, nil, HotspotOptions{
		Cursor:      CursorLeft,
		OnClick:     ClickAction{Kind: ClickNone},
		OnHighlight: HighlightAction{Kind: HighlightPanLeft},
		Layer:       0.1,
		template:    true,
	})
	left.SetRect(Rect{X: screen.X, Y: s.rect.Y, Width: screen.Width * panWidth, Height: s.rect.Height})
	right := s.e.NewHotspot(s, nil, HotspotOptions{
		Cursor:      CursorRight,
		OnClick:     ClickAction{Kind: ClickNone},
		OnHighlight: HighlightAction{Kind: HighlightPanRight},
		Layer:       0.1,
		template:    true,
	})
	right.SetRect(Rect{X: screen.X + screen.Width*(1-panWidth), Y: s.rect.Y, Width: screen.Width * panWidth, Height: s.rect.Height})
	s.pan = append(s.pan, left, right)
	s.Add(left)
	s.Add(right)
}

// PanHotspots returns the hotspots synthesized for a wide image.
func (s *Slide) PanHotspots() []*Hotspot {
	return s.pan
}

// Links returns the hotspots that currently lead to the slide, in the order
// they were linked. The slice is a copy.
func (s *Slide) Links() []*Hotspot {
	return slices.Clone(s.links)
}

// LinkedFrom reports whether h currently leads to the slide.
func (s *Slide) LinkedFrom(h *Hotspot) bool {
	return slices.Contains(s.links, h)
}

func (s *Slide) addLink(h *Hotspot) {
	if !slices.Contains(s.links, h) {
		s.links = append(s.links, h)
	}
}

func (s *Slide) removeLink(h *Hotspot) {
	if i := slices.Index(s.links, h); i >= 0 {
		s.links = slices.Delete(s.links, i, i+1)
	}
}

// AmbientSound returns the looped sound for the slide: its own, else the
// stage's.
func (s *Slide) AmbientSound() string {
	if s.Ambient != "" {
		return s.Ambient
	}
	if s.Stage != nil {
		return s.Stage.Ambient
	}
	return ""
}

// MovementSound returns the sound played when moving forward from the
// slide: its own, else the stage's.
func (s *Slide) MovementSound() string {
	if s.Movement != "" {
		return s.Movement
	}
	if s.Stage != nil {
		return s.Stage.Movement
	}
	return ""
}

var directionGeometry = [numDirections]RelativeRect{
	DirForward: {0.2, 0.2, 0.6, 0.6},
	DirUp:      {0, 0, 1, 0.2},
	DirDown:    {0, 0.8, 1, 0.2},
	DirLeft:    {0, 0, 0.2, 1},
	DirRight:   {0.8, 0, 0.2, 1},
}

var directionTransition = [numDirections]Transition{
	DirForward: PlainTransition,
	DirUp:      ScrollUp,
	DirDown:    ScrollDown,
	DirLeft:    ScrollLeft,
	DirRight:   ScrollRight,
}

var directionCursor = [numDirections]Cursor{
	DirForward: CursorForward,
	DirUp:      CursorUp,
	DirDown:    CursorDown,
	DirLeft:    CursorLeft,
	DirRight:   CursorRight,
}

// Direction returns the directional hotspot for d, or nil.
func (s *Slide) Direction(d Direction) *Hotspot {
	if d >= numDirections {
		return nil
	}
	return s.dirs[d]
}

// Forward returns the forward hotspot, or nil.
func (s *Slide) Forward() *Hotspot { return s.dirs[DirForward] }

// Up returns the up hotspot, or nil.
func (s *Slide) Up() *Hotspot { return s.dirs[DirUp] }

// Down returns the down hotspot, or nil.
func (s *Slide) Down() *Hotspot { return s.dirs[DirDown] }

// Left returns the left hotspot, or nil.
func (s *Slide) Left() *Hotspot { return s.dirs[DirLeft] }

// Right returns the right hotspot, or nil.
func (s *Slide) Right() *Hotspot { return s.dirs[DirRight] }

// SetReference records the id of the slide reached by direction d. The
// reference is turned into a hotspot by ResolveDirections.
func (s *Slide) SetReference(d Direction, id string) {
	if d < numDirections {
		s.refs[d] = id
	}
}

// ResolveDirections creates the directional hotspots from the recorded
// references. It runs once every slide exists, since references may point
// forward. In design mode every direction gets a hotspot so that it can be
// linked interactively.
func (s *Slide) ResolveDirections() {
	for _, d := range Directions {
		target, ok := s.e.Slides.Get(s.refs[d])
		if !ok {
			target = nil
			if !s.e.Design {
				continue
			}
		}
		s.SetDirection(d, target)
	}
}

// SetDirection links direction d to target, creating the directional
// hotspot if needed.
func (s *Slide) SetDirection(d Direction, target *Slide) {
	if d >= numDirections {
		return
	}
	if h := s.dirs[d]; h != nil {
		h.SetLink(target)
	} else {
		geom := directionGeometry[d]
		h = s.e.NewHotspot(s, target, HotspotOptions{
			ID:         d.String(),
			Geometry:   &geom,
			Cursor:     directionCursor[d],
			Transition: directionTransition[d],
			Delay:      DefaultDelay,
			Layer:      -1,
			template:   true,
		})
		if d == DirForward {
			h.Sound = s.MovementSound()
		}
		s.dirs[d] = h
		s.Add(h)
	}
	if target != nil {
		s.refs[d] = target.ID
	} else {
		s.refs[d] = ""
	}
	s.updateTurnCursors()
}

// updateTurnCursors marks left and right as a turn-around when both lead
// to the same slide.
func (s *Slide) updateTurnCursors() {
	left, right := s.dirs[DirLeft], s.dirs[DirRight]
	if left == nil || right == nil {
		return
	}
	if left.link != nil && left.link == right.link {
		left.Cursor, right.Cursor = CursorLeftLoop, CursorRightLoop
	} else {
		left.Cursor, right.Cursor = CursorLeft, CursorRight
	}
}

// Draw draws the image, then the children. In design mode the slide's id is
// drawn in the top-left corner.
func (s *Slide) Draw(surf Surface) {
	img := s.Image()
	surf.DrawImage(img, s.rect)
	s.Panel.Draw(surf)
	if s.e.Design && s.ID != "" {
		surf.DrawText(s.ID, Vec2{s.rect.X, s.rect.Y}, s.e.labelSize, ColorBlack)
	}
}

// Enter is called when the slide becomes visible. The dialog voice plays on
// the first visit; the ambience starts looping unless it is already playing.
func (s *Slide) Enter(prev Node, duration float64) {
	s.Panel.Enter(prev, duration)
	if s.Dialog != "" && !s.visited {
		s.e.Media.Voices.Get(s.Dialog).Play()
	}
	s.visited = true
	if s.parent == Container(s.e.root) {
		s.e.current = s
	}
	if amb := s.AmbientSound(); amb != "" {
		snd := s.e.Media.Sounds.Get(amb)
		if !snd.Playing() {
			snd.Loop(duration)
		}
	}
	s.e.emit(Event{Type: EventSlideEntered, Slide: s.ID})
}

// ambient is implemented by nodes that carry an ambience.
type ambient interface {
	AmbientSound() string
}

// Exit is called when the slide is replaced by next. The ambience fades out
// unless next continues it.
func (s *Slide) Exit(next Node, duration float64) {
	s.Panel.Exit(next, duration)
	if amb := s.AmbientSound(); amb != "" {
		var nextAmb string
		if a, ok := next.(ambient); ok {
			nextAmb = a.AmbientSound()
		}
		if amb != nextAmb {
			s.e.Media.Sounds.Get(amb).FadeOut(duration)
		}
	}
	s.e.emit(Event{Type: EventSlideExited, Slide: s.ID})
}
