package panorama

import "path"

// MovieOptions configures a new Movie.
type MovieOptions struct {
	Stage *Stage
	// Sound is looped from the sound library while the movie plays.
	Sound string
	// Geometry overrides the clip-derived rectangle, relative to the screen.
	// Zero coordinates keep the clip's size and centered position.
	Geometry *RelativeRect
	Layer    float64
	Loop     bool
	// OnStop runs once when a non-looping movie reaches its last frame.
	OnStop func(m *Movie)
}

// Movie is a node that plays a Clip while it is entered.
type Movie struct {
	Panel

	File     string
	Stage    *Stage
	Sound    string
	Geometry *RelativeRect
	Loop     bool
	OnStop   func(m *Movie)

	e       *Engine
	clip    Clip
	playing bool
	played  bool
	elapsed float64
	frame   int
}

// NewMovie creates a movie node for file in the movie library.
func (e *Engine) NewMovie(file string, opts MovieOptions) *Movie {
	m := &Movie{
		Panel:    Panel{Cursor: CursorDefault},
		File:     file,
		Stage:    opts.Stage,
		Sound:    opts.Sound,
		Geometry: opts.Geometry,
		Loop:     opts.Loop,
		OnStop:   opts.OnStop,
		e:        e,
	}
	m.layer = opts.Layer
	return m
}

// Clip returns the decoded clip, laying the movie out on first use.
func (m *Movie) Clip() Clip {
	if m.clip == nil {
		p := m.File
		if m.Stage != nil && m.Stage.Folder != "" {
			p = path.Join(m.Stage.Folder, p)
		}
		m.clip = m.e.Media.Movies.Get(p)
		m.layout()
	}
	return m.clip
}

func (m *Movie) layout() {
	screen := m.e.Screen()
	w, h := m.clip.Size()
	r := Rect{Width: float64(w), Height: float64(h)}
	if m.Geometry != nil {
		abs := m.Geometry.Absolute(screen)
		if abs.Width != 0 {
			r.Width = abs.Width
		}
		if abs.Height != 0 {
			r.Height = abs.Height
		}
		r = r.WithCenter(screen.Center())
		if m.Geometry.Left != 0 {
			r.X = abs.X
		}
		if m.Geometry.Top != 0 {
			r.Y = abs.Y
		}
	} else {
		r = r.WithCenter(screen.Center())
	}
	m.rect = r
}

// Rect resolves the clip and returns the movie's rectangle.
func (m *Movie) Rect() Rect {
	m.Clip()
	return m.rect
}

// Played reports whether a non-looping movie has reached its end.
func (m *Movie) Played() bool { return m.played }

// Playing reports whether the movie is advancing.
func (m *Movie) Playing() bool { return m.playing }

// Frame returns the index of the frame currently shown.
func (m *Movie) Frame() int { return m.frame }

// Update advances playback by dt seconds.
func (m *Movie) Update(dt float64) {
	m.Panel.Update(dt)
	if !m.playing {
		return
	}
	clip := m.Clip()
	m.elapsed += dt
	m.frame = int(m.elapsed * clip.FrameRate())
	if m.frame < clip.Len() {
		return
	}
	if m.Loop {
		m.elapsed, m.frame = 0, 0
		return
	}
	m.frame = clip.Len() - 1
	if !m.played {
		m.played = true
		m.Exit(nil, 0)
		if m.OnStop != nil {
			m.OnStop(m)
		}
	}
}

// Draw draws the current frame, then any children.
func (m *Movie) Draw(s Surface) {
	clip := m.Clip()
	if clip.Len() > 0 {
		s.DrawImage(clip.Frame(max(m.frame, 0)), m.rect)
	}
	m.Panel.Draw(s)
}

// Enter starts playback from the beginning.
func (m *Movie) Enter(prev Node, duration float64) {
	m.Panel.Enter(prev, duration)
	m.Clip()
	m.playing = true
	m.played = false
	m.elapsed, m.frame = 0, 0
	if m.Sound != "" {
		m.e.Media.Sounds.Get(m.Sound).Loop(duration)
	}
}

// Exit stops playback.
func (m *Movie) Exit(next Node, duration float64) {
	m.Panel.Exit(next, duration)
	m.playing = false
	if m.Sound != "" {
		m.e.Media.Sounds.Get(m.Sound).FadeOut(duration)
	}
}
