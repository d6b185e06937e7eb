package panorama

// DefaultTextSize is the size of labels and Text nodes that do not set one.
const DefaultTextSize = 32

// TextOptions configures a new Text node.
type TextOptions struct {
	Size  float64
	Color Color
	// Slide, if set, receives the text as a child and is the reference of
	// Geometry.
	Slide    *Slide
	Geometry *RelativeRect
	Layer    float64
	Cursor   Cursor
	OnClick  func(t *Text)
}

// Text is a line of text drawn on top of a slide.
type Text struct {
	Text     string
	Size     float64
	Color    Color
	Slide    *Slide
	Geometry *RelativeRect
	Cursor   Cursor
	OnClick  func(t *Text)

	rect  Rect
	layer float64
}

// NewText creates a text node. If opts.Slide is set the text is added to it.
func NewText(text string, opts TextOptions) *Text {
	t := &Text{
		Text:     text,
		Size:     opts.Size,
		Color:    opts.Color,
		Slide:    opts.Slide,
		Geometry: opts.Geometry,
		Cursor:   opts.Cursor,
		OnClick:  opts.OnClick,
		layer:    opts.Layer,
	}
	if t.Size == 0 {
		t.Size = DefaultTextSize
	}
	if t.Color == (Color{}) {
		t.Color = ColorBlack
	}
	if t.Slide != nil {
		t.Slide.Add(t)
	}
	return t
}

// Rect places the text relative to its slide. Width and height are those
// measured by the last Draw.
func (t *Text) Rect() Rect {
	if t.Geometry != nil && t.Slide != nil {
		abs := t.Geometry.Absolute(t.Slide.Rect())
		t.rect.X, t.rect.Y = abs.X, abs.Y
	}
	return t.rect
}

// SetRect moves the text. Only the position is kept.
func (t *Text) SetRect(r Rect) {
	t.Geometry = nil
	t.rect.X, t.rect.Y = r.X, r.Y
}

// Layer returns the text's layer.
func (t *Text) Layer() float64 { return t.layer }

// Draw measures and draws the text.
func (t *Text) Draw(s Surface) {
	t.rect.Width, t.rect.Height = s.MeasureText(t.Text, t.Size)
	s.DrawText(t.Text, Vec2{t.rect.X, t.rect.Y}, t.Size, t.Color)
}

// Highlight returns the text's cursor, or the default cursor.
func (t *Text) Highlight(Vec2) Cursor {
	if t.Cursor == "" {
		return CursorDefault
	}
	return t.Cursor
}

// Click runs OnClick.
func (t *Text) Click(ClickContext) {
	if t.OnClick != nil {
		t.OnClick(t)
	}
}
