package panorama

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default fade color and label color.
var ColorBlack = Color{0, 0, 0, 1}

// ColorMagenta is used for design-mode selection borders.
var ColorMagenta = Color{1, 0, 1, 1}

// Vec2 is a 2D vector used for pointer positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned rectangle in screen pixels. The coordinate system
// has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside the rectangle. The left and top
// edges are inside, the right and bottom edges are not, so rectangles that
// share an edge never both contain a point.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the center point.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// WithCenter returns r moved so that its center is c.
func (r Rect) WithCenter(c Vec2) Rect {
	r.X = c.X - r.Width/2
	r.Y = c.Y - r.Height/2
	return r
}

// Moved returns r translated by d.
func (r Rect) Moved(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Clamp moves r inside bounds. If r is larger than bounds along an axis it
// is aligned with the bounds' top or left edge.
func (r Rect) Clamp(bounds Rect) Rect {
	if r.Width >= bounds.Width {
		r.X = bounds.X
	} else {
		r.X = math.Max(bounds.X, math.Min(r.X, bounds.Right()-r.Width))
	}
	if r.Height >= bounds.Height {
		r.Y = bounds.Y
	} else {
		r.Y = math.Max(bounds.Y, math.Min(r.Y, bounds.Bottom()-r.Height))
	}
	return r
}

// Cursor names a cursor image in the cursor library. The empty cursor draws
// nothing.
type Cursor string

// Cursors used by the engine's built-in nodes.
const (
	CursorDefault   Cursor = "default.png"
	CursorForward   Cursor = "fwd.png"
	CursorGrab      Cursor = "grab.png"
	CursorFist      Cursor = "fist.png"
	CursorLeft      Cursor = "left.png"
	CursorRight     Cursor = "right.png"
	CursorUp        Cursor = "up.png"
	CursorDown      Cursor = "down.png"
	CursorLeftLoop  Cursor = "left180.png"
	CursorRightLoop Cursor = "right180.png"
)

// Direction identifies one of the five directional hotspots of a Slide.
type Direction uint8

const (
	DirForward Direction = iota // center region, plain transition
	DirUp                       // top strip, scroll up
	DirDown                     // bottom strip, scroll down
	DirLeft                     // left strip, scroll left
	DirRight                    // right strip, scroll right

	numDirections = 5
)

// Directions lists every Direction in persistence order.
var Directions = [numDirections]Direction{DirForward, DirUp, DirDown, DirLeft, DirRight}

// String returns the persisted name of the direction.
func (d Direction) String() string {
	switch d {
	case DirForward:
		return "forward"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Key identifies the keys the engine reacts to. Backends map everything
// else to KeyUnknown.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeyZ
	KeyS
	KeyF11
	KeyF12
)
