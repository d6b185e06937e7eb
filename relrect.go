package panorama

import (
	"fmt"
	"math"
)

// RelativeRect is a rectangle whose coordinates are fractions of a
// reference rectangle's width and height. Hotspots store their clickable
// area this way so that re-exporting slide images at another resolution
// does not require re-authoring every hotspot.
//
// Values outside 0..1 are valid and describe content that exceeds the
// reference.
type RelativeRect struct {
	Left, Top, Width, Height float64
}

// RelativeTo returns the RelativeRect that describes r in terms of ref.
// It fails with ErrDegenerateReference when ref has zero width or height.
// Zero results are kept as they are; only NaN is normalized to zero.
func RelativeTo(r, ref Rect) (RelativeRect, error) {
	if ref.Width == 0 || ref.Height == 0 {
		return RelativeRect{}, fmt.Errorf("panorama: relative to %v: %w", ref, ErrDegenerateReference)
	}
	return RelativeRect{
		Left:   finite((r.X - ref.X) / ref.Width),
		Top:    finite((r.Y - ref.Y) / ref.Height),
		Width:  finite(r.Width / ref.Width),
		Height: finite(r.Height / ref.Height),
	}, nil
}

// Absolute converts rr to pixels using ref as the reference rectangle.
// A degenerate reference yields a degenerate result rather than an error.
func (rr RelativeRect) Absolute(ref Rect) Rect {
	return Rect{
		X:      rr.Left*ref.Width + ref.X,
		Y:      rr.Top*ref.Height + ref.Y,
		Width:  rr.Width * ref.Width,
		Height: rr.Height * ref.Height,
	}
}

// IsZero reports whether every coordinate is zero.
func (rr RelativeRect) IsZero() bool {
	return rr == RelativeRect{}
}

func finite(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
