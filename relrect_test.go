package panorama

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- RelativeRect ---

func TestRelativeToRoundTrip(t *testing.T) {
	ref := Rect{X: 100, Y: 50, Width: 400, Height: 200}
	r := Rect{X: 200, Y: 100, Width: 100, Height: 50}

	rel, err := RelativeTo(r, ref)
	require.NoError(t, err)
	assert.Equal(t, RelativeRect{Left: 0.25, Top: 0.25, Width: 0.25, Height: 0.25}, rel)
	assert.Equal(t, r, rel.Absolute(ref))
}

func TestRelativeToKeepsZeroCoordinates(t *testing.T) {
	ref := Rect{X: 10, Y: 20, Width: 100, Height: 100}
	rel, err := RelativeTo(Rect{X: 10, Y: 20, Width: 50, Height: 0}, ref)
	require.NoError(t, err)
	assert.Equal(t, RelativeRect{Left: 0, Top: 0, Width: 0.5, Height: 0}, rel)
}

func TestRelativeToDegenerateReference(t *testing.T) {
	for _, ref := range []Rect{
		{Width: 0, Height: 100},
		{Width: 100, Height: 0},
		{},
	} {
		_, err := RelativeTo(Rect{Width: 1, Height: 1}, ref)
		assert.ErrorIs(t, err, ErrDegenerateReference, "ref %v", ref)
	}
}

func TestAbsoluteOutsideReference(t *testing.T) {
	rr := RelativeRect{Left: -0.5, Top: 1, Width: 2, Height: 0.5}
	got := rr.Absolute(Rect{Width: 800, Height: 600})
	assert.Equal(t, Rect{X: -400, Y: 600, Width: 1600, Height: 300}, got)
}

func TestAbsoluteDegenerateReference(t *testing.T) {
	rr := RelativeRect{Left: 0.5, Top: 0.5, Width: 0.5, Height: 0.5}
	got := rr.Absolute(Rect{X: 10, Y: 10})
	assert.Equal(t, Rect{X: 10, Y: 10}, got)
	assert.True(t, got.IsEmpty())
}

func TestRelativeRectIsZero(t *testing.T) {
	assert.True(t, RelativeRect{}.IsZero())
	assert.False(t, RelativeRect{Height: 0.1}.IsZero())
}

// --- Rect ---

func TestRectContainsEdges(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	assert.True(t, r.Contains(Vec2{10, 10}))
	assert.True(t, r.Contains(Vec2{29.9, 29.9}))
	assert.False(t, r.Contains(Vec2{30, 15}))
	assert.False(t, r.Contains(Vec2{15, 30}))
	assert.False(t, r.Contains(Vec2{9.9, 15}))
}

func TestRectClamp(t *testing.T) {
	screen := Rect{Width: 800, Height: 600}
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"inside", Rect{100, 100, 50, 20}, Rect{100, 100, 50, 20}},
		{"past right and bottom", Rect{780, 590, 50, 20}, Rect{750, 580, 50, 20}},
		{"past left and top", Rect{-5, -5, 50, 20}, Rect{0, 0, 50, 20}},
		{"wider than bounds", Rect{100, 100, 900, 20}, Rect{0, 100, 900, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Clamp(screen))
		})
	}
}

func TestRectWithCenter(t *testing.T) {
	r := Rect{Width: 1600, Height: 600}.WithCenter(Vec2{400, 300})
	assert.Equal(t, Rect{X: -400, Y: 0, Width: 1600, Height: 600}, r)
	assert.Equal(t, Vec2{400, 300}, r.Center())
}
