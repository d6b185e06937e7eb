package panorama

// Image is a decoded picture owned by a rendering backend. The core only
// needs its pixel size to lay slides out.
type Image interface {
	Size() (width, height int)
}

// Sound is a playable sound owned by an audio backend. Volume fades happen
// inside the backend; the core only requests them.
type Sound interface {
	// Play starts the sound once from the beginning.
	Play()
	// Loop starts the sound looped, ramping the volume up over fadeIn
	// seconds. A zero fadeIn starts at full volume.
	Loop(fadeIn float64)
	// FadeOut ramps the volume down over d seconds and then stops.
	FadeOut(d float64)
	// Playing reports whether the looped sound is playing. A loop that is
	// fading out counts as stopped, so a following Loop brings it back.
	Playing() bool
}

// Clip is a decoded movie: a sequence of frames played at a fixed rate.
type Clip interface {
	Len() int
	FrameRate() float64
	Frame(i int) Image
	Size() (width, height int)
}

// Surface is the drawing target handed to Drawer nodes each frame.
// Coordinates are screen pixels.
type Surface interface {
	Bounds() Rect
	DrawImage(img Image, dst Rect)
	DrawText(text string, at Vec2, size float64, c Color)
	MeasureText(text string, size float64) (width, height float64)
	StrokeRect(r Rect, width float64, c Color)
	FillRect(r Rect, c Color)
}

// Loader decodes resources from slash-separated paths. A backend supplies
// one to Media.
type Loader interface {
	LoadImage(path string) (Image, error)
	LoadSound(path string) (Sound, error)
	LoadClip(path string) (Clip, error)
}
