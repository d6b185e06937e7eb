package ebitenbackend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/panorama"
)

var mouseButtons = [...]struct {
	eb ebiten.MouseButton
	pb panorama.MouseButton
}{
	{ebiten.MouseButtonLeft, panorama.MouseButtonLeft},
	{ebiten.MouseButtonRight, panorama.MouseButtonRight},
	{ebiten.MouseButtonMiddle, panorama.MouseButtonMiddle},
}

var keys = map[ebiten.Key]panorama.Key{
	ebiten.KeyEscape: panorama.KeyEscape,
	ebiten.KeyEnter:  panorama.KeyEnter,
	ebiten.KeyZ:      panorama.KeyZ,
	ebiten.KeyS:      panorama.KeyS,
	ebiten.KeyF11:    panorama.KeyF11,
	ebiten.KeyF12:    panorama.KeyF12,
}

// Input is a panorama.Input reading ebiten's mouse and keyboard state. It
// must be polled from ebiten's Update.
type Input struct {
	keys []ebiten.Key
}

// NewInput creates an input.
func NewInput() *Input {
	return &Input{}
}

// Poll returns the pointer position and the edges of this tick.
func (in *Input) Poll() panorama.InputState {
	mx, my := ebiten.CursorPosition()
	pos := panorama.Vec2{X: float64(mx), Y: float64(my)}
	mods := readModifiers()
	st := panorama.InputState{Pointer: pos, Mods: mods}

	if ebiten.IsWindowBeingClosed() {
		st.Events = append(st.Events, panorama.InputEvent{Type: panorama.InputQuit})
		return st
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			st.Events = append(st.Events, panorama.InputEvent{Type: panorama.InputPointerDown, Pos: pos, Button: b.pb, Mods: mods})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			st.Events = append(st.Events, panorama.InputEvent{Type: panorama.InputPointerUp, Pos: pos, Button: b.pb, Mods: mods})
		}
	}
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if pk, ok := keys[k]; ok {
			st.Events = append(st.Events, panorama.InputEvent{Type: panorama.InputKeyDown, Pos: pos, Key: pk, Mods: mods})
		}
	}
	return st
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() panorama.KeyModifiers {
	var mods panorama.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= panorama.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= panorama.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= panorama.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= panorama.ModMeta
	}
	return mods
}
