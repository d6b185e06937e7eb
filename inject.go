package panorama

// inputMove is a queued frame that only moves the pointer.
const inputMove InputEventType = 255

// ScriptedInput is an Input fed by code instead of a device. Every queued
// event is delivered in a frame of its own, so a press and the matching
// release are never seen in the same frame. Tests and playthrough scripts
// drive the engine with it.
type ScriptedInput struct {
	queue   []InputEvent
	pointer Vec2
	mods    KeyModifiers
}

// NewScriptedInput creates an empty scripted input.
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{}
}

// Poll pops the next queued event.
func (in *ScriptedInput) Poll() InputState {
	if len(in.queue) == 0 {
		return InputState{Pointer: in.pointer, Mods: in.mods}
	}
	ev := in.queue[0]
	copy(in.queue, in.queue[1:])
	in.queue = in.queue[:len(in.queue)-1]
	switch ev.Type {
	case inputMove:
		in.pointer = ev.Pos
		return InputState{Pointer: in.pointer, Mods: in.mods}
	case InputPointerDown, InputPointerUp:
		in.pointer = ev.Pos
	}
	ev.Mods |= in.mods
	return InputState{Pointer: in.pointer, Mods: ev.Mods, Events: []InputEvent{ev}}
}

// Pending returns the number of queued events.
func (in *ScriptedInput) Pending() int { return len(in.queue) }

// SetModifiers sets the modifier keys held during every following frame.
func (in *ScriptedInput) SetModifiers(mods KeyModifiers) { in.mods = mods }

// MoveTo moves the pointer immediately, without queueing an event.
func (in *ScriptedInput) MoveTo(x, y float64) { in.pointer = Vec2{x, y} }

// Press queues a left button press at (x, y).
func (in *ScriptedInput) Press(x, y float64) {
	in.PressButton(x, y, MouseButtonLeft)
}

// PressButton queues a press of button at (x, y).
func (in *ScriptedInput) PressButton(x, y float64, button MouseButton) {
	in.queue = append(in.queue, InputEvent{Type: InputPointerDown, Pos: Vec2{x, y}, Button: button})
}

// Move queues a frame in which the pointer is at (x, y) and nothing else
// happens. Use it between Press and Release to simulate a drag.
func (in *ScriptedInput) Move(x, y float64) {
	in.queue = append(in.queue, InputEvent{Type: inputMove, Pos: Vec2{x, y}})
}

// Release queues a left button release at (x, y).
func (in *ScriptedInput) Release(x, y float64) {
	in.queue = append(in.queue, InputEvent{Type: InputPointerUp, Pos: Vec2{x, y}, Button: MouseButtonLeft})
}

// Click queues a press followed by a release at the same position.
// Consumes two frames.
func (in *ScriptedInput) Click(x, y float64) {
	in.Press(x, y)
	in.Release(x, y)
}

// RightClick is Click with the right button.
func (in *ScriptedInput) RightClick(x, y float64) {
	in.PressButton(x, y, MouseButtonRight)
	in.queue = append(in.queue, InputEvent{Type: InputPointerUp, Pos: Vec2{x, y}, Button: MouseButtonRight})
}

// Drag queues a full drag sequence: press at from, linearly interpolated
// moves over frames-2 intermediate frames, and release at to. The total
// sequence consumes frames frames; the minimum is 2.
func (in *ScriptedInput) Drag(from, to Vec2, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.Press(from.X, from.Y)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.Move(from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t)
	}
	in.Release(to.X, to.Y)
}

// Key queues a key press with the given modifiers.
func (in *ScriptedInput) Key(k Key, mods KeyModifiers) {
	in.queue = append(in.queue, InputEvent{Type: InputKeyDown, Key: k, Mods: mods})
}

// Quit queues a quit request.
func (in *ScriptedInput) Quit() {
	in.queue = append(in.queue, InputEvent{Type: InputQuit})
}
