package panorama

// InputEventType identifies a raw input event.
type InputEventType uint8

const (
	InputPointerDown InputEventType = iota
	InputPointerUp
	InputKeyDown
	InputQuit
)

// InputEvent is one raw input event. Pos is the pointer position at the time
// of the event.
type InputEvent struct {
	Type   InputEventType
	Pos    Vec2
	Button MouseButton
	Key    Key
	Mods   KeyModifiers
}

// InputState is everything the engine reads from the input collaborator in
// one frame.
type InputState struct {
	Pointer Vec2
	Mods    KeyModifiers
	Events  []InputEvent
}

// Input is the raw input collaborator. Poll is called once at the start of
// every Engine.Update and returns the events since the previous call.
type Input interface {
	Poll() InputState
}

// dispatch handles one event while no task is running.
func (e *Engine) dispatch(ev InputEvent) error {
	switch ev.Type {
	case InputKeyDown:
		return e.dispatchKey(ev)
	case InputPointerDown:
		e.root.Click(ClickContext{
			Pos:       ev.Pos,
			Button:    ev.Button,
			Modifiers: ev.Mods,
			Design:    e.Design && ev.Button == MouseButtonRight,
		})
	}
	return nil
}

func (e *Engine) dispatchKey(ev InputEvent) error {
	if ev.Key == KeyEscape {
		if e.Menu == nil {
			return nil
		}
		return e.Menu()
	}
	if !e.Design || ev.Mods&ModCtrl == 0 {
		return nil
	}
	switch ev.Key {
	case KeyZ:
		e.Undo()
	case KeyS:
		if e.OnSave == nil {
			break
		}
		if err := e.OnSave(); err != nil {
			logf("save: %v", err)
		} else {
			logf("saved")
		}
	}
	return nil
}
