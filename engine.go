package panorama

import "fmt"

// InventoryLayer is the layer of the inventory panel in the root panel.
const InventoryLayer = 10

// Editor is the authoring collaborator. In design mode a right click on a
// hotspot is handed to it instead of activating the hotspot.
type Editor interface {
	EditHotspot(h *Hotspot, ctx ClickContext)
}

// Engine is the world: it owns the entity registries, the root panel the
// visible nodes live in, the transition history, and the cooperative task
// queue that runs transitions one frame at a time.
//
// Engine is not safe for concurrent use. Call Update and Draw from the same
// goroutine, once per frame.
type Engine struct {
	// Design and Zip may be flipped at any time.
	Design    bool
	Zip       bool
	FrameRate float64

	Media  *Media
	Input  Input
	Events EventSink
	Editor Editor

	// Menu runs when Escape is pressed during play. Returning an error ends
	// the game loop; the default returns ErrQuit.
	Menu func() error
	// OnSave runs on Ctrl+S in design mode.
	OnSave func() error
	// Screenshot is set by the backend and called by script screenshot
	// steps.
	Screenshot func(label string)

	Stages   *Registry[*Stage]
	Slides   *Registry[*Slide]
	Hotspots *Registry[*Hotspot]
	Items    *Registry[*Item]
	Switches *Registry[*Switch]

	root      *Panel
	inventory *Panel
	current   *Slide
	history   History
	labelSize float64
	start     string

	tasks      []Task
	cancel     bool
	taskFrames int
	taskCursor Cursor

	overlay  Color
	label    string
	cursor   Cursor
	pointer  Vec2
	mods     KeyModifiers
	released *Vec2

	frame  int
	debug  bool
	runner *Runner

	transitions map[string]TransitionFunc
	clicks      map[string]func(h *Hotspot)
	highlights  map[string]func(h *Hotspot, at Vec2)
}

// New creates an engine for cfg. Resources are decoded by loader and input
// is read from input once per Update.
func New(cfg Config, loader Loader, input Input) *Engine {
	screen := Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	root := NewPanel()
	root.SetRect(screen)
	inv := NewPanel()
	inv.SetRect(screen)
	inv.SetLayer(InventoryLayer)
	inv.SetParent(root)
	inv.Transparent = true
	root.Add(inv)

	e := &Engine{
		Design:      cfg.Design,
		Zip:         cfg.Zip,
		FrameRate:   cfg.FrameRate,
		Media:       NewMedia(loader, cfg.Media),
		Input:       input,
		Menu:        func() error { return ErrQuit },
		Stages:      NewRegistry[*Stage]("stage"),
		Slides:      NewRegistry[*Slide]("slide"),
		Hotspots:    NewRegistry[*Hotspot]("hotspot"),
		Items:       NewRegistry[*Item]("item"),
		Switches:    NewRegistry[*Switch]("switch"),
		root:        root,
		inventory:   inv,
		labelSize:   cfg.LabelSize,
		start:       cfg.Start,
		transitions: make(map[string]TransitionFunc),
		clicks:      make(map[string]func(*Hotspot)),
		highlights:  make(map[string]func(*Hotspot, Vec2)),
	}
	if e.FrameRate <= 0 {
		e.FrameRate = DefaultConfig().FrameRate
	}
	if e.labelSize <= 0 {
		e.labelSize = DefaultConfig().LabelSize
	}
	return e
}

// SetDebugMode enables per-frame diagnostics on stderr and scene-graph
// sanity warnings.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
	globalDebug = enabled
}

// Root returns the panel holding every visible node.
func (e *Engine) Root() *Panel { return e.root }

// Inventory returns the panel holding the menu slides of taken items.
func (e *Engine) Inventory() *Panel { return e.inventory }

// Screen returns the screen rectangle.
func (e *Engine) Screen() Rect { return e.root.Rect() }

// Current returns the slide most recently entered into the root panel.
func (e *Engine) Current() *Slide { return e.current }

// Pointer returns the pointer position read at the start of the frame.
func (e *Engine) Pointer() Vec2 { return e.pointer }

// Cursor returns the cursor shown this frame.
func (e *Engine) Cursor() Cursor {
	if e.Busy() {
		return e.taskCursor
	}
	return e.cursor
}

// Label returns the text shown next to the pointer this frame.
func (e *Engine) Label() string { return e.label }

// ShowLabel shows text next to the pointer until the next frame.
func (e *Engine) ShowLabel(text string) { e.label = text }

// Overlay returns the color drawn over the whole screen, used by fades.
func (e *Engine) Overlay() Color { return e.overlay }

// Frame returns the number of Update calls so far.
func (e *Engine) Frame() int { return e.frame }

// Start places the slide called id on screen without a transition. An
// empty id uses the configured start slide.
func (e *Engine) Start(id string) error {
	if id == "" {
		id = e.start
	}
	s, err := e.Slides.Lookup(id)
	if err != nil {
		return err
	}
	for _, n := range e.root.snapshot() {
		if n != Node(e.inventory) {
			e.root.Remove(n)
		}
	}
	target := e.BeginTransition(nil, s, 0, e.root)
	e.EndTransition(nil, s, target)
	return nil
}

// Goto schedules a transition from the current slide to the slide called id.
func (e *Engine) Goto(id string, t Transition, duration float64) error {
	s, err := e.Slides.Lookup(id)
	if err != nil {
		return err
	}
	return e.Transition(t, slideNode(e.current), s, duration)
}

// Schedule appends t to the task queue. Gameplay input is suspended until
// the queue is empty. A nil task is ignored.
func (e *Engine) Schedule(t Task) {
	if t == nil {
		return
	}
	e.tasks = append(e.tasks, t)
}

// Busy reports whether a task is running.
func (e *Engine) Busy() bool { return len(e.tasks) > 0 }

// Cancelled reports whether Escape was pressed while the current tasks ran.
// Tasks that can be skipped check it at each step.
func (e *Engine) Cancelled() bool { return e.cancel }

// stepTasks advances the queue by one frame. Tasks that finish without
// rendering a frame hand over to the next task immediately.
func (e *Engine) stepTasks() {
	for len(e.tasks) > 0 {
		if !e.tasks[0].Step(e) {
			e.taskFrames++
			return
		}
		e.tasks[0] = nil
		e.tasks = e.tasks[1:]
	}
	e.tasks = nil
	e.cancel = false
	e.taskFrames = 0
	e.taskCursor = ""
}

// Update advances the world by one frame: it reads input, updates nodes,
// and either steps the running task or dispatches the frame's input.
// It returns ErrQuit when the player quits.
func (e *Engine) Update() error {
	e.frame++
	if e.runner != nil {
		e.runner.step(e)
	}
	st := e.Input.Poll()
	e.pointer, e.mods = st.Pointer, st.Mods
	e.released = nil
	busy := e.Busy()
	for _, ev := range st.Events {
		switch ev.Type {
		case InputQuit:
			return ErrQuit
		case InputPointerUp:
			p := ev.Pos
			e.released = &p
		case InputKeyDown:
			if ev.Key == KeyEscape && busy {
				e.cancel = true
			}
		}
	}

	e.root.Update(1 / e.FrameRate)

	if busy {
		e.stepTasks()
		e.debugLog(e.stats(len(st.Events)))
		return nil
	}

	e.label = ""
	e.cursor = e.root.Highlight(e.pointer)
	for _, ev := range st.Events {
		if e.Busy() {
			break
		}
		if err := e.dispatch(ev); err != nil {
			return err
		}
	}
	if e.Busy() {
		e.stepTasks()
	}
	e.debugLog(e.stats(len(st.Events)))
	return nil
}

func (e *Engine) stats(events int) debugStats {
	return debugStats{
		frame:      e.frame,
		taskFrames: e.taskFrames,
		busy:       e.Busy(),
		rootNodes:  e.root.Len(),
		inventory:  e.inventory.Len(),
		events:     events,
	}
}

// Settle runs Update until no task is running or maxFrames frames have
// passed. It returns the number of frames run.
func (e *Engine) Settle(maxFrames int) (int, error) {
	n := 0
	for e.Busy() && n < maxFrames {
		if err := e.Update(); err != nil {
			return n, err
		}
		n++
	}
	if e.Busy() {
		return n, fmt.Errorf("panorama: still busy after %d frames", maxFrames)
	}
	return n, nil
}

// labelOffset places labels below and to the right of the pointer when no
// cursor image is shown.
const labelOffset = 16

// Draw renders the root panel, the fade overlay, the label, and the cursor.
func (e *Engine) Draw(s Surface) {
	e.root.Draw(s)
	screen := e.Screen()
	if e.overlay.A > 0 {
		s.FillRect(screen, e.overlay)
	}

	var cursorRect Rect
	var cursorImg Image
	if c := e.Cursor(); c != "" {
		cursorImg = e.Media.Cursors.Get(string(c))
		w, h := cursorImg.Size()
		cursorRect = Rect{Width: float64(w), Height: float64(h)}.WithCenter(e.pointer)
	} else {
		cursorRect = Rect{X: e.pointer.X, Y: e.pointer.Y, Width: labelOffset, Height: labelOffset}
	}

	if e.label != "" && !e.Busy() {
		w, h := s.MeasureText(e.label, e.labelSize)
		r := Rect{X: cursorRect.Right(), Y: cursorRect.Bottom(), Width: w, Height: h}.Clamp(screen)
		s.DrawText(e.label, Vec2{r.X, r.Y}, e.labelSize, ColorBlack)
	}
	if cursorImg != nil {
		s.DrawImage(cursorImg, cursorRect)
	}
}
