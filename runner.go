package panorama

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ScriptStep is a single action in a playthrough script.
type ScriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`

	// Key and Mods are used by "key" steps, e.g. key: z, mods: [ctrl].
	Key  string   `yaml:"key,omitempty"`
	Mods []string `yaml:"mods,omitempty"`

	// Checked by "expect" steps when set.
	Slide   string `yaml:"slide,omitempty"`
	Taken   string `yaml:"taken,omitempty"`
	Visited string `yaml:"visited,omitempty"`
	On      string `yaml:"on,omitempty"`
	Off     string `yaml:"off,omitempty"`
}

type script struct {
	Steps []ScriptStep `yaml:"steps"`
}

// Runner plays a script through a ScriptedInput, one step per frame once
// the previous step's input has been delivered. Attach it to an engine
// with SetRunner.
//
// Steps: click, rightClick, press, release, move, drag, key, wait, settle
// (wait until no task runs), screenshot, and expect (check the world).
type Runner struct {
	input     *ScriptedInput
	steps     []ScriptStep
	cursor    int
	waitCount int
	settling  bool
	done      bool
	failures  []error
}

// LoadScript parses a YAML (or JSON) playthrough script that feeds input.
func LoadScript(data []byte, input *ScriptedInput) (*Runner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("panorama: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("panorama: parse script: no steps")
	}
	for i, st := range s.Steps {
		if st.Action == "key" {
			if _, err := parseKey(st.Key); err != nil {
				return nil, fmt.Errorf("panorama: parse script: step %d: %w", i, err)
			}
		}
	}
	return &Runner{input: input, steps: s.Steps}, nil
}

// SetRunner attaches r. Its steps are taken at the start of every Update,
// before input is polled.
func (e *Engine) SetRunner(r *Runner) {
	e.runner = r
}

// Done reports whether every step has been executed and its input
// delivered.
func (r *Runner) Done() bool {
	return r.done
}

// Err returns the failed expectations, joined.
func (r *Runner) Err() error {
	return errors.Join(r.failures...)
}

// Run attaches r to e and updates e until the script is done. It fails if
// the script does not finish within maxFrames or an expectation failed.
func (r *Runner) Run(e *Engine, maxFrames int) error {
	e.SetRunner(r)
	defer e.SetRunner(nil)
	for n := 0; !r.done; n++ {
		if n >= maxFrames {
			return fmt.Errorf("panorama: script not done after %d frames (step %d of %d)", maxFrames, r.cursor, len(r.steps))
		}
		if err := e.Update(); err != nil {
			return err
		}
	}
	return r.Err()
}

// step advances the runner by one frame.
func (r *Runner) step(e *Engine) {
	if r.done {
		return
	}
	if r.input.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.settling {
		if e.Busy() {
			return
		}
		r.settling = false
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		r.input.Click(st.X, st.Y)
	case "rightClick":
		r.input.RightClick(st.X, st.Y)
	case "press":
		r.input.Press(st.X, st.Y)
	case "release":
		r.input.Release(st.X, st.Y)
	case "move":
		r.input.Move(st.X, st.Y)
	case "drag":
		r.input.Drag(Vec2{st.FromX, st.FromY}, Vec2{st.ToX, st.ToY}, st.Frames)
	case "key":
		k, _ := parseKey(st.Key)
		r.input.Key(k, parseMods(st.Mods))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	case "settle":
		r.settling = e.Busy()
	case "screenshot":
		if e.Screenshot != nil {
			e.Screenshot(st.Label)
		} else {
			logf("script: screenshot %q ignored, no screenshot hook", st.Label)
		}
	case "expect":
		r.expect(e, st)
	default:
		r.failures = append(r.failures, fmt.Errorf("step %d: unknown action %q", r.cursor-1, st.Action))
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.settling && r.input.Pending() == 0 {
		r.done = true
	}
}

func (r *Runner) expect(e *Engine, st ScriptStep) {
	fail := func(format string, args ...any) {
		r.failures = append(r.failures, fmt.Errorf("step %d: "+format, append([]any{r.cursor - 1}, args...)...))
	}
	if st.Slide != "" {
		var got string
		if e.current != nil {
			got = e.current.ID
		}
		if got != st.Slide {
			fail("current slide %q, want %q", got, st.Slide)
		}
	}
	if st.Visited != "" {
		if s, ok := e.Slides.Get(st.Visited); !ok || !s.visited {
			fail("slide %q not visited", st.Visited)
		}
	}
	if st.Taken != "" {
		if it, ok := e.Items.Get(st.Taken); !ok || !it.taken {
			fail("item %q not taken", st.Taken)
		}
	}
	if st.On != "" {
		if sw, ok := e.Switches.Get(st.On); !ok || !sw.on {
			fail("switch %q not on", st.On)
		}
	}
	if st.Off != "" {
		if sw, ok := e.Switches.Get(st.Off); !ok || sw.on {
			fail("switch %q not off", st.Off)
		}
	}
}

var keyNames = map[string]Key{
	"escape": KeyEscape,
	"enter":  KeyEnter,
	"z":      KeyZ,
	"s":      KeyS,
	"f11":    KeyF11,
	"f12":    KeyF12,
}

func parseKey(name string) (Key, error) {
	if k, ok := keyNames[strings.ToLower(name)]; ok {
		return k, nil
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

func parseMods(names []string) KeyModifiers {
	var m KeyModifiers
	for _, n := range names {
		switch strings.ToLower(n) {
		case "shift":
			m |= ModShift
		case "ctrl", "control":
			m |= ModCtrl
		case "alt":
			m |= ModAlt
		case "meta", "cmd":
			m |= ModMeta
		}
	}
	return m
}
