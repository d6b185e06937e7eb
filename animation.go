package panorama

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Task is a unit of work spread over frames. Step is called once per frame
// while the task is at the head of the engine's queue and reports whether
// the task is finished. A task that finishes without rendering a frame
// returns true on its first call, and the next task starts in the same
// frame.
type Task interface {
	Step(e *Engine) bool
}

// TaskFunc adapts a function to Task.
type TaskFunc func(e *Engine) bool

// Step calls f(e).
func (f TaskFunc) Step(e *Engine) bool { return f(e) }

// Call returns a task that runs fn and finishes without taking a frame.
func Call(fn func()) Task {
	return TaskFunc(func(*Engine) bool {
		fn()
		return true
	})
}

// Sequence runs tasks one after another. Nil tasks are skipped.
func Sequence(tasks ...Task) Task {
	return &sequence{tasks: tasks}
}

type sequence struct {
	tasks []Task
	i     int
}

func (s *sequence) Step(e *Engine) bool {
	for s.i < len(s.tasks) {
		t := s.tasks[s.i]
		if t != nil && !t.Step(e) {
			return false
		}
		s.i++
	}
	return true
}

// Defer returns a task built by build when it first runs. Effects use it to
// read node rectangles only after the preceding steps moved them.
func Defer(build func() Task) Task {
	return &deferred{build: build}
}

type deferred struct {
	build func() Task
	task  Task
	built bool
}

func (d *deferred) Step(e *Engine) bool {
	if !d.built {
		d.built = true
		d.task = d.build()
	}
	return d.task == nil || d.task.Step(e)
}

// WaitFrames returns a task that renders n frames.
func WaitFrames(n int) Task {
	return &waitTask{frames: n}
}

type waitTask struct {
	frames int
	i      int
}

func (w *waitTask) Step(*Engine) bool {
	if w.i >= w.frames {
		return true
	}
	w.i++
	return false
}

// WaitUntil returns a task that renders frames until cond holds.
func WaitUntil(cond func(e *Engine) bool) Task {
	return TaskFunc(cond)
}

// TweenGroup animates up to 4 float64 values simultaneously, one rendered
// frame per step. Values are written through apply after every step; the
// last step writes the exact targets.
//
// Durations are measured in frames so that an effect of n frames renders
// exactly n frames regardless of float rounding.
type TweenGroup struct {
	tweens [4]*gween.Tween
	to     [4]float64
	count  int
	frames int
	step   int
	apply  func(v [4]float64)
}

// NewTweenGroup animates from[i] to to[i] over frames frames with fn.
func NewTweenGroup(from, to []float64, frames int, fn ease.TweenFunc, apply func(v [4]float64)) *TweenGroup {
	g := &TweenGroup{count: min(len(from), len(to), 4), frames: frames, apply: apply}
	for i := 0; i < g.count; i++ {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), float32(max(frames, 1)), fn)
		g.to[i] = to[i]
	}
	return g
}

// Done reports whether every frame has been rendered.
func (g *TweenGroup) Done() bool { return g.step >= g.frames }

// Step advances the tweens by one frame.
func (g *TweenGroup) Step(*Engine) bool {
	if g.Done() {
		return true
	}
	g.step++
	var v [4]float64
	for i := 0; i < g.count; i++ {
		val, _ := g.tweens[i].Update(1)
		v[i] = float64(val)
	}
	if g.Done() {
		v = g.to
	}
	g.apply(v)
	return false
}

// tweenValue animates a single value linearly.
func tweenValue(from, to float64, frames int, apply func(v float64)) *TweenGroup {
	return NewTweenGroup([]float64{from}, []float64{to}, frames, ease.Linear, func(v [4]float64) {
		apply(v[0])
	})
}
