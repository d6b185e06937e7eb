package panorama

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const walkScript = `
steps:
  - action: move
    x: 300
    y: 300
  - action: click
    x: 300
    y: 300
  - action: settle
  - action: screenshot
    label: kitchen
  - action: expect
    slide: kitchen
    visited: hall
  - action: click
    x: 440
    y: 330
  - action: expect
    taken: key
    off: light
`

func TestRunnerPlaysScript(t *testing.T) {
	e, _, in := loadHouse(t, DefaultConfig())
	require.NoError(t, e.Start("hall"))
	var shots []string
	e.Screenshot = func(label string) { shots = append(shots, label) }

	r, err := LoadScript([]byte(walkScript), in)
	require.NoError(t, err)
	require.NoError(t, r.Run(e, 300))

	assert.True(t, r.Done())
	assert.Equal(t, []string{"kitchen"}, shots)
	assert.True(t, e.Items.MustGet("key").Taken())
	assert.Same(t, e.Slides.MustGet("kitchen"), e.Current())
}

func TestRunnerReportsFailedExpectations(t *testing.T) {
	e, _, in := loadHouse(t, DefaultConfig())
	require.NoError(t, e.Start("hall"))
	r, err := LoadScript([]byte(`
steps:
  - action: expect
    slide: kitchen
    taken: key
    on: light
  - action: dance
`), in)
	require.NoError(t, err)

	err = r.Run(e, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `current slide "hall", want "kitchen"`)
	assert.Contains(t, err.Error(), `item "key" not taken`)
	assert.Contains(t, err.Error(), `switch "light" not on`)
	assert.Contains(t, err.Error(), `unknown action "dance"`)
}

func TestRunnerWaitAndKeys(t *testing.T) {
	e, _, in := newTestEngineWith(t, designConfig())
	var saves int
	e.OnSave = func() error { saves++; return nil }
	r, err := LoadScript([]byte(`
steps:
  - action: wait
    frames: 5
  - action: key
    key: s
    mods: [ctrl]
`), in)
	require.NoError(t, err)
	require.NoError(t, r.Run(e, 20))
	assert.Equal(t, 1, saves)
	assert.GreaterOrEqual(t, e.Frame(), 6)
}

func TestRunnerTimesOut(t *testing.T) {
	e, _, in := newTestEngine(t)
	r, err := LoadScript([]byte("steps:\n  - action: wait\n    frames: 50\n"), in)
	require.NoError(t, err)
	assert.ErrorContains(t, r.Run(e, 10), "not done after 10 frames")
}

func TestLoadScriptErrors(t *testing.T) {
	in := NewScriptedInput()
	_, err := LoadScript([]byte("steps: []"), in)
	assert.ErrorContains(t, err, "no steps")

	_, err = LoadScript([]byte("steps:\n  - action: key\n    key: space\n"), in)
	assert.ErrorContains(t, err, `unknown key "space"`)

	_, err = LoadScript([]byte("steps: {"), in)
	assert.Error(t, err)
}

func TestParseMods(t *testing.T) {
	assert.Equal(t, ModCtrl|ModShift, parseMods([]string{"Ctrl", "shift", "hyper"}))
	assert.Equal(t, ModMeta|ModAlt, parseMods([]string{"cmd", "alt"}))
}
