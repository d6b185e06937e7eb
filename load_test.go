package panorama

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/panorama/store"
)

const houseYAML = `
stages:
  - id: house
    folder: house
    ambientSound: wind.ogg
slides:
  - id: hall
    image: hall.png
    stage: house
    forward: study
    left: kitchen
    right: kitchen
  - id: kitchen
    image: kitchen.png
    stage: house
    down: hall
  - id: study
    image: study.png
    stage: house
  - id: study-lit
    image: study-lit.png
    stage: house
    dialog: bright.ogg
  - id: key-menu
    image: key-menu.png
hotspots:
  - id: door
    parent: hall
    link: kitchen
    cursor: fwd.png
    transition: fade
    delay: 0.5
    text: Kitchen
    rect: {left: 0.1, top: 0.2, width: 0.3, height: 0.4}
  - id: key
    parent: kitchen
    cursor: grab.png
    rect: {left: 0.5, top: 0.5, width: 0.1, height: 0.1}
  - id: lamp
    parent: study
    link: study-lit
    cursor: fwd.png
    transition: transition
    rect: {left: 0, top: 0, width: 0.5, height: 0.5}
items:
  - id: key
    gameSlide: kitchen
    gameHotspot: key
    takenFile: kitchen-empty.png
    menuSlide: key-menu
switches:
  - id: light
    onSlide: study-lit
    offSlide: study
    onHotspot: lamp
`

func loadHouse(t *testing.T, cfg Config) (*Engine, *store.Database, *ScriptedInput) {
	t.Helper()
	db, err := store.Parse([]byte(houseYAML))
	require.NoError(t, err)
	e, _, in := newTestEngineWith(t, cfg)
	require.NoError(t, e.Load(db))
	return e, db, in
}

func TestLoadBuildsWorld(t *testing.T) {
	e, _, _ := loadHouse(t, DefaultConfig())

	assert.Equal(t, 1, e.Stages.Len())
	assert.Equal(t, 5, e.Slides.Len())
	assert.Equal(t, 3, e.Hotspots.Len())

	hall := e.Slides.MustGet("hall")
	kitchen := e.Slides.MustGet("kitchen")
	study := e.Slides.MustGet("study")
	assert.Equal(t, "house/hall.png", hall.Path())
	assert.Equal(t, "wind.ogg", hall.AmbientSound())
	assert.Same(t, study, hall.Forward().Link())
	assert.Same(t, kitchen, hall.Left().Link())
	assert.Equal(t, CursorLeftLoop, hall.Left().Cursor)
	assert.Same(t, hall, kitchen.Down().Link())
	assert.Nil(t, study.Forward())

	door := e.Hotspots.MustGet("door")
	assert.True(t, hall.Contains(door))
	assert.Same(t, kitchen, door.Link())
	assert.Equal(t, Fade, door.OnTransition)
	assert.Equal(t, 0.5, door.Delay)
	assert.Equal(t, "Kitchen", door.Text)
	assert.Equal(t, Rect{80, 120, 240, 240}, door.Rect())

	it := e.Items.MustGet("key")
	assert.Same(t, e.Hotspots.MustGet("key"), it.GameHotspot)
	assert.True(t, kitchen.Contains(it.GameHotspot))
	assert.Same(t, e.Slides.MustGet("key-menu"), it.MenuSlide)

	sw := e.Switches.MustGet("light")
	assert.Equal(t, []*Hotspot{e.Hotspots.MustGet("lamp")}, sw.Hotspots)
	assert.Equal(t, ClickSwitch, e.Hotspots.MustGet("lamp").OnClick.Kind)
}

func TestLoadDesignAddsEveryDirection(t *testing.T) {
	e, _, _ := loadHouse(t, designConfig())
	study := e.Slides.MustGet("study")
	for _, d := range Directions {
		assert.NotNil(t, study.Direction(d), "direction %s", d)
	}
}

func TestLoadRejectsBadReferences(t *testing.T) {
	db, err := store.Parse([]byte(houseYAML))
	require.NoError(t, err)
	db.Hotspots[0].Link = "cellar"
	db.Items[0].GameHotspot = "nothing"

	e, _, _ := newTestEngine(t)
	err = e.Load(db)
	require.ErrorIs(t, err, ErrUnresolvedReference)

	var verr *store.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "cellar")
	assert.Contains(t, err.Error(), "nothing")
	assert.Zero(t, e.Slides.Len())
	assert.Zero(t, e.Hotspots.Len())
}

// --- Snapshot ---

func TestSnapshotRoundTrip(t *testing.T) {
	e, db, _ := loadHouse(t, DefaultConfig())
	snap := e.Snapshot()
	require.NoError(t, snap.Validate())
	assert.Equal(t, db, snap)

	again, _, _ := newTestEngine(t)
	require.NoError(t, again.Load(snap))
	assert.Equal(t, snap, again.Snapshot())
}

func TestSnapshotKeepsLiveLinks(t *testing.T) {
	e, _, _ := loadHouse(t, DefaultConfig())
	e.Switches.MustGet("light").Toggle()
	e.Slides.MustGet("kitchen").SetDirection(DirUp, e.Slides.MustGet("study"))

	rows := snapshotSlides(e)
	assert.Equal(t, "study", rows["kitchen"].Up)
	assert.Equal(t, "study-lit", rows["hall"].Forward)
	assert.True(t, e.Snapshot().Switches[0].On)
}

func TestSnapshotAfterSwitchRewiresDirections(t *testing.T) {
	e, _, _ := loadHouse(t, DefaultConfig())
	e.Slides.MustGet("kitchen").SetDirection(DirUp, e.Slides.MustGet("study"))
	e.Switches.MustGet("light").Toggle()

	// the toggle moves every hotspot leading to study, directional ones included
	rows := snapshotSlides(e)
	assert.Equal(t, "study-lit", rows["kitchen"].Up)
	assert.Equal(t, "study-lit", rows["hall"].Forward)
}

func snapshotSlides(e *Engine) map[string]store.SlideRow {
	rows := make(map[string]store.SlideRow)
	for _, r := range e.Snapshot().Slides {
		rows[r.ID] = r
	}
	return rows
}

func TestSnapshotOfTakenItem(t *testing.T) {
	e, _, _ := loadHouse(t, DefaultConfig())
	e.Items.MustGet("key").Take()
	require.Equal(t, "kitchen-empty.png", e.Slides.MustGet("kitchen").File())

	snap := e.Snapshot()
	for _, r := range snap.Slides {
		if r.ID == "kitchen" {
			assert.Equal(t, "kitchen.png", r.Image)
		}
	}
	assert.True(t, snap.Items[0].Taken)
	require.NoError(t, snap.Validate())

	again, _, _ := newTestEngine(t)
	require.NoError(t, again.Load(snap))
	kitchen := again.Slides.MustGet("kitchen")
	assert.Equal(t, "kitchen-empty.png", kitchen.File())
	assert.False(t, kitchen.Contains(again.Hotspots.MustGet("key")))
	assert.True(t, again.Inventory().Contains(again.Slides.MustGet("key-menu")))
}

func TestSnapshotStoresAbsoluteHotspotsRelative(t *testing.T) {
	e, _, _ := loadHouse(t, DefaultConfig())
	door := e.Hotspots.MustGet("door")
	door.SetRect(Rect{X: 400, Y: 300, Width: 80, Height: 60})

	row := door.Row()
	assert.Equal(t, &store.Rect{Left: 0.5, Top: 0.5, Width: 0.1, Height: 0.1}, row.Rect)
	assert.Equal(t, "hall", row.Parent)
	assert.Equal(t, "fade", row.Transition)
}
