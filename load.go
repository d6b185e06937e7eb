package panorama

import (
	"fmt"

	"github.com/phanxgames/panorama/store"
)

// Load builds the world described by db. The database is validated first;
// any bad reference fails the whole load with ErrUnresolvedReference and
// nothing is created.
//
// Directional references are resolved once every slide exists. Hotspots are
// added to their parent slide, except the game hotspots of items, which
// are placed according to the item's taken state.
func (e *Engine) Load(db *store.Database) error {
	if err := db.Validate(); err != nil {
		return fmt.Errorf("panorama: load: %w: %w", ErrUnresolvedReference, err)
	}

	for _, r := range db.Stages {
		e.Stages.Put(r.ID, &Stage{
			ID:       r.ID,
			Folder:   r.Folder,
			Ambient:  r.AmbientSound,
			Movement: r.MovementSound,
		})
	}

	slides := make([]*Slide, 0, len(db.Slides))
	for _, r := range db.Slides {
		stage, _ := e.Stages.Get(r.Stage)
		s := e.NewSlide(r.ID, r.Image, SlideOptions{
			Stage:    stage,
			Geometry: fromStoreRect(r.Rect),
			Ambient:  r.AmbientSound,
			Movement: r.MovementSound,
			Dialog:   r.Dialog,
			Layer:    r.Layer,
		})
		for d, ref := range r.Directions() {
			s.SetReference(Direction(d), ref)
		}
		slides = append(slides, s)
	}
	for _, s := range slides {
		s.ResolveDirections()
	}

	itemHotspots := make(map[string]bool, len(db.Items))
	for _, r := range db.Items {
		itemHotspots[r.GameHotspot] = true
	}
	for _, r := range db.Hotspots {
		parent := e.Slides.MustGet(r.Parent)
		link, _ := e.Slides.Get(r.Link)
		h := e.NewHotspot(parent, link, HotspotOptions{
			ID:         r.ID,
			Geometry:   fromStoreRect(r.Rect),
			Drag:       fromStoreRect(r.Drag),
			Layer:      r.Layer,
			Cursor:     Cursor(r.Cursor),
			Text:       r.Text,
			Sound:      r.Sound,
			Delay:      r.Delay,
			Zip:        r.Zip,
			Transition: ParseTransition(r.Transition),
		})
		if !itemHotspots[r.ID] {
			parent.Add(h)
		}
	}

	for _, r := range db.Items {
		e.NewItem(ItemOptions{
			ID:           r.ID,
			GameSlide:    e.Slides.MustGet(r.GameSlide),
			GameHotspot:  e.Hotspots.MustGet(r.GameHotspot),
			TakenFile:    r.TakenFile,
			MenuSlide:    optional(e.Slides, r.MenuSlide),
			CloseupSlide: optional(e.Slides, r.CloseupSlide),
			Taken:        r.Taken,
		})
	}

	for _, r := range db.Switches {
		var hs []*Hotspot
		for _, id := range []string{r.OnHotspot, r.OffHotspot} {
			if h, ok := e.Hotspots.Get(id); ok {
				hs = append(hs, h)
			}
		}
		e.NewSwitch(e.Slides.MustGet(r.OnSlide), e.Slides.MustGet(r.OffSlide), hs, SwitchOptions{
			ID: r.ID,
			On: r.On,
		})
	}
	return nil
}

func optional[T any](r *Registry[*T], id string) *T {
	v, _ := r.Get(id)
	return v
}

// Snapshot returns the current world as a database. Directional references
// are taken from the live links of the directional hotspots, so links made
// interactively in design mode are kept.
func (e *Engine) Snapshot() *store.Database {
	db := &store.Database{}
	for _, s := range e.Stages.All() {
		db.Stages = append(db.Stages, s.Row())
	}
	slideRows := make(map[string]int)
	for _, s := range e.Slides.All() {
		slideRows[s.ID] = len(db.Slides)
		db.Slides = append(db.Slides, s.Row())
	}
	// A taken item's slide shows the taken image; the row keeps the image
	// the world starts with.
	for _, it := range e.Items.All() {
		if it.taken && it.TakenFile != "" && it.GameSlide != nil {
			if i, ok := slideRows[it.GameSlide.ID]; ok {
				db.Slides[i].Image = it.gameFile
			}
		}
	}
	for _, h := range e.Hotspots.All() {
		r := h.Row()
		if r.Parent == "" {
			logf("snapshot: hotspot %q has no parent slide, skipped", h.ID)
			continue
		}
		db.Hotspots = append(db.Hotspots, r)
	}
	for _, it := range e.Items.All() {
		db.Items = append(db.Items, it.Row())
	}
	for _, sw := range e.Switches.All() {
		db.Switches = append(db.Switches, sw.Row())
	}
	return db
}

// Row returns the stage's table row.
func (s *Stage) Row() store.StageRow {
	return store.StageRow{
		ID:            s.ID,
		Folder:        s.Folder,
		AmbientSound:  s.Ambient,
		MovementSound: s.Movement,
	}
}

// Row returns the slide's table row.
func (s *Slide) Row() store.SlideRow {
	r := store.SlideRow{
		ID:            s.ID,
		Image:         s.file,
		AmbientSound:  s.Ambient,
		MovementSound: s.Movement,
		Dialog:        s.Dialog,
		Layer:         s.layer,
		Rect:          toStoreRect(s.Geometry),
	}
	if s.Stage != nil {
		r.Stage = s.Stage.ID
	}
	var dirs [numDirections]string
	for _, d := range Directions {
		if h := s.dirs[d]; h != nil && h.link != nil {
			dirs[d] = h.link.ID
		}
	}
	r.Forward, r.Up, r.Down, r.Left, r.Right = dirs[DirForward], dirs[DirUp], dirs[DirDown], dirs[DirLeft], dirs[DirRight]
	return r
}

// Row returns the hotspot's table row. An absolutely positioned hotspot is
// stored relative to its parent's current rectangle.
func (h *Hotspot) Row() store.HotspotRow {
	r := store.HotspotRow{
		ID:         h.ID,
		Parent:     nodeID(h.parent),
		Cursor:     string(h.Cursor),
		Sound:      h.Sound,
		Delay:      h.Delay,
		Layer:      h.layer,
		Text:       h.Text,
		Transition: h.OnTransition.Persisted(),
		Drag:       toStoreRect(h.Drag),
		Zip:        h.Zip,
	}
	if h.link != nil {
		r.Link = h.link.ID
	}
	switch {
	case h.Geometry != nil:
		r.Rect = toStoreRect(h.Geometry)
	case h.parent != nil:
		rel, err := RelativeTo(h.rect, h.parent.Rect())
		if err != nil {
			logf("hotspot %q: %v", h.ID, err)
			break
		}
		r.Rect = toStoreRect(&rel)
	}
	return r
}

// Row returns the item's table row.
func (it *Item) Row() store.ItemRow {
	r := store.ItemRow{
		ID:        it.ID,
		TakenFile: it.TakenFile,
		Taken:     it.taken,
	}
	if it.GameSlide != nil {
		r.GameSlide = it.GameSlide.ID
	}
	if it.GameHotspot != nil {
		r.GameHotspot = it.GameHotspot.ID
	}
	if it.MenuSlide != nil {
		r.MenuSlide = it.MenuSlide.ID
	}
	if it.CloseupSlide != nil {
		r.CloseupSlide = it.CloseupSlide.ID
	}
	return r
}

// Row returns the switch's table row. The first two controlling hotspots
// are stored as the on and off hotspots.
func (s *Switch) Row() store.SwitchRow {
	r := store.SwitchRow{ID: s.ID, On: s.on}
	if s.OnSlide != nil {
		r.OnSlide = s.OnSlide.ID
	}
	if s.OffSlide != nil {
		r.OffSlide = s.OffSlide.ID
	}
	if len(s.Hotspots) > 0 {
		r.OnHotspot = s.Hotspots[0].ID
	}
	if len(s.Hotspots) > 1 {
		r.OffHotspot = s.Hotspots[1].ID
	}
	return r
}

func fromStoreRect(r *store.Rect) *RelativeRect {
	if r == nil {
		return nil
	}
	return &RelativeRect{Left: r.Left, Top: r.Top, Width: r.Width, Height: r.Height}
}

func toStoreRect(r *RelativeRect) *store.Rect {
	if r == nil {
		return nil
	}
	return &store.Rect{Left: r.Left, Top: r.Top, Width: r.Width, Height: r.Height}
}
