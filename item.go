package panorama

// CloseupLayer is the layer of an item's closeup panel in the root panel,
// above the inventory.
const CloseupLayer = 11

// ItemOptions configures a new Item.
type ItemOptions struct {
	ID string
	// GameSlide is where the item lies in the world.
	GameSlide *Slide
	// GameHotspot is the region of GameSlide that takes the item. If nil, a
	// hotspot is created from GameGeometry.
	GameHotspot  *Hotspot
	GameGeometry *RelativeRect
	// TakenFile replaces GameSlide's image once the item is taken.
	TakenFile string
	// MenuSlide represents the item in the inventory.
	MenuSlide *Slide
	// CloseupSlide, if set, is shown full screen when the item is used.
	CloseupSlide *Slide
	Taken        bool
	OnTake       func(it *Item)
	OnUse        func(it *Item)
}

// Item is a collectible. It is either lying in the world (its game hotspot
// is part of the game slide) or taken (its menu slide is in the inventory).
//
// While the closeup is shown the menu slide is out of the inventory even
// though the item is taken; ExitCloseup puts it back.
type Item struct {
	ID             string
	GameSlide      *Slide
	GameHotspot    *Hotspot
	TakenFile      string
	MenuSlide      *Slide
	MenuHotspot    *Hotspot
	CloseupSlide   *Slide
	CloseupHotspot *Hotspot
	OnTake         func(it *Item)
	OnUse          func(it *Item)

	e            *Engine
	closeupPanel *Panel
	gameFile     string
	taken        bool
}

// NewItem creates an item and places it in the world or, if already taken,
// in the inventory. Named items are registered in e.Items.
func (e *Engine) NewItem(opts ItemOptions) *Item {
	it := &Item{
		ID:           opts.ID,
		GameSlide:    opts.GameSlide,
		TakenFile:    opts.TakenFile,
		MenuSlide:    opts.MenuSlide,
		CloseupSlide: opts.CloseupSlide,
		OnTake:       opts.OnTake,
		OnUse:        opts.OnUse,
		e:            e,
		taken:        opts.Taken,
	}
	if it.MenuSlide != nil {
		it.MenuSlide.SetParent(e.inventory)
		it.MenuHotspot = e.NewHotspot(it.MenuSlide, nil, HotspotOptions{
			Geometry: &RelativeRect{0, 0, 1, 1},
			Cursor:   CursorGrab,
			OnClick:  ClickAction{Kind: ClickUse},
		})
		it.MenuHotspot.item = it
		it.MenuSlide.Add(it.MenuHotspot)
	}
	if it.CloseupSlide != nil {
		screen := e.Screen()
		it.closeupPanel = NewPanel()
		it.closeupPanel.SetLayer(CloseupLayer)
		it.closeupPanel.SetRect(screen)
		it.CloseupHotspot = e.NewHotspot(it.CloseupSlide, nil, HotspotOptions{
			Cursor:  CursorForward,
			Layer:   1,
			OnClick: ClickAction{Kind: ClickCloseupExit},
		})
		it.CloseupHotspot.SetRect(screen)
		it.CloseupHotspot.item = it
		it.CloseupSlide.SetParent(it.closeupPanel)
		it.CloseupSlide.Rect()
	}
	it.GameHotspot = opts.GameHotspot
	if it.GameHotspot == nil {
		it.GameHotspot = e.NewHotspot(slideContainer(it.GameSlide), nil, HotspotOptions{
			ID:       opts.ID,
			Geometry: opts.GameGeometry,
		})
	}
	it.GameHotspot.Cursor = CursorGrab
	it.GameHotspot.OnClick = ClickAction{Kind: ClickTake}
	it.GameHotspot.SetParent(slideContainer(it.GameSlide))
	it.GameHotspot.item = it
	if it.GameSlide != nil {
		it.gameFile = it.GameSlide.File()
	}

	if it.taken {
		if it.GameSlide != nil && it.TakenFile != "" {
			it.GameSlide.SetFile(it.TakenFile)
		}
		if it.MenuSlide != nil {
			e.inventory.Add(it.MenuSlide)
		}
	} else if it.GameSlide != nil {
		it.GameSlide.Add(it.GameHotspot)
	}
	if it.ID != "" {
		e.Items.Put(it.ID, it)
	}
	return it
}

// Taken reports whether the item has been taken.
func (it *Item) Taken() bool { return it.taken }

// CloseupPanel returns the full-screen panel the closeup is shown in, or
// nil for items without a closeup.
func (it *Item) CloseupPanel() *Panel { return it.closeupPanel }

// Take removes the item from the world and puts it in the inventory. Items
// with a closeup are used right away.
func (it *Item) Take() {
	it.add()
	if it.CloseupSlide != nil {
		it.Use()
	}
}

func (it *Item) add() {
	if it.GameSlide != nil {
		it.GameSlide.Remove(it.GameHotspot)
		if it.TakenFile != "" {
			it.GameSlide.SetFile(it.TakenFile)
		}
	}
	if it.MenuSlide != nil {
		it.e.inventory.Add(it.MenuSlide)
	}
	it.taken = true
	it.e.emit(Event{Type: EventItemTaken, Item: it.ID})
	if it.OnTake != nil {
		it.OnTake(it)
	}
}

// SetTaken moves the item between the world and the inventory without
// events or hooks, as when restoring progress.
func (it *Item) SetTaken(taken bool) {
	if taken == it.taken {
		return
	}
	it.taken = taken
	if taken {
		if it.GameSlide != nil {
			it.GameSlide.Remove(it.GameHotspot)
			if it.TakenFile != "" {
				it.GameSlide.SetFile(it.TakenFile)
			}
		}
		if it.MenuSlide != nil {
			it.e.inventory.Add(it.MenuSlide)
		}
		return
	}
	it.Drop()
	if it.GameSlide != nil {
		if it.TakenFile != "" && it.gameFile != "" {
			it.GameSlide.SetFile(it.gameFile)
		}
		it.GameSlide.Add(it.GameHotspot)
	}
}

// Use runs OnUse and, for items with a closeup, scrolls the closeup in over
// everything else.
func (it *Item) Use() {
	it.e.emit(Event{Type: EventItemUsed, Item: it.ID})
	if it.OnUse != nil {
		it.OnUse(it)
	}
	if it.CloseupSlide == nil {
		return
	}
	it.Drop()
	it.closeupPanel.Add(it.CloseupSlide)
	it.closeupPanel.Add(it.CloseupHotspot)
	it.e.Schedule(it.e.scrollTask(DirDown, nil, it.closeupPanel, DefaultDelay, it.e.root))
}

// Drop removes the menu slide from the inventory. The item stays taken.
func (it *Item) Drop() {
	if it.MenuSlide != nil {
		it.e.inventory.Remove(it.MenuSlide)
	}
}

// ExitCloseup returns the item to the inventory and scrolls the closeup
// away.
func (it *Item) ExitCloseup() {
	if it.MenuSlide != nil {
		it.e.inventory.Add(it.MenuSlide)
	}
	if it.closeupPanel == nil {
		return
	}
	it.closeupPanel.Clear()
	it.e.Schedule(it.e.scrollTask(DirUp, it.closeupPanel, nil, DefaultDelay, nil))
}
