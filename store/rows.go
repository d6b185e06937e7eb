package store

// Rect is a rectangle relative to a reference rectangle. Values are
// fractions of the reference size.
type Rect struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// StageRow is a group of slides sharing an image folder and sounds.
type StageRow struct {
	ID            string `yaml:"id"`
	Folder        string `yaml:"folder,omitempty"`
	AmbientSound  string `yaml:"ambientSound,omitempty"`
	MovementSound string `yaml:"movementSound,omitempty"`
}

// SlideRow is one location. Forward, Up, Down, Left and Right hold the ids
// of the slides reached in each direction.
type SlideRow struct {
	ID            string  `yaml:"id"`
	Image         string  `yaml:"image"`
	Stage         string  `yaml:"stage,omitempty"`
	AmbientSound  string  `yaml:"ambientSound,omitempty"`
	MovementSound string  `yaml:"movementSound,omitempty"`
	Dialog        string  `yaml:"dialog,omitempty"`
	Layer         float64 `yaml:"layer,omitempty"`
	Rect          *Rect   `yaml:"rect,omitempty"`

	Forward string `yaml:"forward,omitempty"`
	Up      string `yaml:"up,omitempty"`
	Down    string `yaml:"down,omitempty"`
	Left    string `yaml:"left,omitempty"`
	Right   string `yaml:"right,omitempty"`
}

// Directions returns the directional references in forward, up, down,
// left, right order.
func (r SlideRow) Directions() [5]string {
	return [5]string{r.Forward, r.Up, r.Down, r.Left, r.Right}
}

// HotspotRow is a clickable region of a slide leading to another slide.
// Transition is a persisted transition name such as "fade" or "scrollLeft".
type HotspotRow struct {
	ID         string  `yaml:"id"`
	Parent     string  `yaml:"parent"`
	Link       string  `yaml:"link,omitempty"`
	Cursor     string  `yaml:"cursor,omitempty"`
	Sound      string  `yaml:"sound,omitempty"`
	Delay      float64 `yaml:"delay,omitempty"`
	Layer      float64 `yaml:"layer,omitempty"`
	Text       string  `yaml:"text,omitempty"`
	Transition string  `yaml:"transition,omitempty"`
	Rect       *Rect   `yaml:"rect,omitempty"`
	Drag       *Rect   `yaml:"drag,omitempty"`
	Zip        bool    `yaml:"zip,omitempty"`
}

// ItemRow is a collectible.
type ItemRow struct {
	ID           string `yaml:"id"`
	GameSlide    string `yaml:"gameSlide"`
	GameHotspot  string `yaml:"gameHotspot"`
	TakenFile    string `yaml:"takenFile,omitempty"`
	MenuSlide    string `yaml:"menuSlide,omitempty"`
	CloseupSlide string `yaml:"closeupSlide,omitempty"`
	Taken        bool   `yaml:"taken,omitempty"`
}

// SwitchRow is an on/off object controlled by two hotspots.
type SwitchRow struct {
	ID         string `yaml:"id"`
	OnSlide    string `yaml:"onSlide"`
	OffSlide   string `yaml:"offSlide"`
	OnHotspot  string `yaml:"onHotspot,omitempty"`
	OffHotspot string `yaml:"offHotspot,omitempty"`
	On         bool   `yaml:"on,omitempty"`
}
