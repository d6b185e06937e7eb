package panorama

import (
	"errors"
	"fmt"
	"path"
)

// Library loads resources of one kind from a folder and caches them by name.
// When a file cannot be loaded the library falls back to its default
// resource; a library without a default, or whose default is itself missing,
// returns ErrMissingResource.
type Library[T any] struct {
	folder string
	def    string
	load   func(path string) (T, error)
	cache  map[string]T
}

// NewLibrary creates a library rooted at folder. def names the fallback
// resource inside folder and may be empty.
func NewLibrary[T any](folder, def string, load func(path string) (T, error)) *Library[T] {
	return &Library[T]{
		folder: folder,
		def:    def,
		load:   load,
		cache:  make(map[string]T),
	}
}

// Folder returns the library's folder.
func (l *Library[T]) Folder() string { return l.folder }

// Default returns the name of the fallback resource.
func (l *Library[T]) Default() string { return l.def }

// Path returns the slash-separated path of name inside the library folder.
func (l *Library[T]) Path(name string) string {
	return path.Join(l.folder, name)
}

// Load returns the resource called name, decoding it on first use.
func (l *Library[T]) Load(name string) (T, error) {
	if v, ok := l.cache[name]; ok {
		return v, nil
	}
	v, err := l.load(l.Path(name))
	if err == nil {
		l.cache[name] = v
		return v, nil
	}
	var zero T
	if l.def == "" || name == l.def {
		return zero, fmt.Errorf("panorama: load %s: %w (%w)", l.Path(name), ErrMissingResource, err)
	}
	logf("could not load %s, using %s: %v", l.Path(name), l.def, err)
	return l.Load(l.def)
}

// Get is like Load but panics when neither name nor the default resource can
// be loaded. The engine has no baseline asset to continue with.
func (l *Library[T]) Get(name string) T {
	v, err := l.Load(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Loaded reports whether name is in the cache.
func (l *Library[T]) Loaded(name string) bool {
	_, ok := l.cache[name]
	return ok
}

// Delete evicts name from the cache. The next Load decodes it again.
func (l *Library[T]) Delete(name string) {
	delete(l.cache, name)
}

// Preload decodes every name into the cache and returns the failures joined.
// Names that fall back to the default are not reported.
func (l *Library[T]) Preload(names ...string) error {
	var errs []error
	for _, n := range names {
		if _, err := l.Load(n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// MediaConfig names the asset folders and their fallback resources.
type MediaConfig struct {
	Pictures     string `yaml:"pictures"`
	Cursors      string `yaml:"cursors"`
	Sounds       string `yaml:"sounds"`
	Voices       string `yaml:"voices"`
	Movies       string `yaml:"movies"`
	DefaultImage string `yaml:"defaultImage"`
	// DefaultCursor is the fallback for a missing cursor image, not the
	// cursor shown over empty space (that one is CursorDefault).
	DefaultCursor string `yaml:"defaultCursor"`
	DefaultSound  string `yaml:"defaultSound"`
}

// DefaultMediaConfig returns the conventional asset layout.
func DefaultMediaConfig() MediaConfig {
	return MediaConfig{
		Pictures:      "pictures",
		Cursors:       "cursors",
		Sounds:        "sounds/effects",
		Voices:        "sounds/voices",
		Movies:        "movies",
		DefaultImage:  "default.gif",
		DefaultCursor: "arrow.png",
		DefaultSound:  "../default.wav",
	}
}

// Media groups the resource libraries used by the engine.
type Media struct {
	Images  *Library[Image]
	Cursors *Library[Image]
	Sounds  *Library[Sound]
	Voices  *Library[Sound]
	Movies  *Library[Clip]
}

// NewMedia creates the libraries described by cfg on top of loader.
func NewMedia(loader Loader, cfg MediaConfig) *Media {
	return &Media{
		Images:  NewLibrary(cfg.Pictures, cfg.DefaultImage, loader.LoadImage),
		Cursors: NewLibrary(cfg.Cursors, cfg.DefaultCursor, loader.LoadImage),
		Sounds:  NewLibrary(cfg.Sounds, cfg.DefaultSound, loader.LoadSound),
		Voices:  NewLibrary(cfg.Voices, cfg.DefaultSound, loader.LoadSound),
		Movies:  NewLibrary(cfg.Movies, "", loader.LoadClip),
	}
}
