// Package store holds the persisted form of a world: typed table rows, a YAML
// database with reference validation, and save slots for play progress.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Database is the whole world description: one table per entity kind.
type Database struct {
	Stages   []StageRow   `yaml:"stages,omitempty"`
	Slides   []SlideRow   `yaml:"slides"`
	Hotspots []HotspotRow `yaml:"hotspots,omitempty"`
	Items    []ItemRow    `yaml:"items,omitempty"`
	Switches []SwitchRow  `yaml:"switches,omitempty"`
}

// ValidationError is one bad row. Ref is the offending value, empty for a
// missing required field.
type ValidationError struct {
	Table string
	ID    string
	Field string
	Ref   string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("store: %s %q: %s: %s", e.Table, e.ID, e.Field, e.Msg)
	}
	return fmt.Sprintf("store: %s %q: %s %q: %s", e.Table, e.ID, e.Field, e.Ref, e.Msg)
}

// Validate checks ids and cross references. Every problem is reported; the
// result is nil or an errors.Join of *ValidationError.
func (db *Database) Validate() error {
	var errs []error
	bad := func(table, id, field, ref, msg string) {
		errs = append(errs, &ValidationError{Table: table, ID: id, Field: field, Ref: ref, Msg: msg})
	}
	ids := func(table string, n int, id func(int) string) map[string]bool {
		seen := make(map[string]bool, n)
		for i := range n {
			v := id(i)
			switch {
			case v == "":
				bad(table, v, "id", "", "missing")
			case seen[v]:
				bad(table, v, "id", v, "duplicate")
			}
			seen[v] = true
		}
		return seen
	}
	stages := ids("stage", len(db.Stages), func(i int) string { return db.Stages[i].ID })
	slides := ids("slide", len(db.Slides), func(i int) string { return db.Slides[i].ID })
	hotspots := ids("hotspot", len(db.Hotspots), func(i int) string { return db.Hotspots[i].ID })
	ids("item", len(db.Items), func(i int) string { return db.Items[i].ID })
	ids("switch", len(db.Switches), func(i int) string { return db.Switches[i].ID })

	ref := func(table, id, field, v string, in map[string]bool, required bool) {
		if v == "" {
			if required {
				bad(table, id, field, "", "missing")
			}
			return
		}
		if !in[v] {
			bad(table, id, field, v, "unresolved")
		}
	}
	dirNames := [5]string{"forward", "up", "down", "left", "right"}
	for _, s := range db.Slides {
		if s.Image == "" {
			bad("slide", s.ID, "image", "", "missing")
		}
		ref("slide", s.ID, "stage", s.Stage, stages, false)
		for i, d := range s.Directions() {
			ref("slide", s.ID, dirNames[i], d, slides, false)
		}
	}
	for _, h := range db.Hotspots {
		ref("hotspot", h.ID, "parent", h.Parent, slides, true)
		ref("hotspot", h.ID, "link", h.Link, slides, false)
	}
	for _, it := range db.Items {
		ref("item", it.ID, "gameSlide", it.GameSlide, slides, true)
		ref("item", it.ID, "gameHotspot", it.GameHotspot, hotspots, true)
		ref("item", it.ID, "menuSlide", it.MenuSlide, slides, false)
		ref("item", it.ID, "closeupSlide", it.CloseupSlide, slides, false)
	}
	for _, sw := range db.Switches {
		ref("switch", sw.ID, "onSlide", sw.OnSlide, slides, true)
		ref("switch", sw.ID, "offSlide", sw.OffSlide, slides, true)
		ref("switch", sw.ID, "onHotspot", sw.OnHotspot, hotspots, false)
		ref("switch", sw.ID, "offHotspot", sw.OffHotspot, hotspots, false)
	}
	return errors.Join(errs...)
}

// Parse decodes a YAML database.
func Parse(data []byte) (*Database, error) {
	var db Database
	if err := yaml.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("store: failed to parse database: %w", err)
	}
	return &db, nil
}

// Load reads and decodes the YAML database called name from fsys. It does
// not validate.
func Load(fsys fs.FS, name string) (*Database, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("store: failed to read database: %w", err)
	}
	return Parse(data)
}

// Marshal encodes the database as YAML.
func (db *Database) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(db)
	if err != nil {
		return nil, fmt.Errorf("store: failed to marshal database: %w", err)
	}
	return data, nil
}

// WriteFile saves the database to path.
func (db *Database) WriteFile(path string) error {
	data, err := db.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("store: failed to write database: %w", err)
	}
	return nil
}
