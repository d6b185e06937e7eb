package store

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Progress is the play state that changes during a game.
type Progress struct {
	Current    string   `yaml:"current,omitempty"`
	Visited    []string `yaml:"visited,omitempty"`
	Taken      []string `yaml:"taken,omitempty"`
	SwitchesOn []string `yaml:"switchesOn,omitempty"`
}

const progressObject = "progress"

// ProgressStore keeps progress in named save slots in the platform's
// application data directory.
type ProgressStore struct {
	m *gdata.Manager
}

// OpenProgressStore opens the slots of the application called appName.
func OpenProgressStore(appName string) (*ProgressStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("store: failed to open save data: %w", err)
	}
	return NewProgressStore(m), nil
}

// NewProgressStore wraps an open gdata manager.
func NewProgressStore(m *gdata.Manager) *ProgressStore {
	return &ProgressStore{m: m}
}

// Exists reports whether slot holds saved progress.
func (s *ProgressStore) Exists(slot string) bool {
	return s.m.ObjectPropExists(progressObject, slot)
}

// Save writes p to slot.
func (s *ProgressStore) Save(slot string, p Progress) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("store: failed to marshal progress: %w", err)
	}
	if err := s.m.SaveObjectProp(progressObject, slot, data); err != nil {
		return fmt.Errorf("store: failed to save progress %q: %w", slot, err)
	}
	log.Printf("[store] progress saved to slot %q", slot)
	return nil
}

// Load reads slot. A missing slot yields empty progress and ok false.
func (s *ProgressStore) Load(slot string) (p Progress, ok bool, err error) {
	if !s.Exists(slot) {
		return Progress{}, false, nil
	}
	data, err := s.m.LoadObjectProp(progressObject, slot)
	if err != nil {
		return Progress{}, false, fmt.Errorf("store: failed to load progress %q: %w", slot, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Progress{}, false, fmt.Errorf("store: failed to parse progress %q: %w", slot, err)
	}
	return p, true, nil
}

// Delete removes slot.
func (s *ProgressStore) Delete(slot string) error {
	if err := s.m.DeleteObjectProp(progressObject, slot); err != nil {
		return fmt.Errorf("store: failed to delete progress %q: %w", slot, err)
	}
	return nil
}
