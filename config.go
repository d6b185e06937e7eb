package panorama

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Config holds the engine settings.
type Config struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	FrameRate float64 `yaml:"frameRate"`
	// Design enables authoring: right clicks go to the editor, every slide
	// gets all five directional hotspots, and Ctrl+Z / Ctrl+S are active.
	Design bool `yaml:"design"`
	// Zip enables zip hotspots that lead straight to visited slides.
	Zip bool `yaml:"zip"`
	// Start is the id of the first slide.
	Start     string      `yaml:"start"`
	LabelSize float64     `yaml:"labelSize"`
	Media     MediaConfig `yaml:"media"`
}

// DefaultConfig returns an 800x600, 30 frames per second configuration with
// zip mode on and the conventional asset layout.
func DefaultConfig() Config {
	return Config{
		Width:     800,
		Height:    600,
		FrameRate: 30,
		Zip:       true,
		LabelSize: 16,
		Media:     DefaultMediaConfig(),
	}
}

// Validate reports settings the engine cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("panorama: invalid screen size %dx%d", c.Width, c.Height)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("panorama: invalid frame rate %v", c.FrameRate)
	}
	return nil
}

// LoadConfig reads a YAML configuration from fsys. Keys missing from the
// file keep their DefaultConfig values.
func LoadConfig(fsys fs.FS, name string) (Config, error) {
	cfg := DefaultConfig()
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return cfg, fmt.Errorf("panorama: read config %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("panorama: parse config %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
