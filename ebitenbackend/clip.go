package ebitenbackend

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path"
	"runtime"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/panorama"
)

// clipMeta is the optional clip.yaml inside a movie directory.
type clipMeta struct {
	FrameRate float64 `yaml:"frameRate"`
}

// Clip is a panorama.Clip made of still frames.
type Clip struct {
	frames []*Image
	rate   float64
}

func (c *Clip) Len() int                   { return len(c.frames) }
func (c *Clip) FrameRate() float64         { return c.rate }
func (c *Clip) Frame(i int) panorama.Image { return c.frames[i] }

// Size returns the size of the first frame.
func (c *Clip) Size() (width, height int) {
	if len(c.frames) == 0 {
		return 0, 0
	}
	return c.frames[0].Size()
}

// LoadClip loads a movie stored as a directory of numbered frames, played
// in name order. Frames are decoded in parallel.
func (l *Loader) LoadClip(dir string) (panorama.Clip, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read movie %s: %w", dir, err)
	}
	c := &Clip{rate: l.ClipFrameRate}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg", ".gif":
			names = append(names, e.Name())
		case ".yaml", ".yml":
			if err := l.readClipMeta(path.Join(dir, e.Name()), c); err != nil {
				return nil, err
			}
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("movie %s: %w", dir, errors.New("no frames"))
	}
	slices.Sort(names)

	decoded := make([]image.Image, len(names))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, name := range names {
		g.Go(func() error {
			img, err := l.decodeImage(path.Join(dir, name))
			if err != nil {
				return err
			}
			decoded[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	c.frames = make([]*Image, len(decoded))
	for i, img := range decoded {
		c.frames[i] = NewImage(ebiten.NewImageFromImage(img))
	}
	return c, nil
}

func (l *Loader) readClipMeta(name string, c *Clip) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	var meta clipMeta
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if meta.FrameRate > 0 {
		c.rate = meta.FrameRate
	}
	return nil
}
