package ebitenbackend

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// shot is a screenshot request. The slide and frame are taken when the
// request is made, so a script step names the slide it was looking at.
type shot struct {
	slide string
	label string
	frame int
}

// Screenshot queues a screenshot of the next drawn frame.
func (g *Game) Screenshot(label string) {
	s := shot{label: label, frame: g.engine.Frame()}
	if cur := g.engine.Current(); cur != nil {
		s.slide = cur.ID
	}
	g.screenshotQueue = append(g.screenshotQueue, s)
}

// path returns where s is written: one folder per run, one subfolder per
// slide, files ordered by frame.
func (s shot) path(dir, session string) string {
	slide := s.slide
	if slide == "" {
		slide = "no-slide"
	}
	return filepath.Join(dir, session, sanitizeLabel(slide),
		fmt.Sprintf("%06d_%s.png", s.frame, sanitizeLabel(s.label)))
}

func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshotQueue) == 0 {
		return
	}
	defer func() { g.screenshotQueue = g.screenshotQueue[:0] }()

	// image.RGBA is premultiplied like ReadPixels, so the pixels copy as is.
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)

	for _, s := range g.screenshotQueue {
		name := s.path(g.cfg.ScreenshotDir, g.session)
		if err := writePNG(name, img); err != nil {
			logf("screenshot: %v", err)
			continue
		}
		logf("screenshot of %q saved to %s", s.slide, name)
	}
}

func writePNG(name string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replacing anything
// else with '_'. An empty label becomes "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
