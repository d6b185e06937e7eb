package ebitenbackend

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay shows the current FPS and TPS in the top-left corner,
// refreshed every half second.
type fpsOverlay struct {
	img   *ebiten.Image
	since float64
	dirty bool
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 fits "FPS: 60.0\nTPS: 60.0".
	return &fpsOverlay{dirty: true}
}

func (o *fpsOverlay) update(dt float64) {
	o.since += dt
	if o.since >= 0.5 {
		o.since = 0
		o.dirty = true
	}
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		o.img = ebiten.NewImage(100, 32)
	}
	if o.dirty {
		o.dirty = false
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(o.img, nil)
}
