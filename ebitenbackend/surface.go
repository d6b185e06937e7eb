package ebitenbackend

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/panorama"
)

// Fonts caches one text face per size of a single TrueType font.
type Fonts struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// NewFonts parses TTF or OTF data. Nil data selects Go Regular.
func NewFonts(ttf []byte) (*Fonts, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("ebitenbackend: failed to parse font: %w", err)
	}
	return &Fonts{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

func (f *Fonts) face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}

func lineHeight(face *text.GoTextFace) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Surface is a panorama.Surface that draws onto an ebiten image.
type Surface struct {
	dst   *ebiten.Image
	fonts *Fonts
}

// NewSurface returns a surface drawing onto dst with fonts.
func NewSurface(dst *ebiten.Image, fonts *Fonts) *Surface {
	return &Surface{dst: dst, fonts: fonts}
}

// Bounds returns the destination rectangle.
func (s *Surface) Bounds() panorama.Rect {
	b := s.dst.Bounds()
	return panorama.Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// DrawImage draws img scaled into dst. Images from other backends are
// ignored.
func (s *Surface) DrawImage(img panorama.Image, dst panorama.Rect) {
	im, ok := img.(*Image)
	if !ok || dst.IsEmpty() {
		return
	}
	w, h := im.Size()
	if w == 0 || h == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.Width/float64(w), dst.Height/float64(h))
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(im.img, op)
}

// DrawText draws a single line with its top-left corner at at.
func (s *Surface) DrawText(str string, at panorama.Vec2, size float64, c panorama.Color) {
	face := s.fonts.face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(toColor(c))
	op.LineSpacing = lineHeight(face)
	text.Draw(s.dst, str, face, op)
}

// MeasureText returns the size str would take at size.
func (s *Surface) MeasureText(str string, size float64) (width, height float64) {
	face := s.fonts.face(size)
	return text.Measure(str, face, lineHeight(face))
}

// StrokeRect outlines r.
func (s *Surface) StrokeRect(r panorama.Rect, width float64, c panorama.Color) {
	vector.StrokeRect(s.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(width), toColor(c), false)
}

// FillRect fills r; used for the fade overlay.
func (s *Surface) FillRect(r panorama.Rect, c panorama.Color) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), toColor(c), false)
}

func toColor(c panorama.Color) color.NRGBA {
	return color.NRGBA{R: unit(c.R), G: unit(c.G), B: unit(c.B), A: unit(c.A)}
}

func unit(v float64) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}
