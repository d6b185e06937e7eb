package ebitenbackend

import "github.com/hajimehoshi/ebiten/v2"

// Image is a panorama.Image backed by an ebiten image.
type Image struct {
	img *ebiten.Image
}

// NewImage wraps img.
func NewImage(img *ebiten.Image) *Image {
	return &Image{img: img}
}

// Size returns the pixel size.
func (i *Image) Size() (width, height int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

// Ebiten returns the underlying ebiten image.
func (i *Image) Ebiten() *ebiten.Image { return i.img }
