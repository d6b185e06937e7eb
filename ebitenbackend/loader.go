package ebitenbackend

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/phanxgames/panorama"
)

const sampleRate = 48000

func logf(format string, args ...any) {
	log.Printf("[ebitenbackend] "+format, args...)
}

// Loader is a panorama.Loader reading assets from a file system.
type Loader struct {
	fsys   fs.FS
	audio  *audio.Context
	sounds []*Sound

	// ClipFrameRate is used for movies without a clip.yaml.
	ClipFrameRate float64
}

// NewLoader creates a loader over fsys. A nil ctx uses the process audio
// context, creating it at 48 kHz if needed.
func NewLoader(fsys fs.FS, ctx *audio.Context) *Loader {
	if ctx == nil {
		ctx = audio.CurrentContext()
	}
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &Loader{fsys: fsys, audio: ctx, ClipFrameRate: 15}
}

// LoadImage decodes a png, jpeg or gif.
func (l *Loader) LoadImage(name string) (panorama.Image, error) {
	img, err := l.decodeImage(name)
	if err != nil {
		return nil, err
	}
	return NewImage(ebiten.NewImageFromImage(img)), nil
}

func (l *Loader) decodeImage(name string) (image.Image, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", name, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}
	return img, nil
}

// LoadSound decodes an mp3, ogg or wav file into memory.
func (l *Loader) LoadSound(name string) (panorama.Sound, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", name, err)
	}
	pcm, err := decodeAudio(l.audio, name, data)
	if err != nil {
		return nil, err
	}
	s := newSound(l.audio, name, pcm)
	l.sounds = append(l.sounds, s)
	return s, nil
}

// Update steps the volume fades of every loaded sound. Run calls it once
// per tick.
func (l *Loader) Update(dt float64) {
	for _, s := range l.sounds {
		s.update(dt)
	}
}
