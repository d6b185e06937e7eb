package ebitenbackend

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// decodeAudio decodes an mp3, ogg or wav file to PCM bytes at the
// context's sample rate.
func decodeAudio(ctx *audio.Context, name string, data []byte) ([]byte, error) {
	r := bytes.NewReader(data)
	rate := ctx.SampleRate()
	var stream io.Reader
	var err error
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(rate, r)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(rate, r)
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(rate, r)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio %s: %w", name, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio %s: %w", name, err)
	}
	return pcm, nil
}

// Sound is a panorama.Sound. One-shot and looped playback use separate
// players over the same decoded samples. Volume fades are stepped by the
// loader once per tick.
type Sound struct {
	ctx  *audio.Context
	name string
	pcm  []byte

	once *audio.Player
	loop *audio.Player

	fade      *gween.Tween
	stopAfter bool
}

func newSound(ctx *audio.Context, name string, pcm []byte) *Sound {
	return &Sound{ctx: ctx, name: name, pcm: pcm}
}

// Play starts the sound once from the beginning.
func (s *Sound) Play() {
	if s.once == nil {
		s.once = s.ctx.NewPlayerFromBytes(s.pcm)
	}
	s.rewind(s.once)
	s.once.SetVolume(1)
	s.once.Play()
}

// Loop starts the looped sound, fading in over fadeIn seconds.
func (s *Sound) Loop(fadeIn float64) {
	if s.loop == nil {
		p, err := s.ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(s.pcm), int64(len(s.pcm))))
		if err != nil {
			logf("sound %s: %v", s.name, err)
			return
		}
		s.loop = p
	}
	s.stopAfter = false
	if fadeIn > 0 {
		s.fade = gween.New(float32(s.loop.Volume()), 1, float32(fadeIn), ease.Linear)
	} else {
		s.fade = nil
		s.loop.SetVolume(1)
	}
	s.loop.Play()
}

// FadeOut ramps the looped sound down over d seconds and stops it.
func (s *Sound) FadeOut(d float64) {
	if s.loop == nil || !s.loop.IsPlaying() {
		return
	}
	if d <= 0 {
		s.stop()
		return
	}
	s.fade = gween.New(float32(s.loop.Volume()), 0, float32(d), ease.Linear)
	s.stopAfter = true
}

// Playing reports whether the loop is playing and not fading out.
func (s *Sound) Playing() bool {
	return s.loop != nil && s.loop.IsPlaying() && !s.stopAfter
}

// update steps the volume fade by dt seconds.
func (s *Sound) update(dt float64) {
	if s.fade == nil || s.loop == nil {
		return
	}
	v, done := s.fade.Update(float32(dt))
	s.loop.SetVolume(float64(v))
	if !done {
		return
	}
	s.fade = nil
	if s.stopAfter {
		s.stop()
	}
}

func (s *Sound) stop() {
	s.fade = nil
	s.stopAfter = false
	s.loop.Pause()
	s.rewind(s.loop)
}

func (s *Sound) rewind(p *audio.Player) {
	if err := p.Rewind(); err != nil {
		logf("sound %s: rewind: %v", s.name, err)
	}
}
