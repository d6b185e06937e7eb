package panorama

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryCaches(t *testing.T) {
	loader := newFakeLoader()
	lib := NewLibrary("pictures", "default.gif", loader.LoadImage)

	first, err := lib.Load("hall.png")
	require.NoError(t, err)
	second, err := lib.Load("hall.png")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, loader.loads["pictures/hall.png"])
	assert.True(t, lib.Loaded("hall.png"))

	lib.Delete("hall.png")
	assert.False(t, lib.Loaded("hall.png"))
	_, err = lib.Load("hall.png")
	require.NoError(t, err)
	assert.Equal(t, 2, loader.loads["pictures/hall.png"])
}

func TestLibraryFallsBackToDefault(t *testing.T) {
	loader := newFakeLoader()
	loader.missing["pictures/gone.png"] = true
	lib := NewLibrary("pictures", "default.gif", loader.LoadImage)

	img, err := lib.Load("gone.png")
	require.NoError(t, err)
	assert.Equal(t, "pictures/default.gif", img.(*fakeImage).path)
	assert.False(t, lib.Loaded("gone.png"))
}

func TestLibraryMissingDefault(t *testing.T) {
	loader := newFakeLoader()
	loader.missing["pictures/gone.png"] = true
	loader.missing["pictures/default.gif"] = true
	lib := NewLibrary("pictures", "default.gif", loader.LoadImage)

	_, err := lib.Load("gone.png")
	require.ErrorIs(t, err, ErrMissingResource)
	assert.ErrorIs(t, err, errNotFound)
	assert.Panics(t, func() { lib.Get("gone.png") })
}

func TestLibraryWithoutDefault(t *testing.T) {
	loader := newFakeLoader()
	lib := NewLibrary("movies", "", loader.LoadClip)

	_, err := lib.Load("intro")
	require.ErrorIs(t, err, ErrMissingResource)
	assert.Equal(t, "movies/intro", lib.Path("intro"))
	assert.Equal(t, "", lib.Default())
}

func TestLibraryPreload(t *testing.T) {
	loader := newFakeLoader()
	loader.clips["movies/intro"] = &fakeClip{frames: 1, rate: 15}
	lib := NewLibrary("movies", "", loader.LoadClip)

	err := lib.Preload("intro", "outro", "credits")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingResource)
	assert.Contains(t, err.Error(), "movies/outro")
	assert.Contains(t, err.Error(), "movies/credits")
	assert.True(t, lib.Loaded("intro"))
}

func TestNewMediaFolders(t *testing.T) {
	loader := newFakeLoader()
	m := NewMedia(loader, DefaultMediaConfig())

	m.Cursors.Get("fwd.png")
	m.Voices.Get("hello.ogg")
	m.Sounds.Get("door.wav")
	assert.Equal(t, 1, loader.loads["cursors/fwd.png"])
	assert.Equal(t, 1, loader.loads["sounds/voices/hello.ogg"])
	assert.Equal(t, 1, loader.loads["sounds/effects/door.wav"])
	assert.Equal(t, "sounds/default.wav", m.Sounds.Path(m.Sounds.Default()))
}
