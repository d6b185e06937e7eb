package ebitenbackend

import (
	"errors"
	"io/fs"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/panorama"
)

// RunConfig configures the window and the backend extras.
type RunConfig struct {
	Title      string
	Fullscreen bool
	// ShowFPS starts with the FPS overlay visible. F11 toggles it in
	// design mode.
	ShowFPS bool
	// ScreenshotDir receives the PNGs taken with F12 in design mode or by
	// script steps. Defaults to "screenshots".
	ScreenshotDir string
	// Font is TTF or OTF data for labels. Nil selects Go Regular.
	Font       []byte
	ClearColor panorama.Color
	// OnUpdate, if set, runs after the engine's update every tick.
	OnUpdate func() error
}

// NewEngine creates an engine reading assets from fsys with an ebiten
// loader and input.
func NewEngine(cfg panorama.Config, fsys fs.FS) (*panorama.Engine, *Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	loader := NewLoader(fsys, nil)
	return panorama.New(cfg, loader, NewInput()), loader, nil
}

// Game is an ebiten.Game driving a panorama engine.
type Game struct {
	engine  *panorama.Engine
	loader  *Loader
	fonts   *Fonts
	cfg     RunConfig
	showFPS bool
	fps     *fpsOverlay

	screenshotQueue []shot
	session         string
}

// NewGame creates the ebiten game for e. loader may be nil if e uses
// another loader.
func NewGame(e *panorama.Engine, loader *Loader, cfg RunConfig) (*Game, error) {
	fonts, err := NewFonts(cfg.Font)
	if err != nil {
		return nil, err
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	g := &Game{
		engine:  e,
		loader:  loader,
		fonts:   fonts,
		cfg:     cfg,
		showFPS: cfg.ShowFPS,
		fps:     newFPSOverlay(),
		session: time.Now().Format("20060102_150405"),
	}
	e.Screenshot = g.Screenshot
	return g, nil
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.engine.Design {
		if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
			g.Screenshot("design")
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
			g.showFPS = !g.showFPS
		}
	}
	err := g.engine.Update()
	if errors.Is(err, panorama.ErrQuit) {
		return ebiten.Termination
	}
	if err != nil {
		return err
	}
	if g.cfg.OnUpdate != nil {
		if err := g.cfg.OnUpdate(); err != nil {
			return err
		}
	}
	dt := 1 / g.engine.FrameRate
	if g.loader != nil {
		g.loader.Update(dt)
	}
	if g.showFPS {
		g.fps.update(dt)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor.A > 0 {
		screen.Fill(toColor(g.cfg.ClearColor))
	}
	g.engine.Draw(NewSurface(screen, g.fonts))
	if g.showFPS {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The screen is the engine's screen.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	r := g.engine.Screen()
	return int(r.Width), int(r.Height)
}

// Run opens a window and runs e until the player quits.
func Run(e *panorama.Engine, loader *Loader, cfg RunConfig) error {
	g, err := NewGame(e, loader, cfg)
	if err != nil {
		return err
	}
	screen := e.Screen()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(screen.Width), int(screen.Height))
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(int(e.FrameRate))
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	logf("running %q at %dx%d, %v ticks per second", cfg.Title, int(screen.Width), int(screen.Height), e.FrameRate)
	return ebiten.RunGame(g)
}
