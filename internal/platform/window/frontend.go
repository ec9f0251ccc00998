// Package window runs a game in a desktop window or browser canvas
// through ebiten.
package window

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tux-runner/internal/core"
	"github.com/vovakirdan/tux-runner/internal/platform/session"
	"github.com/vovakirdan/tux-runner/internal/registry"
)

// ErrNotDrawable is returned for games that cannot render onto a canvas.
var ErrNotDrawable = errors.New("game cannot draw to a window")

// Game is what the window frontend drives.
type Game interface {
	registry.Game
	registry.Drawer
}

// Options configures the window frontend.
type Options struct {
	Width    int
	Height   int
	TickRate int
	Seed     int64
	Assets   fs.FS
	Logger   *log.Logger
}

// Frontend implements ebiten.Game around a game.
type Frontend struct {
	game    Game
	canvas  *WindowCanvas
	loader  *AssetLoader
	tracker *session.Tracker
	input   inputSource
	now     func() time.Time

	tickRate      int
	width, height int
}

// New prepares a frontend and starts loading sprites.
func New(g registry.Game, opts Options) (*Frontend, error) {
	game, ok := g.(Game)
	if !ok {
		return nil, fmt.Errorf("%s: %w", g.ID(), ErrNotDrawable)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", opts.Width, opts.Height)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var loader *AssetLoader
	if opts.Assets != nil {
		loader = NewAssetLoader(opts.Assets, logger)
		loader.Start()
	} else {
		logger.Warn("no asset directory, sprites will not be drawn")
		loader = NewAssetLoader(emptyFS{}, log.New(io.Discard))
	}

	game.Reset(core.RuntimeConfig{
		ScreenW:  opts.Width,
		ScreenH:  opts.Height,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})

	return &Frontend{
		game:     game,
		canvas:   NewWindowCanvas(loader),
		loader:   loader,
		tracker:  session.NewTracker(logger, game.ID()),
		input:    ebitenInput{},
		now:      time.Now,
		tickRate: opts.TickRate,
		width:    opts.Width,
		height:   opts.Height,
	}, nil
}

// Update advances the game by one tick.
func (f *Frontend) Update() error {
	if f.input.QuitRequested() {
		f.tracker.Close()
		return ebiten.Termination
	}

	res := f.game.Step(readFrame(f.input, f.now()))
	f.tracker.Observe(res)
	return nil
}

// Draw renders the game onto the window.
func (f *Frontend) Draw(screen *ebiten.Image) {
	f.canvas.Begin(screen)
	f.game.Draw(f.canvas)
}

// Layout follows the window size so the world grows with it.
func (f *Frontend) Layout(outsideW, outsideH int) (int, int) {
	if outsideW > 0 && outsideH > 0 && (outsideW != f.width || outsideH != f.height) {
		f.width, f.height = outsideW, outsideH
		if r, ok := f.game.(registry.Resizer); ok {
			r.Resize(outsideW, outsideH)
		}
	}
	return f.width, f.height
}

// Summary returns the runs played in this window.
func (f *Frontend) Summary() session.Summary {
	return f.tracker.Summary()
}

// Run opens the window and blocks until it is closed.
func Run(g registry.Game, opts Options) (session.Summary, error) {
	f, err := New(g, opts)
	if err != nil {
		return session.Summary{}, err
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(f.tickRate)

	if err := ebiten.RunGame(f); err != nil && !errors.Is(err, ebiten.Termination) {
		return f.Summary(), err
	}
	return f.Summary(), nil
}

// emptyFS has no files.
type emptyFS struct{}

func (emptyFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
