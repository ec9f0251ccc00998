package window

import (
	"fmt"
	"image"
	_ "image/png" // sprite assets are PNG
	"io/fs"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tux-runner/internal/canvas"
)

// Sprites lists every sprite the loader fetches.
var Sprites = []canvas.Sprite{
	canvas.SpritePlayer,
	canvas.SpriteObstacle0,
	canvas.SpriteObstacle1,
	canvas.SpriteObstacle2,
	canvas.SpriteObstacle3,
}

// AssetLoader decodes sprite images in the background.
// Drawing never waits for it: a sprite that is not decoded yet, or failed
// to decode, is simply skipped.
type AssetLoader struct {
	fsys   fs.FS
	logger *log.Logger

	mu     sync.RWMutex
	images map[canvas.Sprite]image.Image
	errs   map[canvas.Sprite]error
	wg     sync.WaitGroup
}

// NewAssetLoader creates a loader reading sprites from fsys by asset name.
func NewAssetLoader(fsys fs.FS, logger *log.Logger) *AssetLoader {
	return &AssetLoader{
		fsys:   fsys,
		logger: logger,
		images: make(map[canvas.Sprite]image.Image),
		errs:   make(map[canvas.Sprite]error),
	}
}

// Start decodes every sprite in its own goroutine and returns immediately.
func (l *AssetLoader) Start() {
	for _, s := range Sprites {
		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			l.load(s)
		}()
	}
}

// Wait blocks until every sprite has loaded or failed.
func (l *AssetLoader) Wait() {
	l.wg.Wait()
}

func (l *AssetLoader) load(s canvas.Sprite) {
	img, err := l.decode(s.AssetName())

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.errs[s] = err
		l.logger.Warn("sprite unavailable", "asset", s.AssetName(), "err", err)
		return
	}
	l.images[s] = img
	l.logger.Debug("sprite loaded", "asset", s.AssetName(), "size", img.Bounds().Size())
}

func (l *AssetLoader) decode(name string) (image.Image, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Image returns the decoded sprite, if ready.
func (l *AssetLoader) Image(s canvas.Sprite) (image.Image, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	img, ok := l.images[s]
	return img, ok
}

// Err returns the error that made a sprite unavailable, if any.
func (l *AssetLoader) Err(s canvas.Sprite) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.errs[s]
}
