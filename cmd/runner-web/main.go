//go:build js && wasm

// runner-web is the browser build of Tux Runner. It fills the page with
// the game canvas and loads sprites from assets/ next to the page.
package main

import (
	"context"
	"net/url"
	"os"
	"syscall/js"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tux-runner/internal/config"
	"github.com/vovakirdan/tux-runner/internal/games/runner"
	"github.com/vovakirdan/tux-runner/internal/platform/window"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "runner-web"})
	log.SetDefault(logger)

	cfg := config.DefaultRunnerConfig()
	cfg.Render.CellWidth, cfg.Render.CellHeight = 1, 1
	game := runner.NewWithConfig(cfg)

	page, err := url.Parse(js.Global().Get("location").Get("href").String())
	if err != nil {
		logger.Fatal("cannot parse page url", "err", err)
	}
	base := page.ResolveReference(&url.URL{Path: "assets/"})
	assets, err := window.NewHTTPFS(context.Background(), base.String())
	if err != nil {
		logger.Fatal("cannot resolve asset url", "base", base, "err", err)
	}

	js.Global().Set("runnerScore", js.FuncOf(func(this js.Value, args []js.Value) any {
		return js.ValueOf(game.State().Score)
	}))

	win := js.Global().Get("window")
	if _, err := window.Run(game, window.Options{
		Width:  win.Get("innerWidth").Int(),
		Height: win.Get("innerHeight").Int(),
		Assets: assets,
		Logger: logger,
	}); err != nil {
		logger.Fatal("game stopped", "err", err)
	}
}
