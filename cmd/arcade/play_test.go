package main

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tux-runner/internal/config"
	"github.com/vovakirdan/tux-runner/internal/core"
	"github.com/vovakirdan/tux-runner/internal/games/runner"
	"github.com/vovakirdan/tux-runner/internal/registry"
)

func TestNewGameUsesLoadedConfig(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Physics.BaseSpeed = 7
	cfg.Debug = true

	g, err := newGame(defaultGame, cfg)
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	rg, ok := g.(*runner.Game)
	if !ok {
		t.Fatalf("newGame returned %T, expected *runner.Game", g)
	}

	rg.Reset(core.DefaultConfig())
	if rg.Speed() != 7 {
		t.Errorf("speed = %v, expected base speed 7 from the loaded config", rg.Speed())
	}
	if !rg.Debug() {
		t.Error("debug overlay from the loaded config should be on")
	}
}

func TestNewGameUnknown(t *testing.T) {
	_, err := newGame("does-not-exist", config.DefaultRunnerConfig())
	if !errors.Is(err, registry.ErrUnknownGame) {
		t.Errorf("err = %v, expected ErrUnknownGame", err)
	}
}
