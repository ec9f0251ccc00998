package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tux-runner/internal/config"
	"github.com/vovakirdan/tux-runner/internal/core"
	"github.com/vovakirdan/tux-runner/internal/games/runner"
	"github.com/vovakirdan/tux-runner/internal/platform/session"
	"github.com/vovakirdan/tux-runner/internal/platform/tui"
	"github.com/vovakirdan/tux-runner/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The game defaults to runner.

Controls:
  Enter/R/Click  - Start or restart
  Space/Up/W     - Jump (hold the mouse button to keep jumping)
  D              - Toggle the diagnostics overlay
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower start
  normal - Configured speed
  hard   - Faster start, speeds up twice as fast
  fixed  - Never speeds up

Examples:
  arcade play
  arcade play runner --difficulty easy
  arcade play --config ./my-runner.yaml --debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := gameArg(args)
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	game, err := newGame(gameID, cfg)
	if err != nil {
		return err
	}
	logger.Info("starting", "game", gameID, "frontend", "terminal", "size", fmt.Sprintf("%dx%d", width, height))

	summary, err := tui.Run(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, tui.Options{
		HoldTicks: cfg.Input.HoldTicks,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	printSummary(summary)
	return nil
}

// loadRunnerConfig validates the runner flags and loads its config once,
// so a broken file fails before the screen is taken over.
func loadRunnerConfig() (config.RunnerConfig, error) {
	runner.SetConfigPath(flagConfig)
	runner.SetDebug(flagDebug)
	if err := runner.SetDifficultyPreset(flagDifficulty); err != nil {
		return config.RunnerConfig{}, err
	}

	cfg, src, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, _ := config.ParseDifficultyPreset(flagDifficulty)
	config.ApplyRunnerPreset(&cfg, preset)
	cfg.Debug = cfg.Debug || flagDebug

	log.Debug("config loaded", "source", src, "difficulty", preset)
	return cfg, nil
}

// newGame builds the runner from the config already loaded for the flags,
// so Reset does not read it a second time. Other games come from the registry.
func newGame(id string, cfg config.RunnerConfig) (registry.Game, error) {
	if id == defaultGame {
		return runner.NewWithConfig(cfg), nil
	}
	return registry.Create(id)
}

func printSummary(s session.Summary) {
	if s.Runs == 0 {
		return
	}
	fmt.Printf("Runs: %d  Best score: %d\n", s.Runs, s.Best)
}
