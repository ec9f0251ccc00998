package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is the base every loaded file is merged onto.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:      1.2,
			JumpPower:    25,
			BaseSpeed:    0.5,
			RampFactor:   0.000005,
			RampStep:     0.00005,
			ScrollFactor: 10,
			ReferenceFPS: 60,
			MaxDelta:     4,
			UniformDelta: false,
		},
		Player: RunnerPlayer{
			Size:          128,
			HitboxX:       20,
			HitboxTop:     15,
			HitboxShrinkW: 43,
			HitboxShrinkH: 30,
		},
		Obstacles: RunnerObstacles{
			Size:         128,
			Scale:        16,
			Variants:     4,
			Capacity:     1,
			SpawnJitter:  50,
			Gap:          480,
			WarmupFrames: 40,
		},
		Scoring: RunnerScoring{
			Mode: ScoreDistance,
			Seed: 0,
		},
		Render: RunnerRender{
			CellWidth:  16,
			CellHeight: 32,
		},
		Input: RunnerInput{
			HoldTicks: 8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "runner":
		return defaultRunnerYAML
	default:
		return nil
	}
}
