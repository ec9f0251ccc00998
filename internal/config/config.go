// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all configuration for the endless runner.
// Lengths are in world units: canvas pixels in a window, or
// Render.CellWidth x Render.CellHeight per terminal cell.
type RunnerConfig struct {
	Physics   RunnerPhysics   `yaml:"physics"`
	Player    RunnerPlayer    `yaml:"player"`
	Obstacles RunnerObstacles `yaml:"obstacles"`
	Scoring   RunnerScoring   `yaml:"scoring"`
	Render    RunnerRender    `yaml:"render"`
	Input     RunnerInput     `yaml:"input"`
	Debug     bool            `yaml:"debug"`
}

// RunnerPhysics defines the jump, scroll and speed-ramp parameters.
type RunnerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpPower    float64 `yaml:"jump_power"`
	BaseSpeed    float64 `yaml:"base_speed"`
	RampFactor   float64 `yaml:"ramp_factor"` // speed += speed*ramp_factor + ramp_step
	RampStep     float64 `yaml:"ramp_step"`
	ScrollFactor float64 `yaml:"scroll_factor"` // obstacle moves scroll_factor*speed per tick
	ReferenceFPS float64 `yaml:"reference_fps"` // delta = reference_fps / measured fps
	MaxDelta     float64 `yaml:"max_delta"`     // 0 disables the clamp
	UniformDelta bool    `yaml:"uniform_delta"` // scale obstacles and ramp by delta too
}

// RunnerPlayer defines the player sprite and its hitbox insets.
type RunnerPlayer struct {
	Size          float64 `yaml:"size"`
	HitboxX       float64 `yaml:"hitbox_x"`
	HitboxTop     float64 `yaml:"hitbox_top"`
	HitboxShrinkW float64 `yaml:"hitbox_shrink_w"`
	HitboxShrinkH float64 `yaml:"hitbox_shrink_h"`
}

// RunnerObstacles defines obstacle geometry and spawning.
type RunnerObstacles struct {
	Size         float64 `yaml:"size"`
	Scale        float64 `yaml:"scale"` // hitbox margin is scale/2
	Variants     int     `yaml:"variants"`
	Capacity     int     `yaml:"capacity"`      // obstacles alive at once
	SpawnJitter  float64 `yaml:"spawn_jitter"`  // random offset in [0, jitter)
	Gap          float64 `yaml:"gap"`           // minimum distance between spawned obstacles
	WarmupFrames int     `yaml:"warmup_frames"` // obstacles hold still until the FPS window exceeds this
}

// ScoreMode selects the score growth law.
type ScoreMode string

const (
	// ScoreDistance adds speed*delta each tick.
	ScoreDistance ScoreMode = "distance"
	// ScoreCompound multiplies: score += score*speed. Zero stays zero.
	ScoreCompound ScoreMode = "compound"
)

// RunnerScoring defines how the score grows.
type RunnerScoring struct {
	Mode ScoreMode `yaml:"mode"`
	Seed float64   `yaml:"seed"` // starting score
}

// RunnerRender defines how world units map onto terminal cells.
type RunnerRender struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// RunnerInput defines terminal input handling.
type RunnerInput struct {
	// HoldTicks is how long a key press keeps the jump held.
	// Terminals report no key release, so auto-repeat refreshes the hold.
	HoldTicks int `yaml:"hold_ticks"`
}

// Validate reports every invalid field at once.
func (c RunnerConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}

	positive("physics.gravity", c.Physics.Gravity)
	positive("physics.jump_power", c.Physics.JumpPower)
	positive("physics.base_speed", c.Physics.BaseSpeed)
	nonNegative("physics.ramp_factor", c.Physics.RampFactor)
	nonNegative("physics.ramp_step", c.Physics.RampStep)
	positive("physics.scroll_factor", c.Physics.ScrollFactor)
	positive("physics.reference_fps", c.Physics.ReferenceFPS)
	nonNegative("physics.max_delta", c.Physics.MaxDelta)

	positive("player.size", c.Player.Size)
	nonNegative("player.hitbox_x", c.Player.HitboxX)
	nonNegative("player.hitbox_top", c.Player.HitboxTop)
	if c.Player.HitboxShrinkW >= c.Player.Size || c.Player.HitboxShrinkH >= c.Player.Size {
		errs = append(errs, errors.New("player hitbox shrink must be smaller than player.size"))
	}

	positive("obstacles.size", c.Obstacles.Size)
	nonNegative("obstacles.scale", c.Obstacles.Scale)
	if c.Obstacles.Scale/2 >= c.Obstacles.Size {
		errs = append(errs, errors.New("obstacles.scale/2 must be smaller than obstacles.size"))
	}
	if c.Obstacles.Variants < 1 {
		errs = append(errs, fmt.Errorf("obstacles.variants must be at least 1, got %d", c.Obstacles.Variants))
	}
	if c.Obstacles.Capacity < 1 {
		errs = append(errs, fmt.Errorf("obstacles.capacity must be at least 1, got %d", c.Obstacles.Capacity))
	}
	nonNegative("obstacles.spawn_jitter", c.Obstacles.SpawnJitter)
	nonNegative("obstacles.gap", c.Obstacles.Gap)
	if c.Obstacles.WarmupFrames < 0 {
		errs = append(errs, fmt.Errorf("obstacles.warmup_frames must not be negative, got %d", c.Obstacles.WarmupFrames))
	}

	switch c.Scoring.Mode {
	case ScoreDistance, ScoreCompound:
	default:
		errs = append(errs, fmt.Errorf("scoring.mode must be %q or %q, got %q", ScoreDistance, ScoreCompound, c.Scoring.Mode))
	}
	nonNegative("scoring.seed", c.Scoring.Seed)

	positive("render.cell_width", c.Render.CellWidth)
	positive("render.cell_height", c.Render.CellHeight)

	if c.Input.HoldTicks < 1 {
		errs = append(errs, fmt.Errorf("input.hold_ticks must be at least 1, got %d", c.Input.HoldTicks))
	}

	return errors.Join(errs...)
}
