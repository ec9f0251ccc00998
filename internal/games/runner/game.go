// Package runner implements a side-scrolling endless runner.
// The player jumps over obstacles that scroll in from the right edge and
// speed up the longer the run lasts. A run ends on the first collision.
package runner

import (
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tux-runner/internal/canvas"
	"github.com/vovakirdan/tux-runner/internal/config"
	"github.com/vovakirdan/tux-runner/internal/core"
	"github.com/vovakirdan/tux-runner/internal/registry"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseStop
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Game implements the runner game logic.
type Game struct {
	cfg      config.RunnerConfig
	override *config.RunnerConfig // set by NewWithConfig, bypasses loading
	runtime  core.RuntimeConfig
	rng      *rand.Rand

	phase     Phase
	speed     float64
	clock     *FrameClock
	player    *Player
	obstacles *ObstacleQueue
	debug     bool

	worldW, worldH float64 // world size; the ground is the bottom edge
	tickCount      int     // ticks since Reset, drives synthetic timestamps
	runTicks       int     // ticks in the current run
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	debugOverlay     bool
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(name string) error {
	p, err := config.ParseDifficultyPreset(name)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// SetDebug turns the diagnostics overlay on for new games.
func SetDebug(on bool) {
	debugOverlay = on
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed config.
// The config path and difficulty preset are not consulted.
func NewWithConfig(cfg config.RunnerConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tux Runner"
}

// Reset loads the config and returns to the start screen.
// RuntimeConfig screen sizes are in cells; each cell covers
// Render.CellWidth x Render.CellHeight world units.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.cfg = g.loadConfig()

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.clock = NewFrameClock(g.cfg.Physics.ReferenceFPS, g.cfg.Physics.MaxDelta)
	g.obstacles = NewObstacleQueue(g.cfg.Obstacles.Capacity)
	g.debug = g.cfg.Debug || debugOverlay
	g.tickCount = 0
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	g.phase = PhaseStart
	g.newRun()
}

func (g *Game) loadConfig() config.RunnerConfig {
	if g.override != nil {
		return *g.override
	}
	cfg, src, err := config.LoadRunner(configPath)
	if err != nil {
		log.Warn("runner config unusable, using defaults", "source", src, "err", err)
		cfg = config.DefaultRunnerConfig()
	}
	config.ApplyRunnerPreset(&cfg, difficultyPreset)
	return cfg
}

// Resize changes the world to cover w x h cells. A run in progress keeps
// going; new obstacles spawn at the new right edge.
func (g *Game) Resize(w, h int) {
	g.SetWorldSize(float64(w)*g.cfg.Render.CellWidth, float64(h)*g.cfg.Render.CellHeight)
}

// SetWorldSize sets the world size in world units directly.
func (g *Game) SetWorldSize(w, h float64) {
	g.worldW = w
	g.worldH = h
}

// newRun resets the player, speed and obstacles.
func (g *Game) newRun() {
	g.speed = g.cfg.Physics.BaseSpeed
	g.player = NewPlayer(g.cfg)
	g.runTicks = 0

	g.obstacles.Reset()
	for !g.obstacles.Full() {
		g.obstacles.Push(g.spawn())
	}
}

// spawn creates an obstacle past the right edge, at least Gap behind the
// newest one, with a random jitter.
func (g *Game) spawn() Obstacle {
	x := g.worldW
	if newest := g.obstacles.Newest(); newest != nil && newest.X+g.cfg.Obstacles.Gap > x {
		x = newest.X + g.cfg.Obstacles.Gap
	}
	x += g.rng.Float64() * g.cfg.Obstacles.SpawnJitter

	variants := g.cfg.Obstacles.Variants
	if variants < 1 {
		variants = 1
	}
	return NewObstacle(x, g.cfg.Obstacles, g.rng.Intn(variants), true)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	now := in.At
	if now.IsZero() {
		interval := time.Second / time.Duration(g.runtime.TickRate)
		now = time.Time{}.Add(time.Duration(g.tickCount) * interval)
	}
	g.tickCount++
	g.clock.Observe(now)

	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	var events []core.Event
	switch g.phase {
	case PhaseStart, PhaseStop:
		if in.Has(core.ActionActivate) {
			g.newRun()
			g.phase = PhasePlaying
			events = append(events, core.Event{Kind: core.EventRunStarted})
		}
	case PhasePlaying:
		if g.colliding() {
			g.phase = PhaseStop
			events = append(events, core.Event{Kind: core.EventRunEnded, Score: g.score()})
			break
		}
		g.update(in.Has(core.ActionJump))
	}

	return core.StepResult{State: g.State(), Events: events}
}

// update runs one playing tick: player, obstacles, then the speed ramp.
func (g *Game) update(jumpHeld bool) {
	g.runTicks++
	delta := g.clock.Delta()
	p := g.cfg.Physics

	g.player.Update(jumpHeld, g.speed, delta)

	// Obstacles hold still until the frame rate estimate has warmed up
	if g.clock.FPS() > g.cfg.Obstacles.WarmupFrames {
		step := p.ScrollFactor * g.speed
		if p.UniformDelta {
			step *= delta
		}
		g.advanceObstacles(step)
	}

	ramp := g.speed*p.RampFactor + p.RampStep
	if p.UniformDelta {
		ramp *= delta
	}
	g.speed += ramp
}

func (g *Game) advanceObstacles(step float64) {
	for i := 0; i < g.obstacles.Len(); i++ {
		g.obstacles.At(i).Update(step)
	}
	for range g.obstacles.Len() {
		if !g.obstacles.Oldest().OffScreen() {
			break
		}
		g.obstacles.Recycle(g.spawn())
	}
}

func (g *Game) colliding() bool {
	ph := g.player.HitBox(g.worldH)
	for i := 0; i < g.obstacles.Len(); i++ {
		if IsColliding(ph, g.obstacles.At(i).HitBox(g.worldH)) {
			return true
		}
	}
	return false
}

// score reports the whole score, saturating at math.MaxInt once the
// compound law outgrows an int.
func (g *Game) score() int {
	if g.player.Score >= math.MaxInt {
		return math.MaxInt
	}
	return int(g.player.Score)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Speed returns the current scroll speed.
func (g *Game) Speed() float64 {
	return g.speed
}

// Debug reports whether the diagnostics overlay is on.
func (g *Game) Debug() bool {
	return g.debug
}

// RunTicks returns the number of ticks played in the current or last run.
func (g *Game) RunTicks() int {
	return g.runTicks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		Running:  g.phase == PhasePlaying,
		GameOver: g.phase == PhaseStop,
	}
}

// Render draws the game into a terminal screen.
func (g *Game) Render(dst *core.Screen) {
	g.Draw(canvas.NewScreenCanvas(dst, g.cfg.Render.CellWidth, g.cfg.Render.CellHeight))
}

// Register the game with the registry
func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
}
