// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so frontends can list
// and create them by ID without importing each game directly.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tux-runner/internal/canvas"
	"github.com/vovakirdan/tux-runner/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("unknown game")

// Game is the interface frontends drive.
// Games hold pure logic: the platform maps input, runs the clock and
// presents what the game draws.
type Game interface {
	// ID returns a unique identifier used on the command line (e.g. "runner").
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset loads configuration and returns to the initial screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a terminal screen.
	Render(dst *core.Screen)

	// State returns the current score and run status.
	State() core.GameState
}

// Resizer is implemented by games that follow terminal resizes
// without a Reset. Sizes are in cells.
type Resizer interface {
	Resize(w, h int)
}

// Drawer is implemented by games that can render onto any canvas,
// such as a graphical window.
type Drawer interface {
	Draw(c canvas.Canvas)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
