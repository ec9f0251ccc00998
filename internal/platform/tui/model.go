package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tux-runner/internal/core"
	"github.com/vovakirdan/tux-runner/internal/platform/session"
	"github.com/vovakirdan/tux-runner/internal/registry"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

// Options configures the terminal frontend.
type Options struct {
	// HoldTicks is how many ticks a key press keeps the jump held.
	HoldTicks int
	// Logger receives run events. Nil discards them.
	Logger *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	tracker   *session.Tracker
	input     core.InputFrame // edge-triggered actions since the last tick
	jump      holdLatch
	mouseDown bool
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg holds the full terminal size; one row is kept for help.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 1)
	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		tracker: session.NewTracker(logger, game.ID()),
		input:   core.NewInputFrame(),
		jump:    newHoldLatch(opts.HoldTicks),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.tracker.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Jump):
		m.jump.Press()
	case key.Matches(msg, m.keys.Activate):
		m.input.Set(core.ActionActivate)
	case key.Matches(msg, m.keys.Debug):
		m.input.Set(core.ActionDebug)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleMouse maps the left button: a press activates and holds the jump
// until release. Mouse events carry real release information.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		m.mouseDown = true
		m.input.Set(core.ActionActivate)
	case tea.MouseActionRelease:
		m.mouseDown = false
	}
	return m, nil
}

// handleResize keeps the run going when the game supports it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w, h := msg.Width, max(msg.Height-helpHeight, 1)
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, h)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(w, h)
	} else if !m.gameState.Running {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.jump.Held() || m.mouseDown {
		m.input.Set(core.ActionJump)
	}
	m.input.At = now

	result := m.game.Step(m.input)
	m.gameState = result.State
	m.tracker.Observe(result)

	m.jump.Tick()
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the game and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Summary returns the runs played in this model's session.
func (m Model) Summary() session.Summary {
	return m.tracker.Summary()
}

// Run starts the Bubble Tea program and returns the session summary.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (session.Summary, error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		return m.Summary(), err
	}
	return session.Summary{}, err
}
