package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Optional game capabilities the model uses when present.
type (
	resizer interface {
		Resize(w, h int)
	}
	playfield interface {
		OnPlayfield(w, h, x, y int) bool
	}
	holder interface {
		HoldEnabled() bool
	}
	debugStater interface {
		DebugState() string
	}
)

// footerHeight is the row reserved for the help line.
const footerHeight = 1

// Options configures a Model beyond the runtime config.
type Options struct {
	// Logger receives session events. Nil discards them.
	Logger *log.Logger
	// ScreenshotDir is where ctrl+s writes text captures.
	// Empty means ~/.blocks/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	swipe      Swipe

	logger        *log.Logger
	runID         string
	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	runID := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("run", runID, "game", game.ID())

	h := help.New()
	h.ShowAll = false

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-footerHeight)),
		config:        cfg,
		inputFrame:    core.NewInputFrame(),
		keys:          DefaultKeyMap(true),
		help:          h,
		logger:        logger,
		runID:         runID,
		screenshotDir: opts.ScreenshotDir,
	}
}

// RunID returns the id attached to every log line of this session.
func (m Model) RunID() string {
	return m.runID
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("session started", "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// gameConfig is the runtime config with the footer taken off the height.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.screen.Height()
	return cfg
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.syncKeys()

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		st := m.game.State()
		m.logger.Info("quit", "score", st.Score, "level", st.Level, "lines", st.Lines)
		return m, tea.Quit
	case core.ActionNone:
		switch msg.String() {
		case "ctrl+s":
			m.saveScreenshot()
		case "?":
			m.help.ShowAll = !m.help.ShowAll
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// syncKeys disables bindings the game has no use for.
func (m *Model) syncKeys() {
	if h, ok := m.game.(holder); ok {
		m.keys.Hold.SetEnabled(h.HoldEnabled())
	}
}

// handleMouse turns swipes over the board into actions.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pf, ok := m.game.(playfield)
	if !ok {
		return m, nil
	}
	w, h := m.screen.Width(), m.screen.Height()
	onBoard := func(x, y int) bool { return pf.OnPlayfield(w, h, x, y) }
	if action := m.swipe.Handle(msg, onBoard); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-footerHeight))
	m.help.Width = msg.Width

	// Games that only lay out at draw time keep their state
	if r, ok := m.game.(resizer); ok {
		r.Resize(m.screen.Width(), m.screen.Height())
	} else if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver
	restart := m.inputFrame.Has(core.ActionRestart)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case restart:
		m.logger.Info("restart", "previous_over", wasOver)
	case m.gameState.GameOver && !wasOver:
		m.logger.Info("game over",
			"score", m.gameState.Score,
			"level", m.gameState.Level,
			"lines", m.gameState.Lines)
		if d, ok := m.game.(debugStater); ok {
			m.logger.Debug("final state", "state", d.DebugState())
		}
	case result.Cleared > 0:
		m.logger.Debug("lines cleared", "count", result.Cleared, "score", m.gameState.Score)
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".blocks", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.syncKeys()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // swipe gestures
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
