package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/game"
)

// clock returns the current time. Replaced in tests.
type clock func() time.Time

// ModelOptions configure a Model beyond the game configuration.
type ModelOptions struct {
	// Renderer styles output for the session's terminal. Nil means the
	// local terminal; SSH sessions pass the client's renderer.
	Renderer *lipgloss.Renderer

	// Logger receives game events at debug level. May be nil.
	Logger *log.Logger

	// ScreenshotDir is where ctrl+s saves plain-text frames.
	// Empty disables screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	game    *game.Game
	gate    *core.FrameGate
	screen  *core.Screen
	surface *CellSurface
	painter *Painter

	keys      KeyMap
	held      *HeldKeys
	pending   core.InputFrame // Pause/Confirm presses since the last frame
	help      help.Model
	helpStyle lipgloss.Style

	interval time.Duration
	now      clock
	logger   *log.Logger
	shotDir  string
	quitting bool
}

// NewModel creates a model running a fresh game with cfg, drawing into a
// terminal of the given size.
func NewModel(cfg config.BreakerConfig, rt core.RuntimeConfig, opts ModelOptions) Model {
	return newModel(cfg, rt, opts, time.Now)
}

func newModel(cfg config.BreakerConfig, rt core.RuntimeConfig, opts ModelOptions, now clock) Model {
	start := now()
	gate := core.NewFrameGate(cfg.Window.FPS, start)
	painter := NewPainter(opts.Renderer)

	// One row is reserved for help
	screen := core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1))

	h := help.New()
	h.Styles = painter.HelpStyles()

	return Model{
		game:      game.New(cfg, start),
		gate:      gate,
		screen:    screen,
		surface:   NewCellSurface(screen, cfg.Window.Width, cfg.Window.Height),
		painter:   painter,
		keys:      DefaultKeyMap(),
		held:      NewHeldKeys(cfg.Input.HoldWindow()),
		pending:   core.NewInputFrame(),
		help:      h,
		helpStyle: painter.Renderer().NewStyle().Padding(0, 1),
		interval:  gate.Target() / ticksPerFrame,
		now:       now,
		logger:    opts.Logger,
		shotDir:   opts.ScreenshotDir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		// Presses stop arriving while unfocused
		m.held.Release()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.ActionFor(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.held.Press(action, m.now())
	case core.ActionPause, core.ActionConfirm:
		m.pending.Set(action)
	}
	return m, nil
}

// handleTick runs a frame if the gate allows it.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.now()
	dt, ok := m.gate.Ready(now)
	if !ok {
		return m, tickCmd(m.interval)
	}

	in := m.pending.Clone()
	m.held.Apply(&in, now)
	m.pending.Clear()

	res := m.game.Step(in, now, dt)
	m.logEvents(res.Events)

	return m, tickCmd(m.interval)
}

// logEvents reports game events at debug level.
func (m Model) logEvents(events []game.Event) {
	if m.logger == nil {
		return
	}
	for _, e := range events {
		m.logger.Debug("game event", "event", e.String(), "lives", e.Lives)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}

	m.game.Render(m.surface)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logError("cannot create screenshot directory", err)
		return
	}

	timestamp := m.now().Format("20060102_150405.000")
	path := filepath.Join(m.shotDir, fmt.Sprintf("brickbreaker_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logError("cannot save screenshot", err)
		return
	}
	if m.logger != nil {
		m.logger.Debug("screenshot saved", "path", path)
	}
}

func (m Model) logError(msg string, err error) {
	if m.logger != nil {
		m.logger.Warn(msg, "error", err)
	}
}

// View renders the playfield and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.surface)
	return m.painter.RenderScreen(m.screen) + "\n" + m.helpStyle.Render(m.help.View(m.keys))
}

// Game returns the running game.
func (m Model) Game() *game.Game {
	return m.game
}
