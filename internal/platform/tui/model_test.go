package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/game"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func defaultConfig() config.BreakerConfig {
	return config.DefaultBreakerConfig()
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

func newTestModel() (Model, *fakeClock) {
	return newTestModelWith(defaultConfig(), ModelOptions{})
}

func newTestModelWith(cfg config.BreakerConfig, opts ModelOptions) (Model, *fakeClock) {
	clk := &fakeClock{t: t0}
	return newModel(cfg, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, opts, clk.Now), clk
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelLaunchesAfterGrace(t *testing.T) {
	m, clk := newTestModel()

	clk.Advance(600 * time.Millisecond)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	clk.Advance(20 * time.Millisecond)
	m, cmd := update(t, m, TickMsg(clk.t))

	if m.Game().Phase().Kind() != game.PhaseRunning {
		t.Errorf("Phase = %s, expected running", m.Game().Phase())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelGateDropsEarlyTicks(t *testing.T) {
	m, clk := newTestModel()

	clk.Advance(5 * time.Millisecond)
	m, _ = update(t, m, TickMsg(clk.t))
	if f := m.Game().Snapshot().Frames; f != 0 {
		t.Errorf("Frames = %d, expected early tick dropped", f)
	}

	clk.Advance(15 * time.Millisecond)
	m, _ = update(t, m, TickMsg(clk.t))
	if f := m.Game().Snapshot().Frames; f != 1 {
		t.Errorf("Frames = %d, expected one processed frame", f)
	}
}

func TestModelPauseIsConsumedOnce(t *testing.T) {
	m, clk := newTestModel()

	// Launch
	clk.Advance(600 * time.Millisecond)
	m, _ = update(t, m, runeKey("d"))
	clk.Advance(20 * time.Millisecond)
	m, _ = update(t, m, TickMsg(clk.t))

	m, _ = update(t, m, runeKey("p"))
	clk.Advance(20 * time.Millisecond)
	m, _ = update(t, m, TickMsg(clk.t))
	if m.Game().Phase().Kind() != game.PhasePaused {
		t.Fatalf("Phase = %s, expected paused", m.Game().Phase())
	}

	// No new press: stays paused
	clk.Advance(20 * time.Millisecond)
	m, _ = update(t, m, TickMsg(clk.t))
	if m.Game().Phase().Kind() != game.PhasePaused {
		t.Errorf("Phase = %s, expected still paused", m.Game().Phase())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel()

	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 12})

	if m.screen.Width() != 100 || m.screen.Height() != 11 {
		t.Errorf("screen = %dx%d, expected 100x11", m.screen.Width(), m.screen.Height())
	}
	view := m.View()
	if !strings.Contains(view, "quit") {
		t.Error("View should include the help line")
	}
}

func TestModelHoldWindowFromConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Input.HoldWindowMS = 700
	m, clk := newTestModelWith(cfg, ModelOptions{})

	m, _ = update(t, m, runeKey("d"))
	clk.Advance(650 * time.Millisecond)

	in := core.NewInputFrame()
	m.held.Apply(&in, clk.t)
	if !in.Has(core.ActionRight) {
		t.Error("right should still be held inside the configured window")
	}
}

func TestModelDefaultHoldOutlastsAutorepeatDelay(t *testing.T) {
	m, clk := newTestModel()

	// Terminals typically start repeating after about 500ms
	m, _ = update(t, m, runeKey("a"))
	clk.Advance(500 * time.Millisecond)

	in := core.NewInputFrame()
	m.held.Apply(&in, clk.t)
	if !in.Has(core.ActionLeft) {
		t.Error("left should stay held until the first autorepeat arrives")
	}
}

func TestModelBlurReleasesHeldKeys(t *testing.T) {
	m, clk := newTestModel()

	m, _ = update(t, m, runeKey("d"))
	m, _ = update(t, m, tea.BlurMsg{})

	in := core.NewInputFrame()
	m.held.Apply(&in, clk.t)
	if in.Has(core.ActionRight) {
		t.Error("blur should release held directions")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	m, _ := newTestModelWith(defaultConfig(), ModelOptions{ScreenshotDir: dir})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("screenshot should not schedule a command")
	}
	if m.quitting {
		t.Error("screenshot should not quit")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d screenshots, expected 1", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "brickbreaker_") || !strings.HasSuffix(name, ".txt") {
		t.Errorf("unexpected screenshot name %q", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != m.screen.String() {
		t.Error("screenshot should hold the plain screen text")
	}
	if strings.Contains(string(data), "\x1b[") {
		t.Error("screenshot should not contain escape sequences")
	}
}

func TestModelViewUsesSessionRenderer(t *testing.T) {
	m, _ := newTestModelWith(defaultConfig(), ModelOptions{
		Renderer: rendererWithProfile(termenv.TrueColor),
	})
	if !strings.Contains(m.View(), "\x1b[38;2;") {
		t.Error("view should be styled for the session's color profile")
	}
}
