package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/registry"
)

// Name is the frontend's registry name.
const Name = "tui"

func init() {
	registry.Register(Name, func() registry.Frontend { return Frontend{} })
}

// Frontend plays in the local terminal.
type Frontend struct{}

// Name implements registry.Frontend.
func (Frontend) Name() string { return Name }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run implements registry.Frontend.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	m := NewModel(opts.Config, opts.Runtime, ModelOptions{
		Logger:        opts.Logger,
		ScreenshotDir: screenshotDir(),
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// screenshotDir returns ~/.brickbreaker/screenshots, or "" when there is
// no home directory.
func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickbreaker", "screenshots")
}
