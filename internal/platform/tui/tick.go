// Package tui runs the brick breaker in a terminal through Bubble Tea,
// locally or over SSH via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ticksPerFrame is how many ticks are scheduled per target frame. The
// frame gate drops the early ones, so a higher value only tightens timing.
const ticksPerFrame = 4

// TickMsg is sent to trigger a frame check.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
