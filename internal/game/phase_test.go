package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

func TestPhaseAccessors(t *testing.T) {
	tests := []struct {
		phase    Phase
		kind     PhaseKind
		name     string
		terminal bool
		hasStart bool
	}{
		{InitialBreak(t0), PhaseInitialBreak, "initial_break", false, true},
		{Running, PhaseRunning, "running", false, false},
		{Paused, PhasePaused, "paused", false, false},
		{Winning, PhaseWinning, "winning", true, false},
		{GameOver, PhaseGameOver, "game_over", true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.phase.Kind() != tc.kind {
				t.Errorf("Kind = %v, expected %v", tc.phase.Kind(), tc.kind)
			}
			if tc.phase.String() != tc.name {
				t.Errorf("String = %q, expected %q", tc.phase.String(), tc.name)
			}
			if tc.phase.Terminal() != tc.terminal {
				t.Errorf("Terminal = %v, expected %v", tc.phase.Terminal(), tc.terminal)
			}
			if _, ok := tc.phase.BreakStart(); ok != tc.hasStart {
				t.Errorf("BreakStart ok = %v, expected %v", ok, tc.hasStart)
			}
		})
	}
}

func TestLaunchWaitsForGracePeriod(t *testing.T) {
	tests := []struct {
		name      string
		after     time.Duration
		action    core.Action
		wantPhase PhaseKind
		wantDX    int
	}{
		{"too early", 200 * time.Millisecond, core.ActionLeft, PhaseInitialBreak, 1},
		{"exactly at grace", 500 * time.Millisecond, core.ActionLeft, PhaseInitialBreak, 1},
		{"left after grace", 600 * time.Millisecond, core.ActionLeft, PhaseRunning, -1},
		{"right after grace", 600 * time.Millisecond, core.ActionRight, PhaseRunning, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame()
			g.HandleInput(input(tc.action), t0.Add(tc.after))

			if g.Phase().Kind() != tc.wantPhase {
				t.Errorf("Phase = %s, expected %s", g.Phase(), tc.wantPhase)
			}
			if g.Ball().Dir.DX != tc.wantDX {
				t.Errorf("DX = %d, expected %d", g.Ball().Dir.DX, tc.wantDX)
			}
			if g.Ball().Dir.DY != -1 {
				t.Errorf("DY = %d, expected -1", g.Ball().Dir.DY)
			}
		})
	}
}

func TestPaddleMovesDuringGrace(t *testing.T) {
	g := newTestGame()
	g.HandleInput(input(core.ActionLeft), t0.Add(200*time.Millisecond))

	if g.Paddle().Direction != -1 {
		t.Errorf("paddle Direction = %d, expected -1", g.Paddle().Direction)
	}
}

func TestOpposingDirectionsCancel(t *testing.T) {
	g := newTestGame()
	g.HandleInput(input(core.ActionLeft, core.ActionRight), t0.Add(time.Second))

	if g.Phase().Kind() != PhaseInitialBreak {
		t.Errorf("Phase = %s, expected no launch", g.Phase())
	}
	if g.Paddle().Direction != 0 {
		t.Errorf("paddle Direction = %d, expected 0", g.Paddle().Direction)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame()
	g.phase = Running

	g.HandleInput(input(core.ActionPause), t0)
	if g.Phase().Kind() != PhasePaused {
		t.Fatalf("Phase = %s, expected paused", g.Phase())
	}

	g.HandleInput(input(core.ActionPause), t0)
	if g.Phase().Kind() != PhaseRunning {
		t.Fatalf("Phase = %s, expected running", g.Phase())
	}
}

func TestPausedIgnoresMovement(t *testing.T) {
	g := newTestGame()
	g.phase = Paused
	paddle, ball := g.Paddle(), g.Ball()

	g.Step(input(core.ActionRight), t0.Add(time.Second), 100*time.Millisecond)

	if g.Phase().Kind() != PhasePaused {
		t.Errorf("Phase = %s, expected paused", g.Phase())
	}
	if g.Paddle().X != paddle.X || g.Ball() != ball {
		t.Error("paused game moved")
	}
}

func TestInputIgnoredByPhase(t *testing.T) {
	tests := []struct {
		name   string
		phase  Phase
		action core.Action
	}{
		{"pause during grace", InitialBreak(t0), core.ActionPause},
		{"pause after winning", Winning, core.ActionPause},
		{"pause after game over", GameOver, core.ActionPause},
		{"confirm while running", Running, core.ActionConfirm},
		{"confirm while paused", Paused, core.ActionConfirm},
		{"move after winning", Winning, core.ActionLeft},
		{"move after game over", GameOver, core.ActionRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame()
			g.phase = tc.phase

			g.HandleInput(input(tc.action), t0.Add(100*time.Millisecond))

			if g.Phase() != tc.phase {
				t.Errorf("Phase = %s, expected unchanged %s", g.Phase(), tc.phase)
			}
		})
	}
}

func TestConfirmStartsNewGame(t *testing.T) {
	for _, p := range []Phase{Winning, GameOver} {
		t.Run(p.String(), func(t *testing.T) {
			g := newTestGame()
			g.phase = p
			g.lives = 0
			now := t0.Add(time.Minute)

			g.HandleInput(input(core.ActionConfirm), now)

			start, ok := g.Phase().BreakStart()
			if !ok || !start.Equal(now) {
				t.Errorf("Phase = %s since %v, expected initial_break at %v", g.Phase(), start, now)
			}
			if g.Lives() != 3 {
				t.Errorf("Lives = %d, expected 3", g.Lives())
			}
		})
	}
}

func TestPhaseChangeEvents(t *testing.T) {
	g := newTestGame()
	g.HandleInput(input(core.ActionRight), t0.Add(time.Second))
	g.HandleInput(input(core.ActionPause), t0.Add(time.Second))

	var kinds []PhaseKind
	for _, e := range g.events {
		if e.Type == EventPhaseChanged {
			kinds = append(kinds, e.Phase)
		}
	}
	if len(kinds) != 2 || kinds[0] != PhaseRunning || kinds[1] != PhasePaused {
		t.Errorf("phase events = %v, expected [running paused]", kinds)
	}
}
