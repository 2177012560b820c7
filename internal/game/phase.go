package game

import "time"

// PhaseKind identifies which phase the game is in.
type PhaseKind int

const (
	PhaseInitialBreak PhaseKind = iota // Ball held above the paddle after a (re)spawn
	PhaseRunning                       // Physics active
	PhasePaused                        // Physics frozen
	PhaseWinning                       // All bricks cleared
	PhaseGameOver                      // Lives exhausted
)

// String returns a human-readable name for the phase kind.
func (k PhaseKind) String() string {
	switch k {
	case PhaseInitialBreak:
		return "initial_break"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseWinning:
		return "winning"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Phase is the game's current mode. Exactly one kind is active; only
// InitialBreak carries data (the moment the ball was spawned). Fields are
// unexported so a timestamp can never be attached to another kind.
type Phase struct {
	kind  PhaseKind
	since time.Time
}

// Unit phases.
var (
	Running  = Phase{kind: PhaseRunning}
	Paused   = Phase{kind: PhasePaused}
	Winning  = Phase{kind: PhaseWinning}
	GameOver = Phase{kind: PhaseGameOver}
)

// InitialBreak returns the grace phase that started at t.
func InitialBreak(t time.Time) Phase {
	return Phase{kind: PhaseInitialBreak, since: t}
}

// Kind returns the phase kind.
func (p Phase) Kind() PhaseKind {
	return p.kind
}

// BreakStart returns when the grace phase began. ok is false for any other phase.
func (p Phase) BreakStart() (t time.Time, ok bool) {
	if p.kind != PhaseInitialBreak {
		return time.Time{}, false
	}
	return p.since, true
}

// Terminal reports whether the phase only exits through a new game.
func (p Phase) Terminal() bool {
	return p.kind == PhaseWinning || p.kind == PhaseGameOver
}

// String implements fmt.Stringer.
func (p Phase) String() string {
	return p.kind.String()
}
