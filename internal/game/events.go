package game

import "fmt"

// EventType identifies something notable that happened during a frame.
type EventType int

const (
	EventPhaseChanged   EventType = iota
	EventBounce                   // Ball reflected off a wall or the paddle
	EventBrickHit                 // Ball hit a brick
	EventBrickDestroyed           // A brick reached zero health and was removed
	EventLifeLost                 // Ball left through the bottom with lives remaining
	EventNewGame                  // The whole game was replaced by a fresh one
)

// String returns a short name for the event type.
func (t EventType) String() string {
	switch t {
	case EventPhaseChanged:
		return "phase_changed"
	case EventBounce:
		return "bounce"
	case EventBrickHit:
		return "brick_hit"
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventLifeLost:
		return "life_lost"
	case EventNewGame:
		return "new_game"
	default:
		return "unknown"
	}
}

// Event is reported by Step so frontends can log or react without
// reaching into game state.
type Event struct {
	Type  EventType
	Phase PhaseKind // New phase for EventPhaseChanged
	Lives int       // Lives remaining after the event
	Speed float64   // Ball speed after the event
}

// String implements fmt.Stringer.
func (e Event) String() string {
	switch e.Type {
	case EventPhaseChanged:
		return fmt.Sprintf("%s(%s)", e.Type, e.Phase)
	case EventLifeLost:
		return fmt.Sprintf("%s(lives=%d)", e.Type, e.Lives)
	default:
		return fmt.Sprintf("%s(speed=%.0f)", e.Type, e.Speed)
	}
}
