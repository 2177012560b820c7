// Package game implements the brick breaker simulation: the entity model,
// the phase state machine, the collision resolver and the per-frame update.
// It is pure logic; frontends feed it input snapshots and wall-clock time
// and draw it through a core.Surface.
package game

import (
	"math"
	"time"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// diagonal converts the ±1 direction components into a unit vector.
var diagonal = 1 / math.Sqrt2

// Game is the whole simulation aggregate. Ball, paddle and bricks exist
// only inside it; a new game replaces the entire value.
type Game struct {
	cfg    config.BreakerConfig
	layout Layout
	rules  SpeedRules

	ball   Ball
	paddle Paddle
	bricks []Brick // Row-major grid order, survivors keep their order
	lives  int
	phase  Phase

	frames uint64  // Processed updates since the game started
	events []Event // Drained by Step
}

// StepResult is returned by Step after each processed frame.
type StepResult struct {
	Phase  Phase
	Lives  int
	Bricks int // Bricks remaining
	Events []Event
}

// New creates a game in the grace phase starting at now.
func New(cfg config.BreakerConfig, now time.Time) *Game {
	l := NewLayout(cfg)
	return &Game{
		cfg:    cfg,
		layout: l,
		rules:  NewSpeedRules(cfg),
		ball:   NewBall(l, cfg.Ball.BaseSpeed),
		paddle: NewPaddle(l),
		bricks: NewBricks(l, cfg.Gameplay.BrickHealth),
		lives:  cfg.Gameplay.Lives,
		phase:  InitialBreak(now),
	}
}

// Step runs one frame: input handling followed by the physics update.
func (g *Game) Step(in core.InputFrame, now time.Time, dt time.Duration) StepResult {
	g.HandleInput(in, now)
	g.Update(dt, now)

	res := StepResult{
		Phase:  g.phase,
		Lives:  g.lives,
		Bricks: len(g.bricks),
		Events: g.events,
	}
	g.events = nil
	return res
}

// HandleInput applies one input snapshot to the phase machine and paddle.
func (g *Game) HandleInput(in core.InputFrame, now time.Time) {
	g.paddle.Direction = 0

	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		g.tryLaunch(-1, now)
		g.paddle.Direction = -1
	case right && !left:
		g.tryLaunch(1, now)
		g.paddle.Direction = 1
	}

	if in.Has(core.ActionPause) {
		switch g.phase.Kind() {
		case PhaseRunning:
			g.setPhase(Paused)
		case PhasePaused:
			g.setPhase(Running)
		}
	}

	if in.Has(core.ActionConfirm) && g.phase.Terminal() {
		g.reset(now)
	}
}

// tryLaunch starts play in direction dx once the grace period has elapsed.
func (g *Game) tryLaunch(dx int, now time.Time) {
	start, ok := g.phase.BreakStart()
	if !ok || now.Sub(start) <= g.cfg.Gameplay.GracePeriod() {
		return
	}
	g.ball.Dir.DX = dx
	g.setPhase(Running)
}

// reset replaces the whole aggregate with a fresh game.
func (g *Game) reset(now time.Time) {
	events := g.events
	*g = *New(g.cfg, now)
	g.events = append(events, Event{Type: EventNewGame, Lives: g.lives, Speed: g.ball.Speed})
}

// Update advances the simulation by dt. The bottom-exit check always runs;
// everything else only while the phase is Running.
func (g *Game) Update(dt time.Duration, now time.Time) {
	g.frames++
	g.checkBottomExit(now)

	if g.phase.Kind() != PhaseRunning {
		return
	}
	secs := dt.Seconds()

	// Paddle
	g.paddle.X += float64(g.paddle.Direction) * g.cfg.Paddle.Speed * secs
	g.paddle.X = core.ClampF(g.paddle.X, 0, g.layout.MaxPaddleX())

	// Collisions
	var c Contacts
	g.bricks, c = Resolve(&g.ball, g.paddle, g.bricks, g.layout, g.rules)
	g.report(c)
	if len(g.bricks) == 0 {
		g.setPhase(Winning)
	}

	// Ball
	step := g.ball.Speed * diagonal * secs
	g.ball.X += float64(g.ball.Dir.DX) * step
	g.ball.Y += float64(g.ball.Dir.DY) * step
}

// checkBottomExit handles a ball that left through the bottom edge.
func (g *Game) checkBottomExit(now time.Time) {
	if g.ball.Y < g.layout.Height+g.layout.BallRadius {
		return
	}
	if g.lives == 0 {
		g.setPhase(GameOver)
		return
	}
	g.lives--
	g.ball = NewBall(g.layout, g.cfg.Ball.BaseSpeed)
	g.paddle = NewPaddle(g.layout)
	g.emit(Event{Type: EventLifeLost})
	g.setPhase(InitialBreak(now))
}

// setPhase switches phase, reporting a change of kind.
func (g *Game) setPhase(p Phase) {
	changed := p.Kind() != g.phase.Kind()
	g.phase = p
	if changed {
		g.emit(Event{Type: EventPhaseChanged, Phase: p.Kind()})
	}
}

// report turns resolver contacts into events.
func (g *Game) report(c Contacts) {
	if c.Walls > 0 || c.Paddle {
		g.emit(Event{Type: EventBounce})
	}
	if c.Brick >= 0 {
		g.emit(Event{Type: EventBrickHit})
	}
	for range c.Destroyed {
		g.emit(Event{Type: EventBrickDestroyed})
	}
}

// emit records an event, stamping the current lives and speed.
func (g *Game) emit(e Event) {
	e.Lives = g.lives
	e.Speed = g.ball.Speed
	g.events = append(g.events, e)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Lives returns the remaining spare lives.
func (g *Game) Lives() int {
	return g.lives
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle {
	return g.paddle
}

// Bricks returns a copy of the surviving bricks in grid order.
func (g *Game) Bricks() []Brick {
	out := make([]Brick, len(g.bricks))
	copy(out, g.bricks)
	return out
}

// Layout returns the world geometry.
func (g *Game) Layout() Layout {
	return g.layout
}

// Config returns the configuration the game was built from.
func (g *Game) Config() config.BreakerConfig {
	return g.cfg
}
