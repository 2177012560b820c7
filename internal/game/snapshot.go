package game

import "math"

// Snapshot contains the complete game state for comparisons and debugging.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Frames uint64
	Phase  string
	Lives  int

	BallX, BallY        float64
	BallSpeed           float64
	BallDX, BallDY      int
	CollidingWithPaddle bool

	PaddleX         float64
	PaddleDirection int

	// Brick states, each brick is 3 values: X, Y, Health
	BrickData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]float64, 0, len(g.bricks)*3)
	for _, b := range g.bricks {
		brickData = append(brickData, b.X, b.Y, float64(b.Health))
	}

	return Snapshot{
		Frames:              g.frames,
		Phase:               g.phase.String(),
		Lives:               g.lives,
		BallX:               g.ball.X,
		BallY:               g.ball.Y,
		BallSpeed:           g.ball.Speed,
		BallDX:              g.ball.Dir.DX,
		BallDY:              g.ball.Dir.DY,
		CollidingWithPaddle: g.ball.CollidingWithPaddle,
		PaddleX:             g.paddle.X,
		PaddleDirection:     g.paddle.Direction,
		BrickData:           brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frames
	for _, c := range snap.Phase {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallSpeed)
	h = h*31 + uint64(snap.BallDX+1) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDY+1) //#nosec G115 -- hash computation
	if snap.CollidingWithPaddle {
		h = h*31 + 1
	}
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + uint64(snap.PaddleDirection+1) //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
