package game

// Direction is the ball's diagonal heading. DX and DY are always +1 or -1,
// so the raw vector always has length √2.
type Direction struct {
	DX, DY int
}

// Ball is the projectile.
type Ball struct {
	X, Y  float64
	Speed float64 // Pixels per second along the diagonal
	Dir   Direction

	// CollidingWithPaddle remembers whether the ball overlapped the paddle
	// on the previous frame, so a bounce only fires when contact begins.
	CollidingWithPaddle bool
}

// NewBall returns a ball centered horizontally just above the paddle,
// heading up and to the right at base speed.
func NewBall(l Layout, baseSpeed float64) Ball {
	return Ball{
		X:     l.Width / 2,
		Y:     l.PaddleY - l.BallRadius - 1,
		Speed: baseSpeed,
		Dir:   Direction{DX: 1, DY: -1},
	}
}

// Paddle is the player's bat. Its vertical position is fixed by the layout.
type Paddle struct {
	X         float64 // Left edge
	Direction int     // -1, 0 or +1, recomputed from input every frame
}

// NewPaddle returns a centered, motionless paddle.
func NewPaddle(l Layout) Paddle {
	return Paddle{X: l.Width/2 - l.PaddleWidth/2}
}

// Brick is a destructible block. Health doubles as its palette tier.
type Brick struct {
	X, Y   float64
	Health int
}

// NewBricks lays out the fixed grid in row-major order.
func NewBricks(l Layout, health int) []Brick {
	bricks := make([]Brick, 0, GridColumns*GridRows)
	for row := range GridRows {
		for col := range GridColumns {
			bricks = append(bricks, Brick{
				X:      BrickGap + float64(col)*(l.BrickWidth+BrickGap),
				Y:      GridTop + float64(row)*(l.BrickHeight+BrickGap),
				Health: health,
			})
		}
	}
	return bricks
}
