package game

import (
	"slices"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

// SpeedRules are the permanent speed increments applied on each contact.
// They last for the life of the ball.
type SpeedRules struct {
	Wall   float64
	Paddle float64
	Brick  float64
	Max    float64 // 0 = uncapped
}

// NewSpeedRules extracts the speed rules from cfg.
func NewSpeedRules(cfg config.BreakerConfig) SpeedRules {
	return SpeedRules{
		Wall:   cfg.Ball.WallSpeedUp,
		Paddle: cfg.Ball.PaddleSpeedUp,
		Brick:  cfg.Ball.BrickSpeedUp,
		Max:    cfg.Ball.MaxSpeed,
	}
}

// accelerate adds amount to the ball speed, honoring the cap if set.
func (r SpeedRules) accelerate(b *Ball, amount float64) {
	b.Speed += amount
	if r.Max > 0 && b.Speed > r.Max {
		b.Speed = max(r.Max, b.Speed-amount)
	}
}

// Contacts reports what the ball touched during one resolver pass.
type Contacts struct {
	Walls     int  // Number of walls hit (top, left, right)
	Paddle    bool // Contact with the paddle began this frame
	Brick     int  // Index of the brick hit, -1 if none
	Destroyed int  // Bricks removed after the scan
}

// Resolve applies wall, paddle and brick collisions to ball for one frame.
// Checks run in that order and are independent of each other. At most one
// brick is hit per frame. Dead bricks are removed from the returned slice,
// which keeps the relative order of survivors and reuses bricks' storage.
func Resolve(ball *Ball, paddle Paddle, bricks []Brick, l Layout, rules SpeedRules) ([]Brick, Contacts) {
	c := Contacts{Brick: -1}

	// Walls
	if ball.Y <= 0 {
		ball.Dir.DY = 1
		rules.accelerate(ball, rules.Wall)
		c.Walls++
	}
	if ball.X <= l.BallRadius {
		ball.Dir.DX = 1
		rules.accelerate(ball, rules.Wall)
		c.Walls++
	}
	if ball.X >= l.Width-l.BallRadius {
		ball.Dir.DX = -1
		rules.accelerate(ball, rules.Wall)
		c.Walls++
	}

	// Paddle, edge-triggered
	box := l.BallBox(*ball)
	touching := box.Overlaps(l.PaddleBox(paddle))
	if touching && !ball.CollidingWithPaddle {
		ball.Dir.DY = -ball.Dir.DY
		rules.accelerate(ball, rules.Paddle)
		c.Paddle = true
	}
	ball.CollidingWithPaddle = touching

	// Bricks, first hit only
	for i := range bricks {
		overlap := box.Intersection(l.BrickBox(bricks[i]))
		if overlap.Area() <= 0 {
			continue
		}
		bricks[i].Health--
		rules.accelerate(ball, rules.Brick)
		switch {
		case overlap.W > overlap.H:
			ball.Dir.DY = -ball.Dir.DY
		case overlap.W < overlap.H:
			ball.Dir.DX = -ball.Dir.DX
		default: // corner
			ball.Dir.DX = -ball.Dir.DX
			ball.Dir.DY = -ball.Dir.DY
		}
		c.Brick = i
		break
	}

	before := len(bricks)
	bricks = slices.DeleteFunc(bricks, func(b Brick) bool { return b.Health <= 0 })
	c.Destroyed = before - len(bricks)

	return bricks, c
}
