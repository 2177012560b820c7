package game

import (
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Brick grid. The layout is fixed: 10 columns by 5 rows.
const (
	GridColumns = 10
	GridRows    = 5
	BrickHeight = 32
	BrickGap    = 5   // Spacing between bricks and from the left edge
	GridTop     = 100 // Y position of the first brick row
)

// Layout holds world geometry derived from the configuration.
type Layout struct {
	Width        float64 // World width in pixels
	Height       float64 // World height in pixels
	BallRadius   float64
	PaddleWidth  float64
	PaddleHeight float64
	PaddleY      float64 // Fixed top edge of the paddle
	BrickWidth   float64
	BrickHeight  float64
}

// NewLayout computes the layout for cfg.
func NewLayout(cfg config.BreakerConfig) Layout {
	return Layout{
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		BallRadius:   cfg.Ball.Radius,
		PaddleWidth:  cfg.Paddle.Width,
		PaddleHeight: cfg.Paddle.Height,
		PaddleY:      cfg.Window.Height - cfg.Paddle.BottomMargin,
		BrickWidth:   (cfg.Window.Width-BrickGap)/GridColumns - BrickGap,
		BrickHeight:  BrickHeight,
	}
}

// BallBox returns the ball's collision box. It is anchored at the ball
// position and one radius wide and tall.
func (l Layout) BallBox(b Ball) core.Rect {
	return core.NewRect(b.X, b.Y, l.BallRadius, l.BallRadius)
}

// PaddleBox returns the paddle's collision box.
func (l Layout) PaddleBox(p Paddle) core.Rect {
	return core.NewRect(p.X, l.PaddleY, l.PaddleWidth, l.PaddleHeight)
}

// BrickBox returns a brick's collision box.
func (l Layout) BrickBox(b Brick) core.Rect {
	return core.NewRect(b.X, b.Y, l.BrickWidth, l.BrickHeight)
}

// MaxPaddleX is the rightmost allowed paddle position.
func (l Layout) MaxPaddleX() float64 {
	return l.Width - l.PaddleWidth
}
