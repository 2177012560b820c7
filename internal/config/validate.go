package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for values the simulation cannot run with.
// Brick health is clamped into [1, MaxBrickHealth] rather than rejected.
func (c *BreakerConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}

	positive("window.width", c.Window.Width)
	positive("window.height", c.Window.Height)
	positive("window.fps", float64(c.Window.FPS))
	positive("ball.radius", c.Ball.Radius)
	positive("ball.base_speed", c.Ball.BaseSpeed)
	nonNegative("ball.max_speed", c.Ball.MaxSpeed)
	nonNegative("ball.wall_speed_up", c.Ball.WallSpeedUp)
	nonNegative("ball.paddle_speed_up", c.Ball.PaddleSpeedUp)
	nonNegative("ball.brick_speed_up", c.Ball.BrickSpeedUp)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.bottom_margin", c.Paddle.BottomMargin)
	nonNegative("paddle.speed", c.Paddle.Speed)
	nonNegative("gameplay.lives", float64(c.Gameplay.Lives))
	nonNegative("gameplay.grace_period_ms", float64(c.Gameplay.GracePeriodMS))
	positive("input.hold_window_ms", float64(c.Input.HoldWindowMS))

	if c.Paddle.Width >= c.Window.Width {
		errs = append(errs, fmt.Errorf("paddle.width %v must be narrower than window.width %v", c.Paddle.Width, c.Window.Width))
	}
	if c.Ball.MaxSpeed > 0 && c.Ball.MaxSpeed < c.Ball.BaseSpeed {
		errs = append(errs, fmt.Errorf("ball.max_speed %v is below ball.base_speed %v", c.Ball.MaxSpeed, c.Ball.BaseSpeed))
	}

	c.Gameplay.BrickHealth = max(1, min(c.Gameplay.BrickHealth, MaxBrickHealth))

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
