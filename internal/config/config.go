// Package config provides YAML-based configuration loading and difficulty
// presets for the brick breaker.
package config

import (
	"fmt"
	"time"
)

// MaxBrickHealth is the highest brick health. Health doubles as the index
// into the 6-entry brick palette, so it can never exceed this value.
const MaxBrickHealth = 5

// BreakerConfig contains all tunable parameters of the game.
type BreakerConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Input    InputConfig    `yaml:"input"`
}

// WindowConfig defines the playfield (world) size and frame rate.
type WindowConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Title  string  `yaml:"title"`
	FPS    int     `yaml:"fps"`
}

// BallConfig defines ball size and speed rules. Speeds are pixels per second.
type BallConfig struct {
	Radius        float64 `yaml:"radius"`
	BaseSpeed     float64 `yaml:"base_speed"`
	MaxSpeed      float64 `yaml:"max_speed"` // 0 = uncapped
	WallSpeedUp   float64 `yaml:"wall_speed_up"`
	PaddleSpeedUp float64 `yaml:"paddle_speed_up"`
	BrickSpeedUp  float64 `yaml:"brick_speed_up"`
}

// PaddleConfig defines paddle size, placement and speed.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomMargin float64 `yaml:"bottom_margin"` // Distance from the paddle top to the window bottom
	Speed        float64 `yaml:"speed"`
}

// GameplayConfig defines lives, the respawn grace period and brick toughness.
type GameplayConfig struct {
	Lives         int `yaml:"lives"`
	GracePeriodMS int `yaml:"grace_period_ms"`
	BrickHealth   int `yaml:"brick_health"`
}

// InputConfig tunes keyboard handling in frontends that only see key presses.
type InputConfig struct {
	// HoldWindowMS is how long a direction key counts as held after its
	// last press. It should exceed the terminal's autorepeat delay, or a
	// held key stalls until repeating starts.
	HoldWindowMS int `yaml:"hold_window_ms"`
}

// HoldWindow returns the hold window as a duration.
func (i InputConfig) HoldWindow() time.Duration {
	return time.Duration(i.HoldWindowMS) * time.Millisecond
}

// GracePeriod returns the respawn grace period as a duration.
func (g GameplayConfig) GracePeriod() time.Duration {
	return time.Duration(g.GracePeriodMS) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. An empty string means
// no preset and returns "" with no error.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyPreset(cfg *BreakerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Ball.BaseSpeed = 400
		cfg.Paddle.Speed = 800
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Ball.BaseSpeed = 600
		cfg.Gameplay.BrickHealth = 2
	}
}
