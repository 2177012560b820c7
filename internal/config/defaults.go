package config

import (
	_ "embed"
)

//go:embed defaults/breaker.yaml
var defaultBreakerYAML []byte

// DefaultBreakerConfig returns the built-in configuration.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Pong",
			FPS:    60,
		},
		Ball: BallConfig{
			Radius:        16,
			BaseSpeed:     500,
			MaxSpeed:      0,
			WallSpeedUp:   2,
			PaddleSpeedUp: 2,
			BrickSpeedUp:  4,
		},
		Paddle: PaddleConfig{
			Width:        8 * 16,
			Height:       16,
			BottomMargin: 16 * 5,
			Speed:        700,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			GracePeriodMS: 500,
			BrickHealth:   1,
		},
		Input: InputConfig{
			HoldWindowMS: 550,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakerYAML
}
