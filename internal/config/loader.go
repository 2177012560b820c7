package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-local config location.
const LocalPath = "configs/breaker.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.brickbreaker/config.yaml -> ./configs/breaker.yaml -> embedded default.
// Keys missing from a file keep their default values. The result is validated.
func Load(customPath string) (BreakerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		err = cfg.Validate()
		return cfg, err
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(), LocalPath} {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if err == nil {
			err = cfg.Validate()
			return cfg, err
		}
		if !errors.Is(err, os.ErrNotExist) {
			return cfg, err
		}
	}

	// Use embedded default YAML
	cfg := DefaultBreakerConfig()
	if err := yaml.Unmarshal(defaultBreakerYAML, &cfg); err != nil {
		return DefaultBreakerConfig(), nil // Fallback to hardcoded if embed fails
	}
	err := cfg.Validate()
	return cfg, err
}

// loadFile reads path on top of the built-in defaults.
func loadFile(path string) (BreakerConfig, error) {
	cfg := DefaultBreakerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickbreaker", "config.yaml")
}

// Marshal renders cfg as YAML.
func Marshal(cfg BreakerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
