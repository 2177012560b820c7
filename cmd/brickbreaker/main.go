// brickbreaker is a brick breaker game for the terminal, SSH and the desktop.
//
// Usage:
//
//	brickbreaker play [frontend]  - Play (default frontend: tui)
//	brickbreaker serve            - Start SSH server for remote play
//	brickbreaker frontends        - List available frontends
//	brickbreaker config           - Print the default or resolved configuration
//
// Global flags:
//
//	--config <path>       - Path to a YAML config file
//	--difficulty <preset> - Difficulty preset: easy, normal, hard
//	--verbose             - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"

	// Import frontends to register them
	_ "github.com/vovakirdan/brickbreaker/internal/platform/tui"
	_ "github.com/vovakirdan/brickbreaker/internal/platform/window"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

// logger is configured from the global flags before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "brickbreaker",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - Break bricks in your terminal",
	Long: `Brick Breaker is a classic paddle-and-ball game. Bounce the ball off
your paddle to clear the wall of bricks before you run out of lives.

Available commands:
  play       - Play in the terminal or a desktop window
  serve      - Start SSH server for remote play
  frontends  - Show all available frontends
  config     - Print configuration

Examples:
  brickbreaker play
  brickbreaker play window
  brickbreaker play --difficulty hard
  brickbreaker serve --ssh :2222
  brickbreaker config --resolved --config ./my-breaker.yaml`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from the global flags.
func loadConfig() (config.BreakerConfig, error) {
	return resolveConfig(flagConfig, flagDifficulty, logger)
}

// resolveConfig loads the configuration and applies the difficulty preset.
// A file named explicitly must load cleanly. A broken file found in the
// default locations is reported and replaced by the defaults.
func resolveConfig(path, difficulty string, logger *log.Logger) (config.BreakerConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.BreakerConfig{}, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		if path != "" {
			return config.BreakerConfig{}, err
		}
		logger.Warn("using default configuration", "error", err)
		cfg = config.DefaultBreakerConfig()
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.BreakerConfig{}, err
	}

	logger.Debug("configuration loaded",
		"difficulty", preset,
		"lives", cfg.Gameplay.Lives,
		"speed", cfg.Ball.BaseSpeed,
	)
	return cfg, nil
}
