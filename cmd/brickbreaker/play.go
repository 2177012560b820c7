package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
	"github.com/vovakirdan/brickbreaker/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Play a game",
	Long: `Start a game on the given frontend (default: tui).

Controls:
  Left/A, Right/D  - Move paddle; launch the ball after a respawn
  P/Esc            - Pause
  Enter/R          - New game (after winning or game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - More lives, slower ball, faster paddle
  normal  - Configuration as loaded
  hard    - Fewer lives, faster ball, sturdier bricks

Examples:
  brickbreaker play
  brickbreaker play window
  brickbreaker play --difficulty easy
  brickbreaker play --config ./my-breaker.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	name := tui.Name
	if len(args) > 0 {
		name = args[0]
	}

	if !registry.Exists(name) {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'brickbreaker frontends' to see available frontends.")
		os.Exit(1)
	}

	frontend, err := registry.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for text frontends
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("starting", "frontend", name, "width", rt.ScreenW, "height", rt.ScreenH)
	runErr := frontend.Run(ctx, registry.Options{
		Config:  cfg,
		Runtime: rt,
		Logger:  logger,
	})
	if runErr != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
