//go:build ebiten

package window

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/game"
	"github.com/vovakirdan/brickbreaker/internal/registry"
)

// Key bindings
var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	pauseKeys   = []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}
	confirmKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyQ}
)

// runner adapts a game to the ebiten.Game interface.
type runner struct {
	ctx     context.Context
	game    *game.Game
	gate    *core.FrameGate
	pending core.InputFrame // Pause/Confirm presses since the last frame
	logger  *log.Logger
}

func run(ctx context.Context, opts registry.Options) error {
	cfg := opts.Config
	now := time.Now()

	r := &runner{
		ctx:     ctx,
		game:    game.New(cfg, now),
		gate:    core.NewFrameGate(cfg.Window.FPS, now),
		pending: core.NewInputFrame(),
		logger:  opts.Logger,
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(int(cfg.Window.Width), int(cfg.Window.Height))
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(r); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Update collects input and runs a frame when the gate allows it.
func (r *runner) Update() error {
	if r.ctx.Err() != nil || anyJustPressed(quitKeys) {
		return ebiten.Termination
	}
	if anyJustPressed(pauseKeys) {
		r.pending.Set(core.ActionPause)
	}
	if anyJustPressed(confirmKeys) {
		r.pending.Set(core.ActionConfirm)
	}

	now := time.Now()
	dt, ok := r.gate.Ready(now)
	if !ok {
		return nil
	}

	in := r.pending.Clone()
	r.pending.Clear()
	if anyPressed(leftKeys) {
		in.Set(core.ActionLeft)
	}
	if anyPressed(rightKeys) {
		in.Set(core.ActionRight)
	}

	res := r.game.Step(in, now, dt)
	if r.logger != nil {
		for _, e := range res.Events {
			r.logger.Debug("game event", "event", e.String(), "lives", e.Lives)
		}
	}
	return nil
}

// Draw renders the game onto the window.
func (r *runner) Draw(screen *ebiten.Image) {
	r.game.Render(newImageSurface(screen))
}

// Layout keeps the logical screen at world size.
func (r *runner) Layout(int, int) (int, int) {
	l := r.game.Layout()
	return int(l.Width), int(l.Height)
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
