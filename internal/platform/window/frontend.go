// Package window runs the brick breaker in a desktop window through Ebiten.
// The Ebiten implementation is only compiled with the 'ebiten' build tag;
// without it the frontend is still registered but refuses to start.
package window

import (
	"context"
	"errors"
	"image/color"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/registry"
)

// Name is the frontend's registry name.
const Name = "window"

// ErrNotBuilt is returned by Run in builds without the 'ebiten' tag.
var ErrNotBuilt = errors.New("window: frontend requires building with the 'ebiten' tag")

// glyphHeight is the pixel height of the bitmap font text is drawn with.
const glyphHeight = 13

func init() {
	registry.Register(Name, func() registry.Frontend { return Frontend{} })
}

// Frontend plays in a desktop window sized to the configured world.
type Frontend struct{}

// Name implements registry.Frontend.
func (Frontend) Name() string { return Name }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Desktop window (Ebiten)" }

// Run implements registry.Frontend.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	return run(ctx, opts)
}

// rgba converts a core color to an opaque image color.
func rgba(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// textScale returns the factor that renders the bitmap font at size pixels.
func textScale(size int) float64 {
	if size <= 0 {
		return 1
	}
	return float64(size) / glyphHeight
}
