//go:build !ebiten

package window

import (
	"context"

	"github.com/vovakirdan/brickbreaker/internal/registry"
)

// run always reports that the GUI build tag is missing.
func run(context.Context, registry.Options) error {
	return ErrNotBuilt
}
