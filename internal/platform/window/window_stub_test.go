//go:build !ebiten

package window

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/registry"
)

func TestRunWithoutTag(t *testing.T) {
	err := Frontend{}.Run(context.Background(), registry.Options{})
	if !errors.Is(err, ErrNotBuilt) {
		t.Errorf("err = %v, expected ErrNotBuilt", err)
	}
}
