package game

import (
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// PaletteSize is the number of brick color tiers. Brick health indexes the
// palette, so it is sized to cover every health value config allows.
const PaletteSize = config.MaxBrickHealth + 1

// Brick palette, indexed by health. Index 0 is never drawn since dead
// bricks are removed before rendering.
var (
	BrickHi = [PaletteSize]core.Color{
		core.RGB(0xFF, 0, 0),
		core.RGB(0xFF, 0xFF, 0),
		core.RGB(0, 0xFF, 0),
		core.RGB(0, 0xFF, 0xFF),
		core.RGB(0, 0, 0xFF),
		core.RGB(0xFF, 0, 0xFF),
	}
	BrickLo = [PaletteSize]core.Color{
		core.RGB(0x3F, 0, 0),
		core.RGB(0x3F, 0x2F, 0),
		core.RGB(0, 0x3F, 0),
		core.RGB(0, 0x3F, 0x3F),
		core.RGB(0, 0, 0x3F),
		core.RGB(0x3F, 0, 0x3F),
	}
)

// Visual settings
var (
	PaddleTop    = core.ColorRed
	PaddleBottom = core.RGB(80, 0, 0)
)

const (
	LabelSize   = 50 // Font size of the centered phase label
	LivesMargin = 5  // Offset of the lives row from the top-left corner
)

// Phase labels
const (
	LabelPaused   = "PAUSED"
	LabelWinning  = "YOU WON"
	LabelGameOver = "GAME OVER"
)

// Label returns the centered text shown for the current phase, if any.
func (g *Game) Label() (string, bool) {
	switch g.phase.Kind() {
	case PhasePaused:
		return LabelPaused, true
	case PhaseWinning:
		return LabelWinning, true
	case PhaseGameOver:
		return LabelGameOver, true
	}
	return "", false
}

// paletteIndex maps a brick's health to a palette tier.
func paletteIndex(health int) int {
	return core.Clamp(health, 0, PaletteSize-1)
}

// Render draws the current state onto dst in world pixels.
func (g *Game) Render(dst core.Surface) {
	l := g.layout
	r := l.BallRadius

	dst.Clear(core.ColorBlack)

	// Ball
	dst.FillCircle(int(g.ball.X), int(g.ball.Y), r, core.ColorWhite)

	// Paddle
	dst.GradientRect(int(g.paddle.X), int(l.PaddleY), int(l.PaddleWidth), int(l.PaddleHeight),
		PaddleTop, PaddleBottom)

	// Bricks
	for _, b := range g.bricks {
		tier := paletteIndex(b.Health)
		dst.GradientRect(int(b.X), int(b.Y), int(l.BrickWidth), int(l.BrickHeight),
			BrickHi[tier], BrickLo[tier])
	}

	// Lives
	for i := range g.lives {
		x := LivesMargin + r + float64(i)*(2*r+LivesMargin)
		dst.FillCircle(int(x), int(LivesMargin+r), r, core.ColorWhite)
	}

	// Overlay
	if label, ok := g.Label(); ok {
		width := dst.MeasureText(label, LabelSize)
		x := int(l.Width/2) - width/2
		y := int(l.Height/2) - LabelSize/2
		dst.DrawText(label, x, y, LabelSize, core.ColorYellow)
	}
}
