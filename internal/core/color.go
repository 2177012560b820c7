package core

import "fmt"

// Color is a 24-bit RGB color. Frontends translate it to their own type
// (lipgloss hex strings, color.RGBA for Ebiten).
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Predefined colors for game elements.
var (
	ColorBlack  = RGB(0, 0, 0)
	ColorWhite  = RGB(0xFF, 0xFF, 0xFF)
	ColorRed    = RGB(0xE6, 0x29, 0x37)
	ColorYellow = RGB(0xFD, 0xF9, 0x00)
)

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp blends from c to other; t is clamped to [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	t = ClampF(t, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return Color{
		R: mix(c.R, other.R),
		G: mix(c.G, other.G),
		B: mix(c.B, other.B),
	}
}
