package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// halfBlock splits a cell into two vertical pixels: the glyph is drawn
// in the top pixel's color over the bottom pixel's background.
const halfBlock = '▀'

// CellSurface draws world-pixel shapes onto a terminal Screen. Each cell
// holds two square-ish pixels stacked vertically, which roughly doubles
// the vertical resolution of a plain character grid.
type CellSurface struct {
	screen *core.Screen
	worldW float64
	worldH float64
}

// NewCellSurface creates a surface that maps a worldW by worldH world
// onto screen.
func NewCellSurface(screen *core.Screen, worldW, worldH float64) *CellSurface {
	return &CellSurface{screen: screen, worldW: worldW, worldH: worldH}
}

// pixelSize returns the world size of one half-cell pixel.
func (s *CellSurface) pixelSize() (pw, ph float64) {
	cols := max(s.screen.Width(), 1)
	rows := max(s.screen.Height()*2, 1)
	return s.worldW / float64(cols), s.worldH / float64(rows)
}

// pixel returns the color of the half-cell pixel at (px, py).
func (s *CellSurface) pixel(px, py int) core.Color {
	c := s.screen.Get(px, py/2)
	if c.Rune == halfBlock && py%2 == 0 {
		return c.FG
	}
	return c.BG
}

// setPixel colors the half-cell pixel at (px, py).
func (s *CellSurface) setPixel(px, py int, c core.Color) {
	if px < 0 || py < 0 || px >= s.screen.Width() || py >= s.screen.Height()*2 {
		return
	}
	top, bottom := s.pixel(px, py&^1), s.pixel(px, py|1)
	if py%2 == 0 {
		top = c
	} else {
		bottom = c
	}
	s.screen.Set(px, py/2, core.Cell{Rune: halfBlock, FG: top, BG: bottom})
}

// Clear fills the whole screen with c.
func (s *CellSurface) Clear(c core.Color) {
	s.screen.Fill(core.Cell{Rune: ' ', FG: core.ColorWhite, BG: c})
}

// FillCircle colors every pixel whose center lies inside the circle. A
// circle smaller than one pixel still colors the pixel under its center.
func (s *CellSurface) FillCircle(cx, cy int, radius float64, c core.Color) {
	pw, ph := s.pixelSize()
	x, y := float64(cx), float64(cy)

	x0, x1 := int(math.Floor((x-radius)/pw)), int(math.Ceil((x+radius)/pw))
	y0, y1 := int(math.Floor((y-radius)/ph)), int(math.Ceil((y+radius)/ph))

	drawn := false
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dx := (float64(px)+0.5)*pw - x
			dy := (float64(py)+0.5)*ph - y
			if dx*dx+dy*dy <= radius*radius {
				s.setPixel(px, py, c)
				drawn = true
			}
		}
	}
	if !drawn {
		s.setPixel(int(math.Floor(x/pw)), int(math.Floor(y/ph)), c)
	}
}

// GradientRect fills a rectangle, blending from top to bottom per pixel row.
func (s *CellSurface) GradientRect(x, y, w, h int, top, bottom core.Color) {
	pw, ph := s.pixelSize()

	x0, x1 := span(float64(x), float64(w), pw)
	y0, y1 := span(float64(y), float64(h), ph)

	rows := y1 - y0
	for i := range rows {
		t := 0.0
		if rows > 1 {
			t = float64(i) / float64(rows-1)
		}
		c := top.Lerp(bottom, t)
		for px := x0; px < x1; px++ {
			s.setPixel(px, y0+i, c)
		}
	}
}

// span converts a world interval to a half-open pixel range covering at
// least one pixel. The end is floored so that shapes separated by less
// than a pixel still leave a gap.
func span(start, length, size float64) (from, to int) {
	from = int(math.Round(start / size))
	to = int(math.Floor((start + length) / size))
	if to <= from {
		to = from + 1
	}
	return from, to
}

// MeasureText returns the world width of text. One rune takes one cell
// regardless of size.
func (s *CellSurface) MeasureText(text string, _ int) int {
	pw, _ := s.pixelSize()
	return int(float64(utf8.RuneCountInString(text)) * pw)
}

// DrawText writes text into the cell row containing y.
func (s *CellSurface) DrawText(text string, x, y, _ int, c core.Color) {
	pw, ph := s.pixelSize()
	col := int(math.Round(float64(x) / pw))
	row := int(float64(y) / (ph * 2))
	s.screen.DrawText(col, row, text, c)
}
