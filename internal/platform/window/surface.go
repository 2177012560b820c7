//go:build ebiten

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

var face = basicfont.Face7x13

// imageSurface draws onto an Ebiten image in world pixels.
type imageSurface struct {
	dst *ebiten.Image
}

func newImageSurface(dst *ebiten.Image) *imageSurface {
	return &imageSurface{dst: dst}
}

func (s *imageSurface) Clear(c core.Color) {
	s.dst.Fill(rgba(c))
}

func (s *imageSurface) FillCircle(cx, cy int, radius float64, c core.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(radius), rgba(c), true)
}

// GradientRect draws one horizontal line per pixel row.
func (s *imageSurface) GradientRect(x, y, w, h int, top, bottom core.Color) {
	for i := range h {
		t := 0.0
		if h > 1 {
			t = float64(i) / float64(h-1)
		}
		vector.DrawFilledRect(s.dst, float32(x), float32(y+i), float32(w), 1, rgba(top.Lerp(bottom, t)), false)
	}
}

func (s *imageSurface) MeasureText(str string, size int) int {
	return int(float64(text.BoundString(face, str).Dx()) * textScale(size))
}

func (s *imageSurface) DrawText(str string, x, y, size int, c core.Color) {
	scale := textScale(size)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	// text draws from the baseline
	op.GeoM.Translate(float64(x), float64(y)+float64(face.Ascent)*scale)
	op.ColorScale.ScaleWithColor(rgba(c))
	text.DrawWithOptions(s.dst, str, face, op)
}
