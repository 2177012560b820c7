package core

// Surface is the drawing target a frame is rendered onto.
// All coordinates are world pixels; implementations project them
// onto whatever they actually draw to (terminal cells, a window).
type Surface interface {
	// Clear fills the whole surface with c.
	Clear(c Color)

	// FillCircle draws a filled circle centered at (cx, cy).
	FillCircle(cx, cy int, radius float64, c Color)

	// GradientRect fills a rectangle with a vertical gradient from top to bottom.
	GradientRect(x, y, w, h int, top, bottom Color)

	// MeasureText returns the pixel width text would occupy at the given font size.
	MeasureText(text string, size int) int

	// DrawText draws text with its top-left corner at (x, y).
	DrawText(text string, x, y, size int, c Color)
}
