package imui

// Renderer draws the positioned tree. Calls arrive in depth-first order
// after layout is complete.
type Renderer interface {
	// DrawText draws a single line with its top-left corner at (x, y).
	DrawText(font FontID, text string, size, x, y int, c Color)

	// DrawRect fills r. roundness is the corner radius as a fraction of
	// half the shorter side: 0 for square corners, 1 for fully round ends.
	DrawRect(r Rect, c Color, roundness float32)
}

// OutlineDrawer is an optional Renderer capability used for debug
// outlines.
type OutlineDrawer interface {
	DrawRectOutline(r Rect, c Color, thickness int)
}

// Scissor is an optional Renderer capability that restricts drawing to a
// rectangle. The layout engine never calls it; hosts may use it around
// their own drawing.
type Scissor interface {
	BeginScissor(r Rect)
	EndScissor()
}

// Backend measures text while the tree is built and draws it after layout.
type Backend interface {
	TextMeasurer
	Renderer
}
