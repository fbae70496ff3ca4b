package layout

// Layout holds the computed geometry of a box. It is zeroed when the box is
// opened and written only by the layout passes.
type Layout struct {
	// Content is where children or text are placed.
	Content Rect

	// Padding is Content grown by the box's padding. Use for hit testing
	// and backgrounds.
	Padding Rect

	// Margin is Padding grown by the box's margin; it is the space the box
	// occupies in its parent's flow.
	Margin Rect

	// Cursor is the running placement cursor for the box's children.
	Cursor Point

	// GrowX and GrowY count direct children that grow on each axis.
	GrowX, GrowY int

	// FilledX and FilledY hold the extent accumulated from the children's
	// margin boxes during fit sizing.
	FilledX, FilledY int
}

// Grow returns the number of grow children counted on the given axis.
func (l *Layout) Grow(axis Axis) int {
	if axis == AxisX {
		return l.GrowX
	}
	return l.GrowY
}

// Filled returns the children's accumulated extent on the given axis.
func (l *Layout) Filled(axis Axis) int {
	if axis == AxisX {
		return l.FilledX
	}
	return l.FilledY
}

func (l *Layout) setFit(axis Axis, filled, grow int) {
	if axis == AxisX {
		l.FilledX, l.GrowX = filled, grow
	} else {
		l.FilledY, l.GrowY = filled, grow
	}
}
