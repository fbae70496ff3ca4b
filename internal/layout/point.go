package layout

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y int
}

// Get returns the coordinate on the given axis.
func (p Point) Get(axis Axis) int {
	if axis == AxisX {
		return p.X
	}
	return p.Y
}

// Set stores v as the coordinate on the given axis.
func (p *Point) Set(axis Axis, v int) {
	if axis == AxisX {
		p.X = v
	} else {
		p.Y = v
	}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}
