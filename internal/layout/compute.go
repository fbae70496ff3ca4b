package layout

// Compute runs the layout passes over a fully built frame: fit sizing on
// both axes, grow sizing on both axes, then positioning on both axes.
func Compute(s *Store) {
	FitSizing(s, AxisX)
	FitSizing(s, AxisY)
	GrowSizing(s, AxisX)
	GrowSizing(s, AxisY)
	Position(s, AxisX)
	Position(s, AxisY)
}
