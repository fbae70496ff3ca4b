package layout

// FitSizing computes provisional content sizes on one axis, children before
// parents. A container accumulates its children's margin-box extents: summed
// when its direction runs along axis, maximised otherwise. The accumulated
// extent and the number of grow children are recorded on the box for the
// grow pass. Fixed boxes then take their configured size; fit and grow boxes
// take the accumulated extent.
func FitSizing(s *Store, axis Axis) {
	fit(s, Root, axis)
}

func fit(s *Store, id ID, axis Axis) {
	box := &s.boxes[id]
	along := box.Config.Direction.Axis() == axis

	filled, grow := 0, 0
	for c := box.first; c != None; c = s.boxes[c].next {
		fit(s, c, axis)

		child := &s.boxes[c]
		extent := child.Layout.Content.Extent(axis) +
			child.Config.Padding.Total(axis) +
			child.Config.Margin.Total(axis)
		if along {
			filled += extent
		} else {
			filled = max(filled, extent)
		}
		if child.Config.Sizing(axis) == SizingGrow {
			grow++
		}
	}
	box.Layout.setFit(axis, filled, grow)

	if box.Config.Sizing(axis) == SizingFixed {
		box.Layout.Content.SetExtent(axis, box.Config.Fixed(axis))
	} else {
		box.Layout.Content.SetExtent(axis, filled)
	}
}
