package layout

// GrowSizing resolves grow boxes on one axis, parents before children, and
// derives every box's padding and margin extents from its content extent.
//
// Along the parent's direction, the parent's leftover space (content minus
// the extent its children filled during FitSizing) is split evenly between
// the grow children with integer division. The remainder is dropped, so grow
// children may end a few units short of the parent's content edge. Across
// the parent's direction a grow child stretches so that its margin box spans
// the parent's content box.
func GrowSizing(s *Store, axis Axis) {
	grow(s, Root, axis)
}

func grow(s *Store, id ID, axis Axis) {
	box := &s.boxes[id]
	content := box.Layout.Content.Extent(axis)

	if box.Config.Sizing(axis) == SizingGrow && box.parent != None {
		parent := &s.boxes[box.parent]
		if n := parent.Layout.Grow(axis); n > 0 {
			available := parent.Layout.Content.Extent(axis)
			if parent.Config.Direction.Axis() == axis {
				leftover := max(0, available-parent.Layout.Filled(axis))
				content += leftover / n
			} else {
				content = max(content, available-box.Config.Padding.Total(axis)-box.Config.Margin.Total(axis))
			}
			box.Layout.Content.SetExtent(axis, content)
		}
	}

	padding := content + box.Config.Padding.Total(axis)
	box.Layout.Padding.SetExtent(axis, padding)
	box.Layout.Margin.SetExtent(axis, padding+box.Config.Margin.Total(axis))

	for c := box.first; c != None; c = s.boxes[c].next {
		grow(s, c, axis)
	}
}
