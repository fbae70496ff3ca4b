package layout

// Position assigns absolute origins on one axis. The root's margin box sits
// at 0. Each parent keeps a cursor that starts at its content origin; a
// child's margin box starts at the cursor when the parent flows along axis
// and at the parent's content origin otherwise. The child's padding and
// content origins follow by its leading margin and padding, its own children
// are placed, and the parent cursor then advances past the child's margin
// box along the flow only.
func Position(s *Store, axis Axis) {
	root := s.Root()
	at := 0
	root.Layout.Margin.SetOrigin(axis, at)
	at += root.Config.Margin.Leading(axis)
	root.Layout.Padding.SetOrigin(axis, at)
	at += root.Config.Padding.Leading(axis)
	root.Layout.Content.SetOrigin(axis, at)

	place(s, Root, axis)
}

func place(s *Store, id ID, axis Axis) {
	box := &s.boxes[id]
	along := box.Config.Direction.Axis() == axis
	origin := box.Layout.Content.Origin(axis)
	box.Layout.Cursor.Set(axis, origin)

	for c := box.first; c != None; c = s.boxes[c].next {
		child := &s.boxes[c]

		at := origin
		if along {
			at = box.Layout.Cursor.Get(axis)
		}
		child.Layout.Margin.SetOrigin(axis, at)
		at += child.Config.Margin.Leading(axis)
		child.Layout.Padding.SetOrigin(axis, at)
		at += child.Config.Padding.Leading(axis)
		child.Layout.Content.SetOrigin(axis, at)

		place(s, c, axis)

		if along {
			box.Layout.Cursor.Set(axis, box.Layout.Cursor.Get(axis)+child.Layout.Margin.Extent(axis))
		}
	}

	// A fixed box consumes exactly its configured extent.
	if box.Config.Sizing(axis) == SizingFixed {
		box.Layout.Cursor.Set(axis, origin+box.Layout.Content.Extent(axis))
	}
}
