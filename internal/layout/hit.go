package layout

// HitTest returns the deepest box under (x, y) in the subtree rooted at
// from, testing against padding boxes. Later siblings are drawn over earlier
// ones, so they are tested first. Returns None when from does not contain
// the point.
func (s *Store) HitTest(from ID, x, y int) ID {
	box := s.Box(from)
	if box == nil || !box.Layout.Padding.Contains(x, y) {
		return None
	}
	if hit := s.hitSiblings(box.first, x, y); hit != None {
		return hit
	}
	return from
}

// hitSiblings tests c and its following siblings, last first.
func (s *Store) hitSiblings(c ID, x, y int) ID {
	if c == None {
		return None
	}
	if hit := s.hitSiblings(s.boxes[c].next, x, y); hit != None {
		return hit
	}
	return s.HitTest(c, x, y)
}
