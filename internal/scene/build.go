package scene

import (
	"github.com/grindlemire/go-imui"
)

// Build opens the scene's boxes on c as a width x height frame. It begins
// the frame but does not end it; call c.End or c.Layout afterwards. st may
// be nil for a scene without interaction.
func (s *Scene) Build(c *imui.Context, width, height int, st *State) {
	c.BeginWith(width, height, s.Root)
	if st != nil {
		st.owner = st.owner[:0]
		st.record(c.Root().ID, -1)
	}
	for _, e := range s.Elements {
		s.build(c, e, st, -1)
	}
}

func (s *Scene) build(c *imui.Context, e *Element, st *State, owner int) {
	if e.Interactive() {
		owner = e.Index
	}

	if e.IsText {
		b := c.Text(e.Text, e.Style)
		st.record(b.ID, owner)
		return
	}

	cfg := e.Config
	cfg.Background = st.background(e)
	b := c.Open(cfg)
	st.record(b.ID, owner)
	for _, child := range e.Children {
		s.build(c, child, st, owner)
	}
	c.Close()
}

// Find returns the element at index, or nil.
func (s *Scene) Find(index int) *Element {
	var found *Element
	s.Walk(func(e *Element) {
		if e.Index == index {
			found = e
		}
	})
	return found
}
