package scene

import (
	"github.com/grindlemire/go-imui"
)

// State holds the host-side interaction state of a scene: which
// interactive element the pointer is over and which ones are toggled
// active. Boxes are rebuilt every frame, so State maps each frame's box IDs
// back to stable element indexes.
type State struct {
	hovered int
	active  map[int]bool

	// owner maps a box ID of the last built frame to the index of its
	// nearest interactive element, or -1.
	owner []int
}

// NewState returns a State with nothing hovered or active.
func NewState() *State {
	return &State{hovered: -1, active: make(map[int]bool)}
}

// Hovered returns the index of the hovered interactive element, or -1.
func (st *State) Hovered() int {
	return st.hovered
}

// IsActive reports whether the element with the given index is toggled on.
func (st *State) IsActive(index int) bool {
	return st.active[index]
}

// background picks the color an element is drawn with this frame. Active
// wins over hover.
func (st *State) background(e *Element) imui.Color {
	if st == nil {
		return e.Config.Background
	}
	if e.Active != nil && st.active[e.Index] {
		return *e.Active
	}
	if e.Hover != nil && st.hovered == e.Index {
		return *e.Hover
	}
	return e.Config.Background
}

func (st *State) record(id imui.BoxID, owner int) {
	if st == nil {
		return
	}
	for int(id) >= len(st.owner) {
		st.owner = append(st.owner, -1)
	}
	st.owner[id] = owner
}

// Pointer updates hover from the pointer position over the last laid-out
// frame of c. When clicked is set, the hovered element's active flag is
// toggled. It returns true if anything changed.
func (st *State) Pointer(c *imui.Context, x, y int, clicked bool) bool {
	hovered := -1
	if b := c.HitTest(x, y); b != nil && int(b.ID) < len(st.owner) {
		hovered = st.owner[b.ID]
	}

	changed := hovered != st.hovered
	st.hovered = hovered
	if clicked && hovered >= 0 {
		st.active[hovered] = !st.active[hovered]
		changed = true
	}
	return changed
}

// Leave clears hover, for when the pointer exits the viewport.
func (st *State) Leave() bool {
	changed := st.hovered != -1
	st.hovered = -1
	return changed
}
