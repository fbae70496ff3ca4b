package layout

// ID identifies a box within a frame. It doubles as the box's index in the
// Store, so the root is always 0 and boxes are numbered in creation order.
type ID int32

// None is the ID of a missing box.
const None ID = -1

// Root is the ID of the frame's root box.
const Root ID = 0

// Box is a node of the per-frame tree. Boxes are owned by the Store and
// linked to each other by ID; a *Box is only valid until the next Begin.
type Box struct {
	ID    ID
	Level int

	// Text is set only on text leaves. A text leaf never has children.
	Text string

	Config Config
	Layout Layout

	parent ID
	first  ID
	last   ID
	next   ID
	count  int
	leaf   bool
}

// Parent returns the ID of the box's parent, or None for the root.
func (b *Box) Parent() ID {
	return b.parent
}

// FirstChild returns the ID of the first child, or None.
func (b *Box) FirstChild() ID {
	return b.first
}

// NextSibling returns the ID of the next sibling, or None.
func (b *Box) NextSibling() ID {
	return b.next
}

// ChildCount returns the number of direct children.
func (b *Box) ChildCount() int {
	return b.count
}

// IsText reports whether the box is a text leaf.
func (b *Box) IsText() bool {
	return b.leaf
}

// IsRoot reports whether the box is the frame root.
func (b *Box) IsRoot() bool {
	return b.ID == Root
}

// reset clears links and computed layout, keeping nothing from the
// previous frame.
func (b *Box) reset(id ID, level int, cfg Config) {
	*b = Box{
		ID:     id,
		Level:  level,
		Config: cfg,
		parent: None,
		first:  None,
		last:   None,
		next:   None,
	}
}
