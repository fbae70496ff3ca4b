package imui

import (
	"io"
	"iter"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-imui/internal/layout"
)

// Context owns the box arena and drives frames. It is not safe for
// concurrent use; one goroutine builds, lays out and draws each frame.
type Context struct {
	store   *layout.Store
	builder *layout.Builder

	backend  Backend
	measurer TextMeasurer
	capacity int
	logger   *log.Logger
	outlines bool

	frame  uint64
	warned bool
}

// New creates a Context. The box arena is allocated once here and reused by
// every frame.
func New(opts ...Option) (*Context, error) {
	c := &Context{
		capacity: DefaultCapacity,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.measurer == nil && c.backend != nil {
		c.measurer = c.backend
	}
	c.store = layout.NewStore(c.capacity)
	c.builder = layout.NewBuilder(c.store, c.measurer)
	return c, nil
}

// Begin starts a frame whose root spans the viewport, flowing top to bottom.
func (c *Context) Begin(width, height int) {
	c.BeginWith(width, height, BoxConfig{})
}

// BeginWith starts a frame with a configured root. The root's sizing is
// forced to fixed so that its margin box matches the viewport; direction,
// spacing and background are taken from root.
func (c *Context) BeginWith(width, height int, root BoxConfig) {
	c.frame++
	c.builder.BeginWith(width, height, root)
}

// Open adds a box as the last child of the current box and makes it
// current. It panics with ErrCapacity when the frame's box budget is spent.
func (c *Context) Open(cfg BoxConfig) *Box {
	return c.builder.Open(cfg)
}

// Close returns to the parent of the current box. It panics with
// ErrUnbalanced when no box is open.
func (c *Context) Close() {
	c.builder.Close()
}

// Text adds a single-line text leaf sized by the measurer: width from
// MeasureText, height from style.Size.
func (c *Context) Text(text string, style TextStyle) *Box {
	if c.measurer == nil && !c.warned {
		c.warned = true
		c.logger.Warn("text measured without a measurer; leaves will be zero wide")
	}
	return c.builder.Text(text, style)
}

// End lays the frame out and draws it through the backend. It panics with
// ErrUnbalanced if boxes are still open.
func (c *Context) End() {
	c.Layout()
	if c.backend != nil {
		c.Render(c.backend)
	}
}

// Layout finishes the frame and computes every box's rectangles without
// drawing. End calls it; use it directly when drawing happens elsewhere.
func (c *Context) Layout() {
	c.builder.Finish()
	layout.Compute(c.store)
	c.logger.Debug("frame laid out", "frame", c.frame, "boxes", c.store.Len()-1, "capacity", c.store.Capacity())
}

// HitTest returns the deepest box whose padding box contains (x, y), or nil.
// It searches the tree of the last finished frame.
func (c *Context) HitTest(x, y int) *Box {
	return c.store.Box(c.store.HitTest(layout.Root, x, y))
}

// HitTestFrom is HitTest restricted to the subtree rooted at b.
func (c *Context) HitTestFrom(b *Box, x, y int) *Box {
	if b == nil {
		return nil
	}
	return c.store.Box(c.store.HitTest(b.ID, x, y))
}

// Root returns the current frame's root box.
func (c *Context) Root() *Box {
	return c.store.Root()
}

// Box returns the box with the given ID in the current frame, or nil.
func (c *Context) Box(id BoxID) *Box {
	return c.store.Box(id)
}

// Parent returns the parent of b, or nil for the root.
func (c *Context) Parent(b *Box) *Box {
	return c.store.Box(b.Parent())
}

// Children iterates over the direct children of b in creation order.
func (c *Context) Children(b *Box) iter.Seq[*Box] {
	return c.store.Children(b.ID)
}

// Store exposes the box arena for read-only inspection such as tree dumps.
func (c *Context) Store() *Store {
	return c.store
}

// Frame returns the number of frames begun so far.
func (c *Context) Frame() uint64 {
	return c.frame
}

// Depth returns how many boxes are currently open above the root.
func (c *Context) Depth() int {
	return c.builder.Depth()
}
