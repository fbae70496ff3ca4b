package layout

import "fmt"

// TextMeasurer returns the width of text drawn with the given font and size.
// It is called once per text leaf while the tree is built.
type TextMeasurer interface {
	MeasureText(font FontID, text string, size int) int
}

// Builder constructs a frame's tree inside a Store through nested
// Open/Close calls. The currently open boxes are kept on an explicit stack
// whose bottom is always the root.
type Builder struct {
	store    *Store
	measurer TextMeasurer
	stack    []ID
}

// NewBuilder returns a builder writing into store. measurer may be nil, in
// which case text leaves measure zero wide.
func NewBuilder(store *Store, measurer TextMeasurer) *Builder {
	b := &Builder{
		store:    store,
		measurer: measurer,
		stack:    make([]ID, 0, 32),
	}
	b.Begin(0, 0)
	return b
}

// Store returns the store the builder writes into.
func (b *Builder) Store() *Store {
	return b.store
}

// SetMeasurer replaces the text measurer used by Text.
func (b *Builder) SetMeasurer(m TextMeasurer) {
	b.measurer = m
}

// Begin starts a new frame whose root spans width x height.
func (b *Builder) Begin(width, height int) {
	b.BeginWith(width, height, Config{})
}

// BeginWith starts a new frame with a configured root. The root is always
// fixed on both axes: its margin box is the viewport, so its content size is
// the viewport minus its own padding and margin.
func (b *Builder) BeginWith(width, height int, root Config) {
	root.SizingX = SizingFixed
	root.SizingY = SizingFixed
	root.Width = max(0, width-root.Padding.Horizontal()-root.Margin.Horizontal())
	root.Height = max(0, height-root.Padding.Vertical()-root.Margin.Vertical())

	b.store.Reset()
	b.store.Root().Config = root
	b.stack = append(b.stack[:0], Root)
}

// Open appends a box as the last child of the current box and makes it
// current. It panics when the store is full.
func (b *Builder) Open(cfg Config) *Box {
	box := b.store.alloc(b.stack[len(b.stack)-1], cfg)
	b.stack = append(b.stack, box.ID)
	return box
}

// Close makes the parent of the current box current again. Closing with
// only the root open panics.
func (b *Builder) Close() {
	if len(b.stack) <= 1 {
		panic(fmt.Errorf("layout: %w: close without matching open", ErrUnbalanced))
	}
	b.stack = b.stack[:len(b.stack)-1]
}

// Text adds a single-line text leaf. Its width comes from the measurer and
// its height is the font size; both axes are fixed. The string is kept by
// the box for the render walk.
func (b *Builder) Text(text string, style TextStyle) *Box {
	width := 0
	if b.measurer != nil {
		width = b.measurer.MeasureText(style.Font, text, style.Size)
	}
	box := b.Open(Config{
		SizingX: SizingFixed,
		SizingY: SizingFixed,
		Width:   width,
		Height:  style.Size,
		Text:    style,
	})
	box.Text = text
	box.leaf = true
	b.Close()
	return box
}

// Current returns the box that new children are attached to.
func (b *Builder) Current() *Box {
	return b.store.Box(b.stack[len(b.stack)-1])
}

// Depth returns the number of boxes open above the root.
func (b *Builder) Depth() int {
	return len(b.stack) - 1
}

// Finish checks that every opened box was closed. It panics otherwise.
func (b *Builder) Finish() {
	if d := b.Depth(); d != 0 {
		panic(fmt.Errorf("layout: %w: %d box(es) left open", ErrUnbalanced, d))
	}
}
