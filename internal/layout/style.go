package layout

// Sizing specifies how a box resolves its size on one axis.
type Sizing uint8

const (
	SizingFit   Sizing = iota // Size to the children's accumulated extent
	SizingFixed               // Use the configured Width/Height
	SizingGrow                // Fit, then take a share of the parent's leftover space
)

// String returns the sizing mode name.
func (s Sizing) String() string {
	switch s {
	case SizingFixed:
		return "fixed"
	case SizingGrow:
		return "grow"
	default:
		return "fit"
	}
}

// Direction specifies the main axis along which children are laid out.
type Direction uint8

const (
	TopToBottom Direction = iota // Children stack vertically
	LeftToRight                  // Children stack horizontally
)

// Axis returns the main axis of the direction.
func (d Direction) Axis() Axis {
	if d == LeftToRight {
		return AxisX
	}
	return AxisY
}

// String returns the direction name.
func (d Direction) String() string {
	if d == LeftToRight {
		return "left-to-right"
	}
	return "top-to-bottom"
}

// Overflow is reserved for scroll and clip policies. The layout passes
// never read it.
type Overflow uint8

const (
	OverflowScroll Overflow = iota
	OverflowHidden
)

// Color is a non-premultiplied 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	r = uint32(c.R) * a / 0xff
	g = uint32(c.G) * a / 0xff
	b = uint32(c.B) * a / 0xff
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}

// FontID is an opaque font handle. Backends map it to a concrete face.
type FontID uint16

// TextStyle describes how a text leaf is measured and drawn.
type TextStyle struct {
	Font  FontID
	Size  int
	Color Color
}

// Config contains the caller-supplied properties of a box. It is copied
// into the box on Open and not modified afterwards.
type Config struct {
	SizingX Sizing
	SizingY Sizing

	// Width and Height are only used when the axis is SizingFixed.
	Width  int
	Height int

	Padding Edges
	Margin  Edges

	Direction Direction

	Background Color
	Roundness  float32
	Text       TextStyle

	OverflowX Overflow
	OverflowY Overflow
}

// Sizing returns the sizing mode on the given axis.
func (c Config) Sizing(axis Axis) Sizing {
	if axis == AxisX {
		return c.SizingX
	}
	return c.SizingY
}

// Fixed returns the configured fixed dimension on the given axis.
func (c Config) Fixed(axis Axis) int {
	if axis == AxisX {
		return c.Width
	}
	return c.Height
}
