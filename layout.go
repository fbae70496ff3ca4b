// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package imui

import "github.com/grindlemire/go-imui/internal/layout"

// Box is a node of the current frame's tree. A *Box is valid until the
// next Begin.
type Box = layout.Box

// BoxID identifies a box within one frame; the root is 0.
type BoxID = layout.ID

// NoBox is the BoxID of a missing box.
const NoBox = layout.None

// BoxConfig holds the caller-supplied properties of a box.
type BoxConfig = layout.Config

// BoxLayout holds the computed rectangles of a box.
type BoxLayout = layout.Layout

// TextStyle describes how a text leaf is measured and drawn.
type TextStyle = layout.TextStyle

// FontID is an opaque font handle resolved by the backend.
type FontID = layout.FontID

// Sizing specifies how a box resolves its size on one axis.
type Sizing = layout.Sizing

const (
	SizingFit   = layout.SizingFit
	SizingFixed = layout.SizingFixed
	SizingGrow  = layout.SizingGrow
)

// Direction specifies the axis along which children are laid out.
type Direction = layout.Direction

const (
	TopToBottom = layout.TopToBottom
	LeftToRight = layout.LeftToRight
)

// Overflow is reserved for scroll and clip policies.
type Overflow = layout.Overflow

const (
	OverflowScroll = layout.OverflowScroll
	OverflowHidden = layout.OverflowHidden
)

// Axis selects the horizontal or vertical dimension.
type Axis = layout.Axis

const (
	AxisX = layout.AxisX
	AxisY = layout.AxisY
)

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Point represents an x/y coordinate.
type Point = layout.Point

// Store is the fixed-capacity box arena behind a Context.
type Store = layout.Store

// TextMeasurer measures single-line text.
type TextMeasurer = layout.TextMeasurer

// DefaultCapacity is the number of boxes a Context holds per frame unless
// WithCapacity says otherwise.
const DefaultCapacity = layout.DefaultCapacity

var (
	// ErrCapacity is wrapped by the panic raised when a frame opens more
	// boxes than the Context can hold.
	ErrCapacity = layout.ErrCapacity

	// ErrUnbalanced is wrapped by the panic raised when Close has no
	// matching Open, or End is reached with boxes still open.
	ErrUnbalanced = layout.ErrUnbalanced
)

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
