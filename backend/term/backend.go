package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/go-imui"
)

// Screen is the part of tcell.Screen the backend draws to.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

var _ Screen = (tcell.Screen)(nil)

// Backend implements imui.Backend on a terminal cell grid. One layout unit
// maps to CellWidth x CellHeight; with the default 1x1 scale layout units
// are cells.
type Backend struct {
	screen Screen
	buf    *Buffer
	cellW  int
	cellH  int
}

var (
	_ imui.Backend       = (*Backend)(nil)
	_ imui.OutlineDrawer = (*Backend)(nil)
	_ imui.Scissor       = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithCellSize sets how many layout units one cell spans horizontally and
// vertically. Values below 1 are ignored.
func WithCellSize(width, height int) Option {
	return func(b *Backend) {
		if width >= 1 {
			b.cellW = width
		}
		if height >= 1 {
			b.cellH = height
		}
	}
}

// New creates a backend drawing to screen, sized to the screen's current
// dimensions.
func New(screen Screen, opts ...Option) *Backend {
	b := &Backend{screen: screen, cellW: 1, cellH: 1}
	for _, opt := range opts {
		opt(b)
	}
	w, h := screen.Size()
	b.buf = NewBuffer(w, h)
	return b
}

// Buffer exposes the back buffer for inspection.
func (b *Backend) Buffer() *Buffer {
	return b.buf
}

// CellSize returns the layout units per cell.
func (b *Backend) CellSize() (width, height int) {
	return b.cellW, b.cellH
}

// Viewport returns the screen size in layout units.
func (b *Backend) Viewport() (width, height int) {
	w, h := b.buf.Size()
	return w * b.cellW, h * b.cellH
}

// ToLayout converts a cell position to the layout point at the cell's
// center.
func (b *Backend) ToLayout(col, row int) (x, y int) {
	return col*b.cellW + b.cellW/2, row*b.cellH + b.cellH/2
}

// MeasureText returns the display width of text in layout units. Terminal
// text is one cell tall whatever the requested size.
func (b *Backend) MeasureText(_ imui.FontID, text string, _ int) int {
	return StringWidth(text) * b.cellW
}

// DrawText writes text on the row containing y.
func (b *Backend) DrawText(_ imui.FontID, text string, _, x, y int, c imui.Color) {
	b.buf.SetString(scale(x, b.cellW), scale(y, b.cellH), text, c)
}

// DrawRect fills the cells covered by r. Cells cannot be rounded, so
// roundness is ignored.
func (b *Backend) DrawRect(r imui.Rect, c imui.Color, _ float32) {
	b.buf.Fill(b.toCells(r), c)
}

// DrawRectOutline draws a box-drawing outline along r. Thickness is always
// one cell.
func (b *Backend) DrawRectOutline(r imui.Rect, c imui.Color, _ int) {
	b.buf.Outline(b.toCells(r), c)
}

// BeginScissor limits drawing to r until the matching EndScissor.
func (b *Backend) BeginScissor(r imui.Rect) {
	b.buf.PushClip(b.toCells(r))
}

// EndScissor removes the innermost scissor rectangle.
func (b *Backend) EndScissor() {
	b.buf.PopClip()
}

// Clear blanks the back buffer. Call it before drawing a frame.
func (b *Backend) Clear() {
	b.buf.Clear()
}

// Resize matches the buffer to new screen dimensions in cells. The next
// Show repaints everything.
func (b *Backend) Resize(cols, rows int) {
	b.buf.Resize(cols, rows)
}

// Show sends changed cells to the screen and presents them.
func (b *Backend) Show() int {
	changes := b.buf.Diff()
	for _, ch := range changes {
		if ch.Cell.IsContinuation() {
			continue
		}
		b.screen.SetContent(ch.X, ch.Y, ch.Cell.Rune, nil, ch.Cell.Style())
	}
	b.screen.Show()
	b.buf.Swap()
	return len(changes)
}

// toCells maps a layout rectangle to cells, rounding each edge to the
// nearest cell boundary so adjacent boxes tile without gaps.
func (b *Backend) toCells(r imui.Rect) imui.Rect {
	x0, y0 := scale(r.X, b.cellW), scale(r.Y, b.cellH)
	x1, y1 := scale(r.Right(), b.cellW), scale(r.Bottom(), b.cellH)
	return imui.NewRect(x0, y0, x1-x0, y1-y0)
}

// scale divides v by unit rounding half up, flooring for negatives.
func scale(v, unit int) int {
	if unit == 1 {
		return v
	}
	n := 2*v + unit
	d := 2 * unit
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}
