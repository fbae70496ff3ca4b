package term

import (
	"strings"

	"github.com/grindlemire/go-imui"
)

// Buffer is a double-buffered 2D grid of cells.
// Writes go to the back buffer and are limited to the active clip
// rectangle; Diff reports what changed since the last Swap.
type Buffer struct {
	front  []Cell
	back   []Cell
	width  int
	height int
	clips  []imui.Rect
}

// CellChange is a single cell that differs between front and back buffers.
type CellChange struct {
	X, Y int
	Cell Cell
}

// NewBuffer creates a double-buffered grid filled with blank cells.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() imui.Rect {
	return imui.NewRect(0, 0, b.width, b.height)
}

// Clip returns the rectangle writes are currently limited to.
func (b *Buffer) Clip() imui.Rect {
	if len(b.clips) == 0 {
		return b.Rect()
	}
	return b.clips[len(b.clips)-1]
}

// PushClip narrows the clip rectangle to its intersection with r.
func (b *Buffer) PushClip(r imui.Rect) {
	b.clips = append(b.clips, b.Clip().Intersect(r))
}

// PopClip restores the clip rectangle active before the last PushClip.
func (b *Buffer) PopClip() {
	if len(b.clips) > 0 {
		b.clips = b.clips[:len(b.clips)-1]
	}
}

func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the back buffer cell at (x, y), or the zero Cell when out of
// bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.back[i]
}

func (b *Buffer) set(x, y int, c Cell) {
	if i := b.idx(x, y); i >= 0 {
		b.back[i] = c
	}
}

// SetRune writes r at (x, y). A wide rune also claims the next cell, and any
// wide character it overlaps is cleared. Writes outside the clip are
// dropped.
func (b *Buffer) SetRune(x, y int, r rune, fg imui.Color) {
	clip := b.Clip()
	if !clip.Contains(x, y) {
		return
	}
	width := RuneWidth(r)
	if width == 2 && !clip.Contains(x+1, y) {
		return
	}

	cur := b.Cell(x, y)
	if cur.IsContinuation() || cur.Width == 2 {
		b.clearWideAt(x, y)
	}
	if width == 2 {
		if next := b.Cell(x+1, y); next.Width == 2 || next.IsContinuation() {
			b.clearWideAt(x+1, y)
		}
	}

	bg := b.Cell(x, y).Bg
	b.set(x, y, Cell{Rune: r, Fg: fg, Bg: bg, Width: uint8(width)})
	if width == 2 {
		b.set(x+1, y, Cell{Fg: fg, Bg: b.Cell(x+1, y).Bg})
	}
}

// clearWideAt blanks the wide character covering (x, y), keeping
// backgrounds.
func (b *Buffer) clearWideAt(x, y int) {
	cell := b.Cell(x, y)
	start := x
	if cell.IsContinuation() {
		start = x - 1
	}
	for i := start; i <= start+1; i++ {
		if i < 0 || i >= b.width {
			continue
		}
		c := b.Cell(i, y)
		b.set(i, y, Cell{Rune: ' ', Bg: c.Bg, Width: 1})
	}
}

// SetString writes s starting at (x, y) on a single row, without wrapping.
// Returns the display width written.
func (b *Buffer) SetString(x, y int, s string, fg imui.Color) int {
	clip := b.Clip()
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	written := 0
	cur := x
	for _, r := range s {
		w := RuneWidth(r)
		if cur >= clip.Right() {
			break
		}
		if cur >= clip.X && cur+w <= clip.Right() {
			b.SetRune(cur, y, r, fg)
			written += w
		}
		cur += w
	}
	return written
}

// Fill paints the background of every cell in rect and blanks its contents.
// A transparent color leaves the cells untouched.
func (b *Buffer) Fill(rect imui.Rect, bg imui.Color) {
	if bg.A == 0 {
		return
	}
	rect = rect.Intersect(b.Clip())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			c := b.Cell(x, y)
			if c.IsContinuation() && x == rect.X {
				b.clearWideAt(x, y)
			}
			if c.Width == 2 && x+1 == rect.Right() {
				b.clearWideAt(x, y)
			}
			b.set(x, y, Cell{Rune: ' ', Bg: bg, Width: 1})
		}
	}
}

// Outline draws a single-line box along the inside edge of rect in fg,
// keeping each cell's background.
func (b *Buffer) Outline(rect imui.Rect, fg imui.Color) {
	if rect.IsEmpty() {
		return
	}
	right, bottom := rect.Right()-1, rect.Bottom()-1
	for x := rect.X; x <= right; x++ {
		b.SetRune(x, rect.Y, '─', fg)
		b.SetRune(x, bottom, '─', fg)
	}
	for y := rect.Y; y <= bottom; y++ {
		b.SetRune(rect.X, y, '│', fg)
		b.SetRune(right, y, '│', fg)
	}
	b.SetRune(rect.X, rect.Y, '┌', fg)
	b.SetRune(right, rect.Y, '┐', fg)
	b.SetRune(rect.X, bottom, '└', fg)
	b.SetRune(right, bottom, '┘', fg)
}

// Clear resets the back buffer to blank cells and drops all clips.
func (b *Buffer) Clear() {
	b.clips = b.clips[:0]
	for i := range b.back {
		b.back[i] = blank
	}
}

// Diff returns the cells that changed between front and back buffers in
// row-major order.
func (b *Buffer) Diff() []CellChange {
	changes := make([]CellChange, 0, b.width)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			i := y*b.width + x
			if b.back[i] != b.front[i] {
				changes = append(changes, CellChange{X: x, Y: y, Cell: b.back[i]})
			}
		}
	}
	return changes
}

// Swap copies the back buffer to the front buffer. Call it after flushing.
func (b *Buffer) Swap() {
	copy(b.front, b.back)
}

// Resize reallocates both buffers. The front buffer is zeroed so that the
// next Diff repaints every cell.
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	b.width, b.height = width, height
	b.front = make([]Cell, width*height)
	b.back = make([]Cell, width*height)
	b.Clear()
}

// String renders the back buffer's runes, one line per row, skipping
// continuation cells.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.back[y*b.width+x]
			if c.IsContinuation() {
				continue
			}
			sb.WriteRune(c.Rune)
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
