package imui

import (
	"unicode/utf8"
)

// DrawKind identifies the kind of a recorded draw call.
type DrawKind int

const (
	DrawKindRect DrawKind = iota
	DrawKindText
	DrawKindOutline
)

// DrawCall is one call captured by MockBackend.
type DrawCall struct {
	Kind      DrawKind
	Rect      Rect
	Color     Color
	Roundness float32
	Thickness int

	Font FontID
	Text string
	Size int
}

// MockBackend is a Backend for testing. Text is CharWidth units wide per
// rune and every draw call is recorded in order.
type MockBackend struct {
	CharWidth int
	Calls     []DrawCall

	// Measured counts MeasureText calls.
	Measured int
}

var (
	_ Backend       = (*MockBackend)(nil)
	_ OutlineDrawer = (*MockBackend)(nil)
)

// NewMockBackend creates a mock backend with the given per-rune width.
func NewMockBackend(charWidth int) *MockBackend {
	return &MockBackend{CharWidth: charWidth}
}

// MeasureText returns CharWidth times the rune count of text.
func (m *MockBackend) MeasureText(_ FontID, text string, _ int) int {
	m.Measured++
	return m.CharWidth * utf8.RuneCountInString(text)
}

// DrawText records a text draw. Rect holds the origin and the measured size.
func (m *MockBackend) DrawText(font FontID, text string, size, x, y int, c Color) {
	m.Calls = append(m.Calls, DrawCall{
		Kind:  DrawKindText,
		Rect:  NewRect(x, y, m.CharWidth*utf8.RuneCountInString(text), size),
		Color: c,
		Font:  font,
		Text:  text,
		Size:  size,
	})
}

// DrawRect records a filled rectangle.
func (m *MockBackend) DrawRect(r Rect, c Color, roundness float32) {
	m.Calls = append(m.Calls, DrawCall{Kind: DrawKindRect, Rect: r, Color: c, Roundness: roundness})
}

// DrawRectOutline records an outline.
func (m *MockBackend) DrawRectOutline(r Rect, c Color, thickness int) {
	m.Calls = append(m.Calls, DrawCall{Kind: DrawKindOutline, Rect: r, Color: c, Thickness: thickness})
}

// Reset drops all recorded calls.
func (m *MockBackend) Reset() {
	m.Calls = m.Calls[:0]
	m.Measured = 0
}

// Texts returns the text of every recorded text draw, in order.
func (m *MockBackend) Texts() []string {
	var out []string
	for _, c := range m.Calls {
		if c.Kind == DrawKindText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Count returns how many calls of kind were recorded.
func (m *MockBackend) Count(kind DrawKind) int {
	n := 0
	for _, c := range m.Calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}
