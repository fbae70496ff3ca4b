package imui

import (
	"errors"
	"testing"
)

// expectPanic runs fn and fails unless it panics with an error wrapping want.
func expectPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", want)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v (%T) is not an error", r, r)
		}
		if !errors.Is(err, want) {
			t.Fatalf("panic = %v, want it to wrap %v", err, want)
		}
	}()
	fn()
}

// newTestContext returns a Context drawing into a MockBackend with 10 unit
// wide runes.
func newTestContext(t *testing.T, opts ...Option) (*Context, *MockBackend) {
	t.Helper()
	mock := NewMockBackend(10)
	c, err := New(append([]Option{WithBackend(mock)}, opts...)...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return c, mock
}

// panel is a grow box with padding 5 holding a single 20 unit text leaf.
//
// In a 200x100 viewport it fills the root: padding box {0 0 200 100},
// content box {5 5 190 90}, text at (5, 5).
func panel(c *Context, bg Color) (*Box, *Box) {
	box := c.Open(BoxConfig{
		SizingX:    SizingGrow,
		SizingY:    SizingGrow,
		Padding:    EdgeAll(5),
		Background: bg,
	})
	text := c.Text("hi", TextStyle{Size: 20, Color: White})
	c.Close()
	return box, text
}
