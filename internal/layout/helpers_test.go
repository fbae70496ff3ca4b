package layout

import (
	"errors"
	"testing"
	"unicode/utf8"
)

// monoMeasurer measures every rune as perRune units wide.
type monoMeasurer struct {
	perRune int
	calls   int
}

func (m *monoMeasurer) MeasureText(_ FontID, text string, _ int) int {
	m.calls++
	return utf8.RuneCountInString(text) * m.perRune
}

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

// fixedBox returns a config fixed on both axes.
func fixedBox(w, h int) Config {
	return Config{SizingX: SizingFixed, SizingY: SizingFixed, Width: w, Height: h}
}

// growBox returns a config that grows on both axes.
func growBox() Config {
	return Config{SizingX: SizingGrow, SizingY: SizingGrow}
}
