package imui

import "testing"

func TestRender_Order(t *testing.T) {
	c, mock := newTestContext(t)

	c.BeginWith(200, 100, BoxConfig{Background: Black})
	panel(c, Red)
	c.End()

	want := []DrawCall{
		{Kind: DrawKindRect, Rect: NewRect(0, 0, 200, 100), Color: Black},
		{Kind: DrawKindRect, Rect: NewRect(0, 0, 200, 100), Color: Red},
		{Kind: DrawKindText, Rect: NewRect(5, 5, 20, 20), Color: White, Text: "hi", Size: 20},
	}
	if len(mock.Calls) != len(want) {
		t.Fatalf("got %d calls, want %d: %+v", len(mock.Calls), len(want), mock.Calls)
	}
	for i := range want {
		if mock.Calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, mock.Calls[i], want[i])
		}
	}
}

func TestRender_DepthFirst(t *testing.T) {
	c, mock := newTestContext(t)

	// root
	// ├── a
	// │   └── "one"
	// └── b
	//     └── "two"
	c.BeginWith(200, 100, BoxConfig{Direction: LeftToRight})
	c.Open(BoxConfig{Background: Red, Roundness: 0.25})
	c.Text("one", TextStyle{Size: 10})
	c.Close()
	c.Open(BoxConfig{Background: Green})
	c.Text("two", TextStyle{Size: 10})
	c.Close()
	c.End()

	var seq []string
	for _, call := range mock.Calls {
		switch call.Kind {
		case DrawKindRect:
			switch call.Color {
			case Red:
				seq = append(seq, "a")
			case Green:
				seq = append(seq, "b")
			default:
				seq = append(seq, "root")
			}
		case DrawKindText:
			seq = append(seq, call.Text)
		}
	}

	want := []string{"root", "a", "one", "b", "two"}
	if len(seq) != len(want) {
		t.Fatalf("order = %v, want %v", seq, want)
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Fatalf("order = %v, want %v", seq, want)
		}
	}

	if mock.Calls[1].Roundness != 0.25 {
		t.Errorf("roundness = %v, want 0.25", mock.Calls[1].Roundness)
	}
	if got := mock.Calls[4].Rect; got != NewRect(30, 0, 30, 10) {
		t.Errorf("second text at %+v, want {30 0 30 10}", got)
	}
}

func TestRender_Outlines(t *testing.T) {
	c, mock := newTestContext(t, WithDebugOutlines(true))

	c.Begin(200, 100)
	panel(c, Red)
	c.End()

	if n := mock.Count(DrawKindOutline); n != 2 {
		t.Fatalf("outlines = %d, want 2 (root is never outlined)", n)
	}

	last := mock.Calls[len(mock.Calls)-2:]
	if last[0].Rect != NewRect(0, 0, 200, 100) || last[0].Color != Red {
		t.Errorf("padding outline = %+v", last[0])
	}
	if last[1].Rect != NewRect(5, 5, 190, 90) || last[1].Color != Green {
		t.Errorf("content outline = %+v", last[1])
	}
	if mock.Calls[2].Kind != DrawKindText {
		t.Errorf("outlines drawn before children: %+v", mock.Calls)
	}
}

// rectsOnly implements Renderer but not OutlineDrawer.
type rectsOnly struct {
	rects, texts int
}

func (r *rectsOnly) DrawText(FontID, string, int, int, int, Color) { r.texts++ }
func (r *rectsOnly) DrawRect(Rect, Color, float32)                 { r.rects++ }

func TestRender_SecondTarget(t *testing.T) {
	c, mock := newTestContext(t, WithDebugOutlines(true))

	c.Begin(200, 100)
	panel(c, Red)
	c.End()

	var other rectsOnly
	c.Render(&other)
	if other.rects != 2 || other.texts != 1 {
		t.Errorf("second target got %d rects and %d texts, want 2 and 1", other.rects, other.texts)
	}
	if mock.Count(DrawKindRect) != 2 {
		t.Errorf("backend rects = %d, want 2", mock.Count(DrawKindRect))
	}

	c.Render(nil)
}
