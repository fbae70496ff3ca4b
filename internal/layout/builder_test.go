package layout

import "testing"

func TestBuilder_OpenAssignsIDsAndLevels(t *testing.T) {
	b := NewBuilder(NewStore(16), nil)
	b.Begin(100, 100)

	outer := b.Open(Config{})
	inner := b.Open(Config{})
	b.Close()
	sibling := b.Open(Config{})
	b.Close()
	b.Close()
	b.Finish()

	type tc struct {
		box    *Box
		id     ID
		level  int
		parent ID
	}

	tests := map[string]tc{
		"outer":   {box: outer, id: 1, level: 1, parent: Root},
		"inner":   {box: inner, id: 2, level: 2, parent: 1},
		"sibling": {box: sibling, id: 3, level: 2, parent: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.box.ID != tt.id {
				t.Errorf("ID = %d, want %d", tt.box.ID, tt.id)
			}
			if tt.box.Level != tt.level {
				t.Errorf("Level = %d, want %d", tt.box.Level, tt.level)
			}
			if tt.box.Parent() != tt.parent {
				t.Errorf("Parent() = %d, want %d", tt.box.Parent(), tt.parent)
			}
		})
	}

	if outer.ChildCount() != 2 {
		t.Errorf("outer.ChildCount() = %d, want 2", outer.ChildCount())
	}
}

func TestBuilder_CurrentTracksNesting(t *testing.T) {
	b := NewBuilder(NewStore(8), nil)
	b.Begin(10, 10)

	if !b.Current().IsRoot() || b.Depth() != 0 {
		t.Fatalf("after Begin current = %d depth = %d, want root and 0", b.Current().ID, b.Depth())
	}
	box := b.Open(Config{})
	if b.Current() != box || b.Depth() != 1 {
		t.Errorf("after Open current = %d depth = %d, want %d and 1", b.Current().ID, b.Depth(), box.ID)
	}
	b.Close()
	if !b.Current().IsRoot() || b.Depth() != 0 {
		t.Errorf("after Close current = %d depth = %d, want root and 0", b.Current().ID, b.Depth())
	}
}

func TestBuilder_BeginResetsRoot(t *testing.T) {
	b := NewBuilder(NewStore(8), nil)
	b.Begin(10, 10)
	b.Open(Config{})
	b.Close()

	b.BeginWith(800, 600, Config{
		Direction: LeftToRight,
		Padding:   EdgeAll(10),
		SizingX:   SizingGrow,
	})

	root := b.Store().Root()
	if root.ChildCount() != 0 || b.Store().Len() != 1 {
		t.Fatalf("Begin kept %d children, %d boxes", root.ChildCount(), b.Store().Len())
	}
	if root.Config.SizingX != SizingFixed || root.Config.SizingY != SizingFixed {
		t.Errorf("root sizing = %v/%v, want fixed/fixed", root.Config.SizingX, root.Config.SizingY)
	}
	if root.Config.Width != 780 || root.Config.Height != 580 {
		t.Errorf("root fixed size = %dx%d, want 780x580", root.Config.Width, root.Config.Height)
	}
	if root.Config.Direction != LeftToRight {
		t.Errorf("root direction = %v, want left-to-right", root.Config.Direction)
	}
}

func TestBuilder_CloseAtRootPanics(t *testing.T) {
	b := NewBuilder(NewStore(8), nil)
	b.Begin(10, 10)

	expectPanic(t, ErrUnbalanced, b.Close)
}

func TestBuilder_FinishWithOpenBoxesPanics(t *testing.T) {
	b := NewBuilder(NewStore(8), nil)
	b.Begin(10, 10)
	b.Open(Config{})

	expectPanic(t, ErrUnbalanced, b.Finish)
}

func TestBuilder_OpenPastCapacityPanics(t *testing.T) {
	b := NewBuilder(NewStore(3), nil)
	b.Begin(10, 10)
	for i := 0; i < 3; i++ {
		b.Open(Config{})
		b.Close()
	}

	expectPanic(t, ErrCapacity, func() {
		b.Open(Config{})
	})
}

func TestBuilder_Text(t *testing.T) {
	type tc struct {
		measurer   TextMeasurer
		text       string
		size       int
		wantWidth  int
		wantHeight int
	}

	tests := map[string]tc{
		"measured": {
			measurer:   &monoMeasurer{perRune: 7},
			text:       "hello",
			size:       13,
			wantWidth:  35,
			wantHeight: 13,
		},
		"no measurer": {
			text:       "hello",
			size:       24,
			wantWidth:  0,
			wantHeight: 24,
		},
		"empty text is still a leaf": {
			measurer:   &monoMeasurer{perRune: 7},
			text:       "",
			size:       10,
			wantWidth:  0,
			wantHeight: 10,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBuilder(NewStore(4), tt.measurer)
			b.Begin(100, 100)
			style := TextStyle{Font: 2, Size: tt.size, Color: Color{R: 255, A: 255}}
			leaf := b.Text(tt.text, style)
			b.Finish()

			if !leaf.IsText() || leaf.Text != tt.text {
				t.Errorf("leaf text = %q (IsText %v), want %q", leaf.Text, leaf.IsText(), tt.text)
			}
			if leaf.Config.SizingX != SizingFixed || leaf.Config.SizingY != SizingFixed {
				t.Errorf("leaf sizing = %v/%v, want fixed/fixed", leaf.Config.SizingX, leaf.Config.SizingY)
			}
			if leaf.Config.Width != tt.wantWidth || leaf.Config.Height != tt.wantHeight {
				t.Errorf("leaf size = %dx%d, want %dx%d",
					leaf.Config.Width, leaf.Config.Height, tt.wantWidth, tt.wantHeight)
			}
			if leaf.Config.Text != style {
				t.Errorf("leaf style = %+v, want %+v", leaf.Config.Text, style)
			}
			if b.Depth() != 0 {
				t.Errorf("Text left depth %d, want 0", b.Depth())
			}
		})
	}
}

func TestBuilder_TextMeasuresOncePerLeaf(t *testing.T) {
	m := &monoMeasurer{perRune: 1}
	b := NewBuilder(NewStore(8), m)
	b.Begin(100, 100)
	b.Text("a", TextStyle{Size: 1})
	b.Text("b", TextStyle{Size: 1})
	b.Finish()
	Compute(b.Store())

	if m.calls != 2 {
		t.Errorf("MeasureText called %d times, want 2", m.calls)
	}
}
