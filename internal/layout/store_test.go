package layout

import "testing"

func TestNewStore_Capacity(t *testing.T) {
	type tc struct {
		capacity int
		want     int
	}

	tests := map[string]tc{
		"explicit":          {capacity: 8, want: 8},
		"zero uses default": {capacity: 0, want: DefaultCapacity},
		"negative uses default": {
			capacity: -3,
			want:     DefaultCapacity,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewStore(tt.capacity)
			if got := s.Capacity(); got != tt.want {
				t.Errorf("Capacity() = %d, want %d", got, tt.want)
			}
			if s.Len() != 1 {
				t.Errorf("Len() = %d, want 1 (root only)", s.Len())
			}
		})
	}
}

func TestStore_AllocLinksChildrenInOrder(t *testing.T) {
	s := NewStore(4)
	a := s.alloc(Root, Config{})
	b := s.alloc(Root, Config{})
	c := s.alloc(a.ID, Config{})

	root := s.Root()
	if root.ChildCount() != 2 {
		t.Fatalf("root.ChildCount() = %d, want 2", root.ChildCount())
	}
	if root.FirstChild() != a.ID || a.NextSibling() != b.ID || b.NextSibling() != None {
		t.Errorf("sibling chain = %d -> %d -> %d, want %d -> %d -> %d",
			root.FirstChild(), a.NextSibling(), b.NextSibling(), a.ID, b.ID, None)
	}
	if c.Parent() != a.ID || c.Level != 2 {
		t.Errorf("c parent/level = %d/%d, want %d/2", c.Parent(), c.Level, a.ID)
	}

	var ids []ID
	for child := range s.Children(Root) {
		ids = append(ids, child.ID)
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("Children(Root) = %v, want [1 2]", ids)
	}
}

func TestStore_AllocPanicsWhenFull(t *testing.T) {
	s := NewStore(2)
	s.alloc(Root, Config{})
	s.alloc(Root, Config{})

	expectPanic(t, ErrCapacity, func() {
		s.alloc(Root, Config{})
	})
}

func TestStore_ResetDropsBoxes(t *testing.T) {
	s := NewStore(4)
	s.alloc(Root, Config{})
	s.alloc(Root, Config{})
	s.Root().Layout.Content = NewRect(1, 2, 3, 4)

	s.Reset()

	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if s.Root().ChildCount() != 0 || s.Root().FirstChild() != None {
		t.Error("root still has children after Reset")
	}
	if s.Root().Layout != (Layout{}) {
		t.Errorf("root layout = %+v, want zero", s.Root().Layout)
	}
	if s.Box(1) != nil {
		t.Error("Box(1) should be nil after Reset")
	}
}

func TestStore_BoxOutOfRange(t *testing.T) {
	s := NewStore(4)
	for _, id := range []ID{None, 1, 99} {
		if s.Box(id) != nil {
			t.Errorf("Box(%d) = non-nil, want nil", id)
		}
	}
	if s.Box(Root) != s.Root() {
		t.Error("Box(Root) != Root()")
	}
}
