package layout

import (
	"errors"
	"fmt"
	"iter"
)

// DefaultCapacity is the number of non-root boxes a Store holds when no
// capacity is given.
const DefaultCapacity = 1024

var (
	// ErrCapacity is the panic cause when a frame opens more boxes than the
	// Store can hold.
	ErrCapacity = errors.New("box capacity exceeded")

	// ErrUnbalanced is the panic cause when Close is called with only the
	// root open, or a frame ends with boxes still open.
	ErrUnbalanced = errors.New("unbalanced open/close")
)

// Store is a fixed-capacity arena of boxes for one frame. Slot 0 is the
// root; slots 1..Len()-1 hold boxes in creation order. The slab is
// allocated once and reused by every frame.
type Store struct {
	boxes []Box
	n     int
}

// NewStore allocates a store for capacity boxes plus the root.
// A capacity below 1 selects DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	s := &Store{boxes: make([]Box, capacity+1)}
	s.Reset()
	return s
}

// Reset discards every box and leaves only an unconfigured root.
func (s *Store) Reset() {
	s.boxes[Root].reset(Root, 0, Config{})
	s.n = 1
}

// Capacity returns the number of non-root boxes the store can hold.
func (s *Store) Capacity() int {
	return len(s.boxes) - 1
}

// Len returns the number of live boxes, root included.
func (s *Store) Len() int {
	return s.n
}

// Root returns the frame root.
func (s *Store) Root() *Box {
	return &s.boxes[Root]
}

// Box returns the box with the given ID, or nil if it is not live.
func (s *Store) Box(id ID) *Box {
	if id < 0 || int(id) >= s.n {
		return nil
	}
	return &s.boxes[id]
}

// Children iterates over the direct children of id in creation order.
func (s *Store) Children(id ID) iter.Seq[*Box] {
	return func(yield func(*Box) bool) {
		b := s.Box(id)
		if b == nil {
			return
		}
		for c := b.first; c != None; c = s.boxes[c].next {
			if !yield(&s.boxes[c]) {
				return
			}
		}
	}
}

// All iterates over every live box in creation order, root first.
func (s *Store) All() iter.Seq[*Box] {
	return func(yield func(*Box) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(&s.boxes[i]) {
				return
			}
		}
	}
}

// alloc takes the next free slot and links it as the last child of parent.
func (s *Store) alloc(parent ID, cfg Config) *Box {
	if s.n >= len(s.boxes) {
		panic(fmt.Errorf("layout: %w (capacity %d)", ErrCapacity, s.Capacity()))
	}
	id := ID(s.n)
	s.n++

	p := &s.boxes[parent]
	b := &s.boxes[id]
	b.reset(id, p.Level+1, cfg)
	b.parent = parent

	if p.first == None {
		p.first = id
	} else {
		s.boxes[p.last].next = id
	}
	p.last = id
	p.count++
	return b
}
