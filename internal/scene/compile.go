package scene

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-imui"
)

var (
	// ErrInvalid is wrapped by every validation error from Compile.
	ErrInvalid = errors.New("invalid scene")
)

// Scene is a validated, ready-to-build box tree.
type Scene struct {
	Root     imui.BoxConfig
	Elements []*Element

	count int
}

// Element is one compiled box. Index numbers elements in pre-order and is
// stable across frames, which is what State keys on.
type Element struct {
	Index    int
	Path     string
	Config   imui.BoxConfig
	Text     string
	Style    imui.TextStyle
	IsText   bool
	Hover    *imui.Color
	Active   *imui.Color
	Children []*Element
}

// Interactive reports whether the element reacts to hover or clicks.
func (e *Element) Interactive() bool {
	return e.Hover != nil || e.Active != nil
}

// Len returns the number of elements in the scene.
func (s *Scene) Len() int {
	return s.count
}

// Walk calls fn for every element in pre-order.
func (s *Scene) Walk(fn func(*Element)) {
	var walk func([]*Element)
	walk = func(es []*Element) {
		for _, e := range es {
			fn(e)
			walk(e.Children)
		}
	}
	walk(s.Elements)
}

// Compile validates f and converts it to typed box configs.
func Compile(f *File) (*Scene, error) {
	s := &Scene{}

	dir, err := parseDirection(f.Direction)
	if err != nil {
		return nil, fmt.Errorf("root: %w", err)
	}
	bg, err := parseColor(f.Background, imui.Transparent)
	if err != nil {
		return nil, fmt.Errorf("root background: %w", err)
	}
	padding, err := parseEdges(f.Padding)
	if err != nil {
		return nil, fmt.Errorf("root padding: %w", err)
	}
	margin, err := parseEdges(f.Margin)
	if err != nil {
		return nil, fmt.Errorf("root margin: %w", err)
	}
	s.Root = imui.BoxConfig{Direction: dir, Background: bg, Padding: padding, Margin: margin}

	for i := range f.Boxes {
		e, err := s.compile(&f.Boxes[i], fmt.Sprintf("box[%d]", i))
		if err != nil {
			return nil, err
		}
		s.Elements = append(s.Elements, e)
	}
	return s, nil
}

func (s *Scene) compile(n *Node, path string) (*Element, error) {
	e := &Element{Index: s.count, Path: path}
	s.count++

	if n.Text != "" {
		return e, s.compileText(e, n)
	}

	var err error
	if e.Config.SizingX, e.Config.SizingY, err = parseSizing(n); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if n.Width < 0 || n.Height < 0 {
		return nil, fmt.Errorf("%s: %w: negative width or height", path, ErrInvalid)
	}
	e.Config.Width, e.Config.Height = n.Width, n.Height

	if e.Config.Direction, err = parseDirection(n.Direction); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if e.Config.Padding, err = parseEdges(n.Padding); err != nil {
		return nil, fmt.Errorf("%s padding: %w", path, err)
	}
	if e.Config.Margin, err = parseEdges(n.Margin); err != nil {
		return nil, fmt.Errorf("%s margin: %w", path, err)
	}
	if e.Config.Background, err = parseColor(n.Background, imui.Transparent); err != nil {
		return nil, fmt.Errorf("%s background: %w", path, err)
	}
	if e.Hover, err = parseOptionalColor(n.Hover); err != nil {
		return nil, fmt.Errorf("%s hover: %w", path, err)
	}
	if e.Active, err = parseOptionalColor(n.Active); err != nil {
		return nil, fmt.Errorf("%s active: %w", path, err)
	}
	if n.Roundness < 0 || n.Roundness > 1 {
		return nil, fmt.Errorf("%s: %w: roundness %v outside [0, 1]", path, ErrInvalid, n.Roundness)
	}
	e.Config.Roundness = n.Roundness

	for i := range n.Boxes {
		child, err := s.compile(&n.Boxes[i], fmt.Sprintf("%s.box[%d]", path, i))
		if err != nil {
			return nil, err
		}
		e.Children = append(e.Children, child)
	}
	return e, nil
}

func (s *Scene) compileText(e *Element, n *Node) error {
	if len(n.Boxes) > 0 {
		return fmt.Errorf("%s: %w: text boxes cannot have children", e.Path, ErrInvalid)
	}
	if n.Font < 0 || n.Font > 0xffff {
		return fmt.Errorf("%s: %w: font %d out of range", e.Path, ErrInvalid, n.Font)
	}
	if n.FontSize < 0 {
		return fmt.Errorf("%s: %w: negative font_size", e.Path, ErrInvalid)
	}
	color, err := parseColor(n.Color, imui.White)
	if err != nil {
		return fmt.Errorf("%s color: %w", e.Path, err)
	}

	size := n.FontSize
	if size == 0 {
		size = DefaultFontSize
	}
	e.IsText = true
	e.Text = n.Text
	e.Style = imui.TextStyle{Font: imui.FontID(n.Font), Size: size, Color: color}
	return nil
}

func parseSizing(n *Node) (x, y imui.Sizing, err error) {
	both, err := sizingByName(n.Sizing)
	if err != nil {
		return 0, 0, err
	}
	x, y = both, both
	if n.SizingX != "" {
		if x, err = sizingByName(n.SizingX); err != nil {
			return 0, 0, err
		}
	}
	if n.SizingY != "" {
		if y, err = sizingByName(n.SizingY); err != nil {
			return 0, 0, err
		}
	}
	return x, y, nil
}

func sizingByName(name string) (imui.Sizing, error) {
	switch name {
	case "", "fit":
		return imui.SizingFit, nil
	case "fixed":
		return imui.SizingFixed, nil
	case "grow":
		return imui.SizingGrow, nil
	}
	return 0, fmt.Errorf("%w: unknown sizing %q", ErrInvalid, name)
}

func parseDirection(name string) (imui.Direction, error) {
	switch name {
	case "", "top-to-bottom":
		return imui.TopToBottom, nil
	case "left-to-right":
		return imui.LeftToRight, nil
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalid, name)
}

// parseEdges follows CSS shorthand: one value for all sides, two for
// vertical and horizontal, four for top, right, bottom, left.
func parseEdges(v []int) (imui.Edges, error) {
	for _, n := range v {
		if n < 0 {
			return imui.Edges{}, fmt.Errorf("%w: negative spacing %v", ErrInvalid, v)
		}
	}
	switch len(v) {
	case 0:
		return imui.Edges{}, nil
	case 1:
		return imui.EdgeAll(v[0]), nil
	case 2:
		return imui.EdgeSymmetric(v[0], v[1]), nil
	case 4:
		return imui.EdgeTRBL(v[0], v[1], v[2], v[3]), nil
	}
	return imui.Edges{}, fmt.Errorf("%w: spacing needs 1, 2 or 4 values, got %d", ErrInvalid, len(v))
}

func parseColor(s string, fallback imui.Color) (imui.Color, error) {
	if s == "" {
		return fallback, nil
	}
	c, err := imui.HexColor(s)
	if err != nil {
		return imui.Color{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return c, nil
}

func parseOptionalColor(s string) (*imui.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := parseColor(s, imui.Transparent)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
