package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-imui"
)

// Cell represents a single character cell in the terminal buffer.
// Wide characters (CJK, emoji) occupy two cells; the first cell holds
// the rune, the second is marked as a continuation.
type Cell struct {
	Rune  rune
	Fg    imui.Color
	Bg    imui.Color
	Width uint8 // Display width (1 or 2; 0 for continuation)
}

// blank is an empty cell with terminal default colors.
var blank = Cell{Rune: ' ', Width: 1}

// NewCell creates a Cell with its display width detected.
func NewCell(r rune, fg, bg imui.Color) Cell {
	return Cell{Rune: r, Fg: fg, Bg: bg, Width: uint8(RuneWidth(r))}
}

// IsContinuation returns true if this cell is the second half of a wide
// character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Style converts the cell colors to a tcell style. Transparent colors map to
// the terminal default.
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(c.Fg)).Background(tcellColor(c.Bg))
}

func tcellColor(c imui.Color) tcell.Color {
	if c.A == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// RuneWidth returns the display width of a rune in terminal cells, clamped
// to 1 or 2.
func RuneWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w == 2 {
		return 2
	}
	return 1
}

// StringWidth returns the display width of s in terminal cells.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}
