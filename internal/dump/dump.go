// Package dump prints a laid-out frame as an indented box listing: one line
// per box with its id, text, and content, padding and margin rectangles.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/go-imui"
)

var (
	styleID    = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleText  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Options controls the listing.
type Options struct {
	// Plain disables colors.
	Plain bool
	// Cursor appends each box's final layout cursor.
	Cursor bool
	// Config appends sizing and direction.
	Config bool
}

// Write prints every box of s in creation order, which is depth-first.
func Write(w io.Writer, s *imui.Store, opts Options) error {
	for b := range s.All() {
		if _, err := fmt.Fprintln(w, Line(b, opts)); err != nil {
			return err
		}
	}
	return nil
}

// String returns the listing Write would print.
func String(s *imui.Store, opts Options) string {
	var sb strings.Builder
	Write(&sb, s, opts)
	return sb.String()
}

// Line formats a single box.
func Line(b *imui.Box, opts Options) string {
	paint := func(st lipgloss.Style, s string) string {
		if opts.Plain {
			return s
		}
		return st.Render(s)
	}
	rect := func(label string, r imui.Rect) string {
		return paint(styleLabel, label) + paint(styleDim, fmt.Sprintf("[x=%d y=%d w=%d h=%d]", r.X, r.Y, r.Width, r.Height))
	}

	parts := []string{paint(styleID, fmt.Sprintf("[%d]", b.ID))}
	if b.IsText() {
		parts = append(parts, paint(styleText, fmt.Sprintf("%q", b.Text)))
	}
	parts = append(parts,
		rect("content", b.Layout.Content),
		rect("padding", b.Layout.Padding),
		rect("margin", b.Layout.Margin),
	)
	if opts.Cursor {
		c := b.Layout.Cursor
		parts = append(parts, paint(styleLabel, "cursor")+paint(styleDim, fmt.Sprintf("[x=%d y=%d]", c.X, c.Y)))
	}
	if opts.Config && !b.IsText() {
		cfg := b.Config
		parts = append(parts, paint(styleDim, fmt.Sprintf("%s/%s %s", cfg.SizingX, cfg.SizingY, cfg.Direction)))
	}

	return strings.Repeat("    ", b.Level) + strings.Join(parts, " ")
}
