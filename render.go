package imui

import "github.com/grindlemire/go-imui/internal/layout"

// Render walks the last laid-out frame depth-first and draws it with r.
// Containers draw their padding box background before their children;
// text leaves draw their text at the content origin.
//
// Use Render to draw the same frame to more than one target.
func (c *Context) Render(r Renderer) {
	if r == nil {
		return
	}
	var outliner OutlineDrawer
	if c.outlines {
		outliner, _ = r.(OutlineDrawer)
	}
	c.renderBox(r, outliner, c.store.Root())
}

func (c *Context) renderBox(r Renderer, outliner OutlineDrawer, b *Box) {
	if b.IsText() {
		st := b.Config.Text
		r.DrawText(st.Font, b.Text, st.Size, b.Layout.Content.X, b.Layout.Content.Y, st.Color)
		return
	}

	r.DrawRect(b.Layout.Padding, b.Config.Background, b.Config.Roundness)
	for child := range c.store.Children(b.ID) {
		c.renderBox(r, outliner, child)
	}

	if outliner != nil && b.ID != layout.Root {
		outliner.DrawRectOutline(b.Layout.Padding, Red, 1)
		outliner.DrawRectOutline(b.Layout.Content, Green, 1)
	}
}
