// Package raster draws imui frames into an in-memory image with gg and
// writes them out as PNG.
//
// FontID 0 is the built-in 7x13 bitmap face unless WithFont replaces it.
// Other IDs map to TrueType/OpenType files registered with WithFont.
package raster

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/grindlemire/go-imui"
)

// Backend implements imui.Backend on a gg drawing context.
type Backend struct {
	dc    *gg.Context
	fonts map[imui.FontID]*opentype.Font
	faces map[faceKey]font.Face
	err   error
}

type faceKey struct {
	font imui.FontID
	size int
}

var (
	_ imui.Backend       = (*Backend)(nil)
	_ imui.OutlineDrawer = (*Backend)(nil)
	_ imui.Scissor       = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend) error

// WithFont registers the font file at path under id.
func WithFont(id imui.FontID, path string) Option {
	return func(b *Backend) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading font %d: %w", id, err)
		}
		return WithFontData(id, data)(b)
	}
}

// WithFontData registers an in-memory TrueType or OpenType font under id.
func WithFontData(id imui.FontID, data []byte) Option {
	return func(b *Backend) error {
		f, err := opentype.Parse(data)
		if err != nil {
			return fmt.Errorf("parsing font %d: %w", id, err)
		}
		b.fonts[id] = f
		return nil
	}
}

// New creates a backend with a width x height pixel canvas.
func New(width, height int, opts ...Option) (*Backend, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("canvas must be at least 1x1, got %dx%d", width, height)
	}
	b := &Backend{
		dc:    gg.NewContext(width, height),
		fonts: make(map[imui.FontID]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// face returns the face for font at size, falling back to the bitmap face
// for unregistered fonts or non-positive sizes.
func (b *Backend) face(id imui.FontID, size int) font.Face {
	f, ok := b.fonts[id]
	if !ok || size <= 0 {
		return basicfont.Face7x13
	}
	key := faceKey{id, size}
	if face, ok := b.faces[key]; ok {
		return face
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		b.err = fmt.Errorf("font %d at size %d: %w", id, size, err)
		return basicfont.Face7x13
	}
	b.faces[key] = face
	return face
}

// Err returns the last font error hit while measuring or drawing. Text
// affected by it was drawn with the fallback face.
func (b *Backend) Err() error {
	return b.err
}

// MeasureText returns the advance width of text in pixels.
func (b *Backend) MeasureText(id imui.FontID, text string, size int) int {
	return font.MeasureString(b.face(id, size), text).Ceil()
}

// DrawText draws text with its top edge at y.
func (b *Backend) DrawText(id imui.FontID, text string, size, x, y int, c imui.Color) {
	if c.A == 0 || text == "" {
		return
	}
	face := b.face(id, size)
	b.dc.SetFontFace(face)
	b.dc.SetColor(c)
	ascent := face.Metrics().Ascent.Ceil()
	b.dc.DrawString(text, float64(x), float64(y+ascent))
}

// DrawRect fills r. Positive roundness rounds the corners with a radius of
// roundness times half the shorter side.
func (b *Backend) DrawRect(r imui.Rect, c imui.Color, roundness float32) {
	if c.A == 0 || r.IsEmpty() {
		return
	}
	b.dc.SetColor(c)
	x, y, w, h := float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height)
	if radius := cornerRadius(r, roundness); radius > 0 {
		b.dc.DrawRoundedRectangle(x, y, w, h, radius)
	} else {
		b.dc.DrawRectangle(x, y, w, h)
	}
	b.dc.Fill()
}

func cornerRadius(r imui.Rect, roundness float32) float64 {
	if roundness <= 0 {
		return 0
	}
	roundness = min(roundness, 1)
	return float64(roundness) * float64(min(r.Width, r.Height)) / 2
}

// DrawRectOutline strokes the inside edge of r.
func (b *Backend) DrawRectOutline(r imui.Rect, c imui.Color, thickness int) {
	if c.A == 0 || r.IsEmpty() || thickness < 1 {
		return
	}
	t := float64(thickness)
	b.dc.SetColor(c)
	b.dc.SetLineWidth(t)
	b.dc.DrawRectangle(float64(r.X)+t/2, float64(r.Y)+t/2, float64(r.Width)-t, float64(r.Height)-t)
	b.dc.Stroke()
}

// BeginScissor clips drawing to r until the matching EndScissor. Scissors
// nest.
func (b *Backend) BeginScissor(r imui.Rect) {
	b.dc.Push()
	b.dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
	b.dc.Clip()
}

// EndScissor restores the clip active before the last BeginScissor.
func (b *Backend) EndScissor() {
	b.dc.Pop()
}

// Clear fills the whole canvas with c.
func (b *Backend) Clear(c imui.Color) {
	b.dc.SetColor(c)
	b.dc.Clear()
}

// Size returns the canvas dimensions in pixels.
func (b *Backend) Size() (width, height int) {
	return b.dc.Width(), b.dc.Height()
}

// Image returns the canvas.
func (b *Backend) Image() image.Image {
	return b.dc.Image()
}

// EncodePNG writes the canvas to w as PNG.
func (b *Backend) EncodePNG(w io.Writer) error {
	return b.dc.EncodePNG(w)
}

// SavePNG writes the canvas to path as PNG.
func (b *Backend) SavePNG(path string) error {
	if err := b.dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
