package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grindlemire/go-imui"
)

func TestParse_Errors(t *testing.T) {
	type tc struct {
		src     string
		invalid bool
		wantMsg string
	}

	tests := map[string]tc{
		"syntax":           {src: "[[box]\n", wantMsg: "decoding scene"},
		"unknown key":      {src: "[[box]]\nsizin = \"grow\"\n", wantMsg: "box.sizin"},
		"bad sizing":       {src: "[[box]]\nsizing = \"huge\"\n", invalid: true, wantMsg: "box[0]"},
		"bad sizing_y":     {src: "[[box]]\nsizing_y = \"tall\"\n", invalid: true},
		"bad direction":    {src: "direction = \"diagonal\"\n", invalid: true, wantMsg: "root"},
		"bad color":        {src: "[[box]]\nbackground = \"#12\"\n", invalid: true, wantMsg: "background"},
		"bad hover":        {src: "[[box]]\nhover = \"pink\"\n", invalid: true, wantMsg: "hover"},
		"three edges":      {src: "padding = [1, 2, 3]\n", invalid: true, wantMsg: "root padding"},
		"negative margin":  {src: "[[box]]\nmargin = [-1]\n", invalid: true},
		"negative width":   {src: "[[box]]\nsizing = \"fixed\"\nwidth = -4\n", invalid: true},
		"roundness":        {src: "[[box]]\nroundness = 1.5\n", invalid: true},
		"negative font":    {src: "[[box]]\ntext = \"x\"\nfont_size = -1\n", invalid: true},
		"text children":    {src: "[[box]]\ntext = \"x\"\n  [[box.box]]\n  sizing = \"grow\"\n", invalid: true, wantMsg: "children"},
		"nested bad color": {src: "[[box]]\n  [[box.box]]\n  [[box.box]]\n  color = \"#zzz\"\n  text = \"y\"\n", invalid: true, wantMsg: "box[0].box[1]"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if tt.invalid && !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not wrap ErrInvalid", err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestParse_Fields(t *testing.T) {
	src := `
direction = "left-to-right"
background = "#000000"
padding = [1, 2]

[[box]]
sizing = "grow"
sizing_y = "fixed"
height = 40
padding = [1, 2, 3, 4]
background = "#ff0000"
active = "#00ff00"
roundness = 0.5

  [[box.box]]
  text = "label"
  font = 2
  color = "#0000ff"
`
	s, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if s.Root.Direction != imui.LeftToRight || s.Root.Padding != imui.EdgeSymmetric(1, 2) {
		t.Errorf("root = %+v", s.Root)
	}
	if s.Root.Background != imui.Black {
		t.Errorf("root background = %+v, want black", s.Root.Background)
	}
	if s.Len() != 2 || len(s.Elements) != 1 {
		t.Fatalf("Len() = %d, top level = %d, want 2 and 1", s.Len(), len(s.Elements))
	}

	box := s.Elements[0]
	want := imui.BoxConfig{
		SizingX:    imui.SizingGrow,
		SizingY:    imui.SizingFixed,
		Height:     40,
		Padding:    imui.EdgeTRBL(1, 2, 3, 4),
		Background: imui.RGB(255, 0, 0),
		Roundness:  0.5,
	}
	if box.Config != want {
		t.Errorf("config = %+v, want %+v", box.Config, want)
	}
	if !box.Interactive() || box.Hover != nil || *box.Active != imui.RGB(0, 255, 0) {
		t.Errorf("interaction colors hover=%v active=%v", box.Hover, box.Active)
	}

	text := box.Children[0]
	if !text.IsText || text.Text != "label" || text.Index != 1 || text.Path != "box[0].box[0]" {
		t.Errorf("text element = %+v", text)
	}
	if text.Style != (imui.TextStyle{Font: 2, Size: DefaultFontSize, Color: imui.RGB(0, 0, 255)}) {
		t.Errorf("text style = %+v", text.Style)
	}
	if s.Find(1) != text || s.Find(5) != nil {
		t.Error("Find() did not resolve element indexes")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(path, []byte("[[box]]\nsizing = \"grow\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v, want ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	os.WriteFile(bad, []byte("direction = 3\n"), 0o644)
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "bad.toml") {
		t.Errorf("Load(bad) = %v, want error naming the file", err)
	}

	if _, err := Read(strings.NewReader("[[box]]\n")); err != nil {
		t.Errorf("Read() error: %v", err)
	}
}
