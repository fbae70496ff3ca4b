// Package scene loads box trees from TOML files and replays them into an
// imui.Context frame by frame.
//
// A scene is the static description of a frame; State carries the host's
// hover and active flags between frames.
package scene

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed demo.toml
var demo []byte

// DefaultFontSize is used for text boxes that leave font_size unset.
const DefaultFontSize = 24

// File is the raw TOML form of a scene. The top-level keys configure the
// root box.
type File struct {
	Direction  string `toml:"direction"`
	Background string `toml:"background"`
	Padding    []int  `toml:"padding"`
	Margin     []int  `toml:"margin"`
	Boxes      []Node `toml:"box"`
}

// Node is one [[box]] table.
type Node struct {
	Sizing     string  `toml:"sizing"`
	SizingX    string  `toml:"sizing_x"`
	SizingY    string  `toml:"sizing_y"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Direction  string  `toml:"direction"`
	Padding    []int   `toml:"padding"`
	Margin     []int   `toml:"margin"`
	Background string  `toml:"background"`
	Hover      string  `toml:"hover"`
	Active     string  `toml:"active"`
	Roundness  float32 `toml:"roundness"`

	Text     string `toml:"text"`
	Font     int    `toml:"font"`
	FontSize int    `toml:"font_size"`
	Color    string `toml:"color"`

	Boxes []Node `toml:"box"`
}

// Parse decodes and compiles a scene. Unknown keys are rejected so typos do
// not silently change a layout.
func Parse(data []byte) (*Scene, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("decoding scene: unknown keys %s", strings.Join(keys, ", "))
	}
	return Compile(&f)
}

// Read parses a scene from r.
func Read(r io.Reader) (*Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	return Parse(data)
}

// Load parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Demo returns the built-in demo scene.
func Demo() *Scene {
	s, err := Parse(demo)
	if err != nil {
		panic(fmt.Errorf("scene: embedded demo: %w", err))
	}
	return s
}

// DemoSource returns the TOML text of the built-in demo scene.
func DemoSource() []byte {
	return demo
}
