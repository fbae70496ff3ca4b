// Package cli implements the imui command-line interface.
//
// The commands lay out a scene file (or the built-in demo) and either
// render it to PNG, print the computed boxes, answer a hit test, or run it
// interactively in the terminal.
//
// # Commands
//
//   - render: draw a scene to a PNG file
//   - dump: print every box with its content, padding and margin rectangles
//   - hit: report which box lies under a point
//   - run: interactive terminal session with hover and click
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. The run command owns the terminal, so it
// logs to the file named by IMUI_DEBUG instead.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-imui/internal/scene"
)

const (
	defaultWidth  = 800 // default viewport width
	defaultHeight = 600 // default viewport height
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand builds the imui command tree.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "imui",
		Short:        "imui lays out immediate-mode box trees",
		Long:         `imui lays out box trees described in TOML scene files with fixed, fit and grow sizing, then renders them to PNG, prints the computed rectangles, or runs them interactively in the terminal.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("imui %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newDumpCmd())
	root.AddCommand(newHitCmd())
	root.AddCommand(newRunCmd())

	return root
}

// Execute runs the CLI with ctx and returns the first command error.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// loadScene reads the scene at path, or the built-in demo when path is empty.
func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Demo(), nil
	}
	return scene.Load(path)
}

// viewport holds the frame size flags shared by the layout commands.
type viewport struct {
	width  int
	height int
}

func (v *viewport) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&v.width, "width", defaultWidth, "viewport width")
	cmd.Flags().IntVar(&v.height, "height", defaultHeight, "viewport height")
}

func (v *viewport) validate() error {
	if v.width < 1 || v.height < 1 {
		return fmt.Errorf("viewport must be at least 1x1, got %dx%d", v.width, v.height)
	}
	return nil
}
