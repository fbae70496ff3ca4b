package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-imui"
	"github.com/grindlemire/go-imui/backend/raster"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	viewport
	output   string // PNG path
	outlines bool   // outline padding and content boxes
	font     string // TrueType font replacing the bitmap face
	capacity int    // box budget per frame
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{output: "imui.png", capacity: imui.DefaultCapacity}

	cmd := &cobra.Command{
		Use:   "render [scene.toml]",
		Short: "Render a scene to PNG",
		Long:  `Render lays out a scene at the given viewport size and draws it to a PNG file. Without a scene file the built-in demo is used.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			return runRender(cmd.Context(), firstArg(args), &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output PNG file")
	cmd.Flags().BoolVar(&opts.outlines, "outlines", false, "outline padding (red) and content (green) boxes")
	cmd.Flags().StringVar(&opts.font, "font", "", "TrueType/OpenType font file for font 0")
	cmd.Flags().IntVar(&opts.capacity, "capacity", opts.capacity, "maximum boxes per frame")

	return cmd
}

func runRender(ctx context.Context, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	s, err := loadScene(path)
	if err != nil {
		return err
	}

	be, err := newRaster(opts.width, opts.height, opts.font)
	if err != nil {
		return err
	}
	be.Clear(s.Root.Background)

	ui, err := imui.New(
		imui.WithBackend(be),
		imui.WithCapacity(opts.capacity),
		imui.WithLogger(logger),
		imui.WithDebugOutlines(opts.outlines),
	)
	if err != nil {
		return err
	}

	if err := frame(ui, s, opts.width, opts.height, nil); err != nil {
		return err
	}
	if err := be.Err(); err != nil {
		logger.Warn("font fallback", "err", err)
	}
	if err := be.SavePNG(opts.output); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %s (%dx%d, %d boxes)", opts.output, opts.width, opts.height, ui.Store().Len()-1))
	return nil
}

func newRaster(width, height int, font string) (*raster.Backend, error) {
	var opts []raster.Option
	if font != "" {
		opts = append(opts, raster.WithFont(0, font))
	}
	return raster.New(width, height, opts...)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
