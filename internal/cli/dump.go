package cli

import (
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-imui/internal/dump"
)

type dumpOpts struct {
	viewport
	font   string
	cursor bool
	config bool
	plain  bool
}

func newDumpCmd() *cobra.Command {
	var opts dumpOpts

	cmd := &cobra.Command{
		Use:   "dump [scene.toml]",
		Short: "Print the computed layout of a scene",
		Long:  `Dump lays out a scene and prints one line per box, indented by depth, with its content, padding and margin rectangles.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			ui, err := layoutScene(cmd.Context(), firstArg(args), opts.viewport, opts.font)
			if err != nil {
				return err
			}
			return dump.Write(cmd.OutOrStdout(), ui.Store(), dump.Options{
				Plain:  opts.plain,
				Cursor: opts.cursor,
				Config: opts.config,
			})
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.font, "font", "", "TrueType/OpenType font file for font 0")
	cmd.Flags().BoolVar(&opts.cursor, "cursor", false, "show each box's final layout cursor")
	cmd.Flags().BoolVar(&opts.config, "config", false, "show sizing and direction")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "disable colors")

	return cmd
}
