package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-imui"
	"github.com/grindlemire/go-imui/internal/dump"
)

type hitOpts struct {
	viewport
	font string
}

func newHitCmd() *cobra.Command {
	var opts hitOpts

	cmd := &cobra.Command{
		Use:   "hit [scene.toml] X Y",
		Short: "Find the box under a point",
		Long:  `Hit lays out a scene and prints the deepest box whose padding box contains the point, preceded by its ancestor chain.`,
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			path := ""
			if len(args) == 3 {
				path, args = args[0], args[1:]
			}
			x, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid X %q: %w", args[0], err)
			}
			y, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid Y %q: %w", args[1], err)
			}

			ui, err := layoutScene(cmd.Context(), path, opts.viewport, opts.font)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			b := ui.HitTest(x, y)
			if b == nil {
				fmt.Fprintf(out, "no box at (%d, %d)\n", x, y)
				return nil
			}
			fmt.Fprintln(out, ancestry(ui, b))
			fmt.Fprintln(out, strings.TrimLeft(dump.Line(b, dump.Options{Plain: true}), " "))
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.font, "font", "", "TrueType/OpenType font file for font 0")

	return cmd
}

// ancestry formats the path from the root to b, e.g. "0 > 1 > 6 > 7".
func ancestry(ui *imui.Context, b *imui.Box) string {
	var ids []string
	for ; b != nil; b = ui.Parent(b) {
		ids = append(ids, strconv.Itoa(int(b.ID)))
	}
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return strings.Join(ids, " > ")
}
