package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-imui"
	"github.com/grindlemire/go-imui/backend/term"
	"github.com/grindlemire/go-imui/internal/debug"
	"github.com/grindlemire/go-imui/internal/scene"
)

type runOpts struct {
	cellWidth  int
	cellHeight int
	outlines   bool
}

func newRunCmd() *cobra.Command {
	opts := runOpts{cellWidth: 8, cellHeight: 16}

	cmd := &cobra.Command{
		Use:   "run [scene.toml]",
		Short: "Run a scene interactively in the terminal",
		Long: `Run draws a scene in the terminal and redraws it on every mouse move, click and resize. Interactive boxes change color on hover and toggle on click.

Press q, Esc or Ctrl-C to quit. Set IMUI_DEBUG to a file path to capture per-frame logs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.cellWidth < 1 || opts.cellHeight < 1 {
				return fmt.Errorf("cell size must be at least 1x1, got %dx%d", opts.cellWidth, opts.cellHeight)
			}
			s, err := loadScene(firstArg(args))
			if err != nil {
				return err
			}
			return runInteractive(cmd.Context(), s, &opts)
		},
	}

	cmd.Flags().IntVar(&opts.cellWidth, "cell-width", opts.cellWidth, "layout units per terminal column")
	cmd.Flags().IntVar(&opts.cellHeight, "cell-height", opts.cellHeight, "layout units per terminal row")
	cmd.Flags().BoolVar(&opts.outlines, "outlines", false, "outline padding (red) and content (green) boxes")

	return cmd
}

// errQuit ends the event loop when the user quits.
var errQuit = errors.New("quit")

func runInteractive(ctx context.Context, s *scene.Scene, opts *runOpts) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	defer debug.Close()

	sess, err := newSession(screen, s, opts, debug.Logger())
	if err != nil {
		return err
	}
	if err := sess.draw(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})
	g.Go(func() error {
		return sess.loop(ctx, screen)
	})

	if err := g.Wait(); !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

// loop polls screen until the user quits, the screen closes or ctx is done.
func (s *session) loop(ctx context.Context, screen tcell.Screen) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return errQuit
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		quit, redraw := s.handle(ev)
		if quit {
			return errQuit
		}
		if redraw {
			if err := s.draw(); err != nil {
				return err
			}
		}
	}
}

// session is one interactive run: the scene, its host state and the
// terminal backend it draws through.
type session struct {
	scene   *scene.Scene
	state   *scene.State
	ui      *imui.Context
	backend *term.Backend
	logger  *log.Logger
	pressed bool
}

func newSession(screen term.Screen, s *scene.Scene, opts *runOpts, logger *log.Logger) (*session, error) {
	be := term.New(screen, term.WithCellSize(opts.cellWidth, opts.cellHeight))
	ui, err := imui.New(
		imui.WithBackend(be),
		imui.WithLogger(logger),
		imui.WithDebugOutlines(opts.outlines),
	)
	if err != nil {
		return nil, err
	}
	return &session{scene: s, state: scene.NewState(), ui: ui, backend: be, logger: logger}, nil
}

// draw lays out and presents one frame.
func (s *session) draw() error {
	s.backend.Clear()
	w, h := s.backend.Viewport()
	if err := frame(s.ui, s.scene, w, h, s.state); err != nil {
		return err
	}
	changed := s.backend.Show()
	s.logger.Debug("frame shown", "frame", s.ui.Frame(), "cells", changed)
	return nil
}

// handle applies one terminal event and reports whether to quit and whether
// the frame needs redrawing.
func (s *session) handle(ev tcell.Event) (quit, redraw bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return isQuitKey(ev.Key(), ev.Rune()), false

	case *tcell.EventResize:
		w, h := ev.Size()
		s.backend.Resize(w, h)
		return false, true

	case *tcell.EventMouse:
		col, row := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		clicked := down && !s.pressed
		s.pressed = down

		x, y := s.backend.ToLayout(col, row)
		changed := s.state.Pointer(s.ui, x, y, clicked)
		if clicked {
			s.logger.Debug("click", "x", x, "y", y, "hovered", s.state.Hovered())
		}
		return false, changed
	}
	return false, false
}

func isQuitKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == 'Q'
	}
	return false
}
