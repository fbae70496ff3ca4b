package cli

import (
	"context"
	"fmt"

	"github.com/grindlemire/go-imui"
	"github.com/grindlemire/go-imui/internal/scene"
)

// frame builds s on ui and ends the frame. Layout panics such as an
// exhausted box budget come back as errors.
func frame(ui *imui.Context, s *scene.Scene, width, height int, st *scene.State) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("laying out scene: %w", e)
		}
	}()
	s.Build(ui, width, height, st)
	ui.End()
	return nil
}

// layoutScene lays s out without drawing, measuring text with the raster
// backend so results match what render produces.
func layoutScene(ctx context.Context, path string, vp viewport, font string) (*imui.Context, error) {
	s, err := loadScene(path)
	if err != nil {
		return nil, err
	}
	measurer, err := newRaster(1, 1, font)
	if err != nil {
		return nil, err
	}
	ui, err := imui.New(imui.WithMeasurer(measurer), imui.WithLogger(loggerFromContext(ctx)))
	if err != nil {
		return nil, err
	}
	if err := frame(ui, s, vp.width, vp.height, nil); err != nil {
		return nil, err
	}
	return ui, nil
}
