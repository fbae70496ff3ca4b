package imui

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// MaxCapacity is the largest per-frame box budget WithCapacity accepts.
const MaxCapacity = 1 << 16

// Option is a functional option for configuring a Context.
type Option func(*Context) error

// WithCapacity sets how many boxes a single frame may open.
// Default is DefaultCapacity. Valid range is 1-MaxCapacity.
func WithCapacity(n int) Option {
	return func(c *Context) error {
		if n < 1 {
			return fmt.Errorf("capacity must be at least 1")
		}
		if n > MaxCapacity {
			return fmt.Errorf("capacity cannot exceed %d", MaxCapacity)
		}
		c.capacity = n
		return nil
	}
}

// WithBackend sets the backend used to measure text and draw frames.
// Without a backend text measures zero wide and End draws nothing.
func WithBackend(b Backend) Option {
	return func(c *Context) error {
		c.backend = b
		return nil
	}
}

// WithMeasurer overrides the backend's text measurement. Use it to lay out
// frames without drawing them.
func WithMeasurer(m TextMeasurer) Option {
	return func(c *Context) error {
		if m == nil {
			return fmt.Errorf("measurer must not be nil")
		}
		c.measurer = m
		return nil
	}
}

// WithLogger sets the logger for per-frame diagnostics at debug level.
// Default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Context) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		c.logger = l
		return nil
	}
}

// WithDebugOutlines outlines every non-root container after its children
// are drawn: the padding box in Red and the content box in Green. The
// backend must implement OutlineDrawer.
func WithDebugOutlines(enabled bool) Option {
	return func(c *Context) error {
		c.outlines = enabled
		return nil
	}
}
