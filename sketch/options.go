package sketch

import (
	"log/slog"

	"github.com/gogpu/lite"
)

// Option configures Render.
type Option func(*options)

type options struct {
	background lite.RGBA
	logger     *slog.Logger
}

func defaultOptions() options {
	return options{
		background: lite.White,
	}
}

// WithBackground sets the background used when the sketch has none.
func WithBackground(c lite.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithLogger logs the render to l instead of lite.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
