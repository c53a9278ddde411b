package edge

import (
	"log/slog"

	"github.com/dmitrymomot/edge/core/view"
)

// Option configures a server during creation.
type Option[T any] func(*Edge[T])

// WithLogger sets the structured logger. The default discards all output.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(e *Edge[T]) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithConfig replaces the default configuration wholesale, typically
// with a value produced by LoadConfig.
func WithConfig[T any](cfg Config) Option[T] {
	return func(e *Edge[T]) {
		e.cfg = cfg
	}
}

// WithViews sets the template engine used by Render and RegisterTemplate.
func WithViews[T any](engine *view.Engine) Option[T] {
	return func(e *Edge[T]) {
		if engine != nil {
			e.views = engine
		}
	}
}

// WithFactory installs a custom constructor for the per-request
// application instance, overriding the mode implied by Start or
// StartWith. A constructor error fails only the request that triggered
// it.
func WithFactory[T any](factory func() (*T, error)) Option[T] {
	return func(e *Edge[T]) {
		if factory != nil {
			e.newApp = factory
			e.customFactory = true
		}
	}
}
