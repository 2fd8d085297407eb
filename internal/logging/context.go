package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ComponentField tags log lines with the subsystem that emitted them.
const ComponentField = "component"

// FromContext returns the logger carried by ctx. A context without one
// yields zerolog's disabled logger, so callers never nil-check.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent derives a context whose logger is tagged with component.
func WithComponent(ctx context.Context, component string) context.Context {
	l := FromContext(ctx).With().Str(ComponentField, component).Logger()
	return l.WithContext(ctx)
}
