package throttle

import (
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Option is a functional option for configuring a [Throttler] via [New].
type Option func(*options) error

type options struct {
	logger *slog.Logger
	tracer trace.Tracer
}

// WithLogger replaces the default logger used to report trailing
// execution failures that have no observer to receive them.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// WithTracer records a span around each execution of the wrapped
// function, on both the immediate and trailing paths.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		o.tracer = tracer
		return nil
	}
}
