package debounce

import (
	"errors"

	"go.opentelemetry.io/otel/trace"
)

// Option is a functional option for configuring a [Debouncer] via [New].
type Option func(*options) error

type options struct {
	tracer trace.Tracer
}

// WithTracer records a span around each delayed execution
// of the wrapped function.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		o.tracer = tracer
		return nil
	}
}
