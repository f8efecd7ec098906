package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Trace starts a span per request, injects otel propagation headers
// into the response, and stores a request ID in the context for
// downstream handlers and [Logger]. Without a recording tracer, the
// request ID falls back to a fresh UUID.
func Trace(tracer trace.Tracer) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracer.Start(r.Context(), "middleware.handler")
			defer span.End()

			span.SetAttributes(attribute.String("path", r.RequestURI))
			otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(w.Header()))

			requestID := span.SpanContext().TraceID().String()
			if !span.SpanContext().TraceID().IsValid() {
				requestID = uuid.New().String()
			}

			next.ServeHTTP(w, r.WithContext(setRequestID(ctx, requestID)))
		})
	}
}
