// Package middleware provides plain [net/http] adapters that apply the
// library's pacing and observability concerns at the host-framework
// boundary: inbound rate limiting, request tracing, logging, and panic
// recovery.
package middleware

import (
	"context"
	"net/http"
)

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

type ctxKey int

const requestIDKey ctxKey = 1

// RequestID returns the request ID set by [Trace], or "" when absent.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func setRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}
