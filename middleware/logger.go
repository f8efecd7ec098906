package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// statusWriter captures the status code written by the handler.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Logger logs the start and completion of each request.
func Logger(log *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if r.URL.RawQuery != "" {
				path = fmt.Sprintf("%s?%s", path, r.URL.RawQuery)
			}

			log.Info("request started",
				"method", r.Method, "path", path, "remoteaddr", r.RemoteAddr,
				"requestID", RequestID(r.Context()))

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(sw, r)

			log.Info("request completed",
				"method", r.Method, "path", path, "remoteaddr", r.RemoteAddr,
				"requestID", RequestID(r.Context()),
				"statusCode", sw.status, "since", time.Since(start).String())
		})
	}
}
