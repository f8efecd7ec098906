package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Panics recovers from handler panics, logging the value and stack
// trace and answering 500 if nothing was written yet.
func Panics(log *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("handler panicked",
						"panic", rec, "path", r.URL.Path, "trace", string(debug.Stack()))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
