package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/pacerkit/pacer/throttle"
)

// Limit rejects inbound requests beyond the configured token bucket
// with 429 Too Many Requests. Unlike the outbound round tripper in the
// throttle package, rejected requests are not queued.
func Limit(cfg throttle.Config, logger *slog.Logger) (Middleware, error) {
	if cfg.RPS <= 0 || cfg.Burst <= 0 {
		return nil, fmt.Errorf("rps[%d] burst[%d]: %w", cfg.RPS, cfg.Burst, throttle.ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)

	m := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.Info("request rejected, tokens exhausted",
					"rate", cfg.RPS, "burst", cfg.Burst, "path", r.URL.Path, "remoteaddr", r.RemoteAddr)
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}

	return m, nil
}
