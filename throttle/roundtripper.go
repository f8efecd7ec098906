package throttle

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

var (
	ErrInvalidConfig = errors.New("rps and burst must be greater than zero")
	ErrWaitingFailed = errors.New("limiter waiting failed")
	ErrContextEnded  = errors.New("throttle context ended")
)

// Config defines the transport throttler's requests-per-second
// limit and burst capacity.
type Config struct {
	RPS   int
	Burst int
}

// transport is an http.RoundTripper restricting outbound calls with a
// token bucket limiter. Unlike Throttler, suppressed requests are not
// coalesced; they block until a token is available.
type transport struct {
	cfg     Config
	limiter *rate.Limiter
	next    http.RoundTripper
	logger  *slog.Logger
}

// NewRoundTripper wraps next with token-bucket throttling per cfg.
// Requests beyond the bucket's capacity block until a token becomes
// available or the request context ends. A nil logger disables the
// exhaustion logging and its *Limiter.Allow probe.
func NewRoundTripper(cfg Config, logger *slog.Logger, next http.RoundTripper) (http.RoundTripper, error) {
	if cfg.RPS <= 0 || cfg.Burst <= 0 {
		return nil, fmt.Errorf("rps[%d] burst[%d]: %w", cfg.RPS, cfg.Burst, ErrInvalidConfig)
	}
	if next == nil {
		next = http.DefaultTransport
	}

	return &transport{
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		next:    next,
		logger:  logger,
	}, nil
}

func (t *transport) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w early: %w", ErrContextEnded, err)
	}

	exhausted := t.logger != nil && !t.limiter.Allow()
	if exhausted {
		t.logger.Info("throttle tokens exhausted",
			"rate", t.cfg.RPS, "burst", t.cfg.Burst, "path", r.URL.Path)
	}

	start := time.Now()
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWaitingFailed, err)
	}

	if exhausted {
		t.logger.Info("throttle wait complete",
			"waited", time.Since(start).String(), "rate", t.cfg.RPS, "burst", t.cfg.Burst)
	}

	if err := ctx.Err(); err != nil { // Check context hasn't expired again.
		return nil, fmt.Errorf("%w post-wait: %w", ErrContextEnded, err)
	}

	return t.next.RoundTrip(r)
}
