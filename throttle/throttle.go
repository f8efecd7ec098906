package throttle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var (
	ErrNilFunc         = errors.New("fn must not be nil")
	ErrInvalidInterval = errors.New("interval must be greater than zero")
)

// Throttler wraps a function so executions are limited to at most one
// per interval. The first call in a fresh window runs immediately;
// calls inside the window are coalesced into a single trailing
// execution carrying the latest arguments.
type Throttler[A, R any] struct {
	fn       func(context.Context, A) (R, error)
	interval time.Duration
	logger   *slog.Logger
	tracer   trace.Tracer
	observe  func(R, error)

	mu         sync.Mutex
	last       time.Time
	timer      *time.Timer
	pendingArg A
	hasPending bool
}

// New returns a Throttler that limits fn to at most one execution per
// interval.
func New[A, R any](interval time.Duration, fn func(context.Context, A) (R, error), optFns ...Option) (*Throttler[A, R], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if interval <= 0 {
		return nil, fmt.Errorf("interval[%s] %w", interval, ErrInvalidInterval)
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying throttle option: %w", err)
		}
	}
	if opts.logger == nil {
		opts.logger = slog.Default()
	}
	if opts.tracer == nil {
		opts.tracer = noop.NewTracerProvider().Tracer("no-op tracer")
	}

	return &Throttler[A, R]{
		fn:       fn,
		interval: interval,
		logger:   opts.logger,
		tracer:   opts.tracer,
	}, nil
}

// OnTrailing registers fn to receive the result of each trailing
// execution. Without an observer, trailing results are discarded and
// trailing errors are logged. Register before the first Call.
func (t *Throttler[A, R]) OnTrailing(fn func(R, error)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observe = fn
}

// Call executes fn(arg) immediately if at least one interval has
// elapsed since the last execution, returning fn's result with
// ran == true.
//
// Inside the window, the call returns at once with ran == false and arg
// becomes the pending trailing argument. Exactly one trailing execution
// fires per window, one interval after the execution that opened it,
// with the latest pending argument; calls after the first suppressed one
// only replace that argument.
func (t *Throttler[A, R]) Call(ctx context.Context, arg A) (r R, ran bool, err error) {
	t.mu.Lock()

	now := time.Now()
	if t.last.IsZero() || now.Sub(t.last) >= t.interval {
		t.last = now
		t.mu.Unlock()

		ctx, span := t.tracer.Start(ctx, "throttle.call")
		defer span.End()

		r, err = t.fn(ctx, arg)
		return r, true, err
	}

	t.pendingArg = arg
	t.hasPending = true
	if t.timer == nil {
		// The trailing fire time is fixed relative to the execution
		// that opened the window; later calls only swap the argument.
		t.timer = time.AfterFunc(t.interval-now.Sub(t.last), t.trailing)
	}
	t.mu.Unlock()

	return r, false, nil
}

// Stop cancels any pending trailing execution. It is idempotent and
// safe to call when nothing is pending.
func (t *Throttler[A, R]) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.hasPending = false
}

// trailing runs on the timer goroutine when the window closes.
func (t *Throttler[A, R]) trailing() {
	t.mu.Lock()
	if !t.hasPending {
		// Stopped between the timer firing and acquiring the lock.
		t.mu.Unlock()
		return
	}
	arg := t.pendingArg
	observe := t.observe
	var zero A
	t.pendingArg = zero
	t.hasPending = false
	t.timer = nil
	t.last = time.Now()
	t.mu.Unlock()

	ctx, span := t.tracer.Start(context.Background(), "throttle.trailing")
	defer span.End()

	r, err := t.fn(ctx, arg)
	if observe != nil {
		observe(r, err)
		return
	}
	if err != nil {
		t.logger.Error("trailing execution failed", "error", err)
	}
}
