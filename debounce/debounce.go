package debounce

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var (
	ErrNilFunc      = errors.New("fn must not be nil")
	ErrNegativeWait = errors.New("wait must not be negative")
)

// Debouncer wraps a function so that bursts of calls collapse into a
// single execution after the quiet period elapses. At most one timer is
// pending per instance; each new call replaces it.
type Debouncer[A, R any] struct {
	fn     func(context.Context, A) (R, error)
	wait   time.Duration
	tracer trace.Tracer

	mu      sync.Mutex
	timer   *time.Timer
	pending *Result[R]
}

// New returns a Debouncer that delays invoking fn until wait has elapsed
// since the last call. A zero wait still defers execution to the timer
// goroutine rather than running fn synchronously.
func New[A, R any](wait time.Duration, fn func(context.Context, A) (R, error), optFns ...Option) (*Debouncer[A, R], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if wait < 0 {
		return nil, fmt.Errorf("wait[%s] %w", wait, ErrNegativeWait)
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying debounce option: %w", err)
		}
	}
	if opts.tracer == nil {
		opts.tracer = noop.NewTracerProvider().Tracer("no-op tracer")
	}

	return &Debouncer[A, R]{
		fn:     fn,
		wait:   wait,
		tracer: opts.tracer,
	}, nil
}

// Call cancels any pending execution and schedules fn(arg) to run after
// the wait period. It never blocks and never runs fn on the calling
// goroutine.
//
// The returned [Result] resolves with fn's return value once the delayed
// execution runs. If Call is invoked again before the wait elapses, the
// previous Result is abandoned; only the most recent call's handle
// resolves.
func (d *Debouncer[A, R]) Call(arg A) *Result[R] {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	res := &Result[R]{done: make(chan struct{})}
	d.pending = res
	d.timer = time.AfterFunc(d.wait, func() {
		d.fire(res, arg)
	})

	return res
}

// Stop cancels any pending execution. It is idempotent and safe to call
// when nothing is pending. The pending call's Result, if any, is
// abandoned.
func (d *Debouncer[A, R]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}

// fire runs on the timer goroutine once the quiet period elapses.
func (d *Debouncer[A, R]) fire(res *Result[R], arg A) {
	d.mu.Lock()
	if d.pending != res {
		// Superseded or stopped between the timer firing and
		// acquiring the lock; the newer call owns execution now.
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	ctx, span := d.tracer.Start(context.Background(), "debounce.fire")
	defer span.End()

	res.resolve(d.fn(ctx, arg))
}
