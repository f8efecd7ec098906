// Package pacer exposes the library's call-pacing wrapper factories.
//
// The subpackages carry the implementations: debounce collapses bursts
// into one delayed execution, throttle limits executions to one per
// interval with a trailing call, randid generates short identifiers,
// config validates shared tuning profiles, and middleware adapts the
// pacing concerns to [net/http] hosts.
package pacer

import (
	"context"
	"time"

	"github.com/pacerkit/pacer/debounce"
	"github.com/pacerkit/pacer/throttle"
)

// NewDebounced instantiates a debounce wrapper around fn with the
// provided options. See [debounce.New].
func NewDebounced[A, R any](wait time.Duration, fn func(context.Context, A) (R, error), opts ...debounce.Option) (*debounce.Debouncer[A, R], error) {
	return debounce.New(wait, fn, opts...)
}

// NewThrottled instantiates a throttle wrapper around fn with the
// provided options. See [throttle.New].
func NewThrottled[A, R any](interval time.Duration, fn func(context.Context, A) (R, error), opts ...throttle.Option) (*throttle.Throttler[A, R], error) {
	return throttle.New(interval, fn, opts...)
}
