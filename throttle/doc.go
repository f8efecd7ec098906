// Package throttle rate-limits function calls to at most one execution
// per interval, preserving the last suppressed call as a trailing
// execution.
//
// # Call throttling
//
// Wrap a function with [New]:
//
//	t, err := throttle.New(time.Second, func(ctx context.Context, p Position) (Ack, error) {
//		return report(ctx, p)
//	})
//	defer t.Stop()
//
//	ack, ran, err := t.Call(ctx, pos)
//
// The first call in a fresh window runs immediately on the caller's
// goroutine and returns its result with ran == true. Calls arriving
// inside the window return immediately with ran == false; the latest
// suppressed arguments are replayed by a single trailing execution when
// the window closes.
//
// # Transport throttling
//
// [NewRoundTripper] wraps an [http.RoundTripper] with a token-bucket
// limiter from [golang.org/x/time/rate], blocking outbound requests
// until a token is available or the request context ends.
package throttle
