// Package debounce collapses bursts of calls into a single delayed
// execution of the wrapped function.
//
// A [Debouncer] wraps a function so that repeated calls restart a quiet
// period; the wrapped function runs once, with the arguments of the last
// call, after the quiet period elapses with no further calls.
//
// # Usage
//
// Wrap a function with [New]:
//
//	d, err := debounce.New(200*time.Millisecond, func(ctx context.Context, q string) (int, error) {
//		return search(ctx, q)
//	})
//	defer d.Stop()
//
//	res := d.Call("a")
//	res = d.Call("ab") // supersedes the first call
//
//	n, err := res.Value(ctx) // resolves once the delayed execution runs
//
// Each call returns a [Result] handle. Only the most recent call's handle
// resolves; handles superseded by a newer call are abandoned, so callers
// should always pass a context with a deadline to [Result.Value].
package debounce
