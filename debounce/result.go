package debounce

import "context"

// Result represents a pending or completed debounced call.
type Result[R any] struct {
	done  chan struct{}
	value R
	err   error
}

// Done returns a channel that is closed when this call's delayed
// execution completes. A superseded handle's channel never closes.
func (r *Result[R]) Done() <-chan struct{} { return r.done }

// Value blocks until the delayed execution resolves this handle,
// returning the wrapped function's result, or until ctx ends.
//
// A handle superseded by a newer call is abandoned and never resolves,
// so callers should pass a context with a deadline.
func (r *Result[R]) Value(ctx context.Context) (R, error) {
	select {
	case <-r.done:
		return r.value, r.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

func (r *Result[R]) resolve(value R, err error) {
	r.value = value
	r.err = err
	close(r.done)
}
