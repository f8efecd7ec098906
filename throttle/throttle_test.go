package throttle

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestNew_Validation(t *testing.T) {
	echo := func(_ context.Context, s string) (string, error) { return s, nil }

	testCases := []struct {
		name     string
		interval time.Duration
		fn       func(context.Context, string) (string, error)
		expErr   error
	}{
		{
			name:     "Nil fn",
			interval: time.Second,
			fn:       nil,
			expErr:   ErrNilFunc,
		},
		{
			name:     "Zero interval",
			interval: 0,
			fn:       echo,
			expErr:   ErrInvalidInterval,
		},
		{
			name:     "Negative interval",
			interval: -time.Second,
			fn:       echo,
			expErr:   ErrInvalidInterval,
		},
		{
			name:     "Valid input",
			interval: time.Second,
			fn:       echo,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := New(tc.interval, tc.fn)

			if tc.expErr != nil {
				if !errors.Is(err, tc.expErr) {
					t.Errorf("exp err %v; got: %v", tc.expErr, err)
				}
				return
			}

			if err != nil {
				t.Errorf("exp nil err, got: %v", err)
			}
			if tr == nil {
				t.Error("exp non-nil Throttler")
			}
		})
	}
}

func TestThrottler_FirstCallRunsImmediately(t *testing.T) {
	tr, err := New(100*time.Millisecond, func(_ context.Context, s string) (string, error) {
		return s + "!", nil
	})
	if err != nil {
		t.Fatalf("failed to create throttler: %v", err)
	}
	defer tr.Stop()

	got, ran, err := tr.Call(context.Background(), "x")
	if err != nil {
		t.Fatalf("exp nil err, got: %v", err)
	}
	if !ran {
		t.Error("first call in a fresh window should run immediately")
	}
	if got != "x!" {
		t.Errorf("exp %q, got %q", "x!", got)
	}
}

func TestThrottler_WindowCoalescesIntoOneTrailing(t *testing.T) {
	var execs atomic.Int64

	tr, err := New(300*time.Millisecond, func(_ context.Context, s string) (string, error) {
		execs.Add(1)
		return s, nil
	})
	if err != nil {
		t.Fatalf("failed to create throttler: %v", err)
	}
	defer tr.Stop()

	trailing := make(chan string, 4)
	tr.OnTrailing(func(r string, err error) {
		if err != nil {
			t.Errorf("exp nil trailing err, got: %v", err)
		}
		trailing <- r
	})

	ctx := context.Background()
	start := time.Now()

	if _, ran, _ := tr.Call(ctx, "x"); !ran {
		t.Fatal("first call should run immediately")
	}

	time.Sleep(60 * time.Millisecond)
	if _, ran, _ := tr.Call(ctx, "y"); ran {
		t.Error("call inside the window should not run immediately")
	}

	time.Sleep(60 * time.Millisecond)
	if _, ran, _ := tr.Call(ctx, "z"); ran {
		t.Error("call inside the window should not run immediately")
	}

	select {
	case got := <-trailing:
		elapsed := time.Since(start)
		if got != "z" {
			t.Errorf("exp trailing execution with latest arg %q, got %q", "z", got)
		}
		// The window opened at the first call; trailing fires about
		// one interval later regardless of the later calls.
		if elapsed < 300*time.Millisecond || elapsed > 700*time.Millisecond {
			t.Errorf("exp trailing around 300ms after window opened, got %s", elapsed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("trailing execution never fired")
	}

	if n := execs.Load(); n != 2 {
		t.Errorf("exp 2 executions (immediate + trailing), got %d", n)
	}

	select {
	case got := <-trailing:
		t.Errorf("exp at most one trailing execution per window, got extra %q", got)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestThrottler_FreshWindowAfterInterval(t *testing.T) {
	var execs atomic.Int64

	tr, err := New(40*time.Millisecond, func(_ context.Context, s string) (string, error) {
		execs.Add(1)
		return s, nil
	})
	if err != nil {
		t.Fatalf("failed to create throttler: %v", err)
	}
	defer tr.Stop()

	ctx := context.Background()

	if _, ran, _ := tr.Call(ctx, "a"); !ran {
		t.Error("first call should run immediately")
	}

	time.Sleep(80 * time.Millisecond)

	if _, ran, _ := tr.Call(ctx, "b"); !ran {
		t.Error("call after the interval elapsed should run immediately")
	}

	if n := execs.Load(); n != 2 {
		t.Errorf("exp 2 immediate executions, got %d", n)
	}
}

func TestThrottler_Stop(t *testing.T) {
	var execs atomic.Int64

	tr, err := New(50*time.Millisecond, func(_ context.Context, s string) (string, error) {
		execs.Add(1)
		return s, nil
	})
	if err != nil {
		t.Fatalf("failed to create throttler: %v", err)
	}

	ctx := context.Background()

	tr.Call(ctx, "immediate")
	tr.Call(ctx, "suppressed")

	tr.Stop()
	tr.Stop() // Idempotent, safe with nothing pending.

	time.Sleep(150 * time.Millisecond)

	if n := execs.Load(); n != 1 {
		t.Errorf("exp trailing execution cancelled by Stop, got %d executions", n)
	}
}

func TestThrottler_ErrorIsolatedPerExecution(t *testing.T) {
	errBoom := errors.New("boom")

	tr, err := New(30*time.Millisecond, func(_ context.Context, s string) (string, error) {
		if s == "bad" {
			return "", errBoom
		}
		return s, nil
	})
	if err != nil {
		t.Fatalf("failed to create throttler: %v", err)
	}
	defer tr.Stop()

	ctx := context.Background()

	if _, _, err := tr.Call(ctx, "bad"); !errors.Is(err, errBoom) {
		t.Errorf("exp immediate path to surface %v, got: %v", errBoom, err)
	}

	time.Sleep(60 * time.Millisecond)

	got, ran, err := tr.Call(ctx, "good")
	if err != nil || !ran {
		t.Fatalf("exp clean immediate call after a failure, got ran=%t err=%v", ran, err)
	}
	if got != "good" {
		t.Errorf("exp %q, got %q", "good", got)
	}
}

func TestThrottler_TrailingErrorReachesObserver(t *testing.T) {
	errBoom := errors.New("boom")

	tr, err := New(30*time.Millisecond, func(_ context.Context, s string) (string, error) {
		if s == "bad" {
			return "", errBoom
		}
		return s, nil
	})
	if err != nil {
		t.Fatalf("failed to create throttler: %v", err)
	}
	defer tr.Stop()

	trailingErr := make(chan error, 1)
	tr.OnTrailing(func(_ string, err error) {
		trailingErr <- err
	})

	ctx := context.Background()

	tr.Call(ctx, "good")
	tr.Call(ctx, "bad")

	select {
	case err := <-trailingErr:
		if !errors.Is(err, errBoom) {
			t.Errorf("exp trailing path to surface %v, got: %v", errBoom, err)
		}
	case <-time.After(time.Second):
		t.Fatal("trailing execution never fired")
	}
}
