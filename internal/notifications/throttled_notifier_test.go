package notifications

import (
	"context"
	"testing"
	"time"
)

type countingNotifier struct {
	calls int
}

func (c *countingNotifier) Notify(ctx context.Context, n Notice) {
	c.calls++
}

func TestThrottledNotifierSuppressesRepeats(t *testing.T) {
	inner := &countingNotifier{}
	n := NewThrottledNotifier(inner, time.Minute)
	ctx := context.Background()

	notice := Notice{Code: "fallback_call", Message: "degraded"}

	n.Notify(ctx, notice)
	n.Notify(ctx, notice)
	n.Notify(ctx, notice)

	if inner.calls != 1 {
		t.Fatalf("inner called %d times, want 1", inner.calls)
	}

	// a different code is its own bucket
	n.Notify(ctx, Notice{Code: "fallback_mode"})

	if inner.calls != 2 {
		t.Fatalf("inner called %d times, want 2", inner.calls)
	}
}

func TestThrottledNotifierAllowsAfterCooldown(t *testing.T) {
	inner := &countingNotifier{}
	n := NewThrottledNotifier(inner, 10*time.Millisecond)
	ctx := context.Background()

	n.Notify(ctx, Notice{Code: "fallback_call"})
	time.Sleep(20 * time.Millisecond)
	n.Notify(ctx, Notice{Code: "fallback_call"})

	if inner.calls != 2 {
		t.Fatalf("inner called %d times, want 2", inner.calls)
	}
}
