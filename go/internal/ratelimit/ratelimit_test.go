package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestMemoryLimiterFixedWindow(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	l := NewMemoryLimiter(clock)
	defer l.Close()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		d := l.Allow(ctx, "submit:alice", 3, time.Minute)
		if !d.Allowed || d.Count != i {
			t.Fatalf("call %d: got %+v, want allowed with count %d", i, d, i)
		}
	}

	d := l.Allow(ctx, "submit:alice", 3, time.Minute)
	if d.Allowed {
		t.Fatalf("fourth call in window must be limited")
	}
	if got := d.RetryAfter(clock.Now()); got != time.Minute {
		t.Fatalf("RetryAfter = %v, want 1m", got)
	}

	if d := l.Allow(ctx, "submit:bob", 3, time.Minute); !d.Allowed {
		t.Fatalf("other keys have their own window")
	}

	clock.Advance(time.Minute)
	if d := l.Allow(ctx, "submit:alice", 3, time.Minute); !d.Allowed || d.Count != 1 {
		t.Fatalf("new window should start over, got %+v", d)
	}
}

func TestMemoryLimiterDisabled(t *testing.T) {
	l := NewMemoryLimiter(clockwork.NewFakeClock())
	defer l.Close()
	for i := 0; i < 100; i++ {
		if !l.Allow(context.Background(), "k", 0, time.Second).Allowed {
			t.Fatalf("limit 0 disables limiting")
		}
	}
}

func TestCleanupDropsExpiredWindows(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := NewMemoryLimiter(clock).(*memoryLimiter)
	defer l.Close()

	l.Allow(context.Background(), "a", 1, time.Second)
	l.cleanup(clock.Now().Add(2 * time.Second))

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) != 0 {
		t.Fatalf("expected expired entries to be swept, have %d", len(l.entries))
	}
}
