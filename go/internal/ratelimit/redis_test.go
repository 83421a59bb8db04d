package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
)

func newTestRedisLimiter(t *testing.T) (*redisLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	l := newRedisLimiter(client, clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)))
	t.Cleanup(l.Close)
	return l, mr
}

func TestRedisLimiterFixedWindow(t *testing.T) {
	l, mr := newTestRedisLimiter(t)
	ctx := context.Background()

	for i := 1; i <= 2; i++ {
		d := l.Allow(ctx, "submit:alice", 2, time.Hour)
		if !d.Allowed || d.Count != i {
			t.Fatalf("call %d: got %+v, want allowed with count %d", i, d, i)
		}
	}
	d := l.Allow(ctx, "submit:alice", 2, time.Hour)
	if d.Allowed || d.Count != 3 {
		t.Fatalf("third call in window: got %+v, want limited", d)
	}
	if got := mr.TTL("hackteams:ratelimit:submit:alice"); got != time.Hour {
		t.Fatalf("key ttl = %v, want 1h", got)
	}

	if d := l.Allow(ctx, "submit:bob", 2, time.Hour); !d.Allowed || d.Count != 1 {
		t.Fatalf("other keys have their own window, got %+v", d)
	}

	mr.FastForward(time.Hour)
	if d := l.Allow(ctx, "submit:alice", 2, time.Hour); !d.Allowed || d.Count != 1 {
		t.Fatalf("new window should start over, got %+v", d)
	}
}

func TestRedisLimiterRepairsKeyWithoutTTL(t *testing.T) {
	l, mr := newTestRedisLimiter(t)
	ctx := context.Background()
	key := "hackteams:ratelimit:submit:alice"

	// a counter stranded past the limit with no expiry
	if err := mr.Set(key, "7"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	d := l.Allow(ctx, "submit:alice", 3, time.Minute)
	if d.Allowed {
		t.Fatalf("counter over the limit must be limited, got %+v", d)
	}
	if got := mr.TTL(key); got != time.Minute {
		t.Fatalf("key ttl = %v, want 1m", got)
	}

	mr.FastForward(time.Minute)
	if d := l.Allow(ctx, "submit:alice", 3, time.Minute); !d.Allowed || d.Count != 1 {
		t.Fatalf("window should reset once the repaired key expires, got %+v", d)
	}
}

func TestRedisLimiterFailsOpen(t *testing.T) {
	l, mr := newTestRedisLimiter(t)
	mr.Close()

	if d := l.Allow(context.Background(), "submit:alice", 1, time.Minute); !d.Allowed {
		t.Fatalf("redis errors must not block callers, got %+v", d)
	}
}
