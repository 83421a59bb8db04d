package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type redisLimiter struct {
	client  redis.UniversalClient
	clock   clockwork.Clock
	prefix  string
	timeout time.Duration
}

// NewRedisLimiter connects to redis and returns a limiter shared by every
// API replica. Redis errors fail open.
func NewRedisLimiter(ctx context.Context, addr, password string, db int, clock clockwork.Clock) (Limiter, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return newRedisLimiter(client, clock), nil
}

func newRedisLimiter(client redis.UniversalClient, clock clockwork.Clock) *redisLimiter {
	return &redisLimiter{
		client:  client,
		clock:   clock,
		prefix:  "hackteams:ratelimit:",
		timeout: 250 * time.Millisecond,
	}
}

func (l *redisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) Decision {
	if limit <= 0 {
		return Decision{Allowed: true}
	}
	if window <= 0 {
		window = time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	redisKey := l.prefix + key
	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	if _, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		ttl = pipe.TTL(ctx, redisKey)
		return nil
	}); err != nil {
		log.Error().Err(err).Str("op", "incr").Msg("redis rate limiter error")
		return Decision{Allowed: true}
	}
	counter := incr.Val()

	// A key without a TTL would never reset, so every call repairs it.
	remaining := ttl.Val()
	if remaining < 0 {
		remaining = window
		if err := l.client.Expire(ctx, redisKey, window).Err(); err != nil {
			log.Error().Err(err).Str("op", "expire").Msg("redis rate limiter error")
		}
	}
	return Decision{
		Allowed:   int(counter) <= limit,
		Count:     int(counter),
		WindowEnd: l.clock.Now().Add(remaining),
	}
}

func (l *redisLimiter) Close() {
	if l.client != nil {
		_ = l.client.Close()
	}
}
