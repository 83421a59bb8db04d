package outbox

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/hackteams/go/internal/events"
	"github.com/rs/zerolog/log"
)

type RelayConfig struct {
	BatchSize  int // Max events to fetch per fallback poll
	MaxRetries int
	RetryDelay time.Duration // Multiplied by the attempt number
}

func DefaultRelayConfig() RelayConfig {
	return RelayConfig{
		BatchSize:  100,
		MaxRetries: 5,
		RetryDelay: 200 * time.Millisecond,
	}
}

// Relay moves committed outbox rows to the publisher and marks them sent.
// Delivery is at-least-once.
type Relay struct {
	repo      RelayRepository
	publisher Publisher
	clock     clockwork.Clock
	metrics   MetricsCollector
	cfg       RelayConfig

	processed atomic.Uint64
	lastEvent atomic.Int64
}

// NewRelay creates a relay. metrics may be nil.
func NewRelay(repo RelayRepository, publisher Publisher, clock clockwork.Clock, metrics MetricsCollector, cfg RelayConfig) *Relay {
	if metrics == nil {
		metrics = NoOpMetricsCollector{}
	}
	return &Relay{
		repo:      repo,
		publisher: publisher,
		clock:     clock,
		metrics:   metrics,
		cfg:       cfg,
	}
}

// HandleNotification relays the row named by a NOTIFY payload
func (r *Relay) HandleNotification(ctx context.Context, extra string) error {
	id, err := uuid.Parse(extra)
	if err != nil {
		return fmt.Errorf("invalid event ID in notification: %w", err)
	}

	rec, err := r.repo.FetchByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAlreadySent) {
			log.Debug().Str("event_id", id.String()).Msg("outbox event already relayed")
			return nil
		}
		return err
	}
	return r.relay(ctx, rec.Event)
}

// ProcessUnsent relays one batch of unsent rows and returns how many were
// published. A failing row is logged and left for the next poll.
func (r *Relay) ProcessUnsent(ctx context.Context) (int, error) {
	start := r.clock.Now()
	unsent, err := r.repo.FetchUnsent(ctx, r.cfg.BatchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, rec := range unsent {
		if err := r.relay(ctx, rec.Event); err != nil {
			if ctx.Err() != nil {
				return sent, ctx.Err()
			}
			log.Error().Err(err).Str("event_id", rec.ID.String()).Msg("failed to relay outbox event")
			continue
		}
		sent++
	}

	r.metrics.RecordBatchProcessed(sent, r.clock.Since(start))
	if pending, err := r.repo.CountPending(ctx); err == nil {
		r.metrics.RecordOutboxLag(pending)
	}
	return sent, nil
}

// Stats returns the number of relayed events and when the last one went out
func (r *Relay) Stats() (uint64, time.Time) {
	var last time.Time
	if ns := r.lastEvent.Load(); ns != 0 {
		last = time.Unix(0, ns).UTC()
	}
	return r.processed.Load(), last
}

func (r *Relay) relay(ctx context.Context, event events.Event) error {
	start := r.clock.Now()
	err := r.publishWithRetry(ctx, event)
	r.metrics.RecordEventProcessed(event.Type, err == nil, r.clock.Since(start))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	now := r.clock.Now().UTC()
	if err := r.repo.MarkSent(ctx, event.ID, now); err != nil {
		return err
	}
	r.processed.Add(1)
	r.lastEvent.Store(now.UnixNano())

	log.Info().
		Str("event_id", event.ID.String()).
		Str("event_type", event.Type).
		Msg("published and marked event as sent")
	return nil
}

// publishWithRetry attempts to publish an event with a linear backoff
func (r *Relay) publishWithRetry(ctx context.Context, event events.Event) error {
	var lastErr error

	for attempt := 0; attempt <= r.cfg.MaxRetries; attempt++ {
		if attempt > 0 && r.cfg.RetryDelay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-r.clock.After(r.cfg.RetryDelay * time.Duration(attempt)):
			}
		}

		err := r.publisher.Publish(ctx, event)
		r.metrics.RecordPublishAttempt(event.Type, attempt+1, err == nil)
		if err != nil {
			lastErr = err
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("failed to publish, retrying")
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}

		if attempt > 0 {
			log.Info().
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("publish succeeded after retry")
		}
		return nil
	}

	return fmt.Errorf("publish failed after %d attempts: %w", r.cfg.MaxRetries+1, lastErr)
}
