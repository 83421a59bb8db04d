// Package notify delivers lifecycle events to users. Delivery is always
// fire-and-forget from the point of view of the operation that produced the
// event.
package notify

import (
	"context"
	"sync"

	"github.com/mcdev12/hackteams/go/internal/events"
	"github.com/rs/zerolog/log"
)

// Sink receives committed lifecycle events.
type Sink interface {
	Notify(ctx context.Context, event events.Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(ctx context.Context, event events.Event)

func (f SinkFunc) Notify(ctx context.Context, event events.Event) { f(ctx, event) }

// LogSink writes every event to the global logger.
type LogSink struct{}

func (LogSink) Notify(ctx context.Context, event events.Event) {
	recipients := make([]string, len(event.Recipients))
	for i, r := range event.Recipients {
		recipients[i] = r.String()
	}
	log.Info().
		Str("event_id", event.ID.String()).
		Str("event_type", event.Type).
		Str("team_id", event.TeamID.String()).
		Strs("recipients", recipients).
		RawJSON("payload", event.Payload).
		Msg("notification")
}

// AsyncSink decouples producers from a slow downstream sink with a bounded
// buffer. Notify never blocks; when the buffer is full the event is dropped
// and logged.
type AsyncSink struct {
	next Sink
	ch   chan events.Event
	wg   sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewAsyncSink starts a single delivery goroutine feeding next.
func NewAsyncSink(next Sink, buffer int) *AsyncSink {
	if buffer <= 0 {
		buffer = 256
	}
	s := &AsyncSink{
		next: next,
		ch:   make(chan events.Event, buffer),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

func (s *AsyncSink) run() {
	defer s.wg.Done()
	for event := range s.ch {
		s.next.Notify(context.Background(), event)
	}
}

// Notify enqueues event for delivery. Events arriving after Close are
// dropped.
func (s *AsyncSink) Notify(ctx context.Context, event events.Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		log.Warn().
			Str("event_id", event.ID.String()).
			Str("event_type", event.Type).
			Msg("notification sink closed, dropping event")
		return
	}

	select {
	case s.ch <- event:
	default:
		log.Warn().
			Str("event_id", event.ID.String()).
			Str("event_type", event.Type).
			Msg("notification buffer full, dropping event")
	}
}

// Close stops accepting events and waits for buffered ones to be delivered.
func (s *AsyncSink) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
	s.mu.Unlock()
	s.wg.Wait()
}

// Recorder keeps every event it receives. It is used by tests and by the
// memory store in development to inspect what would have been delivered.
type Recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *Recorder) Notify(ctx context.Context, event events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events in arrival order.
func (r *Recorder) Events() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event(nil), r.events...)
}
