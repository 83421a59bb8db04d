package outbox

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/hackteams/go/internal/events"
)

type stubRepo struct {
	mu      sync.Mutex
	records []Record
	marked  []uuid.UUID
	pingErr error
}

func (r *stubRepo) add(eventType string) events.Event {
	e := events.Event{ID: uuid.New(), Type: eventType, TeamID: uuid.New(), Payload: []byte(`{}`)}
	r.mu.Lock()
	r.records = append(r.records, Record{Event: e})
	r.mu.Unlock()
	return e
}

func (r *stubRepo) FetchUnsent(ctx context.Context, limit int) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Record
	for _, rec := range r.records {
		if rec.SentAt == nil && len(out) < limit {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *stubRepo) FetchByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ID == id && rec.SentAt == nil {
			return &rec, nil
		}
	}
	return nil, ErrAlreadySent
}

func (r *stubRepo) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == id {
			r.records[i].SentAt = &at
		}
	}
	r.marked = append(r.marked, id)
	return nil
}

func (r *stubRepo) CountPending(ctx context.Context) (int, error) {
	unsent, _ := r.FetchUnsent(ctx, 1<<30)
	return len(unsent), nil
}

func (r *stubRepo) PingContext(ctx context.Context) error { return r.pingErr }

// flakyPublisher fails the first failures calls for each event
type flakyPublisher struct {
	mu        sync.Mutex
	failures  int
	attempts  map[uuid.UUID]int
	published []uuid.UUID
}

func (p *flakyPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.attempts == nil {
		p.attempts = make(map[uuid.UUID]int)
	}
	p.attempts[event.ID]++
	if p.attempts[event.ID] <= p.failures {
		return errors.New("nats unavailable")
	}
	p.published = append(p.published, event.ID)
	return nil
}

type countingCollector struct {
	NoOpMetricsCollector
	mu       sync.Mutex
	ok, fail int
	lag      int
}

func (c *countingCollector) RecordEventProcessed(_ string, success bool, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if success {
		c.ok++
	} else {
		c.fail++
	}
}

func (c *countingCollector) RecordOutboxLag(lag int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lag = lag
}

func newRelay(repo *stubRepo, pub Publisher, metrics MetricsCollector, retries int) *Relay {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 4, 12, 12, 0, 0, 0, time.UTC))
	return NewRelay(repo, pub, clock, metrics, RelayConfig{BatchSize: 10, MaxRetries: retries})
}

func TestHandleNotification(t *testing.T) {
	repo := &stubRepo{}
	pub := &flakyPublisher{}
	relay := newRelay(repo, pub, nil, 0)
	e := repo.add(events.TypeRequestCreated)

	if err := relay.HandleNotification(context.Background(), e.ID.String()); err != nil {
		t.Fatalf("HandleNotification: %v", err)
	}
	if !slices.Equal(pub.published, []uuid.UUID{e.ID}) || !slices.Equal(repo.marked, []uuid.UUID{e.ID}) {
		t.Fatalf("published=%v marked=%v", pub.published, repo.marked)
	}

	// A second notification for the same row is a no-op.
	if err := relay.HandleNotification(context.Background(), e.ID.String()); err != nil {
		t.Fatalf("repeat notification: %v", err)
	}
	if len(pub.published) != 1 {
		t.Errorf("republished an already sent row")
	}

	if err := relay.HandleNotification(context.Background(), "not-a-uuid"); err == nil {
		t.Errorf("expected an error for a malformed payload")
	}

	if n, last := relay.Stats(); n != 1 || last.IsZero() {
		t.Errorf("Stats = %d, %v", n, last)
	}
}

func TestPublishRetries(t *testing.T) {
	repo := &stubRepo{}
	pub := &flakyPublisher{failures: 2}
	metrics := &countingCollector{}
	relay := newRelay(repo, pub, metrics, 3)
	e := repo.add(events.TypeRequestAccepted)

	if err := relay.HandleNotification(context.Background(), e.ID.String()); err != nil {
		t.Fatalf("HandleNotification: %v", err)
	}
	if pub.attempts[e.ID] != 3 {
		t.Errorf("attempts = %d, want 3", pub.attempts[e.ID])
	}
	if metrics.ok != 1 || metrics.fail != 0 {
		t.Errorf("metrics ok=%d fail=%d", metrics.ok, metrics.fail)
	}
}

func TestPublishGivesUpAndLeavesRowUnsent(t *testing.T) {
	repo := &stubRepo{}
	pub := &flakyPublisher{failures: 10}
	metrics := &countingCollector{}
	relay := newRelay(repo, pub, metrics, 2)
	e := repo.add(events.TypeRequestRejected)

	if err := relay.HandleNotification(context.Background(), e.ID.String()); err == nil {
		t.Fatal("expected publish failure")
	}
	if pub.attempts[e.ID] != 3 {
		t.Errorf("attempts = %d, want 3", pub.attempts[e.ID])
	}
	if len(repo.marked) != 0 {
		t.Errorf("failed event was marked sent")
	}
	if metrics.fail != 1 {
		t.Errorf("failures recorded = %d", metrics.fail)
	}
}

func TestProcessUnsentSkipsFailures(t *testing.T) {
	repo := &stubRepo{}
	pub := &flakyPublisher{}
	metrics := &countingCollector{}
	relay := newRelay(repo, pub, metrics, 0)
	for i := 0; i < 3; i++ {
		repo.add(events.TypeRequestCreated)
	}

	sent, err := relay.ProcessUnsent(context.Background())
	if err != nil {
		t.Fatalf("ProcessUnsent: %v", err)
	}
	if sent != 3 || metrics.lag != 0 {
		t.Errorf("sent=%d lag=%d", sent, metrics.lag)
	}

	again, err := relay.ProcessUnsent(context.Background())
	if err != nil || again != 0 {
		t.Errorf("second poll sent=%d err=%v", again, err)
	}
}

func TestHealthChecker(t *testing.T) {
	repo := &stubRepo{}
	relay := newRelay(repo, &flakyPublisher{}, nil, 0)
	clock := clockwork.NewFakeClock()

	active := true
	h := NewHealthChecker(relay, repo, repo, nil, func() bool { return active }, clock, time.Minute)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("healthy status code = %d: %s", rec.Code, rec.Body)
	}

	active = false
	repo.pingErr = errors.New("connection refused")
	status := h.Check(context.Background())
	if status.Healthy || status.DatabaseConnected || status.ListenerActive || len(status.Errors) != 2 {
		t.Fatalf("unhealthy status = %+v", status)
	}
}
