package outbox

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/hackteams/go/internal/events"
)

// Record is a stored outbox row
type Record struct {
	events.Event
	SentAt *time.Time `json:"sent_at,omitempty"`
}

// Publisher delivers one event downstream. Implementations must be
// idempotent on event.ID because a crash between publish and mark-sent
// republishes the event.
type Publisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// RelayRepository is what the relay needs from the outbox table
type RelayRepository interface {
	FetchUnsent(ctx context.Context, limit int) ([]Record, error)
	FetchByID(ctx context.Context, id uuid.UUID) (*Record, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	CountPending(ctx context.Context) (int, error)
}
