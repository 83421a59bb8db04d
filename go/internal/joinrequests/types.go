package joinrequests

import (
	"context"
	"errors"
	"iter"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/hackteams/go/internal/events"
	"github.com/mcdev12/hackteams/go/internal/membership"
	"github.com/mcdev12/hackteams/go/internal/models"
)

// ErrSequenceConsumed is yielded when a request listing is ranged over a
// second time.
var ErrSequenceConsumed = errors.New("join request listing already consumed")

// ListQuery selects join requests. Nil fields do not filter.
type ListQuery struct {
	TeamID      *uuid.UUID
	CandidateID *uuid.UUID
	Status      *models.JoinRequestStatus
	// NewestFirst flips the default createdAt ascending, id ascending order.
	NewestFirst bool
}

// Store persists join requests and provides the per-team exclusive section
// every membership mutation runs in.
type Store interface {
	GetJoinRequest(ctx context.Context, id uuid.UUID) (*models.JoinRequest, error)
	// ListJoinRequests returns a lazy sequence; nothing is read until it is
	// ranged over.
	ListJoinRequests(ctx context.Context, q ListQuery) iter.Seq2[models.JoinRequest, error]
	// WithTeamLock runs fn with exclusive access to teamID. Writes made
	// through tx are applied only if fn returns nil and ctx is still live.
	// A missing team fails with apperr.ErrNotFound before fn runs.
	WithTeamLock(ctx context.Context, teamID uuid.UUID, fn func(ctx context.Context, tx Tx) error) error
}

// Tx is the unit of work handed to WithTeamLock callbacks.
type Tx interface {
	membership.MemberWriter

	// Team is the locked team as of the start of the unit of work.
	Team() *models.Team
	GetJoinRequest(ctx context.Context, id uuid.UUID) (*models.JoinRequest, error)
	// FindPendingRequest returns the candidate's PENDING request for the
	// locked team, or nil.
	FindPendingRequest(ctx context.Context, candidateID uuid.UUID) (*models.JoinRequest, error)
	InsertJoinRequest(ctx context.Context, req *models.JoinRequest) error
	// DecideJoinRequest moves a PENDING request to a terminal status.
	DecideJoinRequest(ctx context.Context, id uuid.UUID, status models.JoinRequestStatus, decidedAt time.Time) error
	// Enqueue records an event to be delivered once the unit of work commits.
	Enqueue(ctx context.Context, event events.Event) error
}

// TeamReader reads teams outside of the exclusive section.
type TeamReader interface {
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
}

// Metrics observes lifecycle transitions.
type Metrics interface {
	RequestSubmitted()
	RequestDecided(status models.JoinRequestStatus)
	CapacityConflict()
}

type noopMetrics struct{}

func (noopMetrics) RequestSubmitted()                       {}
func (noopMetrics) RequestDecided(models.JoinRequestStatus) {}
func (noopMetrics) CapacityConflict()                       {}

// once wraps seq so that only its first iteration reaches the store.
func once[T any](seq iter.Seq2[T, error]) iter.Seq2[T, error] {
	var used atomic.Bool
	return func(yield func(T, error) bool) {
		if used.Swap(true) {
			var zero T
			yield(zero, ErrSequenceConsumed)
			return
		}
		for v, err := range seq {
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}
