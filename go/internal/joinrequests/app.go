package joinrequests

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/hackteams/go/internal/apperr"
	"github.com/mcdev12/hackteams/go/internal/events"
	"github.com/mcdev12/hackteams/go/internal/membership"
	"github.com/mcdev12/hackteams/go/internal/models"
	"github.com/rs/zerolog/log"
)

// App handles the join request lifecycle
type App struct {
	store   Store
	teams   TeamReader
	clock   clockwork.Clock
	metrics Metrics
}

// NewApp creates a new join requests App. metrics may be nil.
func NewApp(store Store, teams TeamReader, clock clockwork.Clock, metrics Metrics) *App {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &App{
		store:   store,
		teams:   teams,
		clock:   clock,
		metrics: metrics,
	}
}

// Submit files a PENDING request from candidateID to join teamID and
// notifies the leader.
func (a *App) Submit(ctx context.Context, candidateID, teamID uuid.UUID) (*models.JoinRequest, error) {
	if candidateID == uuid.Nil {
		return nil, apperr.New(apperr.KindUnauthenticated, "sign in to request to join a team")
	}

	var created *models.JoinRequest
	err := a.store.WithTeamLock(ctx, teamID, func(ctx context.Context, tx Tx) error {
		team := tx.Team()
		if team.HasMember(candidateID) {
			return apperr.New(apperr.KindAlreadyMember, "user %s is already a member of team %s", candidateID, teamID)
		}
		if team.Status() == models.TeamStatusFull {
			return apperr.New(apperr.KindTeamFull, "team %s is full", teamID)
		}

		existing, err := tx.FindPendingRequest(ctx, candidateID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperr.New(apperr.KindDuplicateRequest, "user %s already has pending request %s for team %s", candidateID, existing.ID, teamID)
		}

		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate request id: %w", err)
		}
		now := a.clock.Now().UTC()
		req := &models.JoinRequest{
			ID:          id,
			TeamID:      teamID,
			CandidateID: candidateID,
			Status:      models.JoinRequestStatusPending,
			CreatedAt:   now,
		}
		if err := tx.InsertJoinRequest(ctx, req); err != nil {
			return err
		}

		event, err := events.RequestCreated(req.ID, teamID, candidateID, team.LeaderID, now)
		if err != nil {
			return err
		}
		if err := tx.Enqueue(ctx, event); err != nil {
			return err
		}
		created = req
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit join request: %w", err)
	}

	a.metrics.RequestSubmitted()
	log.Info().
		Str("request_id", created.ID.String()).
		Str("team_id", teamID.String()).
		Str("candidate_id", candidateID.String()).
		Msg("join request submitted")
	return created, nil
}

// List returns the team's requests in creation order. Only the leader may
// list. The returned sequence is lazy and can be ranged over once.
func (a *App) List(ctx context.Context, actorID, teamID uuid.UUID, status *models.JoinRequestStatus) (iter.Seq2[models.JoinRequest, error], error) {
	team, err := a.teams.GetTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if !team.IsLeader(actorID) {
		return nil, apperr.Forbidden("only the team leader can view join requests for team %s", teamID)
	}
	if status != nil && !status.Valid() {
		return nil, apperr.InvalidArgument("unknown join request status %q", *status)
	}

	return once(a.store.ListJoinRequests(ctx, ListQuery{
		TeamID: &teamID,
		Status: status,
	})), nil
}

// ListForCandidate returns the candidate's own requests, newest first
func (a *App) ListForCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.JoinRequest, error) {
	var out []models.JoinRequest
	for req, err := range a.store.ListJoinRequests(ctx, ListQuery{CandidateID: &candidateID, NewestFirst: true}) {
		if err != nil {
			return nil, fmt.Errorf("failed to list join requests: %w", err)
		}
		out = append(out, req)
	}
	return out, nil
}

// Accept admits the candidate and marks the request ACCEPTED. When the team
// filled up in the meantime it fails with TeamFull and the request stays
// PENDING.
func (a *App) Accept(ctx context.Context, actorID, requestID uuid.UUID) (*models.Team, *models.JoinRequest, error) {
	pending, err := a.authorizeDecision(ctx, actorID, requestID)
	if err != nil {
		return nil, nil, err
	}

	var (
		team     *models.Team
		accepted *models.JoinRequest
	)
	err = a.withPendingRequest(ctx, actorID, pending, func(ctx context.Context, tx Tx, req *models.JoinRequest) error {
		t := tx.Team()
		if err := membership.Admit(ctx, tx, t, req.CandidateID); err != nil {
			return err
		}

		now := a.clock.Now().UTC()
		if err := tx.DecideJoinRequest(ctx, req.ID, models.JoinRequestStatusAccepted, now); err != nil {
			return err
		}
		if other, err := tx.FindPendingRequest(ctx, req.CandidateID); err == nil && other != nil {
			log.Error().
				Str("request_id", other.ID.String()).
				Str("team_id", t.ID.String()).
				Str("candidate_id", req.CandidateID.String()).
				Msg("member still holds a pending request")
		}

		event, err := events.RequestAccepted(req.ID, t.ID, req.CandidateID, now)
		if err != nil {
			return err
		}
		if err := tx.Enqueue(ctx, event); err != nil {
			return err
		}

		req.Status = models.JoinRequestStatusAccepted
		req.DecidedAt = &now
		team, accepted = t, req
		return nil
	})
	if err != nil {
		if errors.Is(err, apperr.ErrTeamFull) {
			a.metrics.CapacityConflict()
			log.Warn().
				Str("request_id", requestID.String()).
				Str("actor_id", actorID.String()).
				Msg("accept lost capacity race, request left pending")
		}
		return nil, nil, fmt.Errorf("failed to accept join request: %w", err)
	}

	a.metrics.RequestDecided(models.JoinRequestStatusAccepted)
	log.Info().
		Str("request_id", accepted.ID.String()).
		Str("team_id", team.ID.String()).
		Str("candidate_id", accepted.CandidateID.String()).
		Int("members", len(team.Members)).
		Int("team_size", team.TeamSize).
		Msg("join request accepted")
	return team, accepted, nil
}

// Reject marks the request REJECTED and notifies the candidate
func (a *App) Reject(ctx context.Context, actorID, requestID uuid.UUID) (*models.JoinRequest, error) {
	pending, err := a.authorizeDecision(ctx, actorID, requestID)
	if err != nil {
		return nil, err
	}

	var rejected *models.JoinRequest
	err = a.withPendingRequest(ctx, actorID, pending, func(ctx context.Context, tx Tx, req *models.JoinRequest) error {
		now := a.clock.Now().UTC()
		if err := tx.DecideJoinRequest(ctx, req.ID, models.JoinRequestStatusRejected, now); err != nil {
			return err
		}

		event, err := events.RequestRejected(req.ID, req.TeamID, req.CandidateID, now)
		if err != nil {
			return err
		}
		if err := tx.Enqueue(ctx, event); err != nil {
			return err
		}

		req.Status = models.JoinRequestStatusRejected
		req.DecidedAt = &now
		rejected = req
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reject join request: %w", err)
	}

	a.metrics.RequestDecided(models.JoinRequestStatusRejected)
	log.Info().
		Str("request_id", rejected.ID.String()).
		Str("team_id", rejected.TeamID.String()).
		Str("candidate_id", rejected.CandidateID.String()).
		Msg("join request rejected")
	return rejected, nil
}

// authorizeDecision runs the lock-free checks in order: the request exists,
// the actor leads its team, the request is still PENDING.
func (a *App) authorizeDecision(ctx context.Context, actorID, requestID uuid.UUID) (*models.JoinRequest, error) {
	req, err := a.store.GetJoinRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get join request: %w", err)
	}
	team, err := a.teams.GetTeam(ctx, req.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if !team.IsLeader(actorID) {
		return nil, apperr.Forbidden("only the team leader can decide join requests for team %s", team.ID)
	}
	if !req.IsPending() {
		return nil, apperr.New(apperr.KindInvalidState, "join request %s is already %s", req.ID, req.Status)
	}
	return req, nil
}

// withPendingRequest re-reads the request inside the team's exclusive
// section and runs fn only if it is still PENDING.
func (a *App) withPendingRequest(ctx context.Context, actorID uuid.UUID, req *models.JoinRequest, fn func(ctx context.Context, tx Tx, req *models.JoinRequest) error) error {
	return a.store.WithTeamLock(ctx, req.TeamID, func(ctx context.Context, tx Tx) error {
		current, err := tx.GetJoinRequest(ctx, req.ID)
		if err != nil {
			return err
		}
		if !tx.Team().IsLeader(actorID) {
			return apperr.Forbidden("only the team leader can decide join requests for team %s", current.TeamID)
		}
		if !current.IsPending() {
			return apperr.New(apperr.KindInvalidState, "join request %s is already %s", current.ID, current.Status)
		}
		return fn(ctx, tx, current)
	})
}
