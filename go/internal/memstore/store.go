// Package memstore is a process-local implementation of the team registry,
// profile and join request stores. It is used for development and tests and
// gives the same serialization guarantees as the postgres store: one mutex
// per team guards every unit of work, and a unit of work is applied only if
// it finishes without error on a live context.
package memstore

import (
	"bytes"
	"context"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/hackteams/go/internal/apperr"
	"github.com/mcdev12/hackteams/go/internal/events"
	"github.com/mcdev12/hackteams/go/internal/joinrequests"
	"github.com/mcdev12/hackteams/go/internal/models"
	"github.com/mcdev12/hackteams/go/internal/notify"
	"github.com/mcdev12/hackteams/go/internal/teams"
)

// Store holds all state in maps guarded by mu. Team locks are separate and
// always acquired before mu. A lock exists only for a team that exists.
type Store struct {
	mu       sync.RWMutex
	teams    map[uuid.UUID]*models.Team
	users    map[uuid.UUID]models.User
	requests map[uuid.UUID]*models.JoinRequest

	locksMu sync.Mutex
	locks   map[uuid.UUID]chan struct{}

	sink notify.Sink
}

var (
	_ teams.TeamsRepository = (*Store)(nil)
	_ teams.ProfileReader   = (*Store)(nil)
	_ joinrequests.Store    = (*Store)(nil)
)

// New creates an empty store. Committed events are handed to sink; a nil
// sink logs them.
func New(sink notify.Sink) *Store {
	if sink == nil {
		sink = notify.LogSink{}
	}
	return &Store{
		teams:    make(map[uuid.UUID]*models.Team),
		users:    make(map[uuid.UUID]models.User),
		requests: make(map[uuid.UUID]*models.JoinRequest),
		locks:    make(map[uuid.UUID]chan struct{}),
		sink:     sink,
	}
}

// PutUser adds or replaces a profile.
func (s *Store) PutUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// GetUsersByIDs returns the known profiles among ids
func (s *Store) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

// CreateTeam stores a new team
func (s *Store) CreateTeam(ctx context.Context, team *models.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.teams[team.ID]; exists {
		return apperr.InvalidArgument("team %s already exists", team.ID)
	}
	s.teams[team.ID] = team.Clone()
	return nil
}

// GetTeam returns a copy of the team
func (s *Store) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	if !ok {
		return nil, apperr.NotFound("team %s not found", id)
	}
	return t.Clone(), nil
}

// UpdateTeamInfo applies a partial update to the descriptive fields
func (s *Store) UpdateTeamInfo(ctx context.Context, id uuid.UUID, req teams.UpdateTeamInfoRequest, updatedAt time.Time) (*models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.teams[id]
	if !ok {
		return nil, apperr.NotFound("team %s not found", id)
	}
	if req.TeamName != nil {
		t.TeamName = *req.TeamName
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.RolesNeeded != nil {
		t.RolesNeeded = slices.Clone(*req.RolesNeeded)
	}
	t.UpdatedAt = updatedAt
	return t.Clone(), nil
}

// ListTeams lists an event's teams newest first
func (s *Store) ListTeams(ctx context.Context, filter teams.TeamFilter) ([]models.Team, error) {
	return s.collectTeams(func(t *models.Team) bool {
		if t.EventID != filter.EventID {
			return false
		}
		return filter.Status == nil || t.Status() == *filter.Status
	}), nil
}

// ListTeamsByMember lists the teams userID belongs to, newest first
func (s *Store) ListTeamsByMember(ctx context.Context, userID uuid.UUID) ([]models.Team, error) {
	return s.collectTeams(func(t *models.Team) bool {
		return t.HasMember(userID)
	}), nil
}

func (s *Store) collectTeams(match func(*models.Team) bool) []models.Team {
	s.mu.RLock()
	out := make([]models.Team, 0)
	for _, t := range s.teams {
		if match(t) {
			out = append(out, *t.Clone())
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.Team) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return bytes.Compare(b.ID[:], a.ID[:])
	})
	return out
}

// GetJoinRequest returns a copy of the request
func (s *Store) GetJoinRequest(ctx context.Context, id uuid.UUID) (*models.JoinRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requests[id]
	if !ok {
		return nil, apperr.NotFound("join request %s not found", id)
	}
	return copyRequest(r), nil
}

// ListJoinRequests snapshots the matching requests when first ranged over
func (s *Store) ListJoinRequests(ctx context.Context, q joinrequests.ListQuery) iter.Seq2[models.JoinRequest, error] {
	return func(yield func(models.JoinRequest, error) bool) {
		if err := ctx.Err(); err != nil {
			yield(models.JoinRequest{}, err)
			return
		}

		s.mu.RLock()
		var matches []models.JoinRequest
		for _, r := range s.requests {
			if q.TeamID != nil && r.TeamID != *q.TeamID {
				continue
			}
			if q.CandidateID != nil && r.CandidateID != *q.CandidateID {
				continue
			}
			if q.Status != nil && r.Status != *q.Status {
				continue
			}
			matches = append(matches, *copyRequest(r))
		}
		s.mu.RUnlock()

		slices.SortFunc(matches, func(a, b models.JoinRequest) int {
			c := a.CreatedAt.Compare(b.CreatedAt)
			if c == 0 {
				c = bytes.Compare(a.ID[:], b.ID[:])
			}
			if q.NewestFirst {
				return -c
			}
			return c
		})

		for _, r := range matches {
			if !yield(r, nil) {
				return
			}
		}
	}
}

// WithTeamLock runs fn holding teamID's mutex. Writes are staged on the tx
// and applied together after fn succeeds; events are dispatched after that.
func (s *Store) WithTeamLock(ctx context.Context, teamID uuid.UUID, fn func(ctx context.Context, tx joinrequests.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock, err := s.teamLock(teamID)
	if err != nil {
		return err
	}
	select {
	case lock <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-lock }()

	team, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	tx := &memTx{
		store:     s,
		team:      team,
		members:   slices.Clone(team.Members),
		decisions: make(map[uuid.UUID]decision),
	}

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.commit(tx)
	for _, e := range tx.events {
		s.sink.Notify(context.WithoutCancel(ctx), e)
	}
	return nil
}

func (s *Store) teamLock(teamID uuid.UUID) (chan struct{}, error) {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	if l, ok := s.locks[teamID]; ok {
		return l, nil
	}

	s.mu.RLock()
	_, exists := s.teams[teamID]
	s.mu.RUnlock()
	if !exists {
		return nil, apperr.NotFound("team %s not found", teamID)
	}

	l := make(chan struct{}, 1)
	s.locks[teamID] = l
	return l, nil
}

func (s *Store) commit(tx *memTx) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.teams[tx.team.ID]; ok && len(tx.members) != len(t.Members) {
		t.Members = slices.Clone(tx.members)
	}
	for i := range tx.inserts {
		r := tx.inserts[i]
		s.requests[r.ID] = &r
	}
	for id, d := range tx.decisions {
		if r, ok := s.requests[id]; ok {
			r.Status = d.status
			at := d.at
			r.DecidedAt = &at
		}
	}
}

type decision struct {
	status models.JoinRequestStatus
	at     time.Time
}

// memTx stages the writes of one unit of work
type memTx struct {
	store     *Store
	team      *models.Team
	members   []uuid.UUID
	inserts   []models.JoinRequest
	decisions map[uuid.UUID]decision
	events    []events.Event
}

func (t *memTx) Team() *models.Team { return t.team }

// AppendMember stages a member row. Like the postgres table it rejects a
// position that is not the next free slot.
func (t *memTx) AppendMember(ctx context.Context, teamID, userID uuid.UUID, position int) error {
	if teamID != t.team.ID {
		return apperr.InvalidArgument("team %s is not locked by this unit of work", teamID)
	}
	if slices.Contains(t.members, userID) {
		return apperr.New(apperr.KindAlreadyMember, "user %s is already a member of team %s", userID, teamID)
	}
	if position != len(t.members) || position >= t.team.TeamSize {
		return apperr.New(apperr.KindTeamFull, "team %s cannot take a member at position %d", teamID, position)
	}
	t.members = append(t.members, userID)
	return nil
}

func (t *memTx) GetJoinRequest(ctx context.Context, id uuid.UUID) (*models.JoinRequest, error) {
	for i := range t.inserts {
		if t.inserts[i].ID == id {
			return copyRequest(&t.inserts[i]), nil
		}
	}
	r, err := t.store.GetJoinRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	t.applyDecision(r)
	return r, nil
}

func (t *memTx) FindPendingRequest(ctx context.Context, candidateID uuid.UUID) (*models.JoinRequest, error) {
	for i := range t.inserts {
		r := &t.inserts[i]
		if r.CandidateID == candidateID && r.IsPending() {
			return copyRequest(r), nil
		}
	}

	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	for _, stored := range t.store.requests {
		if stored.TeamID != t.team.ID || stored.CandidateID != candidateID {
			continue
		}
		r := copyRequest(stored)
		t.applyDecision(r)
		if r.IsPending() {
			return r, nil
		}
	}
	return nil, nil
}

func (t *memTx) InsertJoinRequest(ctx context.Context, req *models.JoinRequest) error {
	if req.IsPending() {
		existing, err := t.FindPendingRequest(ctx, req.CandidateID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperr.New(apperr.KindDuplicateRequest, "a pending request already exists")
		}
	}
	t.inserts = append(t.inserts, *copyRequest(req))
	return nil
}

func (t *memTx) DecideJoinRequest(ctx context.Context, id uuid.UUID, status models.JoinRequestStatus, decidedAt time.Time) error {
	if !status.Terminal() {
		return apperr.InvalidArgument("%s is not a decision", status)
	}
	current, err := t.GetJoinRequest(ctx, id)
	if err != nil {
		return err
	}
	if !current.IsPending() {
		return apperr.New(apperr.KindInvalidState, "join request %s is not pending", id)
	}

	for i := range t.inserts {
		if t.inserts[i].ID == id {
			t.inserts[i].Status = status
			at := decidedAt
			t.inserts[i].DecidedAt = &at
			return nil
		}
	}
	t.decisions[id] = decision{status: status, at: decidedAt}
	return nil
}

func (t *memTx) Enqueue(ctx context.Context, event events.Event) error {
	t.events = append(t.events, event)
	return nil
}

func (t *memTx) applyDecision(r *models.JoinRequest) {
	if d, ok := t.decisions[r.ID]; ok {
		r.Status = d.status
		at := d.at
		r.DecidedAt = &at
	}
}

func copyRequest(r *models.JoinRequest) *models.JoinRequest {
	c := *r
	if r.DecidedAt != nil {
		at := *r.DecidedAt
		c.DecidedAt = &at
	}
	return &c
}
