package memstore

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/hackteams/go/internal/apperr"
	"github.com/mcdev12/hackteams/go/internal/events"
	"github.com/mcdev12/hackteams/go/internal/joinrequests"
	"github.com/mcdev12/hackteams/go/internal/models"
	"github.com/mcdev12/hackteams/go/internal/notify"
	"github.com/mcdev12/hackteams/go/internal/teams"
)

var t0 = time.Date(2025, 4, 12, 10, 0, 0, 0, time.UTC)

func seedTeam(t *testing.T, s *Store, size int) *models.Team {
	t.Helper()
	leader := uuid.New()
	team := &models.Team{
		ID:        uuid.New(),
		EventID:   uuid.New(),
		LeaderID:  leader,
		TeamName:  "team",
		TeamSize:  size,
		Members:   []uuid.UUID{leader},
		CreatedAt: t0,
		UpdatedAt: t0,
	}
	if err := s.CreateTeam(context.Background(), team); err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}
	return team
}

func pending(teamID, candidateID uuid.UUID, at time.Time) *models.JoinRequest {
	return &models.JoinRequest{
		ID:          uuid.New(),
		TeamID:      teamID,
		CandidateID: candidateID,
		Status:      models.JoinRequestStatusPending,
		CreatedAt:   at,
	}
}

func TestGetTeamReturnsCopy(t *testing.T) {
	s := New(nil)
	team := seedTeam(t, s, 3)

	got, err := s.GetTeam(context.Background(), team.ID)
	if err != nil {
		t.Fatalf("GetTeam: %v", err)
	}
	got.Members = append(got.Members, uuid.New())

	again, _ := s.GetTeam(context.Background(), team.ID)
	if len(again.Members) != 1 {
		t.Fatalf("caller mutation leaked into the store: %v", again.Members)
	}
}

func TestWithTeamLockCommitsOnSuccess(t *testing.T) {
	rec := &notify.Recorder{}
	s := New(rec)
	team := seedTeam(t, s, 3)
	candidate := uuid.New()
	req := pending(team.ID, candidate, t0)

	err := s.WithTeamLock(context.Background(), team.ID, func(ctx context.Context, tx joinrequests.Tx) error {
		if err := tx.AppendMember(ctx, team.ID, candidate, 1); err != nil {
			return err
		}
		if err := tx.InsertJoinRequest(ctx, req); err != nil {
			return err
		}
		if err := tx.DecideJoinRequest(ctx, req.ID, models.JoinRequestStatusAccepted, t0); err != nil {
			return err
		}
		return tx.Enqueue(ctx, events.Event{ID: uuid.New(), Type: events.TypeRequestAccepted, TeamID: team.ID})
	})
	if err != nil {
		t.Fatalf("WithTeamLock: %v", err)
	}

	got, _ := s.GetTeam(context.Background(), team.ID)
	if !slices.Equal(got.Members, []uuid.UUID{team.LeaderID, candidate}) {
		t.Errorf("members = %v", got.Members)
	}
	stored, err := s.GetJoinRequest(context.Background(), req.ID)
	if err != nil {
		t.Fatalf("GetJoinRequest: %v", err)
	}
	if stored.Status != models.JoinRequestStatusAccepted || stored.DecidedAt == nil {
		t.Errorf("request = %+v", stored)
	}
	if n := len(rec.Events()); n != 1 {
		t.Errorf("dispatched %d events, want 1", n)
	}
}

func TestWithTeamLockDiscardsOnError(t *testing.T) {
	rec := &notify.Recorder{}
	s := New(rec)
	team := seedTeam(t, s, 3)
	req := pending(team.ID, uuid.New(), t0)
	boom := errors.New("boom")

	err := s.WithTeamLock(context.Background(), team.ID, func(ctx context.Context, tx joinrequests.Tx) error {
		if err := tx.AppendMember(ctx, team.ID, req.CandidateID, 1); err != nil {
			return err
		}
		if err := tx.InsertJoinRequest(ctx, req); err != nil {
			return err
		}
		if err := tx.Enqueue(ctx, events.Event{ID: uuid.New()}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want boom", err)
	}

	got, _ := s.GetTeam(context.Background(), team.ID)
	if len(got.Members) != 1 {
		t.Errorf("members = %v, want only the leader", got.Members)
	}
	if _, err := s.GetJoinRequest(context.Background(), req.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("staged insert leaked: %v", err)
	}
	if n := len(rec.Events()); n != 0 {
		t.Errorf("dispatched %d events, want 0", n)
	}
}

func TestWithTeamLockCancelledContext(t *testing.T) {
	s := New(nil)
	team := seedTeam(t, s, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.WithTeamLock(ctx, team.ID, func(context.Context, joinrequests.Tx) error {
		called = true
		return nil
	})
	if !errors.Is(err, context.Canceled) || called {
		t.Fatalf("err = %v, called = %v", err, called)
	}
}

func TestWithTeamLockMissingTeam(t *testing.T) {
	s := New(nil)
	err := s.WithTeamLock(context.Background(), uuid.New(), func(context.Context, joinrequests.Tx) error {
		t.Fatal("fn must not run for a missing team")
		return nil
	})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("got %v, want NotFound", err)
	}
}

func TestWithTeamLockUnknownTeamsLeaveNoLocks(t *testing.T) {
	s := New(nil)
	for range 1000 {
		err := s.WithTeamLock(context.Background(), uuid.New(), func(context.Context, joinrequests.Tx) error {
			return nil
		})
		if !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("got %v, want NotFound", err)
		}
	}

	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	if len(s.locks) != 0 {
		t.Fatalf("locks = %d, want 0", len(s.locks))
	}
}

func TestWithTeamLockWaitHonorsContext(t *testing.T) {
	s := New(nil)
	team := seedTeam(t, s, 3)

	held := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- s.WithTeamLock(context.Background(), team.ID, func(context.Context, joinrequests.Tx) error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := s.WithTeamLock(ctx, team.ID, func(context.Context, joinrequests.Tx) error {
		t.Error("fn must not run while another unit of work holds the team")
		return nil
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v, want DeadlineExceeded", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("holder: %v", err)
	}
	if err := s.WithTeamLock(context.Background(), team.ID, func(context.Context, joinrequests.Tx) error { return nil }); err != nil {
		t.Fatalf("lock not released: %v", err)
	}
}

func TestAppendMemberRules(t *testing.T) {
	s := New(nil)
	team := seedTeam(t, s, 2)
	other := seedTeam(t, s, 2)

	tests := []struct {
		name     string
		teamID   uuid.UUID
		userID   uuid.UUID
		position int
		want     error
	}{
		{"other team", other.ID, uuid.New(), 1, apperr.ErrInvalidArgument},
		{"duplicate member", team.ID, team.LeaderID, 1, apperr.ErrAlreadyMember},
		{"stale position", team.ID, uuid.New(), 0, apperr.ErrTeamFull},
		{"beyond capacity", team.ID, uuid.New(), 2, apperr.ErrTeamFull},
		{"next slot", team.ID, uuid.New(), 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.WithTeamLock(context.Background(), team.ID, func(ctx context.Context, tx joinrequests.Tx) error {
				return tx.AppendMember(ctx, tt.teamID, tt.userID, tt.position)
			})
			if tt.want == nil {
				if err != nil {
					t.Fatalf("AppendMember: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInsertRejectsSecondPending(t *testing.T) {
	s := New(nil)
	team := seedTeam(t, s, 3)
	candidate := uuid.New()

	err := s.WithTeamLock(context.Background(), team.ID, func(ctx context.Context, tx joinrequests.Tx) error {
		if err := tx.InsertJoinRequest(ctx, pending(team.ID, candidate, t0)); err != nil {
			return err
		}
		return tx.InsertJoinRequest(ctx, pending(team.ID, candidate, t0))
	})
	if !errors.Is(err, apperr.ErrDuplicateRequest) {
		t.Fatalf("got %v, want DuplicateRequest", err)
	}
}

func TestDecideOnlyPending(t *testing.T) {
	s := New(nil)
	team := seedTeam(t, s, 3)
	req := pending(team.ID, uuid.New(), t0)

	err := s.WithTeamLock(context.Background(), team.ID, func(ctx context.Context, tx joinrequests.Tx) error {
		if err := tx.InsertJoinRequest(ctx, req); err != nil {
			return err
		}
		if err := tx.DecideJoinRequest(ctx, req.ID, models.JoinRequestStatusPending, t0); !errors.Is(err, apperr.ErrInvalidArgument) {
			t.Errorf("deciding PENDING: got %v", err)
		}
		return tx.DecideJoinRequest(ctx, req.ID, models.JoinRequestStatusRejected, t0)
	})
	if err != nil {
		t.Fatalf("first decision: %v", err)
	}

	err = s.WithTeamLock(context.Background(), team.ID, func(ctx context.Context, tx joinrequests.Tx) error {
		return tx.DecideJoinRequest(ctx, req.ID, models.JoinRequestStatusAccepted, t0)
	})
	if !errors.Is(err, apperr.ErrInvalidState) {
		t.Fatalf("second decision: got %v, want InvalidState", err)
	}
}

func TestListJoinRequestsOrderAndFilters(t *testing.T) {
	s := New(nil)
	team := seedTeam(t, s, 5)
	candidate := uuid.New()
	a := pending(team.ID, candidate, t0.Add(2*time.Second))
	b := pending(team.ID, uuid.New(), t0)
	c := pending(team.ID, uuid.New(), t0.Add(time.Second))

	err := s.WithTeamLock(context.Background(), team.ID, func(ctx context.Context, tx joinrequests.Tx) error {
		for _, r := range []*models.JoinRequest{a, b, c} {
			if err := tx.InsertJoinRequest(ctx, r); err != nil {
				return err
			}
		}
		return tx.DecideJoinRequest(ctx, c.ID, models.JoinRequestStatusRejected, t0)
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	collect := func(q joinrequests.ListQuery) []uuid.UUID {
		var out []uuid.UUID
		for r, err := range s.ListJoinRequests(context.Background(), q) {
			if err != nil {
				t.Fatalf("ListJoinRequests: %v", err)
			}
			out = append(out, r.ID)
		}
		return out
	}

	st := models.JoinRequestStatusPending
	tests := []struct {
		name string
		q    joinrequests.ListQuery
		want []uuid.UUID
	}{
		{"by team oldest first", joinrequests.ListQuery{TeamID: &team.ID}, []uuid.UUID{b.ID, c.ID, a.ID}},
		{"newest first", joinrequests.ListQuery{TeamID: &team.ID, NewestFirst: true}, []uuid.UUID{a.ID, c.ID, b.ID}},
		{"pending only", joinrequests.ListQuery{TeamID: &team.ID, Status: &st}, []uuid.UUID{b.ID, a.ID}},
		{"by candidate", joinrequests.ListQuery{CandidateID: &candidate}, []uuid.UUID{a.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collect(tt.q); !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListTeamsByStatus(t *testing.T) {
	s := New(nil)
	open := seedTeam(t, s, 3)
	full := seedTeam(t, s, 1)

	for _, tt := range []struct {
		team   *models.Team
		status models.TeamStatus
	}{
		{open, models.TeamStatusRecruiting},
		{full, models.TeamStatusFull},
	} {
		st := tt.status
		got, err := s.ListTeams(context.Background(), teams.TeamFilter{EventID: tt.team.EventID, Status: &st})
		if err != nil {
			t.Fatalf("ListTeams: %v", err)
		}
		if len(got) != 1 || got[0].ID != tt.team.ID {
			t.Errorf("%s: got %d teams", tt.status, len(got))
		}
	}
}
