package membership

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/hackteams/go/internal/apperr"
	"github.com/mcdev12/hackteams/go/internal/models"
)

type recordingWriter struct {
	calls []int
	err   error
}

func (w *recordingWriter) AppendMember(ctx context.Context, teamID, userID uuid.UUID, position int) error {
	if w.err != nil {
		return w.err
	}
	w.calls = append(w.calls, position)
	return nil
}

func newTeam(size int, members ...uuid.UUID) *models.Team {
	return &models.Team{
		ID:       uuid.New(),
		LeaderID: members[0],
		TeamSize: size,
		Members:  members,
	}
}

func TestCanAdmit(t *testing.T) {
	leader, member, outsider := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name      string
		team      *models.Team
		candidate uuid.UUID
		want      bool
	}{
		{"open slot", newTeam(3, leader), outsider, true},
		{"already member", newTeam(3, leader, member), member, false},
		{"leader", newTeam(3, leader), leader, false},
		{"full", newTeam(2, leader, member), outsider, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAdmit(tt.team, tt.candidate); got != tt.want {
				t.Fatalf("CanAdmit = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdmitAppendsInOrder(t *testing.T) {
	leader, c1, c2 := uuid.New(), uuid.New(), uuid.New()
	team := newTeam(3, leader)
	w := &recordingWriter{}

	for _, c := range []uuid.UUID{c1, c2} {
		if err := Admit(context.Background(), w, team, c); err != nil {
			t.Fatalf("Admit: %v", err)
		}
	}

	want := []uuid.UUID{leader, c1, c2}
	for i := range want {
		if team.Members[i] != want[i] {
			t.Fatalf("member %d = %s, want %s", i, team.Members[i], want[i])
		}
	}
	if len(w.calls) != 2 || w.calls[0] != 1 || w.calls[1] != 2 {
		t.Fatalf("unexpected positions %v", w.calls)
	}
	if team.Status() != models.TeamStatusFull {
		t.Fatalf("expected team to be full")
	}
}

func TestAdmitRejections(t *testing.T) {
	leader, member, outsider := uuid.New(), uuid.New(), uuid.New()

	err := Admit(context.Background(), &recordingWriter{}, newTeam(3, leader, member), member)
	if !errors.Is(err, apperr.ErrAlreadyMember) {
		t.Fatalf("expected AlreadyMember, got %v", err)
	}

	full := newTeam(2, leader, member)
	err = Admit(context.Background(), &recordingWriter{}, full, outsider)
	if !errors.Is(err, apperr.ErrTeamFull) {
		t.Fatalf("expected TeamFull, got %v", err)
	}
	if len(full.Members) != 2 {
		t.Fatalf("members changed on rejection: %v", full.Members)
	}
}

func TestAdmitLeavesTeamUntouchedWhenWriteFails(t *testing.T) {
	leader := uuid.New()
	team := newTeam(2, leader)
	w := &recordingWriter{err: errors.New("connection reset")}

	if err := Admit(context.Background(), w, team, uuid.New()); err == nil {
		t.Fatalf("expected write error")
	}
	if len(team.Members) != 1 {
		t.Fatalf("members changed after failed write: %v", team.Members)
	}
}

func TestCheckInvariants(t *testing.T) {
	leader, member := uuid.New(), uuid.New()

	if err := CheckInvariants(newTeam(2, leader, member)); err != nil {
		t.Fatalf("valid team rejected: %v", err)
	}

	overfull := newTeam(1, leader, member)
	if err := CheckInvariants(overfull); err == nil {
		t.Fatalf("expected capacity violation")
	}

	noLeader := newTeam(2, member)
	noLeader.LeaderID = leader
	if err := CheckInvariants(noLeader); err == nil {
		t.Fatalf("expected leader violation")
	}

	dup := newTeam(3, leader, member, member)
	if err := CheckInvariants(dup); err == nil {
		t.Fatalf("expected duplicate violation")
	}
}
