// Package membership holds the capacity and uniqueness rules that guard every
// change to a team's member list.
//
// Admit is the only path that adds a member. Callers must hold exclusive
// access to the team for the duration of the call (the per-team lock of the
// memory store, or the row lock of the postgres transaction); the read of the
// member count and the append are otherwise racy.
package membership

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/hackteams/go/internal/apperr"
	"github.com/mcdev12/hackteams/go/internal/models"
)

// MemberWriter persists a new member at the given zero-based position.
// It is implemented by the team registry, the sole owner of member rows.
type MemberWriter interface {
	AppendMember(ctx context.Context, teamID, userID uuid.UUID, position int) error
}

// CanAdmit reports whether candidateID could be added to team right now.
func CanAdmit(team *models.Team, candidateID uuid.UUID) bool {
	return len(team.Members) < team.TeamSize && !team.HasMember(candidateID)
}

// Admit appends candidateID to team, persisting through w.
// On success team.Members reflects the new member.
func Admit(ctx context.Context, w MemberWriter, team *models.Team, candidateID uuid.UUID) error {
	if team.HasMember(candidateID) {
		return apperr.New(apperr.KindAlreadyMember, "user %s is already a member of team %s", candidateID, team.ID)
	}
	if len(team.Members) >= team.TeamSize {
		return apperr.New(apperr.KindTeamFull, "team %s is full (%d/%d)", team.ID, len(team.Members), team.TeamSize)
	}

	position := len(team.Members)
	if err := w.AppendMember(ctx, team.ID, candidateID, position); err != nil {
		return fmt.Errorf("failed to append member: %w", err)
	}
	team.Members = append(team.Members, candidateID)
	return nil
}

// CheckInvariants verifies the stored shape of a team: 1 <= |members| <=
// teamSize, the leader is a member and no member appears twice.
func CheckInvariants(team *models.Team) error {
	if n := len(team.Members); n < 1 || n > team.TeamSize {
		return fmt.Errorf("team %s has %d members, capacity %d", team.ID, n, team.TeamSize)
	}
	if !team.HasMember(team.LeaderID) {
		return fmt.Errorf("team %s leader %s is not a member", team.ID, team.LeaderID)
	}
	seen := make(map[uuid.UUID]struct{}, len(team.Members))
	for _, m := range team.Members {
		if _, dup := seen[m]; dup {
			return fmt.Errorf("team %s lists member %s twice", team.ID, m)
		}
		seen[m] = struct{}{}
	}
	return nil
}
