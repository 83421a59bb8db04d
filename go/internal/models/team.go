package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// TeamStatus is the recruiting state of a team. It is derived from the
// member count and never persisted.
type TeamStatus string

const (
	TeamStatusRecruiting TeamStatus = "RECRUITING"
	TeamStatusFull       TeamStatus = "FULL"
)

// Team represents a hackathon team tied to one event
type Team struct {
	ID          uuid.UUID   `json:"id"`
	EventID     uuid.UUID   `json:"event_id"`
	LeaderID    uuid.UUID   `json:"leader_id"`
	TeamName    string      `json:"team_name"`
	Description string      `json:"description"`
	TeamSize    int         `json:"team_size"`
	Members     []uuid.UUID `json:"members"`
	RolesNeeded []string    `json:"roles_needed"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Status derives RECRUITING or FULL from the current member count.
func (t *Team) Status() TeamStatus {
	if len(t.Members) < t.TeamSize {
		return TeamStatusRecruiting
	}
	return TeamStatusFull
}

// HasMember reports whether userID is already on the team.
func (t *Team) HasMember(userID uuid.UUID) bool {
	return slices.Contains(t.Members, userID)
}

// IsLeader reports whether userID leads the team.
func (t *Team) IsLeader(userID uuid.UUID) bool {
	return t.LeaderID == userID
}

// OpenSlots is the number of members that can still be admitted.
func (t *Team) OpenSlots() int {
	if n := t.TeamSize - len(t.Members); n > 0 {
		return n
	}
	return 0
}

// Clone returns a deep copy so callers can mutate slices freely.
func (t *Team) Clone() *Team {
	c := *t
	c.Members = slices.Clone(t.Members)
	c.RolesNeeded = slices.Clone(t.RolesNeeded)
	return &c
}

// Member is a resolved team member as shown on the team page.
type Member struct {
	User     User `json:"user"`
	IsLeader bool `json:"is_leader"`
}

// TeamView is a team together with its derived status and resolved member
// profiles, in membership order.
type TeamView struct {
	Team    Team       `json:"team"`
	Status  TeamStatus `json:"status"`
	Members []Member   `json:"members"`
}

// UserTeam is a team as listed on a user's profile.
type UserTeam struct {
	Team     Team       `json:"team"`
	Status   TeamStatus `json:"status"`
	IsLeader bool       `json:"is_leader"`
}
