package teams

import (
	"github.com/google/uuid"
	"github.com/mcdev12/hackteams/go/internal/models"
)

// CreateTeamRequest represents the data needed to create a new team
type CreateTeamRequest struct {
	LeaderID    uuid.UUID `json:"leader_id"`
	EventID     uuid.UUID `json:"event_id"`
	TeamName    string    `json:"team_name"`
	Description string    `json:"description"`
	TeamSize    int       `json:"team_size"`
	RolesNeeded []string  `json:"roles_needed"`
}

// UpdateTeamInfoRequest is a partial update of the descriptive fields. A nil
// field is left unchanged. Team size and event are not patchable.
type UpdateTeamInfoRequest struct {
	TeamName    *string   `json:"team_name,omitempty"`
	Description *string   `json:"description,omitempty"`
	RolesNeeded *[]string `json:"roles_needed,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (r UpdateTeamInfoRequest) IsEmpty() bool {
	return r.TeamName == nil && r.Description == nil && r.RolesNeeded == nil
}

// TeamFilter represents filtering options for listing an event's teams
type TeamFilter struct {
	EventID uuid.UUID          `json:"event_id"`
	Status  *models.TeamStatus `json:"status,omitempty"`
}

// Config bounds team creation.
type Config struct {
	// MaxTeamSize caps teamSize on creation. Zero means no ceiling.
	MaxTeamSize int
}
