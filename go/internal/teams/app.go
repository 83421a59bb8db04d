package teams

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/hackteams/go/internal/apperr"
	"github.com/mcdev12/hackteams/go/internal/models"
	"github.com/rs/zerolog/log"
)

// TeamsRepository defines what the app layer needs from the repository.
// Missing teams are reported as apperr.ErrNotFound.
type TeamsRepository interface {
	CreateTeam(ctx context.Context, team *models.Team) error
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	UpdateTeamInfo(ctx context.Context, id uuid.UUID, req UpdateTeamInfoRequest, updatedAt time.Time) (*models.Team, error)
	ListTeams(ctx context.Context, filter TeamFilter) ([]models.Team, error)
	ListTeamsByMember(ctx context.Context, userID uuid.UUID) ([]models.Team, error)
}

// ProfileReader resolves user profiles for team views
type ProfileReader interface {
	GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error)
}

// RoleCatalog lists the suggested role names
type RoleCatalog interface {
	Roles() []string
}

// App handles team registry business logic
type App struct {
	repo     TeamsRepository
	profiles ProfileReader
	roles    RoleCatalog
	clock    clockwork.Clock
	cfg      Config
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository, profiles ProfileReader, roles RoleCatalog, clock clockwork.Clock, cfg Config) *App {
	return &App{
		repo:     repo,
		profiles: profiles,
		roles:    roles,
		clock:    clock,
		cfg:      cfg,
	}
}

// CreateTeam creates a team whose only member is its leader
func (a *App) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	if err := a.validateCreateTeamRequest(req); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate team id: %w", err)
	}
	now := a.clock.Now().UTC()
	team := &models.Team{
		ID:          id,
		EventID:     req.EventID,
		LeaderID:    req.LeaderID,
		TeamName:    strings.TrimSpace(req.TeamName),
		Description: strings.TrimSpace(req.Description),
		TeamSize:    req.TeamSize,
		Members:     []uuid.UUID{req.LeaderID},
		RolesNeeded: NormalizeRoles(req.RolesNeeded),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := a.repo.CreateTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	log.Info().
		Str("team_id", team.ID.String()).
		Str("event_id", team.EventID.String()).
		Str("leader_id", team.LeaderID.String()).
		Int("team_size", team.TeamSize).
		Msg("team created")
	return team, nil
}

// GetTeam returns the team with its derived status and member profiles
func (a *App) GetTeam(ctx context.Context, id uuid.UUID) (*models.TeamView, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	users, err := a.profiles.GetUsersByIDs(ctx, team.Members)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve team members: %w", err)
	}
	byID := make(map[uuid.UUID]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	members := make([]models.Member, len(team.Members))
	for i, memberID := range team.Members {
		u, ok := byID[memberID]
		if !ok {
			u = models.User{ID: memberID}
		}
		members[i] = models.Member{User: u, IsLeader: team.IsLeader(memberID)}
	}

	return &models.TeamView{
		Team:    *team,
		Status:  team.Status(),
		Members: members,
	}, nil
}

// UpdateTeamInfo patches the descriptive fields. Only the leader may do so.
func (a *App) UpdateTeamInfo(ctx context.Context, actorID, teamID uuid.UUID, req UpdateTeamInfoRequest) (*models.Team, error) {
	team, err := a.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if !team.IsLeader(actorID) {
		return nil, apperr.Forbidden("only the team leader can edit team %s", teamID)
	}
	if req.IsEmpty() {
		return team, nil
	}

	if req.TeamName != nil {
		name := strings.TrimSpace(*req.TeamName)
		if name == "" {
			return nil, apperr.InvalidArgument("team name cannot be empty")
		}
		req.TeamName = &name
	}
	if req.Description != nil {
		desc := strings.TrimSpace(*req.Description)
		req.Description = &desc
	}
	if req.RolesNeeded != nil {
		roles := NormalizeRoles(*req.RolesNeeded)
		req.RolesNeeded = &roles
	}

	updated, err := a.repo.UpdateTeamInfo(ctx, teamID, req, a.clock.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	log.Info().
		Str("team_id", teamID.String()).
		Str("actor_id", actorID.String()).
		Msg("team info updated")
	return updated, nil
}

// ListTeams lists an event's teams, newest first, optionally by status
func (a *App) ListTeams(ctx context.Context, filter TeamFilter) ([]models.Team, error) {
	if filter.EventID == uuid.Nil {
		return nil, apperr.InvalidArgument("event_id is required")
	}
	if filter.Status != nil && *filter.Status != models.TeamStatusRecruiting && *filter.Status != models.TeamStatusFull {
		return nil, apperr.InvalidArgument("unknown team status %q", *filter.Status)
	}

	teams, err := a.repo.ListTeams(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// ListTeamsForUser lists the teams userID belongs to, flagging the ones they lead
func (a *App) ListTeamsForUser(ctx context.Context, userID uuid.UUID) ([]models.UserTeam, error) {
	teams, err := a.repo.ListTeamsByMember(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for user: %w", err)
	}

	out := make([]models.UserTeam, len(teams))
	for i := range teams {
		out[i] = models.UserTeam{
			Team:     teams[i],
			Status:   teams[i].Status(),
			IsLeader: teams[i].IsLeader(userID),
		}
	}
	return out, nil
}

// ListRoles returns the suggested role names
func (a *App) ListRoles() []string {
	return a.roles.Roles()
}

// NormalizeRoles trims names, drops empties and removes duplicates while
// keeping first-seen order.
func NormalizeRoles(roles []string) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		r = strings.TrimSpace(r)
		if r == "" || slices.Contains(out, r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// validateCreateTeamRequest validates create team request
func (a *App) validateCreateTeamRequest(req CreateTeamRequest) error {
	if req.LeaderID == uuid.Nil {
		return apperr.InvalidArgument("leader_id is required")
	}
	if req.EventID == uuid.Nil {
		return apperr.InvalidArgument("event_id is required")
	}
	if strings.TrimSpace(req.TeamName) == "" {
		return apperr.InvalidArgument("team_name is required")
	}
	if req.TeamSize < 1 {
		return apperr.InvalidArgument("team_size must be at least 1, got %d", req.TeamSize)
	}
	if a.cfg.MaxTeamSize > 0 && req.TeamSize > a.cfg.MaxTeamSize {
		return apperr.InvalidArgument("team_size must be at most %d, got %d", a.cfg.MaxTeamSize, req.TeamSize)
	}
	return nil
}
