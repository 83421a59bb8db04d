package teams

import (
	"context"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/hackteams/go/internal/auth"
	teamv1 "github.com/mcdev12/hackteams/go/internal/genproto/team/v1"
	"github.com/mcdev12/hackteams/go/internal/genproto/team/v1/teamv1connect"
	"github.com/mcdev12/hackteams/go/internal/models"
	"github.com/mcdev12/hackteams/go/internal/rpcutil"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.TeamView, error)
	UpdateTeamInfo(ctx context.Context, actorID, teamID uuid.UUID, req UpdateTeamInfoRequest) (*models.Team, error)
	ListTeams(ctx context.Context, filter TeamFilter) ([]models.Team, error)
	ListTeamsForUser(ctx context.Context, userID uuid.UUID) ([]models.UserTeam, error)
	ListRoles() []string
}

// Service implements the TeamService connect interface
type Service struct {
	app TeamsApp
}

// NewService creates a new teams connect service
func NewService(app TeamsApp) *Service {
	return &Service{
		app: app,
	}
}

// Verify that Service implements the TeamServiceHandler interface
var _ teamv1connect.TeamServiceHandler = (*Service)(nil)

// CreateTeam creates a team led by the caller
func (s *Service) CreateTeam(ctx context.Context, req *connect.Request[teamv1.CreateTeamRequest]) (*connect.Response[teamv1.CreateTeamResponse], error) {
	actorID, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, rpcutil.ToConnectError(req.Spec().Procedure, err)
	}
	eventID, err := rpcutil.ParseUUID("event_id", req.Msg.EventId)
	if err != nil {
		return nil, rpcutil.ToConnectError(req.Spec().Procedure, err)
	}

	team, err := s.app.CreateTeam(ctx, CreateTeamRequest{
		LeaderID:    actorID,
		EventID:     eventID,
		TeamName:    req.Msg.TeamName,
		Description: req.Msg.Description,
		TeamSize:    int(req.Msg.TeamSize),
		RolesNeeded: req.Msg.RolesNeeded,
	})
	if err != nil {
		return nil, rpcutil.ToConnectError(req.Spec().Procedure, err)
	}

	return connect.NewResponse(&teamv1.CreateTeamResponse{
		Team: TeamToProto(team),
	}), nil
}

// GetTeam retrieves a team with its resolved members
func (s *Service) GetTeam(ctx context.Context, req *connect.Request[teamv1.GetTeamRequest]) (*connect.Response[teamv1.GetTeamResponse], error) {
	id, err := rpcutil.ParseUUID("id", req.Msg.Id)
	if err != nil {
		return nil, rpcutil.ToConnectError(req.Spec().Procedure, err)
	}

	view, err := s.app.GetTeam(ctx, id)
	if err != nil {
		return nil, rpcutil.ToConnectError(req.Spec().Procedure, err)
	}

	members := make([]*teamv1.Member, len(view.Members))
	for i, m := range view.Members {
		members[i] = &teamv1.Member{
			UserId:    m.User.ID.String(),
			Username:  m.User.Username,
			FullName:  m.User.FullName,
			AvatarUrl: m.User.AvatarURL,
			IsLeader:  m.IsLeader,
		}
	}

	return connect.NewResponse(&teamv1.GetTeamResponse{
		Team:    TeamToProto(&view.Team),
		Members: members,
	}), nil
}

// UpdateTeamInfo patches a team's descriptive fields
func (s *Service) UpdateTeamInfo(ctx context.Context, req *connect.Request[teamv1.UpdateTeamInfoRequest]) (*connect.Response[teamv1.UpdateTeamInfoResponse], error) {
	actorID, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, rpcutil.ToConnectError(req.Spec().Procedure, err)
	}
	id, err := rpcutil.ParseUUID("id", req.Msg.Id)
	if err != nil {
		return nil, rpcutil.ToConnectError(req.Spec().Procedure, err)
	}

	update := UpdateTeamInfoRequest{
		TeamName:    req.Msg.TeamName,
		Description: req.Msg.Description,
	}
	if req.Msg.RolesNeeded != nil {
		roles := req.Msg.RolesNeeded.GetRoles()
		if roles == nil {
			roles = []string{}
		}
		update.RolesNeeded = &roles
	}

	team, err := s.app.UpdateTeamInfo(ctx, actorID, id, update)
	if err != nil {
		return nil, rpcutil.ToConnectError(req.Spec().Procedure, err)
	}

	return connect.NewResponse(&teamv1.UpdateTeamInfoResponse{
		Team: TeamToProto(team),
	}), nil
}

// ListTeams lists the teams of an event
func (s *Service) ListTeams(ctx context.Context, req *connect.Request[teamv1.ListTeamsRequest]) (*connect.Response[teamv1.ListTeamsResponse], error) {
	eventID, err := rpcutil.ParseUUID("event_id", req.Msg.EventId)
	if err != nil {
		return nil, rpcutil.ToConnectError(req.Spec().Procedure, err)
	}
	filter := TeamFilter{EventID: eventID}
	if req.Msg.Status != "" {
		status := models.TeamStatus(req.Msg.Status)
		filter.Status = &status
	}

	teams, err := s.app.ListTeams(ctx, filter)
	if err != nil {
		return nil, rpcutil.ToConnectError(req.Spec().Procedure, err)
	}

	protoTeams := make([]*teamv1.Team, len(teams))
	for i := range teams {
		protoTeams[i] = TeamToProto(&teams[i])
	}

	return connect.NewResponse(&teamv1.ListTeamsResponse{
		Teams: protoTeams,
	}), nil
}

// ListMyTeams lists the caller's teams
func (s *Service) ListMyTeams(ctx context.Context, req *connect.Request[teamv1.ListMyTeamsRequest]) (*connect.Response[teamv1.ListMyTeamsResponse], error) {
	actorID, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, rpcutil.ToConnectError(req.Spec().Procedure, err)
	}

	teams, err := s.app.ListTeamsForUser(ctx, actorID)
	if err != nil {
		return nil, rpcutil.ToConnectError(req.Spec().Procedure, err)
	}

	out := make([]*teamv1.UserTeam, len(teams))
	for i := range teams {
		out[i] = &teamv1.UserTeam{
			Team:     TeamToProto(&teams[i].Team),
			IsLeader: teams[i].IsLeader,
		}
	}

	return connect.NewResponse(&teamv1.ListMyTeamsResponse{
		Teams: out,
	}), nil
}

// ListRoles returns the suggested role names
func (s *Service) ListRoles(ctx context.Context, req *connect.Request[teamv1.ListRolesRequest]) (*connect.Response[teamv1.ListRolesResponse], error) {
	return connect.NewResponse(&teamv1.ListRolesResponse{
		Roles: s.app.ListRoles(),
	}), nil
}

// TeamToProto converts a team to its wire form
func TeamToProto(team *models.Team) *teamv1.Team {
	members := make([]string, len(team.Members))
	for i, m := range team.Members {
		members[i] = m.String()
	}
	return &teamv1.Team{
		Id:          team.ID.String(),
		EventId:     team.EventID.String(),
		LeaderId:    team.LeaderID.String(),
		TeamName:    team.TeamName,
		Description: team.Description,
		TeamSize:    int32(team.TeamSize),
		MemberIds:   members,
		RolesNeeded: team.RolesNeeded,
		Status:      string(team.Status()),
		CreatedAt:   timestamppb.New(team.CreatedAt),
		UpdatedAt:   timestamppb.New(team.UpdatedAt),
	}
}
