package joinrequests

import (
	"context"
	"iter"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/hackteams/go/internal/apperr"
	"github.com/mcdev12/hackteams/go/internal/auth"
	joinrequestv1 "github.com/mcdev12/hackteams/go/internal/genproto/joinrequest/v1"
	"github.com/mcdev12/hackteams/go/internal/genproto/joinrequest/v1/joinrequestv1connect"
	"github.com/mcdev12/hackteams/go/internal/models"
	"github.com/mcdev12/hackteams/go/internal/ratelimit"
	"github.com/mcdev12/hackteams/go/internal/rpcutil"
	"github.com/mcdev12/hackteams/go/internal/teams"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// JoinRequestsApp defines what the service layer needs from the application
type JoinRequestsApp interface {
	Submit(ctx context.Context, candidateID, teamID uuid.UUID) (*models.JoinRequest, error)
	List(ctx context.Context, actorID, teamID uuid.UUID, status *models.JoinRequestStatus) (iter.Seq2[models.JoinRequest, error], error)
	ListForCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.JoinRequest, error)
	Accept(ctx context.Context, actorID, requestID uuid.UUID) (*models.Team, *models.JoinRequest, error)
	Reject(ctx context.Context, actorID, requestID uuid.UUID) (*models.JoinRequest, error)
}

// SubmitLimit bounds how often one candidate may submit requests
type SubmitLimit struct {
	Limit  int
	Window time.Duration
}

// Service implements the JoinRequestService connect interface
type Service struct {
	app     JoinRequestsApp
	limiter ratelimit.Limiter
	limit   SubmitLimit
}

// NewService creates a new join requests connect service. limiter may be nil.
func NewService(app JoinRequestsApp, limiter ratelimit.Limiter, limit SubmitLimit) *Service {
	return &Service{
		app:     app,
		limiter: limiter,
		limit:   limit,
	}
}

// Verify that Service implements the JoinRequestServiceHandler interface
var _ joinrequestv1connect.JoinRequestServiceHandler = (*Service)(nil)

// SubmitJoinRequest files a request from the caller to join a team
func (s *Service) SubmitJoinRequest(ctx context.Context, req *connect.Request[joinrequestv1.SubmitJoinRequestRequest]) (*connect.Response[joinrequestv1.SubmitJoinRequestResponse], error) {
	procedure := req.Spec().Procedure
	actorID, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, rpcutil.ToConnectError(procedure, err)
	}
	teamID, err := rpcutil.ParseUUID("team_id", req.Msg.TeamId)
	if err != nil {
		return nil, rpcutil.ToConnectError(procedure, err)
	}

	if s.limiter != nil {
		decision := s.limiter.Allow(ctx, "submit:"+actorID.String(), s.limit.Limit, s.limit.Window)
		if !decision.Allowed {
			return nil, rpcutil.ToConnectError(procedure,
				apperr.New(apperr.KindRateLimited, "too many join requests, try again after %s", decision.WindowEnd.UTC().Format(time.RFC3339)))
		}
	}

	created, err := s.app.Submit(ctx, actorID, teamID)
	if err != nil {
		return nil, rpcutil.ToConnectError(procedure, err)
	}

	return connect.NewResponse(&joinrequestv1.SubmitJoinRequestResponse{
		Request: RequestToProto(created),
	}), nil
}

// ListJoinRequests streams a team's requests to its leader
func (s *Service) ListJoinRequests(ctx context.Context, req *connect.Request[joinrequestv1.ListJoinRequestsRequest], stream *connect.ServerStream[joinrequestv1.ListJoinRequestsResponse]) error {
	procedure := req.Spec().Procedure
	actorID, err := auth.RequireActor(ctx)
	if err != nil {
		return rpcutil.ToConnectError(procedure, err)
	}
	teamID, err := rpcutil.ParseUUID("team_id", req.Msg.TeamId)
	if err != nil {
		return rpcutil.ToConnectError(procedure, err)
	}
	var status *models.JoinRequestStatus
	if req.Msg.Status != "" {
		st := models.JoinRequestStatus(req.Msg.Status)
		status = &st
	}

	seq, err := s.app.List(ctx, actorID, teamID, status)
	if err != nil {
		return rpcutil.ToConnectError(procedure, err)
	}
	for jr, err := range seq {
		if err != nil {
			return rpcutil.ToConnectError(procedure, err)
		}
		if err := stream.Send(&joinrequestv1.ListJoinRequestsResponse{Request: RequestToProto(&jr)}); err != nil {
			return err
		}
	}
	return nil
}

// AcceptJoinRequest admits the candidate to the team
func (s *Service) AcceptJoinRequest(ctx context.Context, req *connect.Request[joinrequestv1.AcceptJoinRequestRequest]) (*connect.Response[joinrequestv1.AcceptJoinRequestResponse], error) {
	procedure := req.Spec().Procedure
	actorID, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, rpcutil.ToConnectError(procedure, err)
	}
	requestID, err := rpcutil.ParseUUID("request_id", req.Msg.RequestId)
	if err != nil {
		return nil, rpcutil.ToConnectError(procedure, err)
	}

	team, accepted, err := s.app.Accept(ctx, actorID, requestID)
	if err != nil {
		return nil, rpcutil.ToConnectError(procedure, err)
	}

	return connect.NewResponse(&joinrequestv1.AcceptJoinRequestResponse{
		Team:    teams.TeamToProto(team),
		Request: RequestToProto(accepted),
	}), nil
}

// RejectJoinRequest declines the request
func (s *Service) RejectJoinRequest(ctx context.Context, req *connect.Request[joinrequestv1.RejectJoinRequestRequest]) (*connect.Response[joinrequestv1.RejectJoinRequestResponse], error) {
	procedure := req.Spec().Procedure
	actorID, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, rpcutil.ToConnectError(procedure, err)
	}
	requestID, err := rpcutil.ParseUUID("request_id", req.Msg.RequestId)
	if err != nil {
		return nil, rpcutil.ToConnectError(procedure, err)
	}

	rejected, err := s.app.Reject(ctx, actorID, requestID)
	if err != nil {
		return nil, rpcutil.ToConnectError(procedure, err)
	}

	return connect.NewResponse(&joinrequestv1.RejectJoinRequestResponse{
		Request: RequestToProto(rejected),
	}), nil
}

// ListMyJoinRequests lists the caller's own requests, newest first
func (s *Service) ListMyJoinRequests(ctx context.Context, req *connect.Request[joinrequestv1.ListMyJoinRequestsRequest]) (*connect.Response[joinrequestv1.ListMyJoinRequestsResponse], error) {
	procedure := req.Spec().Procedure
	actorID, err := auth.RequireActor(ctx)
	if err != nil {
		return nil, rpcutil.ToConnectError(procedure, err)
	}

	requests, err := s.app.ListForCandidate(ctx, actorID)
	if err != nil {
		return nil, rpcutil.ToConnectError(procedure, err)
	}

	out := make([]*joinrequestv1.JoinRequest, len(requests))
	for i := range requests {
		out[i] = RequestToProto(&requests[i])
	}
	return connect.NewResponse(&joinrequestv1.ListMyJoinRequestsResponse{
		Requests: out,
	}), nil
}

// RequestToProto converts a join request to its wire form
func RequestToProto(req *models.JoinRequest) *joinrequestv1.JoinRequest {
	out := &joinrequestv1.JoinRequest{
		Id:          req.ID.String(),
		TeamId:      req.TeamID.String(),
		CandidateId: req.CandidateID.String(),
		Status:      string(req.Status),
		CreatedAt:   timestamppb.New(req.CreatedAt),
	}
	if req.DecidedAt != nil {
		out.DecidedAt = timestamppb.New(*req.DecidedAt)
	}
	return out
}
