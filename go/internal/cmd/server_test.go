package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/hackteams/go/internal/apperr"
	"github.com/mcdev12/hackteams/go/internal/auth"
	"github.com/mcdev12/hackteams/go/internal/config"
	joinrequestv1 "github.com/mcdev12/hackteams/go/internal/genproto/joinrequest/v1"
	"github.com/mcdev12/hackteams/go/internal/genproto/joinrequest/v1/joinrequestv1connect"
	teamv1 "github.com/mcdev12/hackteams/go/internal/genproto/team/v1"
	"github.com/mcdev12/hackteams/go/internal/genproto/team/v1/teamv1connect"
	"github.com/mcdev12/hackteams/go/internal/metrics"
	"github.com/mcdev12/hackteams/go/internal/rpcutil"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

type apiFixture struct {
	server   *httptest.Server
	verifier *auth.Verifier
	teams    teamv1connect.TeamServiceClient
	requests joinrequestv1connect.JoinRequestServiceClient
}

func newAPIFixture(t *testing.T, tweak func(*config.Config)) *apiFixture {
	t.Helper()
	cfg := config.Default()
	cfg.Auth.JWTSecret = "test-secret"
	if tweak != nil {
		tweak(cfg)
	}

	verifier, err := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer, clockwork.NewRealClock())
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	reg := prometheus.NewRegistry()
	rpcMetrics, err := metrics.NewRPC(reg)
	if err != nil {
		t.Fatalf("NewRPC: %v", err)
	}
	services, err := setupServices(context.Background(), cfg, reg)
	if err != nil {
		t.Fatalf("setupServices: %v", err)
	}

	server := httptest.NewServer(newHandler(cfg, services, metrics.Handler(metrics.NewRegistry()), rpcMetrics, auth.NewInterceptor(verifier)))
	t.Cleanup(func() {
		server.Close()
		services.Close()
	})

	return &apiFixture{
		server:   server,
		verifier: verifier,
		teams:    teamv1connect.NewTeamServiceClient(server.Client(), server.URL),
		requests: joinrequestv1connect.NewJoinRequestServiceClient(server.Client(), server.URL),
	}
}

func authed[T any](t *testing.T, f *apiFixture, user uuid.UUID, msg *T) *connect.Request[T] {
	t.Helper()
	req := connect.NewRequest(msg)
	if user != uuid.Nil {
		token, err := f.verifier.Issue(user, time.Hour)
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		req.Header().Set("Authorization", "Bearer "+token)
	}
	return req
}

func (f *apiFixture) createTeam(t *testing.T, leader uuid.UUID, size int32) *teamv1.Team {
	t.Helper()
	resp, err := f.teams.CreateTeam(context.Background(), authed(t, f, leader, &teamv1.CreateTeamRequest{
		EventId:  uuid.NewString(),
		TeamName: "Night Owls",
		TeamSize: size,
	}))
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}
	return resp.Msg.Team
}

func assertFailure(t *testing.T, err error, code connect.Code, kind apperr.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got success", code)
	}
	if got := connect.CodeOf(err); got != code {
		t.Fatalf("code = %s, want %s (%v)", got, code, err)
	}
	if kind != "" {
		if got := rpcutil.KindFromError(err); got != kind {
			t.Fatalf("kind = %q, want %q", got, kind)
		}
	}
}

func TestJoinFlowOverRPC(t *testing.T) {
	f := newAPIFixture(t, nil)
	ctx := context.Background()
	leader, candidate := uuid.New(), uuid.New()
	team := f.createTeam(t, leader, 2)

	submitted, err := f.requests.SubmitJoinRequest(ctx, authed(t, f, candidate, &joinrequestv1.SubmitJoinRequestRequest{TeamId: team.Id}))
	if err != nil {
		t.Fatalf("SubmitJoinRequest: %v", err)
	}
	if submitted.Msg.Request.Status != "PENDING" {
		t.Fatalf("status = %s", submitted.Msg.Request.Status)
	}

	stream, err := f.requests.ListJoinRequests(ctx, authed(t, f, leader, &joinrequestv1.ListJoinRequestsRequest{TeamId: team.Id}))
	if err != nil {
		t.Fatalf("ListJoinRequests: %v", err)
	}
	var listed []string
	for stream.Receive() {
		listed = append(listed, stream.Msg().Request.Id)
	}
	if err := stream.Err(); err != nil {
		t.Fatalf("stream: %v", err)
	}
	if len(listed) != 1 || listed[0] != submitted.Msg.Request.Id {
		t.Fatalf("listed %v", listed)
	}

	accepted, err := f.requests.AcceptJoinRequest(ctx, authed(t, f, leader, &joinrequestv1.AcceptJoinRequestRequest{RequestId: submitted.Msg.Request.Id}))
	if err != nil {
		t.Fatalf("AcceptJoinRequest: %v", err)
	}
	if accepted.Msg.Team.Status != "FULL" || len(accepted.Msg.Team.MemberIds) != 2 {
		t.Fatalf("team after accept = %+v", accepted.Msg.Team)
	}
	if accepted.Msg.Request.Status != "ACCEPTED" || accepted.Msg.Request.DecidedAt == nil {
		t.Fatalf("request after accept = %+v", accepted.Msg.Request)
	}

	mine, err := f.teams.ListMyTeams(ctx, authed(t, f, candidate, &teamv1.ListMyTeamsRequest{}))
	if err != nil {
		t.Fatalf("ListMyTeams: %v", err)
	}
	if len(mine.Msg.Teams) != 1 || mine.Msg.Teams[0].IsLeader {
		t.Fatalf("candidate teams = %+v", mine.Msg.Teams)
	}

	// a third user now finds the team full
	_, err = f.requests.SubmitJoinRequest(ctx, authed(t, f, uuid.New(), &joinrequestv1.SubmitJoinRequestRequest{TeamId: team.Id}))
	assertFailure(t, err, connect.CodeFailedPrecondition, apperr.KindTeamFull)
}

func TestErrorMappingOverRPC(t *testing.T) {
	f := newAPIFixture(t, nil)
	ctx := context.Background()
	leader, candidate := uuid.New(), uuid.New()
	team := f.createTeam(t, leader, 3)

	submitted, err := f.requests.SubmitJoinRequest(ctx, authed(t, f, candidate, &joinrequestv1.SubmitJoinRequestRequest{TeamId: team.Id}))
	if err != nil {
		t.Fatalf("SubmitJoinRequest: %v", err)
	}

	tests := []struct {
		name string
		call func() error
		code connect.Code
		kind apperr.Kind
	}{
		{
			name: "anonymous submit",
			call: func() error {
				_, err := f.requests.SubmitJoinRequest(ctx, authed(t, f, uuid.Nil, &joinrequestv1.SubmitJoinRequestRequest{TeamId: team.Id}))
				return err
			},
			code: connect.CodeUnauthenticated,
			kind: apperr.KindUnauthenticated,
		},
		{
			name: "malformed team id",
			call: func() error {
				_, err := f.requests.SubmitJoinRequest(ctx, authed(t, f, candidate, &joinrequestv1.SubmitJoinRequestRequest{TeamId: "nope"}))
				return err
			},
			code: connect.CodeInvalidArgument,
			kind: apperr.KindInvalidArgument,
		},
		{
			name: "unknown team",
			call: func() error {
				_, err := f.requests.SubmitJoinRequest(ctx, authed(t, f, candidate, &joinrequestv1.SubmitJoinRequestRequest{TeamId: uuid.NewString()}))
				return err
			},
			code: connect.CodeNotFound,
			kind: apperr.KindNotFound,
		},
		{
			name: "duplicate pending",
			call: func() error {
				_, err := f.requests.SubmitJoinRequest(ctx, authed(t, f, candidate, &joinrequestv1.SubmitJoinRequestRequest{TeamId: team.Id}))
				return err
			},
			code: connect.CodeAlreadyExists,
			kind: apperr.KindDuplicateRequest,
		},
		{
			name: "leader joining own team",
			call: func() error {
				_, err := f.requests.SubmitJoinRequest(ctx, authed(t, f, leader, &joinrequestv1.SubmitJoinRequestRequest{TeamId: team.Id}))
				return err
			},
			code: connect.CodeAlreadyExists,
			kind: apperr.KindAlreadyMember,
		},
		{
			name: "non-leader accept",
			call: func() error {
				_, err := f.requests.AcceptJoinRequest(ctx, authed(t, f, candidate, &joinrequestv1.AcceptJoinRequestRequest{RequestId: submitted.Msg.Request.Id}))
				return err
			},
			code: connect.CodePermissionDenied,
			kind: apperr.KindForbidden,
		},
		{
			name: "bad token",
			call: func() error {
				req := connect.NewRequest(&teamv1.ListMyTeamsRequest{})
				req.Header().Set("Authorization", "Bearer not-a-jwt")
				_, err := f.teams.ListMyTeams(ctx, req)
				return err
			},
			code: connect.CodeUnauthenticated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertFailure(t, tt.call(), tt.code, tt.kind)
		})
	}
}

func TestSubmitRateLimited(t *testing.T) {
	f := newAPIFixture(t, func(cfg *config.Config) {
		cfg.RateLimit.SubmitLimit = 1
		cfg.RateLimit.SubmitWindow = time.Hour
	})
	ctx := context.Background()
	candidate := uuid.New()
	first := f.createTeam(t, uuid.New(), 3)
	second := f.createTeam(t, uuid.New(), 3)

	if _, err := f.requests.SubmitJoinRequest(ctx, authed(t, f, candidate, &joinrequestv1.SubmitJoinRequestRequest{TeamId: first.Id})); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	_, err := f.requests.SubmitJoinRequest(ctx, authed(t, f, candidate, &joinrequestv1.SubmitJoinRequestRequest{TeamId: second.Id}))
	assertFailure(t, err, connect.CodeResourceExhausted, apperr.KindRateLimited)
}

func TestListRolesIsPublic(t *testing.T) {
	f := newAPIFixture(t, nil)
	resp, err := f.teams.ListRoles(context.Background(), connect.NewRequest(&teamv1.ListRolesRequest{}))
	if err != nil {
		t.Fatalf("ListRoles: %v", err)
	}
	if len(resp.Msg.Roles) == 0 {
		t.Fatal("no roles returned")
	}
}

func TestHealthAndMetricsRoutes(t *testing.T) {
	f := newAPIFixture(t, nil)
	for _, path := range []string{"/health", "/metrics"} {
		resp, err := f.server.Client().Get(f.server.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s = %d", path, resp.StatusCode)
		}
	}
}

func TestReflectionDescribesServices(t *testing.T) {
	f := newAPIFixture(t, nil)

	tests := []struct {
		service   string
		methods   int
		streaming string
	}{
		{teamv1connect.TeamServiceName, 6, ""},
		{joinrequestv1connect.JoinRequestServiceName, 5, "ListJoinRequests"},
	}
	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			desc, err := protoregistry.GlobalFiles.FindDescriptorByName(protoreflect.FullName(tt.service))
			if err != nil {
				t.Fatalf("FindDescriptorByName: %v", err)
			}
			svc, ok := desc.(protoreflect.ServiceDescriptor)
			if !ok {
				t.Fatalf("%s is a %T, not a service", tt.service, desc)
			}
			if got := svc.Methods().Len(); got != tt.methods {
				t.Fatalf("methods = %d, want %d", got, tt.methods)
			}
			if tt.streaming != "" && !svc.Methods().ByName(protoreflect.Name(tt.streaming)).IsStreamingServer() {
				t.Fatalf("%s should be server streaming", tt.streaming)
			}
		})
	}

	resp, err := f.server.Client().Post(f.server.URL+"/grpc.reflection.v1.ServerReflection/ServerReflectionInfo", "application/octet-stream", nil)
	if err != nil {
		t.Fatalf("POST reflection: %v", err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		t.Fatal("reflection handler is not mounted")
	}
}
