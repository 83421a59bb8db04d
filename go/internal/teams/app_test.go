package teams_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/hackteams/go/internal/apperr"
	"github.com/mcdev12/hackteams/go/internal/catalog"
	"github.com/mcdev12/hackteams/go/internal/memstore"
	"github.com/mcdev12/hackteams/go/internal/models"
	"github.com/mcdev12/hackteams/go/internal/teams"
)

func newApp(t *testing.T, cfg teams.Config) (*teams.App, *memstore.Store, *clockwork.FakeClock) {
	t.Helper()
	store := memstore.New(nil)
	clock := clockwork.NewFakeClockAt(time.Date(2025, 4, 12, 9, 0, 0, 0, time.UTC))
	return teams.NewApp(store, store, catalog.Default(), clock, cfg), store, clock
}

func validRequest() teams.CreateTeamRequest {
	return teams.CreateTeamRequest{
		LeaderID:    uuid.New(),
		EventID:     uuid.New(),
		TeamName:    "  Segfault Society ",
		Description: " we ship ",
		TeamSize:    4,
		RolesNeeded: []string{" Frontend Developer", "", "Backend Developer", "Frontend Developer", "  "},
	}
}

func TestCreateTeam(t *testing.T) {
	app, _, clock := newApp(t, teams.Config{})
	req := validRequest()

	team, err := app.CreateTeam(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}

	if team.TeamName != "Segfault Society" || team.Description != "we ship" {
		t.Errorf("fields not trimmed: %q %q", team.TeamName, team.Description)
	}
	if !slices.Equal(team.Members, []uuid.UUID{req.LeaderID}) {
		t.Errorf("members = %v, want only the leader", team.Members)
	}
	if want := []string{"Frontend Developer", "Backend Developer"}; !slices.Equal(team.RolesNeeded, want) {
		t.Errorf("roles = %q, want %q", team.RolesNeeded, want)
	}
	if team.Status() != models.TeamStatusRecruiting {
		t.Errorf("status = %s, want RECRUITING", team.Status())
	}
	if !team.CreatedAt.Equal(clock.Now()) {
		t.Errorf("created_at = %v, want %v", team.CreatedAt, clock.Now())
	}
}

func TestCreateTeamSizeOneIsFull(t *testing.T) {
	app, _, _ := newApp(t, teams.Config{})
	req := validRequest()
	req.TeamSize = 1

	team, err := app.CreateTeam(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}
	if team.Status() != models.TeamStatusFull {
		t.Errorf("status = %s, want FULL", team.Status())
	}
}

func TestCreateTeamValidation(t *testing.T) {
	app, _, _ := newApp(t, teams.Config{MaxTeamSize: 6})

	tests := []struct {
		name   string
		modify func(*teams.CreateTeamRequest)
	}{
		{"zero size", func(r *teams.CreateTeamRequest) { r.TeamSize = 0 }},
		{"negative size", func(r *teams.CreateTeamRequest) { r.TeamSize = -3 }},
		{"above ceiling", func(r *teams.CreateTeamRequest) { r.TeamSize = 7 }},
		{"blank name", func(r *teams.CreateTeamRequest) { r.TeamName = "   " }},
		{"no leader", func(r *teams.CreateTeamRequest) { r.LeaderID = uuid.Nil }},
		{"no event", func(r *teams.CreateTeamRequest) { r.EventID = uuid.Nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)
			if _, err := app.CreateTeam(context.Background(), req); !errors.Is(err, apperr.ErrInvalidArgument) {
				t.Fatalf("got %v, want InvalidArgument", err)
			}
		})
	}
}

func TestGetTeamResolvesMembers(t *testing.T) {
	app, store, _ := newApp(t, teams.Config{})
	req := validRequest()
	store.PutUser(models.User{ID: req.LeaderID, Username: "ada", FullName: "Ada Lovelace"})

	team, err := app.CreateTeam(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}

	view, err := app.GetTeam(context.Background(), team.ID)
	if err != nil {
		t.Fatalf("GetTeam: %v", err)
	}
	if view.Status != models.TeamStatusRecruiting {
		t.Errorf("status = %s", view.Status)
	}
	if len(view.Members) != 1 {
		t.Fatalf("members = %+v", view.Members)
	}
	m := view.Members[0]
	if !m.IsLeader || m.User.Username != "ada" {
		t.Errorf("leader view = %+v", m)
	}

	if _, err := app.GetTeam(context.Background(), uuid.New()); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("missing team: got %v, want NotFound", err)
	}
}

func TestGetTeamMemberWithoutProfile(t *testing.T) {
	app, _, _ := newApp(t, teams.Config{})
	req := validRequest()
	team, err := app.CreateTeam(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}

	view, err := app.GetTeam(context.Background(), team.ID)
	if err != nil {
		t.Fatalf("GetTeam: %v", err)
	}
	if got := view.Members[0].User; got.ID != req.LeaderID || got.Username != "" {
		t.Errorf("member without profile = %+v", got)
	}
}

func TestUpdateTeamInfo(t *testing.T) {
	ptr := func(s string) *string { return &s }
	roles := func(r ...string) *[]string { return &r }

	app, _, clock := newApp(t, teams.Config{})
	req := validRequest()
	team, err := app.CreateTeam(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}
	clock.Advance(time.Hour)

	tests := []struct {
		name    string
		actor   uuid.UUID
		teamID  uuid.UUID
		patch   teams.UpdateTeamInfoRequest
		wantErr error
		check   func(t *testing.T, got *models.Team)
	}{
		{
			name:    "missing team",
			actor:   req.LeaderID,
			teamID:  uuid.New(),
			patch:   teams.UpdateTeamInfoRequest{TeamName: ptr("x")},
			wantErr: apperr.ErrNotFound,
		},
		{
			name:    "not the leader",
			actor:   uuid.New(),
			teamID:  team.ID,
			patch:   teams.UpdateTeamInfoRequest{TeamName: ptr("hijacked")},
			wantErr: apperr.ErrForbidden,
		},
		{
			name:    "blank name",
			actor:   req.LeaderID,
			teamID:  team.ID,
			patch:   teams.UpdateTeamInfoRequest{TeamName: ptr("  ")},
			wantErr: apperr.ErrInvalidArgument,
		},
		{
			name:   "empty patch is a no-op",
			actor:  req.LeaderID,
			teamID: team.ID,
			check: func(t *testing.T, got *models.Team) {
				if got.TeamName != "Segfault Society" || !got.UpdatedAt.Equal(team.UpdatedAt) {
					t.Errorf("empty patch changed the team: %+v", got)
				}
			},
		},
		{
			name:   "partial patch",
			actor:  req.LeaderID,
			teamID: team.ID,
			patch: teams.UpdateTeamInfoRequest{
				Description: ptr("  now with docs "),
				RolesNeeded: roles("Designer", "Designer", " ML Engineer "),
			},
			check: func(t *testing.T, got *models.Team) {
				if got.TeamName != "Segfault Society" {
					t.Errorf("name changed to %q", got.TeamName)
				}
				if got.Description != "now with docs" {
					t.Errorf("description = %q", got.Description)
				}
				if want := []string{"Designer", "ML Engineer"}; !slices.Equal(got.RolesNeeded, want) {
					t.Errorf("roles = %q, want %q", got.RolesNeeded, want)
				}
				if got.TeamSize != 4 || !got.UpdatedAt.Equal(clock.Now()) {
					t.Errorf("size/updated_at = %d %v", got.TeamSize, got.UpdatedAt)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := app.UpdateTeamInfo(context.Background(), tt.actor, tt.teamID, tt.patch)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateTeamInfo: %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestListTeams(t *testing.T) {
	app, _, clock := newApp(t, teams.Config{})
	ctx := context.Background()
	event := uuid.New()

	create := func(size int) *models.Team {
		req := validRequest()
		req.EventID = event
		req.TeamSize = size
		team, err := app.CreateTeam(ctx, req)
		if err != nil {
			t.Fatalf("CreateTeam: %v", err)
		}
		clock.Advance(time.Minute)
		return team
	}
	solo := create(1)
	open := create(3)
	other := validRequest()
	if _, err := app.CreateTeam(ctx, other); err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}

	all, err := app.ListTeams(ctx, teams.TeamFilter{EventID: event})
	if err != nil {
		t.Fatalf("ListTeams: %v", err)
	}
	if len(all) != 2 || all[0].ID != open.ID || all[1].ID != solo.ID {
		t.Errorf("ListTeams = %v, want newest first", ids(all))
	}

	full := models.TeamStatusFull
	got, err := app.ListTeams(ctx, teams.TeamFilter{EventID: event, Status: &full})
	if err != nil {
		t.Fatalf("ListTeams full: %v", err)
	}
	if len(got) != 1 || got[0].ID != solo.ID {
		t.Errorf("full teams = %v", ids(got))
	}

	bogus := models.TeamStatus("ARCHIVED")
	if _, err := app.ListTeams(ctx, teams.TeamFilter{EventID: event, Status: &bogus}); !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Errorf("unknown status: got %v", err)
	}
	if _, err := app.ListTeams(ctx, teams.TeamFilter{}); !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Errorf("missing event: got %v", err)
	}
}

func TestListTeamsForUser(t *testing.T) {
	app, _, _ := newApp(t, teams.Config{})
	ctx := context.Background()

	req := validRequest()
	led, err := app.CreateTeam(ctx, req)
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}

	got, err := app.ListTeamsForUser(ctx, req.LeaderID)
	if err != nil {
		t.Fatalf("ListTeamsForUser: %v", err)
	}
	if len(got) != 1 || got[0].Team.ID != led.ID || !got[0].IsLeader || got[0].Status != models.TeamStatusRecruiting {
		t.Errorf("ListTeamsForUser = %+v", got)
	}

	none, err := app.ListTeamsForUser(ctx, uuid.New())
	if err != nil || len(none) != 0 {
		t.Errorf("stranger teams = %+v, %v", none, err)
	}
}

func TestListRoles(t *testing.T) {
	app, _, _ := newApp(t, teams.Config{})
	if got := app.ListRoles(); !slices.Equal(got, catalog.Default().Roles()) {
		t.Errorf("ListRoles = %q", got)
	}
}

func TestNormalizeRoles(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{nil, []string{}},
		{[]string{"", "  "}, []string{}},
		{[]string{"a", " a ", "b"}, []string{"a", "b"}},
		{[]string{"B", "A", "B"}, []string{"B", "A"}},
	}
	for _, tt := range tests {
		if got := teams.NormalizeRoles(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("NormalizeRoles(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func ids(ts []models.Team) []uuid.UUID {
	out := make([]uuid.UUID, len(ts))
	for i := range ts {
		out[i] = ts[i].ID
	}
	return out
}
