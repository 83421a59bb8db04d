package teams

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcdev12/hackteams/go/internal/apperr"
	"github.com/mcdev12/hackteams/go/internal/membership"
	"github.com/mcdev12/hackteams/go/internal/models"
	"github.com/mcdev12/hackteams/go/internal/sqlutil"
)

const (
	memberCountExpr = "(SELECT count(*) FROM team_members m WHERE m.team_id = t.id)"

	teamPositionConstraint = "team_members_team_id_position_key"
)

var teamColumns = []string{
	"t.id", "t.event_id", "t.leader_id", "t.team_name", "t.description",
	"t.team_size", "t.roles_needed", "t.created_at", "t.updated_at",
}

// Repository implements team data access operations on postgres
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new teams repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool: pool,
	}
}

// CreateTeam inserts the team row and its leader as member zero
func (r *Repository) CreateTeam(ctx context.Context, team *models.Team) error {
	return sqlutil.Run(ctx, r.pool, func(tx pgx.Tx) sqlutil.DBTX { return tx }, func(q sqlutil.DBTX) error {
		_, err := sqlutil.ExecQ(ctx, q, sqlutil.PSQL.
			Insert("teams").
			Columns("id", "event_id", "leader_id", "team_name", "description", "team_size", "roles_needed", "created_at", "updated_at").
			Values(team.ID, team.EventID, team.LeaderID, team.TeamName, team.Description, team.TeamSize, team.RolesNeeded, team.CreatedAt, team.UpdatedAt))
		if err != nil {
			if sqlutil.IsCheckViolation(err) {
				return apperr.Wrap(apperr.KindInvalidArgument, err, "team violates a table constraint")
			}
			return fmt.Errorf("failed to insert team: %w", err)
		}

		for i, memberID := range team.Members {
			if err := insertMember(ctx, q, team.ID, memberID, i, team.CreatedAt); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetTeam retrieves a team and its members by ID
func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	return LoadTeam(ctx, r.pool, id, false)
}

// UpdateTeamInfo applies a partial update to the descriptive fields
func (r *Repository) UpdateTeamInfo(ctx context.Context, id uuid.UUID, req UpdateTeamInfoRequest, updatedAt time.Time) (*models.Team, error) {
	q := sqlutil.PSQL.Update("teams t").
		Set("updated_at", updatedAt).
		Where(sq.Eq{"t.id": id}).
		Suffix("RETURNING " + strings.Join(teamColumns, ", "))
	if req.TeamName != nil {
		q = q.Set("team_name", *req.TeamName)
	}
	if req.Description != nil {
		q = q.Set("description", *req.Description)
	}
	if req.RolesNeeded != nil {
		q = q.Set("roles_needed", *req.RolesNeeded)
	}

	team, err := scanTeam(sqlutil.QueryRowQ(ctx, r.pool, q))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("team %s not found", id)
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	if err := loadMembers(ctx, r.pool, []*models.Team{team}); err != nil {
		return nil, err
	}
	return team, nil
}

// ListTeams lists an event's teams newest first. The status filter is
// evaluated against the live member count.
func (r *Repository) ListTeams(ctx context.Context, filter TeamFilter) ([]models.Team, error) {
	q := sqlutil.PSQL.Select(teamColumns...).
		From("teams t").
		Where(sq.Eq{"t.event_id": filter.EventID}).
		OrderBy("t.created_at DESC", "t.id DESC")
	if filter.Status != nil {
		switch *filter.Status {
		case models.TeamStatusRecruiting:
			q = q.Where(memberCountExpr + " < t.team_size")
		case models.TeamStatusFull:
			q = q.Where(memberCountExpr + " >= t.team_size")
		}
	}
	return r.listTeams(ctx, q)
}

// ListTeamsByMember lists the teams userID belongs to, newest first
func (r *Repository) ListTeamsByMember(ctx context.Context, userID uuid.UUID) ([]models.Team, error) {
	q := sqlutil.PSQL.Select(teamColumns...).
		From("teams t").
		Join("team_members tm ON tm.team_id = t.id").
		Where(sq.Eq{"tm.user_id": userID}).
		OrderBy("t.created_at DESC", "t.id DESC")
	return r.listTeams(ctx, q)
}

func (r *Repository) listTeams(ctx context.Context, q sq.SelectBuilder) ([]models.Team, error) {
	rows, err := sqlutil.QueryQ(ctx, r.pool, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []*models.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	rows.Close()

	if err := loadMembers(ctx, r.pool, teams); err != nil {
		return nil, err
	}
	out := make([]models.Team, len(teams))
	for i, t := range teams {
		out[i] = *t
	}
	return out, nil
}

// LoadTeam reads a team with its members through db. With forUpdate the
// team row stays locked until db's transaction ends, which serializes every
// membership change for that team.
func LoadTeam(ctx context.Context, db sqlutil.DBTX, id uuid.UUID, forUpdate bool) (*models.Team, error) {
	q := sqlutil.PSQL.Select(teamColumns...).From("teams t").Where(sq.Eq{"t.id": id})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}

	team, err := scanTeam(sqlutil.QueryRowQ(ctx, db, q))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("team %s not found", id)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if err := loadMembers(ctx, db, []*models.Team{team}); err != nil {
		return nil, err
	}
	return team, nil
}

// memberWriter is the registry's member-row writer
type memberWriter struct {
	db sqlutil.DBTX
}

// NewMemberWriter returns the member writer bound to db, normally the
// transaction that holds the team row lock.
func NewMemberWriter(db sqlutil.DBTX) membership.MemberWriter {
	return &memberWriter{db: db}
}

// AppendMember inserts the member only if position equals the current member
// count and is below capacity, so a stale caller can never overfill a team.
func (w *memberWriter) AppendMember(ctx context.Context, teamID, userID uuid.UUID, position int) error {
	tag, err := w.db.Exec(ctx, `
		INSERT INTO team_members (team_id, user_id, position, joined_at)
		SELECT t.id, $2::uuid, $3::int, now()
		FROM teams t
		WHERE t.id = $1
		  AND $3::int < t.team_size
		  AND (SELECT count(*) FROM team_members m WHERE m.team_id = t.id) = $3::int`,
		teamID, userID, position)
	if err != nil {
		return memberInsertError(err, teamID, userID)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.KindTeamFull, "team %s cannot take a member at position %d", teamID, position)
	}
	return nil
}

func insertMember(ctx context.Context, db sqlutil.DBTX, teamID, userID uuid.UUID, position int, joinedAt time.Time) error {
	_, err := sqlutil.ExecQ(ctx, db, sqlutil.PSQL.
		Insert("team_members").
		Columns("team_id", "user_id", "position", "joined_at").
		Values(teamID, userID, position, joinedAt))
	if err != nil {
		return memberInsertError(err, teamID, userID)
	}
	return nil
}

func memberInsertError(err error, teamID, userID uuid.UUID) error {
	switch {
	case sqlutil.IsUniqueViolation(err, teamPositionConstraint):
		return apperr.Wrap(apperr.KindTeamFull, err, fmt.Sprintf("team %s changed concurrently", teamID))
	case sqlutil.IsUniqueViolation(err, ""):
		return apperr.Wrap(apperr.KindAlreadyMember, err, fmt.Sprintf("user %s is already a member of team %s", userID, teamID))
	}
	return fmt.Errorf("failed to insert team member: %w", err)
}

// loadMembers fills Members for each team in position order
func loadMembers(ctx context.Context, db sqlutil.DBTX, teams []*models.Team) error {
	if len(teams) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(teams))
	byID := make(map[uuid.UUID]*models.Team, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
		byID[t.ID] = t
		t.Members = []uuid.UUID{}
	}

	rows, err := db.Query(ctx, `
		SELECT team_id, user_id
		FROM team_members
		WHERE team_id = ANY($1)
		ORDER BY team_id, position`, ids)
	if err != nil {
		return fmt.Errorf("failed to load team members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var teamID, userID uuid.UUID
		if err := rows.Scan(&teamID, &userID); err != nil {
			return fmt.Errorf("failed to scan team member: %w", err)
		}
		if t, ok := byID[teamID]; ok {
			t.Members = append(t.Members, userID)
		}
	}
	return rows.Err()
}

func scanTeam(row pgx.Row) (*models.Team, error) {
	var t models.Team
	err := row.Scan(
		&t.ID, &t.EventID, &t.LeaderID, &t.TeamName, &t.Description,
		&t.TeamSize, &t.RolesNeeded, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if t.RolesNeeded == nil {
		t.RolesNeeded = []string{}
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return &t, nil
}
