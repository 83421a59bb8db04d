package joinrequests

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcdev12/hackteams/go/internal/apperr"
	"github.com/mcdev12/hackteams/go/internal/events"
	"github.com/mcdev12/hackteams/go/internal/membership"
	"github.com/mcdev12/hackteams/go/internal/models"
	"github.com/mcdev12/hackteams/go/internal/sqlutil"
	"github.com/mcdev12/hackteams/go/internal/teams"
)

const pendingRequestIndex = "join_requests_one_pending_idx"

var requestColumns = []string{"id", "team_id", "candidate_id", "status", "created_at", "decided_at"}

// EventWriter stores events inside the caller's transaction
type EventWriter interface {
	InsertEvent(ctx context.Context, db sqlutil.DBTX, event events.Event) error
}

// Repository is the postgres Store. The exclusive section is a transaction
// holding the team row lock; events go to the outbox in that transaction.
type Repository struct {
	pool   *pgxpool.Pool
	outbox EventWriter
}

var _ Store = (*Repository)(nil)

// NewRepository creates a new join requests repository
func NewRepository(pool *pgxpool.Pool, outbox EventWriter) *Repository {
	return &Repository{
		pool:   pool,
		outbox: outbox,
	}
}

// GetJoinRequest retrieves a join request by ID
func (r *Repository) GetJoinRequest(ctx context.Context, id uuid.UUID) (*models.JoinRequest, error) {
	return getJoinRequest(ctx, r.pool, id)
}

// ListJoinRequests streams matching requests from a single query that is
// issued when the sequence is first ranged over.
func (r *Repository) ListJoinRequests(ctx context.Context, q ListQuery) iter.Seq2[models.JoinRequest, error] {
	return func(yield func(models.JoinRequest, error) bool) {
		b := sqlutil.PSQL.Select(requestColumns...).From("join_requests")
		if q.TeamID != nil {
			b = b.Where(sq.Eq{"team_id": *q.TeamID})
		}
		if q.CandidateID != nil {
			b = b.Where(sq.Eq{"candidate_id": *q.CandidateID})
		}
		if q.Status != nil {
			b = b.Where(sq.Eq{"status": string(*q.Status)})
		}
		if q.NewestFirst {
			b = b.OrderBy("created_at DESC", "id DESC")
		} else {
			b = b.OrderBy("created_at ASC", "id ASC")
		}

		rows, err := sqlutil.QueryQ(ctx, r.pool, b)
		if err != nil {
			yield(models.JoinRequest{}, fmt.Errorf("failed to list join requests: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			req, err := scanJoinRequest(rows)
			if err != nil {
				yield(models.JoinRequest{}, fmt.Errorf("failed to scan join request: %w", err))
				return
			}
			if !yield(*req, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(models.JoinRequest{}, fmt.Errorf("failed to list join requests: %w", err))
		}
	}
}

// WithTeamLock runs fn in a transaction that holds teamID's row lock
func (r *Repository) WithTeamLock(ctx context.Context, teamID uuid.UUID, fn func(ctx context.Context, tx Tx) error) error {
	newTx := func(tx pgx.Tx) *pgTx {
		return &pgTx{
			db:      tx,
			members: teams.NewMemberWriter(tx),
			outbox:  r.outbox,
		}
	}
	return sqlutil.Run(ctx, r.pool, newTx, func(q *pgTx) error {
		team, err := teams.LoadTeam(ctx, q.db, teamID, true)
		if err != nil {
			return err
		}
		q.team = team
		return fn(ctx, q)
	})
}

// pgTx binds the unit of work to one pgx transaction
type pgTx struct {
	db      sqlutil.DBTX
	team    *models.Team
	members membership.MemberWriter
	outbox  EventWriter
}

func (t *pgTx) Team() *models.Team { return t.team }

func (t *pgTx) AppendMember(ctx context.Context, teamID, userID uuid.UUID, position int) error {
	return t.members.AppendMember(ctx, teamID, userID, position)
}

func (t *pgTx) GetJoinRequest(ctx context.Context, id uuid.UUID) (*models.JoinRequest, error) {
	return getJoinRequest(ctx, t.db, id)
}

func (t *pgTx) FindPendingRequest(ctx context.Context, candidateID uuid.UUID) (*models.JoinRequest, error) {
	req, err := scanJoinRequest(sqlutil.QueryRowQ(ctx, t.db, sqlutil.PSQL.
		Select(requestColumns...).
		From("join_requests").
		Where(sq.Eq{
			"team_id":      t.team.ID,
			"candidate_id": candidateID,
			"status":       string(models.JoinRequestStatusPending),
		})))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find pending join request: %w", err)
	}
	return req, nil
}

func (t *pgTx) InsertJoinRequest(ctx context.Context, req *models.JoinRequest) error {
	_, err := sqlutil.ExecQ(ctx, t.db, sqlutil.PSQL.
		Insert("join_requests").
		Columns("id", "team_id", "candidate_id", "status", "created_at").
		Values(req.ID, req.TeamID, req.CandidateID, string(req.Status), req.CreatedAt))
	if err != nil {
		if sqlutil.IsUniqueViolation(err, pendingRequestIndex) {
			return apperr.Wrap(apperr.KindDuplicateRequest, err, "a pending request already exists")
		}
		return fmt.Errorf("failed to insert join request: %w", err)
	}
	return nil
}

func (t *pgTx) DecideJoinRequest(ctx context.Context, id uuid.UUID, status models.JoinRequestStatus, decidedAt time.Time) error {
	if !status.Terminal() {
		return apperr.InvalidArgument("%s is not a decision", status)
	}
	tag, err := sqlutil.ExecQ(ctx, t.db, sqlutil.PSQL.
		Update("join_requests").
		Set("status", string(status)).
		Set("decided_at", decidedAt).
		Where(sq.Eq{"id": id, "status": string(models.JoinRequestStatusPending)}))
	if err != nil {
		return fmt.Errorf("failed to update join request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.KindInvalidState, "join request %s is not pending", id)
	}
	return nil
}

func (t *pgTx) Enqueue(ctx context.Context, event events.Event) error {
	return t.outbox.InsertEvent(ctx, t.db, event)
}

func getJoinRequest(ctx context.Context, db sqlutil.DBTX, id uuid.UUID) (*models.JoinRequest, error) {
	req, err := scanJoinRequest(sqlutil.QueryRowQ(ctx, db, sqlutil.PSQL.
		Select(requestColumns...).
		From("join_requests").
		Where(sq.Eq{"id": id})))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("join request %s not found", id)
		}
		return nil, fmt.Errorf("failed to get join request: %w", err)
	}
	return req, nil
}

func scanJoinRequest(row pgx.Row) (*models.JoinRequest, error) {
	var (
		req       models.JoinRequest
		status    string
		decidedAt pgtype.Timestamptz
	)
	if err := row.Scan(&req.ID, &req.TeamID, &req.CandidateID, &status, &req.CreatedAt, &decidedAt); err != nil {
		return nil, err
	}
	req.Status = models.JoinRequestStatus(status)
	req.CreatedAt = req.CreatedAt.UTC()
	req.DecidedAt = sqlutil.FromTimestamptz(decidedAt)
	return &req, nil
}
