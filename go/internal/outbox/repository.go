package outbox

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
)

const (
	fetchUnsentQuery = `
SELECT id, team_id, event_type, recipients, payload, created_at, sent_at
FROM team_outbox
WHERE sent_at IS NULL
ORDER BY created_at, id
LIMIT $1`

	fetchByIDQuery = `
SELECT id, team_id, event_type, recipients, payload, created_at, sent_at
FROM team_outbox
WHERE id = $1 AND sent_at IS NULL`

	markSentQuery = `UPDATE team_outbox SET sent_at = $2 WHERE id = $1 AND sent_at IS NULL`

	countPendingQuery = `SELECT count(*) FROM team_outbox WHERE sent_at IS NULL`
)

// ErrAlreadySent is returned by FetchByID when the row is gone or was
// already relayed, usually by the fallback poll.
var ErrAlreadySent = errors.New("outbox event not found or already sent")

// Repository reads and acknowledges outbox rows for the relay. It runs over
// database/sql with the lib/pq driver, the same connection family the
// LISTEN side uses.
type Repository struct {
	db *sql.DB
}

var _ RelayRepository = (*Repository)(nil)

// NewRepository creates a new outbox relay repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// FetchUnsent returns up to limit unsent rows, oldest first
func (r *Repository) FetchUnsent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, fetchUnsentQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsent outbox events: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan outbox event: %w", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch unsent outbox events: %w", err)
	}
	return out, nil
}

// FetchByID returns one unsent row
func (r *Repository) FetchByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	rec, err := scanRecord(r.db.QueryRowContext(ctx, fetchByIDQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAlreadySent
		}
		return nil, fmt.Errorf("failed to fetch outbox event by ID: %w", err)
	}
	return rec, nil
}

// MarkSent stamps the row as relayed. Marking an already sent row is a no-op.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	if _, err := r.db.ExecContext(ctx, markSentQuery, id, at); err != nil {
		return fmt.Errorf("failed to mark outbox event as sent: %w", err)
	}
	return nil
}

// CountPending returns the number of unsent rows
func (r *Repository) CountPending(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countPendingQuery).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count pending outbox events: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		rec        Record
		recipients pqtype.NullRawMessage
		payload    []byte
		sentAt     sql.NullTime
	)
	if err := row.Scan(&rec.ID, &rec.TeamID, &rec.Type, &recipients, &payload, &rec.OccurredAt, &sentAt); err != nil {
		return nil, err
	}
	if recipients.Valid {
		if err := json.Unmarshal(recipients.RawMessage, &rec.Recipients); err != nil {
			return nil, fmt.Errorf("invalid recipients for outbox event %s: %w", rec.ID, err)
		}
	}
	rec.Payload = json.RawMessage(payload)
	rec.OccurredAt = rec.OccurredAt.UTC()
	if sentAt.Valid {
		t := sentAt.Time.UTC()
		rec.SentAt = &t
	}
	return &rec, nil
}
