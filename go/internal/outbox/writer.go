package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mcdev12/hackteams/go/internal/events"
	"github.com/mcdev12/hackteams/go/internal/sqlutil"
)

// Writer appends events to team_outbox inside the caller's transaction.
// The insert trigger raises pg_notify so the relay picks the row up once the
// transaction commits.
type Writer struct{}

// NewWriter creates a new outbox writer
func NewWriter() *Writer {
	return &Writer{}
}

// InsertEvent stores event using db, which is normally an open pgx.Tx
func (w *Writer) InsertEvent(ctx context.Context, db sqlutil.DBTX, event events.Event) error {
	recipients, err := json.Marshal(event.Recipients)
	if err != nil {
		return fmt.Errorf("failed to marshal recipients: %w", err)
	}
	payload := event.Payload
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}

	_, err = sqlutil.ExecQ(ctx, db, sqlutil.PSQL.
		Insert("team_outbox").
		Columns("id", "team_id", "event_type", "recipients", "payload", "created_at").
		Values(event.ID, event.TeamID, event.Type, string(recipients), string(payload), event.OccurredAt))
	if err != nil {
		return fmt.Errorf("failed to insert %s outbox event: %w", event.Type, err)
	}
	return nil
}
