package sqlutil

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PSQL builds statements with $n placeholders.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ExecQ runs a built statement against a pool or tx.
func ExecQ(ctx context.Context, db DBTX, q sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build statement: %w", err)
	}
	return db.Exec(ctx, sql, args...)
}

// QueryQ runs a built query against a pool or tx.
func QueryQ(ctx context.Context, db DBTX, q sq.Sqlizer) (pgx.Rows, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return db.Query(ctx, sql, args...)
}

// errRow surfaces a build error through the pgx.Row interface.
type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

// QueryRowQ runs a built single-row query against a pool or tx.
func QueryRowQ(ctx context.Context, db DBTX, q sq.Sqlizer) pgx.Row {
	sql, args, err := q.ToSql()
	if err != nil {
		return errRow{fmt.Errorf("build query: %w", err)}
	}
	return db.QueryRow(ctx, sql, args...)
}
