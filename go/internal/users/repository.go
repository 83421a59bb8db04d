package users

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mcdev12/hackteams/go/internal/models"
	"github.com/mcdev12/hackteams/go/internal/sqlutil"
)

// Repository reads user profiles. Profiles are owned by the account
// service; this side never writes them.
type Repository struct {
	db sqlutil.DBTX
}

// NewRepository creates a new users repository
func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{
		db: db,
	}
}

// GetUsersByIDs returns the profiles that exist for ids, in no particular
// order. Unknown ids are skipped.
func (r *Repository) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := sqlutil.QueryQ(ctx, r.db, sqlutil.PSQL.
		Select("id", "username", "full_name", "email", "avatar_url", "created_at").
		From("users").
		Where(sq.Eq{"id": ids}))
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	users, err := pgx.CollectRows(rows, scanUser)
	if err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}
	return users, nil
}

func scanUser(row pgx.CollectableRow) (models.User, error) {
	var (
		u         models.User
		fullName  pgtype.Text
		avatarURL pgtype.Text
	)
	if err := row.Scan(&u.ID, &u.Username, &fullName, &u.Email, &avatarURL, &u.CreatedAt); err != nil {
		return models.User{}, err
	}
	u.FullName = sqlutil.FromText(fullName, "")
	u.AvatarURL = sqlutil.FromText(avatarURL, "")
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}
