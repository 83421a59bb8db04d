// Package auth establishes the acting user of a request. Tokens are issued
// by the identity provider; this package only verifies them.
package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/mcdev12/hackteams/go/internal/apperr"
)

type actorKey struct{}

// WithActor returns a context carrying the acting user.
func WithActor(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorFrom returns the acting user, if any.
func ActorFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(actorKey{}).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// RequireActor returns the acting user or an Unauthenticated error.
func RequireActor(ctx context.Context) (uuid.UUID, error) {
	id, ok := ActorFrom(ctx)
	if !ok {
		return uuid.Nil, apperr.New(apperr.KindUnauthenticated, "sign in required")
	}
	return id, nil
}
