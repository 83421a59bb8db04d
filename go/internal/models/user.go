package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the read-only profile of a platform user. Profiles are edited
// elsewhere; this service only resolves them for team pages.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}
