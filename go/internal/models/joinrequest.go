package models

import (
	"time"

	"github.com/google/uuid"
)

// JoinRequestStatus represents where a join request is in its lifecycle.
// PENDING is the only non-terminal state.
type JoinRequestStatus string

const (
	JoinRequestStatusPending  JoinRequestStatus = "PENDING"
	JoinRequestStatusAccepted JoinRequestStatus = "ACCEPTED"
	JoinRequestStatusRejected JoinRequestStatus = "REJECTED"
)

// Valid reports whether s is a known status.
func (s JoinRequestStatus) Valid() bool {
	switch s {
	case JoinRequestStatusPending, JoinRequestStatusAccepted, JoinRequestStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
func (s JoinRequestStatus) Terminal() bool {
	return s == JoinRequestStatusAccepted || s == JoinRequestStatusRejected
}

// JoinRequest is a candidate's request to join a team
type JoinRequest struct {
	ID          uuid.UUID         `json:"id"`
	TeamID      uuid.UUID         `json:"team_id"`
	CandidateID uuid.UUID         `json:"candidate_id"`
	Status      JoinRequestStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	DecidedAt   *time.Time        `json:"decided_at,omitempty"`
}

// IsPending reports whether the request still awaits a leader decision.
func (r *JoinRequest) IsPending() bool {
	return r.Status == JoinRequestStatusPending
}
