package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the join request lifecycle
const (
	TypeRequestCreated  = "join_request.created"
	TypeRequestAccepted = "join_request.accepted"
	TypeRequestRejected = "join_request.rejected"
)

// Event is the envelope handed to the notification sink. Recipients are the
// users who should see it (leader for new requests, candidate for decisions).
type Event struct {
	ID         uuid.UUID       `json:"id"`
	Type       string          `json:"type"`
	TeamID     uuid.UUID       `json:"team_id"`
	Recipients []uuid.UUID     `json:"recipients"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// RequestCreatedPayload is the payload for a RequestCreated event
type RequestCreatedPayload struct {
	RequestID   string `json:"request_id"`
	TeamID      string `json:"team_id"`
	CandidateID string `json:"candidate_id"`
	LeaderID    string `json:"leader_id"`
}

// RequestAcceptedPayload is the payload for a RequestAccepted event
type RequestAcceptedPayload struct {
	RequestID   string `json:"request_id"`
	TeamID      string `json:"team_id"`
	CandidateID string `json:"candidate_id"`
}

// RequestRejectedPayload is the payload for a RequestRejected event
type RequestRejectedPayload struct {
	RequestID   string `json:"request_id"`
	TeamID      string `json:"team_id"`
	CandidateID string `json:"candidate_id"`
}

// RequestCreated builds the event announcing a new pending request to the leader.
func RequestCreated(requestID, teamID, candidateID, leaderID uuid.UUID, at time.Time) (Event, error) {
	return newEvent(TypeRequestCreated, teamID, []uuid.UUID{leaderID}, at, RequestCreatedPayload{
		RequestID:   requestID.String(),
		TeamID:      teamID.String(),
		CandidateID: candidateID.String(),
		LeaderID:    leaderID.String(),
	})
}

// RequestAccepted builds the event telling the candidate they were admitted.
func RequestAccepted(requestID, teamID, candidateID uuid.UUID, at time.Time) (Event, error) {
	return newEvent(TypeRequestAccepted, teamID, []uuid.UUID{candidateID}, at, RequestAcceptedPayload{
		RequestID:   requestID.String(),
		TeamID:      teamID.String(),
		CandidateID: candidateID.String(),
	})
}

// RequestRejected builds the event telling the candidate they were declined.
func RequestRejected(requestID, teamID, candidateID uuid.UUID, at time.Time) (Event, error) {
	return newEvent(TypeRequestRejected, teamID, []uuid.UUID{candidateID}, at, RequestRejectedPayload{
		RequestID:   requestID.String(),
		TeamID:      teamID.String(),
		CandidateID: candidateID.String(),
	})
}

func newEvent(eventType string, teamID uuid.UUID, recipients []uuid.UUID, at time.Time, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return Event{}, fmt.Errorf("failed to generate event id: %w", err)
	}
	return Event{
		ID:         id,
		Type:       eventType,
		TeamID:     teamID,
		Recipients: recipients,
		OccurredAt: at.UTC(),
		Payload:    raw,
	}, nil
}
