package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/mcdev12/hackteams/go/internal/auth"
	"github.com/rs/zerolog/log"
)

// TokenVerifier is satisfied by *auth.Verifier
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// WebSocketHandler authenticates and upgrades notification connections
type WebSocketHandler struct {
	connectionManager *ConnectionManager
	verifier          TokenVerifier
}

func NewWebSocketHandler(cm *ConnectionManager, verifier TokenVerifier) *WebSocketHandler {
	return &WebSocketHandler{
		connectionManager: cm,
		verifier:          verifier,
	}
}

// HandleNotifications upgrades the request once the caller is identified.
// Browsers cannot set headers on websocket requests, so the token may also
// be passed as ?token=.
func (h *WebSocketHandler) HandleNotifications(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		token, _ = auth.BearerToken(r.Header.Get("Authorization"))
	}
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	userID, err := h.verifier.Verify(token)
	if err != nil {
		log.Debug().Err(err).Msg("rejected websocket token")
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	// Upgrade writes its own error response on failure.
	if err := h.connectionManager.UpgradeConnection(w, r, userID); err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to upgrade websocket connection")
	}
}

func (h *WebSocketHandler) HandleConnectionStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.connectionManager.Stats()); err != nil {
		log.Error().Err(err).Msg("failed to write connection stats")
	}
}

func (h *WebSocketHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /ws/notifications", h.HandleNotifications)
	mux.HandleFunc("GET /ws/stats", h.HandleConnectionStats)
}
