package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/mcdev12/hackteams/go/internal/events"
	"github.com/rs/zerolog/log"
)

// ConnectionManager tracks websocket connections per user and pushes
// notifications to the recipients of each event.
type ConnectionManager struct {
	userConnections map[uuid.UUID]map[*Connection]struct{}
	mu              sync.RWMutex

	upgrader websocket.Upgrader
	config   ConnectionConfig

	deliverCh chan events.Event
}

// Connection is one websocket opened by a user
type Connection struct {
	ID      string
	UserID  uuid.UUID
	Conn    *websocket.Conn
	Send    chan []byte
	Manager *ConnectionManager

	ConnectedAt time.Time
}

// ConnectionConfig holds websocket settings
type ConnectionConfig struct {
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	SendBuffer      int
	CheckOrigin     func(r *http.Request) bool
}

func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageSize:  1024,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		SendBuffer:      64,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
}

// Notification is what a client receives. Recipients are not echoed back.
type Notification struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	TeamID     string          `json:"team_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

func NewConnectionManager(config ConnectionConfig) *ConnectionManager {
	if config.SendBuffer <= 0 {
		config.SendBuffer = 1
	}
	return &ConnectionManager{
		userConnections: make(map[uuid.UUID]map[*Connection]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		config:    config,
		deliverCh: make(chan events.Event, 1000),
	}
}

// Start fans queued events out to connections until ctx is done
func (cm *ConnectionManager) Start(ctx context.Context) {
	log.Info().Msg("connection manager started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("connection manager shutting down")
			cm.closeAll()
			return
		case event := <-cm.deliverCh:
			cm.deliver(event)
		}
	}
}

// Enqueue hands an event to the delivery loop. It reports false when the
// queue is full and the event was dropped.
func (cm *ConnectionManager) Enqueue(event events.Event) bool {
	select {
	case cm.deliverCh <- event:
		return true
	default:
		log.Warn().
			Str("event_id", event.ID.String()).
			Str("event_type", event.Type).
			Msg("delivery queue full, dropping event")
		return false
	}
}

// UpgradeConnection upgrades r to a websocket owned by userID
func (cm *ConnectionManager) UpgradeConnection(w http.ResponseWriter, r *http.Request, userID uuid.UUID) error {
	conn, err := cm.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("failed to upgrade connection: %w", err)
	}

	c := &Connection{
		ID:          uuid.NewString(),
		UserID:      userID,
		Conn:        conn,
		Send:        make(chan []byte, cm.config.SendBuffer),
		Manager:     cm,
		ConnectedAt: time.Now(),
	}
	cm.register(c)

	go c.writePump()
	go c.readPump()

	log.Info().
		Str("connection_id", c.ID).
		Str("user_id", userID.String()).
		Msg("websocket connection established")
	return nil
}

func (cm *ConnectionManager) register(c *Connection) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.userConnections[c.UserID] == nil {
		cm.userConnections[c.UserID] = make(map[*Connection]struct{})
	}
	cm.userConnections[c.UserID][c] = struct{}{}
}

// unregister is safe to call more than once per connection
func (cm *ConnectionManager) unregister(c *Connection) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	conns, ok := cm.userConnections[c.UserID]
	if !ok {
		return
	}
	if _, ok := conns[c]; !ok {
		return
	}
	delete(conns, c)
	close(c.Send)
	if len(conns) == 0 {
		delete(cm.userConnections, c.UserID)
	}

	log.Info().
		Str("connection_id", c.ID).
		Str("user_id", c.UserID.String()).
		Msg("connection unregistered")
}

func (cm *ConnectionManager) closeAll() {
	cm.mu.RLock()
	var all []*Connection
	for _, conns := range cm.userConnections {
		for c := range conns {
			all = append(all, c)
		}
	}
	cm.mu.RUnlock()

	for _, c := range all {
		cm.unregister(c)
	}
}

func (cm *ConnectionManager) deliver(event events.Event) {
	data, err := json.Marshal(Notification{
		ID:         event.ID.String(),
		Type:       event.Type,
		TeamID:     event.TeamID.String(),
		OccurredAt: event.OccurredAt,
		Payload:    event.Payload,
	})
	if err != nil {
		log.Error().Err(err).Str("event_id", event.ID.String()).Msg("failed to marshal notification")
		return
	}

	// Sends happen under the read lock so unregister cannot close a channel
	// mid-send. Slow connections are collected and dropped afterwards.
	var slow []*Connection
	delivered := 0
	cm.mu.RLock()
	for _, userID := range event.Recipients {
		for c := range cm.userConnections[userID] {
			select {
			case c.Send <- data:
				delivered++
			default:
				slow = append(slow, c)
			}
		}
	}
	cm.mu.RUnlock()

	for _, c := range slow {
		log.Warn().
			Str("connection_id", c.ID).
			Str("user_id", c.UserID.String()).
			Msg("send buffer full, closing connection")
		cm.unregister(c)
	}

	log.Debug().
		Str("event_id", event.ID.String()).
		Str("event_type", event.Type).
		Int("connections", delivered).
		Msg("notification delivered")
}

// ConnectionStats summarises open connections
type ConnectionStats struct {
	TotalConnections int `json:"total_connections"`
	ConnectedUsers   int `json:"connected_users"`
}

func (cm *ConnectionManager) Stats() ConnectionStats {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	stats := ConnectionStats{ConnectedUsers: len(cm.userConnections)}
	for _, conns := range cm.userConnections {
		stats.TotalConnections += len(conns)
	}
	return stats
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(c.Manager.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
		c.Manager.unregister(c)
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Debug().Err(err).Str("connection_id", c.ID).Msg("failed to write message")
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Debug().Err(err).Str("connection_id", c.ID).Msg("failed to send ping")
				return
			}
		}
	}
}

// readPump keeps the read deadline fresh via pongs. Clients have nothing to
// say, so anything they send is discarded.
func (c *Connection) readPump() {
	defer func() {
		c.Manager.unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(c.Manager.config.MaxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("connection_id", c.ID).Msg("unexpected websocket close")
			}
			return
		}
		c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	}
}
