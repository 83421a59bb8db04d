package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/hackteams/go/internal/auth"
	"github.com/mcdev12/hackteams/go/internal/events"
)

type fixture struct {
	cm       *ConnectionManager
	verifier *auth.Verifier
	server   *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	verifier, err := auth.NewVerifier("test-secret", "", clockwork.NewRealClock())
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	cm := NewConnectionManager(DefaultConnectionConfig())
	ctx, cancel := context.WithCancel(context.Background())
	go cm.Start(ctx)

	mux := http.NewServeMux()
	NewWebSocketHandler(cm, verifier).RegisterRoutes(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		cancel()
	})
	return &fixture{cm: cm, verifier: verifier, server: server}
}

func (f *fixture) dial(t *testing.T, userID uuid.UUID) *websocket.Conn {
	t.Helper()
	token, err := f.verifier.Issue(userID, time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws/notifications?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// registration happens after the handshake returns
	deadline := time.Now().Add(2 * time.Second)
	for f.cm.Stats().TotalConnections == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	return conn
}

func testEvent(recipients ...uuid.UUID) events.Event {
	return events.Event{
		ID:         uuid.New(),
		Type:       events.TypeRequestAccepted,
		TeamID:     uuid.New(),
		Recipients: recipients,
		OccurredAt: time.Date(2025, 4, 12, 10, 0, 0, 0, time.UTC),
		Payload:    json.RawMessage(`{"request_id":"r1"}`),
	}
}

func TestNotificationReachesRecipient(t *testing.T) {
	f := newFixture(t)
	user := uuid.New()
	conn := f.dial(t, user)

	event := testEvent(user)
	if !f.cm.Enqueue(event) {
		t.Fatal("Enqueue dropped the event")
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Notification
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.ID != event.ID.String() || got.Type != event.Type || got.TeamID != event.TeamID.String() {
		t.Errorf("got %+v", got)
	}
	if string(got.Payload) != `{"request_id":"r1"}` {
		t.Errorf("payload = %s", got.Payload)
	}
}

func TestNotificationSkipsOtherUsers(t *testing.T) {
	f := newFixture(t)
	bystander := f.dial(t, uuid.New())

	f.cm.Enqueue(testEvent(uuid.New()))

	bystander.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err := bystander.ReadMessage()
	var netErr net.Error
	if !errors.As(err, &netErr) || !netErr.Timeout() {
		t.Fatalf("expected a read timeout, got %v", err)
	}
}

func TestHandshakeRequiresValidToken(t *testing.T) {
	f := newFixture(t)
	base := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws/notifications"

	tests := []struct {
		name string
		url  string
	}{
		{"missing token", base},
		{"garbage token", base + "?token=not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, resp, err := websocket.DefaultDialer.Dial(tt.url, nil)
			if err == nil {
				t.Fatal("expected handshake to fail")
			}
			if resp == nil || resp.StatusCode != http.StatusUnauthorized {
				t.Fatalf("response = %v", resp)
			}
		})
	}
}

func TestStatsCountsConnections(t *testing.T) {
	f := newFixture(t)
	user := uuid.New()
	f.dial(t, user)
	f.dial(t, uuid.New())

	deadline := time.Now().Add(2 * time.Second)
	for f.cm.Stats().TotalConnections < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if got := f.cm.Stats(); got.TotalConnections != 2 || got.ConnectedUsers != 2 {
		t.Fatalf("stats = %+v", got)
	}
}

type queue struct {
	events []events.Event
	full   bool
}

func (q *queue) Enqueue(event events.Event) bool {
	if q.full {
		return false
	}
	q.events = append(q.events, event)
	return true
}

func TestHandleMessage(t *testing.T) {
	valid, _ := json.Marshal(testEvent(uuid.New()))
	noRecipients, _ := json.Marshal(testEvent())

	tests := []struct {
		name    string
		data    []byte
		full    bool
		queued  int
		wantErr bool
	}{
		{"valid", valid, false, 1, false},
		{"malformed", []byte("{"), false, 0, true},
		{"missing type", []byte(`{"id":"` + uuid.NewString() + `"}`), false, 0, true},
		{"no recipients", noRecipients, false, 0, false},
		{"queue full", valid, true, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &queue{full: tt.full}
			err := HandleMessage(q, tt.data)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if len(q.events) != tt.queued {
				t.Fatalf("queued %d, want %d", len(q.events), tt.queued)
			}
		})
	}
}
