// Package gateway pushes team membership notifications to connected users
// over websockets. Events arrive from the JetStream stream the outbox relay
// publishes to and are routed by their recipient list.
package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// Service wires the connection manager, websocket handler and consumer
type Service struct {
	connectionManager *ConnectionManager
	wsHandler         *WebSocketHandler
	eventConsumer     *EventConsumer
}

type Config struct {
	ConnectionConfig ConnectionConfig
	JetStreamConfig  JetStreamConsumerConfig
}

func DefaultConfig() Config {
	return Config{
		ConnectionConfig: DefaultConnectionConfig(),
		JetStreamConfig:  DefaultJetStreamConsumerConfig(),
	}
}

func NewService(ctx context.Context, config Config, verifier TokenVerifier) (*Service, error) {
	cm := NewConnectionManager(config.ConnectionConfig)

	consumer, err := NewEventConsumer(ctx, cm, config.JetStreamConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create event consumer: %w", err)
	}

	return &Service{
		connectionManager: cm,
		wsHandler:         NewWebSocketHandler(cm, verifier),
		eventConsumer:     consumer,
	}, nil
}

// Start runs the gateway until ctx is done
func (s *Service) Start(ctx context.Context) error {
	log.Info().Msg("starting notification gateway")

	go s.connectionManager.Start(ctx)

	err := s.eventConsumer.Start(ctx)
	if stopErr := s.eventConsumer.Stop(); stopErr != nil {
		log.Error().Err(stopErr).Msg("failed to stop event consumer")
	}
	log.Info().Msg("notification gateway stopped")
	return err
}

func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	s.wsHandler.RegisterRoutes(mux)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if !s.eventConsumer.Connected() {
			http.Error(w, "NATS disconnected", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// RegisterMetrics exposes connection counts as gauges
func RegisterMetrics(reg prometheus.Registerer, cm *ConnectionManager) error {
	connections := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "hackteams",
		Subsystem: "gateway",
		Name:      "connections",
		Help:      "Open websocket connections",
	}, func() float64 { return float64(cm.Stats().TotalConnections) })
	users := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "hackteams",
		Subsystem: "gateway",
		Name:      "connected_users",
		Help:      "Users with at least one open websocket connection",
	}, func() float64 { return float64(cm.Stats().ConnectedUsers) })

	for _, c := range []prometheus.Collector{connections, users} {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("register gateway metrics: %w", err)
		}
	}
	return nil
}

// ConnectionManager exposes the manager for metrics registration
func (s *Service) ConnectionManager() *ConnectionManager {
	return s.connectionManager
}
