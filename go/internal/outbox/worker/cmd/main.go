package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/hackteams/go/internal/config"
	"github.com/mcdev12/hackteams/go/internal/dbconfig"
	"github.com/mcdev12/hackteams/go/internal/logging"
	"github.com/mcdev12/hackteams/go/internal/metrics"
	"github.com/mcdev12/hackteams/go/internal/outbox"
	"github.com/mcdev12/hackteams/go/internal/outbox/worker"
)

func main() {
	cfg, err := config.Load(os.Getenv("HACKTEAMS_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Console, "outbox-relay")

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("outbox relay exited")
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbCfg := dbconfig.NewConfigFromEnv()
	dsn := dbCfg.DSN()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	log.Info().
		Str("host", dbCfg.Host).
		Int("port", dbCfg.Port).
		Str("database", dbCfg.Database).
		Msg("connected to database")

	jsCfg := worker.DefaultJetStreamConfig()
	jsCfg.URL = cfg.NATS.URL
	publisher, err := worker.NewJetStreamPublisher(ctx, jsCfg)
	if err != nil {
		return fmt.Errorf("create JetStream publisher: %w", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("close publisher")
		}
	}()

	reg := metrics.NewRegistry()
	collector, err := outbox.NewPrometheusMetrics(reg)
	if err != nil {
		return fmt.Errorf("register outbox metrics: %w", err)
	}

	clock := clockwork.NewRealClock()
	repo := outbox.NewRepository(db)

	relayCfg := outbox.DefaultRelayConfig()
	if cfg.Outbox.BatchSize > 0 {
		relayCfg.BatchSize = cfg.Outbox.BatchSize
	}
	relayCfg.MaxRetries = cfg.Outbox.MaxRetries
	relay := outbox.NewRelay(repo, publisher, clock, collector, relayCfg)

	lnCfg := outbox.DefaultListenerConfig()
	lnCfg.DatabaseURL = dsn
	if cfg.Outbox.FallbackInterval > 0 {
		lnCfg.FallbackInterval = cfg.Outbox.FallbackInterval
	}
	listener, err := outbox.NewListener(relay, lnCfg)
	if err != nil {
		return fmt.Errorf("create outbox listener: %w", err)
	}

	health := outbox.NewHealthChecker(relay, repo, db, publisher.Conn(), listener.Active, clock, 5*time.Minute)

	mux := http.NewServeMux()
	mux.Handle("/health", health)
	mux.Handle("/metrics", metrics.Handler(reg))
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Outbox.HealthPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("addr", server.Addr).Msg("health server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("health server failed")
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("channel", lnCfg.NotifyChannel).Msg("starting outbox listener")
		errCh <- listener.Start(ctx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case runErr = <-errCh:
		log.Error().Err(runErr).Msg("listener exited unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("health server shutdown")
	}
	log.Info().Msg("outbox relay stopped")
	return runErr
}
