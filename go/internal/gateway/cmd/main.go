package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/hackteams/go/internal/auth"
	"github.com/mcdev12/hackteams/go/internal/config"
	"github.com/mcdev12/hackteams/go/internal/gateway"
	"github.com/mcdev12/hackteams/go/internal/logging"
	"github.com/mcdev12/hackteams/go/internal/metrics"
)

func main() {
	cfg, err := config.Load(os.Getenv("HACKTEAMS_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Console, "notification-gateway")

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("notification gateway exited")
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	verifier, err := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer, clockwork.NewRealClock())
	if err != nil {
		return fmt.Errorf("create token verifier: %w", err)
	}

	gwCfg := gateway.DefaultConfig()
	gwCfg.JetStreamConfig.URL = cfg.NATS.URL
	if cfg.Gateway.ConsumerName != "" {
		gwCfg.JetStreamConfig.ConsumerName = cfg.Gateway.ConsumerName
	}

	svc, err := gateway.NewService(ctx, gwCfg, verifier)
	if err != nil {
		return fmt.Errorf("create gateway service: %w", err)
	}

	reg := metrics.NewRegistry()
	if err := gateway.RegisterMetrics(reg, svc.ConnectionManager()); err != nil {
		return err
	}

	mux := http.NewServeMux()
	svc.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metrics.Handler(reg))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"Authorization"},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Gateway.Port),
		Handler:           corsHandler.Handler(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	svcErr := make(chan error, 1)
	go func() {
		svcErr <- svc.Start(ctx)
	}()

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("HTTP server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	select {
	case err := <-svcErr:
		return err
	case <-shutdownCtx.Done():
		return shutdownCtx.Err()
	}
}
