package main

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/mcdev12/hackteams/go/internal/config"
	"github.com/prometheus/client_golang/prometheus"
)

func TestServicesCloseReleasesRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Default()
	cfg.RateLimit.SubmitLimit = 5
	cfg.Redis.Addr = mr.Addr()

	services, err := setupServices(context.Background(), cfg, prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("setupServices: %v", err)
	}
	if mr.CurrentConnectionCount() == 0 {
		t.Fatal("limiter should hold a redis connection")
	}

	services.Close()

	deadline := time.Now().Add(2 * time.Second)
	for mr.CurrentConnectionCount() > 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if n := mr.CurrentConnectionCount(); n != 0 {
		t.Fatalf("redis connections after Close = %d, want 0", n)
	}
}

func TestServicesWithoutLimiter(t *testing.T) {
	cfg := config.Default()
	cfg.RateLimit.SubmitLimit = 0

	services, err := setupServices(context.Background(), cfg, prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("setupServices: %v", err)
	}
	// only the notification sink
	if len(services.closers) != 1 {
		t.Fatalf("closers = %d, want 1", len(services.closers))
	}
	services.Close()
}
