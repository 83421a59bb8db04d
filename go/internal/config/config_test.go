package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg, err := Decode(New(""))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cfg.Store.Driver != StoreMemory || cfg.Server.Port != 8080 {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.RateLimit.SubmitWindow != time.Hour {
		t.Errorf("submit window = %v", cfg.RateLimit.SubmitWindow)
	}
}

func TestFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hackteams.yaml")
	data := `
store:
  driver: postgres
teams:
  max_team_size: 6
ratelimit:
  submit_window: 15m
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HACKTEAMS_TEAMS_MAX_TEAM_SIZE", "8")
	t.Setenv("HACKTEAMS_AUTH_JWT_SECRET", "s3cret")

	v := New(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}
	cfg, err := Decode(v)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if cfg.Store.Driver != StorePostgres {
		t.Errorf("driver = %q", cfg.Store.Driver)
	}
	if cfg.Teams.MaxTeamSize != 8 {
		t.Errorf("env should override file, max_team_size = %d", cfg.Teams.MaxTeamSize)
	}
	if cfg.RateLimit.SubmitWindow != 15*time.Minute {
		t.Errorf("submit window = %v", cfg.RateLimit.SubmitWindow)
	}
	if cfg.Auth.JWTSecret != "s3cret" {
		t.Errorf("jwt secret not read from env")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"unknown driver", func(c *Config) { c.Store.Driver = "sqlite" }, "store.driver"},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"negative size", func(c *Config) { c.Teams.MaxTeamSize = -1 }, "max_team_size"},
		{"limit without window", func(c *Config) { c.RateLimit.SubmitWindow = 0 }, "submit_window"},
		{"limit disabled", func(c *Config) { c.RateLimit.SubmitLimit = 0; c.RateLimit.SubmitWindow = 0 }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("got %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}
