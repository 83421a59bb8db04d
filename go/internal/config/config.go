// Package config loads process configuration. Values come from defaults, an
// optional hackteams.yaml and HACKTEAMS_* environment variables, in that order
// of precedence (env wins). Database settings keep their DB_* variables and
// are read by dbconfig.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config represents the complete service configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Store     StoreConfig     `mapstructure:"store"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Teams     TeamsConfig     `mapstructure:"teams"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Redis     RedisConfig     `mapstructure:"redis"`
	NATS      NATSConfig      `mapstructure:"nats"`
	Notify    NotifyConfig    `mapstructure:"notify"`
	Outbox    OutboxConfig    `mapstructure:"outbox"`
	Gateway   GatewayConfig   `mapstructure:"gateway"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// AllowedOrigins feeds the CORS middleware
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type StoreConfig struct {
	// Driver is "memory" or "postgres"
	Driver string `mapstructure:"driver"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

type LogConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

type CatalogConfig struct {
	// Path to a roles YAML file; empty uses the built-in roles
	Path string `mapstructure:"path"`
}

type TeamsConfig struct {
	MaxTeamSize int `mapstructure:"max_team_size"`
}

type RateLimitConfig struct {
	// SubmitLimit is join requests per candidate per window; 0 disables
	SubmitLimit  int           `mapstructure:"submit_limit"`
	SubmitWindow time.Duration `mapstructure:"submit_window"`
}

type RedisConfig struct {
	// Addr enables the shared limiter; empty keeps limits in process
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type NATSConfig struct {
	URL string `mapstructure:"url"`
}

type NotifyConfig struct {
	Buffer int `mapstructure:"buffer"`
}

type OutboxConfig struct {
	FallbackInterval time.Duration `mapstructure:"fallback_interval"`
	BatchSize        int           `mapstructure:"batch_size"`
	MaxRetries       int           `mapstructure:"max_retries"`
	HealthPort       int           `mapstructure:"health_port"`
}

type GatewayConfig struct {
	Port         int    `mapstructure:"port"`
	ConsumerName string `mapstructure:"consumer_name"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Store:   StoreConfig{Driver: StoreMemory},
		Auth:    AuthConfig{Issuer: ""},
		Log:     LogConfig{Level: "info", Console: true},
		Catalog: CatalogConfig{},
		Teams:   TeamsConfig{MaxTeamSize: 10},
		RateLimit: RateLimitConfig{
			SubmitLimit:  20,
			SubmitWindow: time.Hour,
		},
		NATS:   NATSConfig{URL: "nats://127.0.0.1:4222"},
		Notify: NotifyConfig{Buffer: 256},
		Outbox: OutboxConfig{
			FallbackInterval: 30 * time.Second,
			BatchSize:        100,
			MaxRetries:       5,
			HealthPort:       8081,
		},
		Gateway: GatewayConfig{
			Port:         8082,
			ConsumerName: "notification-gateway",
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.allowed_origins", d.Server.AllowedOrigins)

	v.SetDefault("store.driver", d.Store.Driver)

	v.SetDefault("auth.jwt_secret", d.Auth.JWTSecret)
	v.SetDefault("auth.issuer", d.Auth.Issuer)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.console", d.Log.Console)

	v.SetDefault("catalog.path", d.Catalog.Path)
	v.SetDefault("teams.max_team_size", d.Teams.MaxTeamSize)

	v.SetDefault("ratelimit.submit_limit", d.RateLimit.SubmitLimit)
	v.SetDefault("ratelimit.submit_window", d.RateLimit.SubmitWindow)

	v.SetDefault("redis.addr", d.Redis.Addr)
	v.SetDefault("redis.password", d.Redis.Password)
	v.SetDefault("redis.db", d.Redis.DB)

	v.SetDefault("nats.url", d.NATS.URL)
	v.SetDefault("notify.buffer", d.Notify.Buffer)

	v.SetDefault("outbox.fallback_interval", d.Outbox.FallbackInterval)
	v.SetDefault("outbox.batch_size", d.Outbox.BatchSize)
	v.SetDefault("outbox.max_retries", d.Outbox.MaxRetries)
	v.SetDefault("outbox.health_port", d.Outbox.HealthPort)

	v.SetDefault("gateway.port", d.Gateway.Port)
	v.SetDefault("gateway.consumer_name", d.Gateway.ConsumerName)
}

// New returns a viper instance with defaults, env binding and the config
// file search path set up. file may be empty.
func New(file string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("hackteams")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/hackteams")
	}

	// HACKTEAMS_RATELIMIT_SUBMIT_LIMIT for ratelimit.submit_limit
	v.SetEnvPrefix("HACKTEAMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads .env, the config file if present, and the environment
func Load(file string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	v := New(file)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return Decode(v)
}

// Decode unmarshals and validates the settings held by v
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the service cannot start with
func (c *Config) Validate() error {
	var errs []error
	switch c.Store.Driver {
	case StoreMemory, StorePostgres:
	default:
		errs = append(errs, fmt.Errorf("store.driver must be %q or %q, got %q", StoreMemory, StorePostgres, c.Store.Driver))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if c.Teams.MaxTeamSize < 0 {
		errs = append(errs, fmt.Errorf("teams.max_team_size cannot be negative"))
	}
	if c.RateLimit.SubmitLimit > 0 && c.RateLimit.SubmitWindow <= 0 {
		errs = append(errs, fmt.Errorf("ratelimit.submit_window must be positive when submit_limit is set"))
	}
	return errors.Join(errs...)
}
