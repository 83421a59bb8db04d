package main

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/hackteams/go/internal/catalog"
	"github.com/mcdev12/hackteams/go/internal/config"
	"github.com/mcdev12/hackteams/go/internal/joinrequests"
	"github.com/mcdev12/hackteams/go/internal/memstore"
	"github.com/mcdev12/hackteams/go/internal/metrics"
	"github.com/mcdev12/hackteams/go/internal/notify"
	"github.com/mcdev12/hackteams/go/internal/outbox"
	"github.com/mcdev12/hackteams/go/internal/ratelimit"
	"github.com/mcdev12/hackteams/go/internal/teams"
	"github.com/mcdev12/hackteams/go/internal/users"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

type Services struct {
	Teams        *teams.Service
	JoinRequests *joinrequests.Service

	closers []func()
}

// Close releases pools, sinks and limiters in reverse order of creation
func (s *Services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// storage is the set of ports the apps need, backed by memory or Postgres
type storage struct {
	teams    teams.TeamsRepository
	profiles teams.ProfileReader
	requests joinrequests.Store
	reader   joinrequests.TeamReader
}

func setupServices(ctx context.Context, cfg *config.Config, reg prometheus.Registerer) (*Services, error) {
	// Wire up dependency injection chain
	// Storage → App layer → Service layer
	services := &Services{}
	clock := clockwork.NewRealClock()

	st, err := setupStorage(ctx, cfg, services)
	if err != nil {
		services.Close()
		return nil, err
	}

	roles, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		services.Close()
		return nil, err
	}

	lifecycle, err := metrics.NewLifecycle(reg)
	if err != nil {
		services.Close()
		return nil, fmt.Errorf("register lifecycle metrics: %w", err)
	}

	// Teams
	teamsApp := teams.NewApp(st.teams, st.profiles, roles, clock, teams.Config{MaxTeamSize: cfg.Teams.MaxTeamSize})
	services.Teams = teams.NewService(teamsApp)

	// Join requests
	limiter, err := setupLimiter(ctx, cfg, clock)
	if err != nil {
		services.Close()
		return nil, err
	}
	if limiter != nil {
		services.closers = append(services.closers, limiter.Close)
	}
	joinApp := joinrequests.NewApp(st.requests, st.reader, clock, lifecycle)
	services.JoinRequests = joinrequests.NewService(joinApp, limiter, joinrequests.SubmitLimit{
		Limit:  cfg.RateLimit.SubmitLimit,
		Window: cfg.RateLimit.SubmitWindow,
	})

	return services, nil
}

func setupStorage(ctx context.Context, cfg *config.Config, services *Services) (storage, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := setupDatabase(ctx)
		if err != nil {
			return storage{}, err
		}
		services.closers = append(services.closers, pool.Close)

		// Events go to the outbox in the same transaction as the change;
		// the relay publishes them.
		teamsRepo := teams.NewRepository(pool)
		return storage{
			teams:    teamsRepo,
			profiles: users.NewRepository(pool),
			requests: joinrequests.NewRepository(pool, outbox.NewWriter()),
			reader:   teamsRepo,
		}, nil

	default:
		sink := notify.NewAsyncSink(notify.LogSink{}, cfg.Notify.Buffer)
		services.closers = append(services.closers, sink.Close)

		log.Warn().Msg("using in-memory store; data is lost on restart")
		store := memstore.New(sink)
		return storage{
			teams:    store,
			profiles: store,
			requests: store,
			reader:   store,
		}, nil
	}
}

// setupLimiter returns nil when limiting is disabled
func setupLimiter(ctx context.Context, cfg *config.Config, clock clockwork.Clock) (ratelimit.Limiter, error) {
	if cfg.RateLimit.SubmitLimit <= 0 {
		return nil, nil
	}
	if cfg.Redis.Addr == "" {
		return ratelimit.NewMemoryLimiter(clock), nil
	}
	limiter, err := ratelimit.NewRedisLimiter(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, clock)
	if err != nil {
		return nil, fmt.Errorf("connect rate limiter: %w", err)
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis rate limiter")
	return limiter, nil
}
