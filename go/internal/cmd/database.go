package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcdev12/hackteams/go/internal/dbconfig"
	"github.com/rs/zerolog/log"
)

func setupDatabase(ctx context.Context) (*pgxpool.Pool, error) {
	dbCfg := dbconfig.NewConfigFromEnv()
	pool, err := dbCfg.OpenPool(ctx)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("user", dbCfg.User).
		Str("host", dbCfg.Host).
		Int("port", dbCfg.Port).
		Str("database", dbCfg.Database).
		Msg("connected to database")
	return pool, nil
}
