package common

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plateworks/menugen/gen/ent"
	"github.com/plateworks/menugen/internal/repository"
)

const inMemoryDSN = "file:menugen?mode=memory&cache=shared&_pragma=foreign_keys(1)"

// DatabaseResult bundles an open Ent client with its cleanup.
type DatabaseResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool // nil in SQLite mode
	Cleanup func()
}

// InitDatabase opens the batch-history store. inmem (or an empty DSN) selects
// throwaway in-memory SQLite, which suits one-shot CLI runs; otherwise the
// configured Postgres DSN is used. Schema migration runs in both modes.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DatabaseResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if inmem || cfg.Database.DSN == "" {
		client, err := repository.OpenSQLite(ctx, inMemoryDSN, logger)
		if err != nil {
			return nil, WrapError(err, "open in-memory database")
		}
		if err := client.Schema.Create(ctx); err != nil {
			_ = client.Close()
			return nil, WrapError(err, "migrate in-memory database")
		}
		return &DatabaseResult{
			Client:  client,
			Cleanup: func() { _ = client.Close() },
		}, nil
	}

	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		return nil, WrapError(err, "open database")
	}
	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database health check: %w", err)
	}
	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		pool.Close()
		return nil, WrapError(err, "migrate database")
	}
	return &DatabaseResult{
		Client: client,
		Pool:   pool,
		Cleanup: func() {
			_ = client.Close()
			pool.Close()
		},
	}, nil
}
