package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"errandgo/internal/pkg/config"
	"errandgo/pkg/retrier"
	"errandgo/pkg/retrier/backoff_adapter"
)

const (
	pingInitialInterval = 100 * time.Millisecond
	pingMaxInterval     = 2 * time.Second
	pingMaxElapsedTime  = 30 * time.Second
)

func DSN(cfg config.Database) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)
}

// NewPool opens a pgx connection pool and waits for the database to become
// reachable, retrying the ping with exponential backoff.
func NewPool(ctx context.Context, cfg config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	r := backoff_adapter.New(retrier.Config{
		InitialInterval: pingInitialInterval,
		MaxInterval:     pingMaxInterval,
		MaxElapsedTime:  pingMaxElapsedTime,
		Randomization:   0.5,
		Multiplier:      2,
	})

	if err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return pool.Ping(ctx)
	}); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
