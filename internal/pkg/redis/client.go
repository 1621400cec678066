package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"errandgo/internal/pkg/config"
	"errandgo/pkg/retrier"
	"errandgo/pkg/retrier/backoff_adapter"
)

const (
	pingInitialInterval = 100 * time.Millisecond
	pingMaxInterval     = 2 * time.Second
	pingMaxElapsedTime  = 30 * time.Second
)

// NewClient connects to Redis and waits for it to become reachable, retrying
// the ping with exponential backoff.
func NewClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	r := backoff_adapter.New(retrier.Config{
		InitialInterval: pingInitialInterval,
		MaxInterval:     pingMaxInterval,
		MaxElapsedTime:  pingMaxElapsedTime,
		Randomization:   0.5,
		Multiplier:      2,
	})

	if err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}
