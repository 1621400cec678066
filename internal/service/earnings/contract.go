//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=earnings_test
package earnings

import (
	"context"
	"time"

	"errandgo/internal/entities"
)

type ActiveErrandRepository interface {
	TotalEarnings(ctx context.Context, runnerID int64) (float64, error)
	EarningsBetween(ctx context.Context, runnerID int64, from, to time.Time) (float64, error)
	EarningsBuckets(ctx context.Context, runnerID int64, since time.Time, unit string) ([]entities.EarningsBucket, error)
	Wallet(ctx context.Context, runnerID int64, cutoff time.Time) (entities.Wallet, error)
	ListCompletedRecords(ctx context.Context, runnerID int64) ([]entities.CompletedErrandRecord, error)
}

type RunnerRepository interface {
	Aggregates(ctx context.Context, runnerID int64) (total, completed int64, averageRating float64, err error)
}
