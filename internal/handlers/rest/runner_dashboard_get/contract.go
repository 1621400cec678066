//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=runner_dashboard_get_test
package runner_dashboard_get

import (
	"context"

	"errandgo/internal/entities"
	"errandgo/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Summary(ctx context.Context, runnerID int64) (*entities.EarningsSummary, error)
	Weekly(ctx context.Context, runnerID int64) ([]entities.EarningsBucket, error)
	Monthly(ctx context.Context, runnerID int64) ([]entities.EarningsBucket, error)
	Wallet(ctx context.Context, runnerID int64) (entities.Wallet, error)
	History(ctx context.Context, runnerID int64, filter entities.HistoryFilter) ([]entities.CompletedErrandRecord, error)
}
