//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=errand_runners_get_test
package errand_runners_get

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
	RunnersForErrand(ctx context.Context, errandID int64) ([]entities.RunnerListing, error)
}
