//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=errands_get_test
package errands_get

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
	ListErrands(ctx context.Context, clientID int64) ([]entities.Errand, error)
	StatusCounts(ctx context.Context, clientID int64) (entities.ErrandStatusCounts, error)
}
