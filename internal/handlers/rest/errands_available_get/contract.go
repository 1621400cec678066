//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=errands_available_get_test
package errands_available_get

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
	AvailableErrands(ctx context.Context, runnerID int64) ([]entities.AvailableErrand, error)
}
