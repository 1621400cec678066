//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=active_errand_complete_post_test
package active_errand_complete_post

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
	CompleteErrand(ctx context.Context, activeErrandID, runnerID int64) (*entities.Errand, error)
}
