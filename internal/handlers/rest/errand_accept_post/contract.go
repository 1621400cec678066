//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=errand_accept_post_test
package errand_accept_post

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
	DirectAccept(ctx context.Context, errandID, runnerID int64, offerPrice *float64) (*entities.Assignment, error)
}
