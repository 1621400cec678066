//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=errand_post_test
package errand_post

import (
	"context"

	"errandgo/internal/entities"
	"errandgo/internal/service/errand"
	"errandgo/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateErrand(ctx context.Context, params errand.CreateParams) (*entities.Errand, error)
}
