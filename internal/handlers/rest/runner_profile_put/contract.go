//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=runner_profile_put_test
package runner_profile_put

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
	UpdateProfile(ctx context.Context, profileModify entities.RunnerProfileModify) (*entities.RunnerProfile, error)
}
