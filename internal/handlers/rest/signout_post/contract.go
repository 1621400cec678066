//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=signout_post_test
package signout_post

import (
	"context"

	"errandgo/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SignOut(ctx context.Context, token string) error
}
