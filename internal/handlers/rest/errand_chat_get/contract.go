//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=errand_chat_get_test
package errand_chat_get

import (
	"context"

	"errandgo/internal/service/chat"
	"errandgo/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetThread(ctx context.Context, errandID, userID int64) (*chat.Thread, error)
}
