//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=errand_chat_post_test
package errand_chat_post

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
	SendMessage(ctx context.Context, errandID, senderID int64, content string) (*entities.Message, error)
}
