//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=errand_status_changed_test
package errand_status_changed

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

type NotificationService interface {
	Notify(ctx context.Context, userID int64, message string) (*entities.Notification, error)
}
