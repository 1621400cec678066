//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=feedback_summary_get_test
package feedback_summary_get

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
	Summary(ctx context.Context) (*entities.FeedbackSummary, error)
}
