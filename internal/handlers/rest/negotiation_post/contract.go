//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=negotiation_post_test
package negotiation_post

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
	SubmitOffer(ctx context.Context, errandID, runnerID int64, offerPrice float64) (*entities.Negotiation, error)
}
