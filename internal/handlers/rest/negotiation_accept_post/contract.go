//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=negotiation_accept_post_test
package negotiation_accept_post

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
	AcceptOffer(ctx context.Context, negotiationID, clientID int64) (*entities.Assignment, error)
}
