//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ratings_get_test
package ratings_get

import (
	"context"

	"errandgo/internal/service/rating"
	"errandgo/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RatingsForUser(ctx context.Context, userID int64) (*rating.UserRatings, error)
}
