//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rating_test
package rating

import (
	"context"

	"errandgo/internal/entities"
)

type Repository interface {
	Upsert(ctx context.Context, rating entities.Rating) (*entities.Rating, error)
	ListForUser(ctx context.Context, toUserID int64) ([]entities.Rating, error)
	AverageForUser(ctx context.Context, toUserID int64) (average float64, count int64, err error)
}

type ErrandRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Errand, error)
}

type ActiveErrandRepository interface {
	GetByErrandID(ctx context.Context, errandID int64) (*entities.ActiveErrand, error)
}

type NotificationService interface {
	Notify(ctx context.Context, userID int64, message string) (*entities.Notification, error)
}
