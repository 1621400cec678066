//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"
	"time"

	"errandgo/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, userID int64, message string) (*entities.Notification, error)
	ListByUser(ctx context.Context, userID int64, limit int) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
