//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=negotiation_test
package negotiation

import (
	"context"

	"errandgo/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, negotiationModifyEntity entities.NegotiationModify) (*entities.Negotiation, error)
	GetByID(ctx context.Context, id int64) (*entities.Negotiation, error)
	SetStatus(ctx context.Context, id int64, status entities.NegotiationStatusType) error
	RejectOthers(ctx context.Context, errandID, acceptedID int64) error
	ListByErrand(ctx context.Context, errandID int64) ([]entities.Negotiation, error)
}

type ErrandRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Errand, error)
	AcceptPending(ctx context.Context, errandID int64, agreedPrice float64) error
}

type ActiveErrandRepository interface {
	Create(ctx context.Context, activeModifyEntity entities.ActiveErrandModify) (*entities.ActiveErrand, error)
}

type ChatService interface {
	CreateForAssignment(ctx context.Context, errandID, clientID, runnerID int64) (*entities.Chat, error)
}

type NotificationService interface {
	Notify(ctx context.Context, userID int64, message string) (*entities.Notification, error)
}

type EventGateway interface {
	PublishStatusChanged(ctx context.Context, event entities.ErrandEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
