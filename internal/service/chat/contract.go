//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_test
package chat

import (
	"context"

	"errandgo/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, errandID, clientID, runnerID int64) (*entities.Chat, error)
	GetByErrandID(ctx context.Context, errandID int64) (*entities.Chat, error)
	CreateMessage(ctx context.Context, chatID, senderID int64, content string) (*entities.Message, error)
	ListMessages(ctx context.Context, chatID int64) ([]entities.Message, error)
	MarkMessagesRead(ctx context.Context, chatID, readerID int64) error
}

type NotificationService interface {
	Notify(ctx context.Context, userID int64, message string) (*entities.Notification, error)
}
