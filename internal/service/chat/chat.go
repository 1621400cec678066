package chat

import (
	"context"
	"fmt"
	"strings"

	"errandgo/internal/entities"
)

type Chat struct {
	repository    Repository
	notifications NotificationService
}

func New(repository Repository, notifications NotificationService) *Chat {
	return &Chat{
		repository:    repository,
		notifications: notifications,
	}
}

// CreateForAssignment opens the errand's conversation thread. It is called
// inside the acceptance transaction, right after the active errand row.
func (s *Chat) CreateForAssignment(ctx context.Context, errandID, clientID, runnerID int64) (*entities.Chat, error) {
	chat, err := s.repository.Create(ctx, errandID, clientID, runnerID)
	if err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}
	return chat, nil
}

type Thread struct {
	Chat     *entities.Chat
	Messages []entities.Message
}

// GetThread returns the errand's conversation for one of its participants and
// marks the other party's messages read.
func (s *Chat) GetThread(ctx context.Context, errandID, userID int64) (*Thread, error) {
	chat, err := s.repository.GetByErrandID(ctx, errandID)
	if err != nil {
		return nil, err
	}
	if !chat.IsParticipant(userID) {
		return nil, ErrNotParticipant
	}

	err = s.repository.MarkMessagesRead(ctx, chat.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("mark messages read: %w", err)
	}

	messages, err := s.repository.ListMessages(ctx, chat.ID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return &Thread{Chat: chat, Messages: messages}, nil
}

func (s *Chat) SendMessage(ctx context.Context, errandID, senderID int64, content string) (*entities.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	chat, err := s.repository.GetByErrandID(ctx, errandID)
	if err != nil {
		return nil, err
	}
	if !chat.IsParticipant(senderID) {
		return nil, ErrNotParticipant
	}

	message, err := s.repository.CreateMessage(ctx, chat.ID, senderID, content)
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	recipientID := chat.ClientID
	if senderID == chat.ClientID {
		recipientID = chat.RunnerID
	}
	_, _ = s.notifications.Notify(ctx, recipientID, "You have a new message on your errand chat.")

	return message, nil
}
