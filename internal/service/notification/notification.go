package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"errandgo/internal/entities"
)

// Read notifications older than this are removed by the cleanup task.
const readRetention = 30 * 24 * time.Hour

const listLimit = 50

type Notification struct {
	repository Repository
}

func New(repository Repository) *Notification {
	return &Notification{
		repository: repository,
	}
}

func (s *Notification) Notify(ctx context.Context, userID int64, message string) (*entities.Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	created, err := s.repository.Create(ctx, userID, message)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return created, nil
}

func (s *Notification) List(ctx context.Context, userID int64) ([]entities.Notification, error) {
	notifications, err := s.repository.ListByUser(ctx, userID, listLimit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead only touches the caller's own notification. A miss on either the id
// or the owner reads the same as not found.
func (s *Notification) MarkRead(ctx context.Context, id, userID int64) error {
	return s.repository.MarkRead(ctx, id, userID)
}

func (s *Notification) CleanupRead(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-readRetention)
	deleted, err := s.repository.DeleteReadOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete read notifications: %w", err)
	}
	return deleted, nil
}
