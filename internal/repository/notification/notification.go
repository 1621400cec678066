package notification

import (
	"context"
	"fmt"
	"time"

	"errandgo/internal/entities"
	notificationsvc "errandgo/internal/service/notification"
)

const notificationColumns = "id, user_id, message, is_read, created_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userID int64, message string) (*entities.Notification, error) {
	query := `INSERT INTO notifications (user_id, message)
		VALUES ($1, $2)
		RETURNING ` + notificationColumns

	var notification entities.Notification
	err := r.querier.QueryRow(ctx, query, userID, message).Scan(
		&notification.ID,
		&notification.UserID,
		&notification.Message,
		&notification.IsRead,
		&notification.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return &notification, nil
}

// ListByUser returns the newest notifications, unread ones first.
func (r *Repository) ListByUser(ctx context.Context, userID int64, limit int) ([]entities.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
		WHERE user_id = $1
		ORDER BY is_read, created_at DESC
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	notifications := make([]entities.Notification, 0, 16)
	for rows.Next() {
		var notification entities.Notification
		err := rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notification.Message,
			&notification.IsRead,
			&notification.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
		}
		notifications = append(notifications, notification)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	return notifications, nil
}

// MarkRead flips one notification, but only for its owner.
func (r *Repository) MarkRead(ctx context.Context, id, userID int64) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`

	result, err := r.querier.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("unexpected notification repository mark read error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return notificationsvc.ErrNotificationNotFound
	}
	return nil
}

// DeleteReadOlderThan removes read notifications created before the cutoff.
func (r *Repository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM notifications WHERE is_read = TRUE AND created_at < $1`

	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository cleanup error: %w", err)
	}
	return result.RowsAffected(), nil
}
