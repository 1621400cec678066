package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"errandgo/internal/entities"
	"errandgo/internal/repository"
	chatsvc "errandgo/internal/service/chat"
)

const (
	chatColumns    = "id, errand_id, client_id, runner_id, created_at"
	messageColumns = "id, chat_id, sender_id, content, is_read, created_at"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, errandID, clientID, runnerID int64) (*entities.Chat, error) {
	query := `INSERT INTO chats (errand_id, client_id, runner_id)
		VALUES ($1, $2, $3)
		RETURNING ` + chatColumns

	var chatModel ChatDB
	err := r.querier.QueryRow(ctx, query, errandID, clientID, runnerID).Scan(
		&chatModel.ID,
		&chatModel.ErrandID,
		&chatModel.ClientID,
		&chatModel.RunnerID,
		&chatModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, chatsvc.ErrChatExists
		}
		return nil, fmt.Errorf("unexpected chat repository create error: %w", err)
	}

	return ToDomain(&chatModel), nil
}

func (r *Repository) GetByErrandID(ctx context.Context, errandID int64) (*entities.Chat, error) {
	query := `SELECT ` + chatColumns + ` FROM chats WHERE errand_id = $1`

	var chatModel ChatDB
	err := r.querier.QueryRow(ctx, query, errandID).Scan(
		&chatModel.ID,
		&chatModel.ErrandID,
		&chatModel.ClientID,
		&chatModel.RunnerID,
		&chatModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, chatsvc.ErrChatNotFound
		}
		return nil, fmt.Errorf("unexpected chat repository get error: %w", err)
	}

	return ToDomain(&chatModel), nil
}

func (r *Repository) CreateMessage(ctx context.Context, chatID, senderID int64, content string) (*entities.Message, error) {
	query := `INSERT INTO messages (chat_id, sender_id, content)
		VALUES ($1, $2, $3)
		RETURNING ` + messageColumns

	var messageModel MessageDB
	err := r.querier.QueryRow(ctx, query, chatID, senderID, content).Scan(
		&messageModel.ID,
		&messageModel.ChatID,
		&messageModel.SenderID,
		&messageModel.Content,
		&messageModel.IsRead,
		&messageModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected chat repository create message error: %w", err)
	}

	return ToMessageDomain(&messageModel), nil
}

func (r *Repository) ListMessages(ctx context.Context, chatID int64) ([]entities.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE chat_id = $1 ORDER BY created_at`

	rows, err := r.querier.Query(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("unexpected chat repository list messages error: %w", err)
	}
	defer rows.Close()

	messageModels := make([]MessageDB, 0, 16)
	for rows.Next() {
		var messageModel MessageDB
		err := rows.Scan(
			&messageModel.ID,
			&messageModel.ChatID,
			&messageModel.SenderID,
			&messageModel.Content,
			&messageModel.IsRead,
			&messageModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected chat repository list messages error: %w", err)
		}
		messageModels = append(messageModels, messageModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected chat repository list messages error: %w", err)
	}

	return ToMessageDomainList(messageModels), nil
}

// MarkMessagesRead marks every message addressed to the reader as read, which
// is every message in the chat the reader did not send.
func (r *Repository) MarkMessagesRead(ctx context.Context, chatID, readerID int64) error {
	query := `UPDATE messages
		SET is_read = TRUE
		WHERE chat_id = $1 AND sender_id != $2 AND is_read = FALSE`

	_, err := r.querier.Exec(ctx, query, chatID, readerID)
	if err != nil {
		return fmt.Errorf("unexpected chat repository mark read error: %w", err)
	}
	return nil
}
