package chat

import (
	"errandgo/internal/entities"
)

func ToDomain(c *ChatDB) *entities.Chat {
	if c == nil {
		return nil
	}

	return &entities.Chat{
		ID:        c.ID,
		ErrandID:  c.ErrandID,
		ClientID:  c.ClientID,
		RunnerID:  c.RunnerID,
		CreatedAt: c.CreatedAt,
	}
}

func ToMessageDomain(m *MessageDB) *entities.Message {
	if m == nil {
		return nil
	}

	return &entities.Message{
		ID:        m.ID,
		ChatID:    m.ChatID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func ToMessageDomainList(messagesDB []MessageDB) []entities.Message {
	if len(messagesDB) == 0 {
		return []entities.Message{}
	}

	result := make([]entities.Message, len(messagesDB))
	for i, messageDB := range messagesDB {
		result[i] = *ToMessageDomain(&messageDB)
	}
	return result
}
