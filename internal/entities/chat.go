package entities

import "time"

// Chat is the conversation thread for one errand between its client and the
// assigned runner. It is created together with the active errand.
type Chat struct {
	ID        int64
	ErrandID  int64
	ClientID  int64
	RunnerID  int64
	CreatedAt time.Time
}

func (c *Chat) IsParticipant(userID int64) bool {
	return c.ClientID == userID || c.RunnerID == userID
}

type Message struct {
	ID        int64
	ChatID    int64
	SenderID  int64
	Content   string
	IsRead    bool
	CreatedAt time.Time
}

type MessageModify struct {
	ID       *int64
	ChatID   *int64
	SenderID *int64
	Content  *string
	IsRead   *bool
}
