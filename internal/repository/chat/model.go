package chat

import "time"

type ChatDB struct {
	ID        int64
	ErrandID  int64
	ClientID  int64
	RunnerID  int64
	CreatedAt time.Time
}

type MessageDB struct {
	ID        int64
	ChatID    int64
	SenderID  int64
	Content   string
	IsRead    bool
	CreatedAt time.Time
}
