package chat

import "errors"

var (
	ErrChatNotFound   = errors.New("chat not found")
	ErrChatExists     = errors.New("chat already exists for this errand")
	ErrNotParticipant = errors.New("user is not a participant of this chat")
	ErrEmptyMessage   = errors.New("message content is empty")
)
