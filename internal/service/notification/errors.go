package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrEmptyMessage         = errors.New("notification message is empty")
)
