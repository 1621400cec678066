package feedback

import "errors"

var (
	ErrInvalidStars        = errors.New("stars must be between 1 and 5")
	ErrInvalidFeedbackType = errors.New("invalid feedback type")
	ErrFeedbackTooShort    = errors.New("feedback text is too short")
)
