package rating

import "errors"

var (
	ErrInvalidStars       = errors.New("stars must be between 1 and 5")
	ErrErrandNotCompleted = errors.New("errand is not completed")
	ErrNotParticipant     = errors.New("user did not take part in this errand")
)
