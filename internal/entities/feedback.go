package entities

import "time"

// AppFeedback is product feedback about the application itself, unrelated to
// any particular errand.
type AppFeedback struct {
	ID                int64
	UserID            int64
	Stars             int
	FeedbackType      FeedbackType
	Feedback          string
	Suggestions       string
	ContactPermission bool
	CreatedAt         time.Time
}

type FeedbackType string

const (
	FeedbackGeneral    FeedbackType = "general"
	FeedbackBug        FeedbackType = "bug"
	FeedbackSuggestion FeedbackType = "suggestion"
	FeedbackService    FeedbackType = "service"
	FeedbackApp        FeedbackType = "app"
)

func (t FeedbackType) String() string {
	return string(t)
}

// FeedbackSummary is the aggregate shown on the rate-the-app page: the average
// and the percentage of feedbacks per star value.
type FeedbackSummary struct {
	AverageStars float64
	TotalCount   int64
	Distribution map[int]float64
}
