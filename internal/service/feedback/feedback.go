package feedback

import (
	"context"
	"fmt"
	"strings"

	"errandgo/internal/entities"
)

type Feedback struct {
	repository Repository
}

func New(repository Repository) *Feedback {
	return &Feedback{
		repository: repository,
	}
}

type SubmitParams struct {
	UserID            int64
	Stars             int
	FeedbackType      entities.FeedbackType
	Feedback          string
	Suggestions       string
	ContactPermission bool
}

const minFeedbackLength = 10

func (s *Feedback) Submit(ctx context.Context, params SubmitParams) (*entities.AppFeedback, error) {
	if params.Stars < entities.MinStars || params.Stars > entities.MaxStars {
		return nil, ErrInvalidStars
	}
	if !isValidFeedbackType(params.FeedbackType) {
		return nil, ErrInvalidFeedbackType
	}
	if len(strings.TrimSpace(params.Feedback)) < minFeedbackLength {
		return nil, ErrFeedbackTooShort
	}

	created, err := s.repository.Create(ctx, entities.AppFeedback{
		UserID:            params.UserID,
		Stars:             params.Stars,
		FeedbackType:      params.FeedbackType,
		Feedback:          strings.TrimSpace(params.Feedback),
		Suggestions:       strings.TrimSpace(params.Suggestions),
		ContactPermission: params.ContactPermission,
	})
	if err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return created, nil
}

func (s *Feedback) Summary(ctx context.Context) (*entities.FeedbackSummary, error) {
	summary, err := s.repository.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("feedback summary: %w", err)
	}
	return summary, nil
}

func isValidFeedbackType(feedbackType entities.FeedbackType) bool {
	switch feedbackType {
	case entities.FeedbackGeneral,
		entities.FeedbackBug,
		entities.FeedbackSuggestion,
		entities.FeedbackService,
		entities.FeedbackApp:
		return true
	default:
		return false
	}
}
