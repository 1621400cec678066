package rating

import (
	"context"
	"fmt"
	"strings"

	"errandgo/internal/entities"
)

type Rating struct {
	repository    Repository
	errandRepo    ErrandRepository
	activeRepo    ActiveErrandRepository
	notifications NotificationService
}

func New(
	repository Repository,
	errandRepo ErrandRepository,
	activeRepo ActiveErrandRepository,
	notifications NotificationService,
) *Rating {
	return &Rating{
		repository:    repository,
		errandRepo:    errandRepo,
		activeRepo:    activeRepo,
		notifications: notifications,
	}
}

// RateErrand records the rater's review of the other party on a completed
// errand. The recipient is derived from the assignment, never supplied by the
// caller; a repeat submission replaces the previous rating.
func (s *Rating) RateErrand(ctx context.Context, errandID, raterID int64, stars int, comment string) (*entities.Rating, error) {
	if stars < entities.MinStars || stars > entities.MaxStars {
		return nil, ErrInvalidStars
	}

	errand, err := s.errandRepo.GetByID(ctx, errandID)
	if err != nil {
		return nil, err
	}
	if errand.Status != entities.ErrandCompleted {
		return nil, ErrErrandNotCompleted
	}

	active, err := s.activeRepo.GetByErrandID(ctx, errandID)
	if err != nil {
		return nil, err
	}

	var recipientID int64
	switch raterID {
	case errand.ClientID:
		recipientID = active.RunnerID
	case active.RunnerID:
		recipientID = errand.ClientID
	default:
		return nil, ErrNotParticipant
	}

	saved, err := s.repository.Upsert(ctx, entities.Rating{
		ErrandID:   errandID,
		FromUserID: raterID,
		ToUserID:   recipientID,
		Stars:      stars,
		Comment:    strings.TrimSpace(comment),
	})
	if err != nil {
		return nil, fmt.Errorf("upsert rating: %w", err)
	}

	_, _ = s.notifications.Notify(ctx, recipientID,
		fmt.Sprintf("You received a %d-star rating for a completed errand.", stars))

	return saved, nil
}

type UserRatings struct {
	Ratings []entities.Rating
	Average float64
	Count   int64
}

func (s *Rating) RatingsForUser(ctx context.Context, userID int64) (*UserRatings, error) {
	ratings, err := s.repository.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}

	average, count, err := s.repository.AverageForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("average rating: %w", err)
	}

	return &UserRatings{
		Ratings: ratings,
		Average: average,
		Count:   count,
	}, nil
}
