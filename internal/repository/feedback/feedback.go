package feedback

import (
	"context"
	"fmt"

	"errandgo/internal/entities"
)

const feedbackColumns = "id, user_id, stars, feedback_type, feedback, suggestions, contact_permission, created_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, feedback entities.AppFeedback) (*entities.AppFeedback, error) {
	query := `INSERT INTO app_feedbacks (user_id, stars, feedback_type, feedback, suggestions, contact_permission)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + feedbackColumns

	var created entities.AppFeedback
	var feedbackType string
	err := r.querier.QueryRow(
		ctx,
		query,
		feedback.UserID,
		feedback.Stars,
		feedback.FeedbackType.String(),
		feedback.Feedback,
		feedback.Suggestions,
		feedback.ContactPermission,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Stars,
		&feedbackType,
		&created.Feedback,
		&created.Suggestions,
		&created.ContactPermission,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected feedback repository create error: %w", err)
	}

	created.FeedbackType = entities.FeedbackType(feedbackType)
	return &created, nil
}

// Summary aggregates the average stars and a per-star percentage breakdown.
func (r *Repository) Summary(ctx context.Context) (*entities.FeedbackSummary, error) {
	query := `
	SELECT stars, COUNT(*)
	FROM app_feedbacks
	GROUP BY stars`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected feedback repository summary error: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int64, 5)
	var total int64
	var weighted int64
	for rows.Next() {
		var stars int
		var count int64
		if err := rows.Scan(&stars, &count); err != nil {
			return nil, fmt.Errorf("unexpected feedback repository summary error: %w", err)
		}
		counts[stars] = count
		total += count
		weighted += int64(stars) * count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected feedback repository summary error: %w", err)
	}

	summary := &entities.FeedbackSummary{
		TotalCount:   total,
		Distribution: make(map[int]float64, 5),
	}
	for stars := entities.MinStars; stars <= entities.MaxStars; stars++ {
		if total > 0 {
			summary.Distribution[stars] = float64(counts[stars]) / float64(total) * 100
		} else {
			summary.Distribution[stars] = 0
		}
	}
	if total > 0 {
		summary.AverageStars = float64(weighted) / float64(total)
	}
	return summary, nil
}
