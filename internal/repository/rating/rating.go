package rating

import (
	"context"
	"fmt"

	"errandgo/internal/entities"
)

const ratingColumns = "id, errand_id, from_user_id, to_user_id, stars, comment, created_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Upsert stores a rating, overwriting an earlier one by the same rater for
// the same errand.
func (r *Repository) Upsert(ctx context.Context, rating entities.Rating) (*entities.Rating, error) {
	query := `INSERT INTO ratings (errand_id, from_user_id, to_user_id, stars, comment)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (errand_id, from_user_id)
		DO UPDATE SET to_user_id = EXCLUDED.to_user_id, stars = EXCLUDED.stars, comment = EXCLUDED.comment
		RETURNING ` + ratingColumns

	var ratingModel RatingDB
	err := r.querier.QueryRow(
		ctx,
		query,
		rating.ErrandID,
		rating.FromUserID,
		rating.ToUserID,
		rating.Stars,
		rating.Comment,
	).Scan(
		&ratingModel.ID,
		&ratingModel.ErrandID,
		&ratingModel.FromUserID,
		&ratingModel.ToUserID,
		&ratingModel.Stars,
		&ratingModel.Comment,
		&ratingModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected rating repository upsert error: %w", err)
	}

	return ToDomain(&ratingModel), nil
}

func (r *Repository) ListForUser(ctx context.Context, toUserID int64) ([]entities.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE to_user_id = $1 ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, toUserID)
	if err != nil {
		return nil, fmt.Errorf("unexpected rating repository list error: %w", err)
	}
	defer rows.Close()

	ratingModels := make([]RatingDB, 0, 8)
	for rows.Next() {
		var ratingModel RatingDB
		err := rows.Scan(
			&ratingModel.ID,
			&ratingModel.ErrandID,
			&ratingModel.FromUserID,
			&ratingModel.ToUserID,
			&ratingModel.Stars,
			&ratingModel.Comment,
			&ratingModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected rating repository list error: %w", err)
		}
		ratingModels = append(ratingModels, ratingModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected rating repository list error: %w", err)
	}

	return ToDomainList(ratingModels), nil
}

func (r *Repository) AverageForUser(ctx context.Context, toUserID int64) (average float64, count int64, err error) {
	query := `SELECT COALESCE(AVG(stars), 0), COUNT(*) FROM ratings WHERE to_user_id = $1`

	err = r.querier.QueryRow(ctx, query, toUserID).Scan(&average, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected rating repository average error: %w", err)
	}
	return average, count, nil
}
