package rating

import (
	"errandgo/internal/entities"
)

func ToDomain(r *RatingDB) *entities.Rating {
	if r == nil {
		return nil
	}

	return &entities.Rating{
		ID:         r.ID,
		ErrandID:   r.ErrandID,
		FromUserID: r.FromUserID,
		ToUserID:   r.ToUserID,
		Stars:      r.Stars,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

func ToDomainList(ratingsDB []RatingDB) []entities.Rating {
	if len(ratingsDB) == 0 {
		return []entities.Rating{}
	}

	result := make([]entities.Rating, len(ratingsDB))
	for i, ratingDB := range ratingsDB {
		result[i] = *ToDomain(&ratingDB)
	}
	return result
}
