package entities

import "time"

// Rating is a 1-5 star review of one participant by the other for a completed
// errand. One rating per (errand, rater); a repeat submission overwrites.
type Rating struct {
	ID         int64
	ErrandID   int64
	FromUserID int64
	ToUserID   int64
	Stars      int
	Comment    string
	CreatedAt  time.Time
}

const (
	MinStars = 1
	MaxStars = 5
)

type RatingModify struct {
	ID         *int64
	ErrandID   *int64
	FromUserID *int64
	ToUserID   *int64
	Stars      *int
	Comment    *string
}
