package rating

import "time"

type RatingDB struct {
	ID         int64
	ErrandID   int64
	FromUserID int64
	ToUserID   int64
	Stars      int
	Comment    string
	CreatedAt  time.Time
}
