package negotiation

import "time"

type NegotiationDB struct {
	ID         int64
	ErrandID   int64
	RunnerID   int64
	OfferPrice float64
	Status     string
	CreatedAt  time.Time
}

type NegotiationModifyDB struct {
	ID         *int64
	ErrandID   *int64
	RunnerID   *int64
	OfferPrice *float64
	Status     *string
}
