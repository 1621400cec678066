package entities

import "time"

// ErrandEvent is published to Kafka on every lifecycle transition and consumed
// by the notifications worker.
type ErrandEvent struct {
	ErrandID   int64
	ClientID   int64
	RunnerID   *int64
	Category   ErrandCategory
	Status     ErrandStatusType
	OccurredAt time.Time
}
