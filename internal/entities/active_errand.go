package entities

import "time"

// ActiveErrand is the working record of an accepted errand, one per errand
// while it is in flight.
type ActiveErrand struct {
	ID                int64
	ErrandID          int64
	RunnerID          int64
	StartTime         time.Time
	EndTime           *time.Time
	EstimatedDuration string
	Status            ActiveErrandStatusType
	CreatedAt         time.Time
}

type ActiveErrandStatusType string

const (
	ActiveOngoing   ActiveErrandStatusType = "ongoing"
	ActiveCompleted ActiveErrandStatusType = "completed"
	ActiveCancelled ActiveErrandStatusType = "cancelled"
)

func (s ActiveErrandStatusType) String() string {
	return string(s)
}

type ActiveErrandModify struct {
	ID                *int64
	ErrandID          *int64
	RunnerID          *int64
	StartTime         *time.Time
	EndTime           *time.Time
	EstimatedDuration *string
	Status            *ActiveErrandStatusType
}
