package errandevents

import (
	"time"

	"errandgo/internal/entities"
)

// statusChangedEvent is the wire form consumed by the notifications worker.
type statusChangedEvent struct {
	ErrandID   int64     `json:"errand_id"`
	ClientID   int64     `json:"client_id"`
	RunnerID   *int64    `json:"runner_id,omitempty"`
	Category   string    `json:"category"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

func fromDomain(event entities.ErrandEvent) statusChangedEvent {
	return statusChangedEvent{
		ErrandID:   event.ErrandID,
		ClientID:   event.ClientID,
		RunnerID:   event.RunnerID,
		Category:   event.Category.String(),
		Status:     event.Status.String(),
		OccurredAt: event.OccurredAt,
	}
}
