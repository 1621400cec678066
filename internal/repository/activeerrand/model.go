package activeerrand

import "time"

type ActiveErrandDB struct {
	ID                int64
	ErrandID          int64
	RunnerID          int64
	StartTime         time.Time
	EndTime           *time.Time
	EstimatedDuration string
	Status            string
	CreatedAt         time.Time
}

type ActiveErrandModifyDB struct {
	ID                *int64
	ErrandID          *int64
	RunnerID          *int64
	StartTime         *time.Time
	EndTime           *time.Time
	EstimatedDuration *string
	Status            *string
}

// CompletedRecordDB is a completed assignment joined with its errand and the
// price it actually paid out.
type CompletedRecordDB struct {
	ErrandID             int64
	ClientID             int64
	Category             string
	PickupLocation       string
	DeliveryLocation     string
	Weight               string
	DeliveryTime         string
	Details              string
	PriceEstimate        float64
	AgreedPrice          *float64
	CalculatedMinimumFee *float64
	Status               string
	CreatedAt            time.Time
	Earnings             float64
	EndTime              time.Time
}
