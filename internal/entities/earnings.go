package entities

import "time"

// EarningsBucket is one time slice of a runner's earnings chart, either a day
// or a month depending on the requested breakdown.
type EarningsBucket struct {
	PeriodStart time.Time
	Amount      float64
}

// Wallet splits a runner's completed earnings into what is already payable and
// what is still inside the payout hold window.
type Wallet struct {
	Available float64
	Pending   float64
}

// CompletedErrandRecord is one row of a runner's work history: the errand plus
// what it actually paid, which is the accepted offer when one exists and the
// original estimate otherwise.
type CompletedErrandRecord struct {
	Errand   Errand
	Earnings float64
	EndTime  time.Time
}

// EarningsSummary is the dashboard header block for a runner.
type EarningsSummary struct {
	Total          float64
	Today          float64
	CompletedCount int64
	AverageRating  float64
}
