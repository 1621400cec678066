package entities

import "time"

// Negotiation is a runner's price offer on a pending errand. At most one
// negotiation per errand may ever reach the accepted status.
type Negotiation struct {
	ID         int64
	ErrandID   int64
	RunnerID   int64
	OfferPrice float64
	Status     NegotiationStatusType
	CreatedAt  time.Time
}

type NegotiationStatusType string

const (
	NegotiationPending  NegotiationStatusType = "pending"
	NegotiationAccepted NegotiationStatusType = "accepted"
	NegotiationRejected NegotiationStatusType = "rejected"
)

func (s NegotiationStatusType) String() string {
	return string(s)
}

type NegotiationModify struct {
	ID         *int64
	ErrandID   *int64
	RunnerID   *int64
	OfferPrice *float64
	Status     *NegotiationStatusType
}

// Assignment describes the outcome of accepting an offer: the errand moved to
// accepted and a fresh active errand was opened for the winning runner.
type Assignment struct {
	ErrandID       int64
	RunnerID       int64
	ActiveErrandID int64
	AgreedPrice    float64
	StartTime      time.Time
}
