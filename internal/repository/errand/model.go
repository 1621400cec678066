package errand

import "time"

type ErrandDB struct {
	ID                   int64
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
}

type ErrandModifyDB struct {
	ID                   *int64
	ClientID             *int64
	Category             *string
	PickupLocation       *string
	DeliveryLocation     *string
	Weight               *string
	DeliveryTime         *string
	Details              *string
	PriceEstimate        *float64
	AgreedPrice          *float64
	CalculatedMinimumFee *float64
	Status               *string
}

// AvailableErrandDB is a browse row for runners: a pending errand, its client
// and the browsing runner's own offer status when they already made one.
type AvailableErrandDB struct {
	Errand         ErrandDB
	ClientFullName string
	ClientUsername string
	ClientPhone    string
	OfferStatus    *string
}
