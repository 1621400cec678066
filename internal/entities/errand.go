package entities

import "time"

type Errand struct {
	ID                   int64
	ClientID             int64
	Category             ErrandCategory
	PickupLocation       string
	DeliveryLocation     string
	Weight               string
	DeliveryTime         string
	Details              string
	PriceEstimate        float64
	AgreedPrice          *float64
	CalculatedMinimumFee *float64
	Status               ErrandStatusType
	CreatedAt            time.Time
}

type ErrandStatusType string

const (
	ErrandPending   ErrandStatusType = "pending"
	ErrandAccepted  ErrandStatusType = "accepted"
	ErrandCompleted ErrandStatusType = "completed"
	ErrandCancelled ErrandStatusType = "cancelled"
)

func (s ErrandStatusType) String() string {
	return string(s)
}

type ErrandCategory string

const (
	CategoryGrocery          ErrandCategory = "grocery_shopping"
	CategoryFoodDelivery     ErrandCategory = "food_delivery"
	CategoryPackageDelivery  ErrandCategory = "package_delivery"
	CategoryBillPayments     ErrandCategory = "bill_payments"
	CategoryGadgetService    ErrandCategory = "gadget_services"
	CategoryCollections      ErrandCategory = "collections"
	CategoryTicketBooking    ErrandCategory = "ticket_booking"
	CategorySpareParts       ErrandCategory = "spare_parts"
	CategoryGasDelivery      ErrandCategory = "gas_delivery"
	CategoryGeneralPurchase  ErrandCategory = "general_purchasing"
	CategoryPropertyPurchase ErrandCategory = "property_purchase"
	CategoryOther            ErrandCategory = "other"
)

func (c ErrandCategory) String() string {
	return string(c)
}

type ErrandModify struct {
	ID                   *int64
	ClientID             *int64
	Category             *ErrandCategory
	PickupLocation       *string
	DeliveryLocation     *string
	Weight               *string
	DeliveryTime         *string
	Details              *string
	PriceEstimate        *float64
	AgreedPrice          *float64
	CalculatedMinimumFee *float64
	Status               *ErrandStatusType
}

// ErrandStatusCounts summarises a user's errands for the dashboard views.
type ErrandStatusCounts struct {
	Pending   int64
	Ongoing   int64
	Completed int64
}

// AvailableErrand is what a runner browsing open work sees: a pending errand in
// their city together with their own offer status on it, if any.
type AvailableErrand struct {
	Errand      Errand
	Client      User
	HasOffered  bool
	OfferStatus *NegotiationStatusType
}

// HistoryFilter narrows completed-errand listings.
type HistoryFilter string

const (
	FilterAll         HistoryFilter = "all"
	FilterToday       HistoryFilter = "today"
	FilterWeek        HistoryFilter = "week"
	FilterMonth       HistoryFilter = "month"
	FilterHighEarning HistoryFilter = "high-earning"
)
